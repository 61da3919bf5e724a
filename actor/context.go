package actor

import (
	"fmt"
	"runtime"
	"sync"
)

// goid extracts the calling goroutine's numeric ID by parsing the header
// line of its own stack trace. It is the only place in this package
// that looks at goroutine identity, and it exists so that Self can work
// without a context parameter threaded through every call, matching the
// spec's implicit self() model.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	_, _ = fmt.Sscanf(string(buf[:n]), "goroutine %d ", &id)
	return id
}

var (
	contextMu sync.RWMutex
	contexts  = make(map[uint64]Handle)
)

// installContext binds self to the calling goroutine, making Self()
// resolvable for the remainder of that goroutine's life. Called once by
// Spawn's launched goroutine before running the body.
func installContext(self Handle) {
	contextMu.Lock()
	contexts[goid()] = self
	contextMu.Unlock()
}

// releaseContext unbinds the calling goroutine's context. Called by
// Spawn's launched goroutine after the body returns, before the
// goroutine exits.
func releaseContext() {
	id := goid()
	contextMu.Lock()
	delete(contexts, id)
	contextMu.Unlock()
}

// Self returns the Handle of the actor whose body is running on the
// calling goroutine. It returns ErrNoActorContext when called from a
// goroutine that Spawn did not launch — there is no implicit top-level
// actor.
func Self() (Handle, error) {
	contextMu.RLock()
	h, ok := contexts[goid()]
	contextMu.RUnlock()
	if !ok {
		return Handle{}, ErrNoActorContext
	}
	return h, nil
}
