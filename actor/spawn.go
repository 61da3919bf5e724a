package actor

import (
	"fmt"
	"log/slog"
	"runtime/debug"
)

// DeathKind distinguishes the two flavors of death notification a
// monitor can observe.
type DeathKind int

const (
	// ExitMarker tags a death notification as normal completion: the
	// body returned nil, or signalled leave_loop from within
	// ReceiveLoop.
	ExitMarker DeathKind = iota
	// ErrorMarker tags a death notification as abnormal completion: the
	// body returned a non-nil error, or panicked.
	ErrorMarker
)

func (k DeathKind) String() string {
	switch k {
	case ExitMarker:
		return "exit"
	case ErrorMarker:
		return "error"
	default:
		return "unknown"
	}
}

// Options configures a spawned actor's logging and metrics sinks. The
// zero Options is valid: it defaults to slog.Default and a no-op
// metrics sink.
type Options struct {
	Logger  *slog.Logger
	Metrics ActorMetrics
}

// FailureReport is the opaque error_payload of an ErrorMarker death
// notice. It exists because dispatch matches a message's concrete
// dynamic type, and an `error` value's dynamic type varies with
// whatever implementation produced it — a handler that wants to match
// "the error payload" regardless of which concrete error type caused
// it declares FailureReport rather than error.
type FailureReport struct {
	Cause error
}

// Spawn launches body on a new goroutine with a freshly allocated
// mailbox installed as its current-actor context, and returns a Handle
// to it. Spawn blocks until the child's context is installed — the
// rendezvous the spec requires — so the returned Handle is always
// immediately usable.
//
// Go closures are the idiomatic equivalent of the spec's spawn(body,
// args...): instead of forwarding args through Spawn itself, callers
// close over whatever the body needs.
func Spawn(body func() error) Handle {
	return SpawnWithOptions(Options{}, body)
}

// SpawnWithOptions is Spawn with an explicit Options value.
func SpawnWithOptions(opts Options, body func() error) Handle {
	mb := newMailbox(mailboxOptions{log: opts.Logger, metrics: opts.Metrics})
	self := Handle{mb: mb}

	ready := make(chan struct{})
	go func() {
		installContext(self)
		close(ready)
		defer releaseContext()

		err := runBody(body)

		switch {
		case err == nil:
			mb.markDead(newMessage(ExitMarker, self))
		default:
			mb.markDead(newMessage(ErrorMarker, self, FailureReport{Cause: err}))
		}
	}()
	<-ready

	return self
}

// runBody invokes body, converting a panic into an error so the spawn
// wrapper has a single failure path to report through mark_dead. A
// leave_loop signal that escapes ReceiveLoop's own recovery (it
// shouldn't, but defense in depth) is treated as normal termination per
// spec §4.3 step f.
func runBody(body func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == errLeaveLoop {
				err = nil
				return
			}
			err = fmt.Errorf("%w: %v\n%s", ErrActorPanicked, r, debug.Stack())
		}
	}()
	err = body()
	if err == errLeaveLoop {
		err = nil
	}
	return err
}
