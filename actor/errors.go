package actor

import "errors"

var (
	// ErrNoActorContext is returned by Self, Receive, and its variants
	// when called from a goroutine that was not installed by Spawn.
	ErrNoActorContext = errors.New("actor: no current-actor context; call from within a spawned body")

	// ErrEmptyMatcher is returned by NewMatcher when given zero handlers.
	ErrEmptyMatcher = errors.New("actor: matcher must have at least one handler")

	// ErrNotRunning is returned by an indefinite Receive if its mailbox
	// transitions to dead while the call is waiting. Under normal use
	// this is unreachable: a mailbox only dies when its owning actor's
	// body has already returned, so the actor never issues another
	// Receive afterward. It exists as a defensive return path.
	ErrNotRunning = errors.New("actor: mailbox terminated while receive was waiting")

	// ErrActorPanicked wraps a recovered panic value from an actor body,
	// becoming the opaque error payload of an ErrorMarker death notice.
	ErrActorPanicked = errors.New("actor: body panicked")

	// errLeaveLoop is the in-band, non-error sentinel a handler returns
	// from within ReceiveLoop to terminate the innermost loop.
	// ReceiveLoop translates it to a nil error; a plain Receive whose
	// handler returns it passes it on to its caller, and the spawn
	// wrapper treats a body that returns it as a normal exit.
	errLeaveLoop = errors.New("actor: leave loop")
)
