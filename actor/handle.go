package actor

import "fmt"

// Handle is an opaque, comparable reference to an actor's mailbox. Two
// Handles compare equal iff they name the same mailbox. Handles are the
// only thing a body ever receives back from Spawn or from a directory
// lookup — the Mailbox itself is never exposed.
type Handle struct {
	mb *Mailbox
}

// Send enqueues values as a single Message on the target mailbox. Send
// never blocks and never reports delivery failure: if the target is
// dead, the message is silently dropped (invariant I1), as spec'd for a
// model with no acknowledgement channel.
func (h Handle) Send(values ...any) {
	h.mb.enqueue(newMessage(values...))
}

// Monitor subscribes the calling actor to h's death notification. It
// must be called from within a spawned body (it resolves the caller via
// the current-actor context). Returns ErrNoActorContext if called
// outside one, or false with a nil error if h is already dead.
func (h Handle) Monitor() (bool, error) {
	self, err := Self()
	if err != nil {
		return false, err
	}
	return h.mb.monitor(self.mb), nil
}

// Alive reports whether h's mailbox was alive at the moment of the
// call. The result is stale the instant it's returned; it exists for
// diagnostics and tests, not for control flow.
func (h Handle) Alive() bool {
	return h.mb.isAlive()
}

// Equal reports whether h and other name the same mailbox. Handle also
// supports == directly since it wraps a single pointer.
func (h Handle) Equal(other Handle) bool {
	return h.mb == other.mb
}

// Less gives Handle a total order by spawn sequence, for use as a map
// key ordering or in sorted diagnostics output.
func (h Handle) Less(other Handle) bool {
	return h.mb.idn < other.mb.idn
}

func (h Handle) String() string {
	return fmt.Sprintf("actor<%s>", h.mb.id)
}
