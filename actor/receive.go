package actor

import (
	"errors"
	"time"
)

// Receive blocks the calling actor until a message matching matcher
// arrives, dispatches it, and returns the handler's error. It must be
// called from within a spawned body.
func Receive(matcher *Matcher) error {
	self, err := Self()
	if err != nil {
		return err
	}
	_, err = self.mb.receive(matcher, false, time.Time{})
	return err
}

// ReceiveFor is Receive bounded by a relative timeout. matched is false
// if the deadline elapsed with no match; a zero or negative d is
// checked before waiting, so ReceiveFor(0, m) never blocks.
func ReceiveFor(d time.Duration, matcher *Matcher) (matched bool, err error) {
	return ReceiveUntil(time.Now().Add(d), matcher)
}

// ReceiveUntil is Receive bounded by an absolute deadline.
func ReceiveUntil(deadline time.Time, matcher *Matcher) (matched bool, err error) {
	self, err := Self()
	if err != nil {
		return false, err
	}
	return self.mb.receive(matcher, true, deadline)
}

// ReceiveLoop repeats Receive(matcher) until a handler within some
// iteration calls LeaveLoop. The sentinel used to propagate LeaveLoop
// out of the handler and back to this loop never escapes this
// function — ReceiveLoop translates it to a nil return.
func ReceiveLoop(matcher *Matcher) error {
	for {
		err := Receive(matcher)
		if errors.Is(err, errLeaveLoop) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// LeaveLoop is called by a handler to terminate the innermost
// ReceiveLoop after the current message is consumed. Calling it outside
// a ReceiveLoop's handler has no special effect beyond returning this
// error from Receive, which the caller must then handle itself.
func LeaveLoop() error {
	return errLeaveLoop
}
