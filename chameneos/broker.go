package chameneos

import (
	"fmt"
	"io"
	"sync"

	"github.com/codewandler/actorcore/actor"
)

// meeting is the broker's local view of one (Handle, Color) announcement.
type meeting struct {
	who   actor.Handle
	color Color
}

// receiveMeeting blocks for exactly one (Handle, Color) announcement.
func receiveMeeting() (meeting, error) {
	var m meeting
	matcher := actor.NewMatcherMust(actor.Case2(func(h actor.Handle, c Color) error {
		m = meeting{who: h, color: c}
		return nil
	}))
	err := actor.Receive(matcher)
	return m, err
}

// runBroker is the broker actor's body. It pairs up meetingsCount
// rendezvous, kills every one of colorCount living chameneos, collects
// their final tallies, and prints the spelled-out sum of all meetings
// reported by dying chameneos.
func runBroker(meetingsCount, colorCount int, out io.Writer, mu *sync.Mutex) error {
	for i := 0; i < meetingsCount; i++ {
		left, err := receiveMeeting()
		if err != nil {
			return err
		}
		right, err := receiveMeeting()
		if err != nil {
			return err
		}
		left.who.Send(right.who, right.color)
		right.who.Send(left.who, left.color)
	}

	for i := 0; i < colorCount; i++ {
		last, err := receiveMeeting()
		if err != nil {
			return err
		}
		last.who.Send()
	}

	sum := 0
	tallyMatcher := actor.NewMatcherMust(actor.Case1(func(n int) error {
		sum += n
		return nil
	}))
	for i := 0; i < colorCount; i++ {
		if err := actor.Receive(tallyMatcher); err != nil {
			return err
		}
	}

	mu.Lock()
	fmt.Fprintln(out, Spell(sum))
	mu.Unlock()
	return nil
}
