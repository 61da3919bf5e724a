package chameneos

import (
	"fmt"
	"io"
	"sync"

	"github.com/codewandler/actorcore/actor"
)

// chameneosBody builds the actor body for a single chameneos creature.
// It alternates announcing itself to broker and waiting for either a
// meeting partner's (Handle, Color) or the broker's kill signal (an
// empty message), until killed, at which point it reports its tally
// and terminates.
func chameneosBody(start Color, broker actor.Handle, out io.Writer, mu *sync.Mutex) func() error {
	return func() error {
		self, err := actor.Self()
		if err != nil {
			return err
		}

		current := start
		meetings := 0
		metSelf := 0
		killed := false

		matcher := actor.NewMatcherMust(
			actor.Case2(func(other actor.Handle, met Color) error {
				meetings++
				current = current.Complement(met)
				if other.Equal(self) {
					metSelf++
				}
				return nil
			}),
			actor.Case0(func() error {
				mu.Lock()
				fmt.Fprintf(out, "%d%s\n", meetings, Spell(metSelf))
				mu.Unlock()
				broker.Send(meetings)
				killed = true
				return nil
			}),
		)

		for !killed {
			broker.Send(self, current)
			if err := actor.Receive(matcher); err != nil {
				return err
			}
		}
		return nil
	}
}
