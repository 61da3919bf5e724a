package chameneos

import (
	"fmt"
	"io"
	"sync"

	"github.com/codewandler/actorcore/actor"
)

// RunDemo prints the complement table followed by two benchmark runs —
// three creatures, then ten — each meeting up to n times, matching the
// reference program's two fixed color sequences. Every actor it spawns
// is configured with opts, so a caller wiring a real metrics/logging
// backend through actor.Options sees it reflected in every mailbox the
// demo creates.
func RunDemo(n int, out io.Writer, opts actor.Options) {
	mu := &sync.Mutex{}
	PrintComplementTable(out)
	run(out, mu, []Color{Blue, Red, Yellow}, n, opts)
	run(out, mu, []Color{Blue, Red, Yellow, Red, Yellow, Blue, Red, Yellow, Red, Blue}, n, opts)
	fmt.Fprintln(out)
}

// run spawns a broker and one chameneos per color, then blocks until
// the broker has collected every final tally and printed the spelled
// meeting-count sum. The broker itself must run as an actor since it
// calls actor.Receive; the calling goroutine is not an actor, so
// completion is signalled through a plain channel rather than Monitor.
func run(out io.Writer, mu *sync.Mutex, colors []Color, meetings int, opts actor.Options) {
	printHeader(out, mu, colors)

	done := make(chan struct{})
	broker := actor.SpawnWithOptions(opts, func() error {
		defer close(done)
		return runBroker(meetings, len(colors), out, mu)
	})

	for _, c := range colors {
		actor.SpawnWithOptions(opts, chameneosBody(c, broker, out, mu))
	}

	<-done
}

func printHeader(out io.Writer, mu *sync.Mutex, colors []Color) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out)
	for _, c := range colors {
		fmt.Fprintf(out, " %s", c)
	}
	fmt.Fprintln(out)
}
