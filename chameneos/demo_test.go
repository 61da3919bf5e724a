package chameneos

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/actorcore/actor"
)

func TestRun_totalMeetingsIsDoubleTheRequestedCount(t *testing.T) {
	var buf bytes.Buffer
	mu := &sync.Mutex{}

	done := make(chan struct{})
	go func() {
		run(&buf, mu, []Color{Blue, Red, Yellow}, 7, actor.Options{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for rendezvous run to finish")
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	last := lines[len(lines)-1]
	require.Equal(t, Spell(14), last, "two chameneos update their tally on every meeting")
}

func TestRunDemo_printsBothPopulationSizes(t *testing.T) {
	var buf bytes.Buffer
	RunDemo(3, &buf, actor.Options{})

	out := buf.String()
	require.Contains(t, out, "blue + blue -> blue")
	require.Contains(t, out, " blue red yellow")
	require.Contains(t, out, " blue red yellow red yellow blue red yellow red blue")
}
