package actor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMailbox_enqueueAfterDeathIsDropped(t *testing.T) {
	mb := newMailbox(mailboxOptions{})
	mb.markDead(newMessage(ExitMarker, Handle{mb: mb}))

	mb.enqueue(newMessage("hello"))

	mb.mu.Lock()
	depth := len(mb.incoming)
	mb.mu.Unlock()
	require.Zero(t, depth, "message sent after death must be silently dropped")
}

func TestMailbox_selectiveReceiveReordersToPending(t *testing.T) {
	mb := newMailbox(mailboxOptions{})
	mb.enqueue(newMessage("skip-me"))
	mb.enqueue(newMessage(42))

	var got int
	m := NewMatcherMust(Case1(func(n int) error {
		got = n
		return nil
	}))

	matched, err := mb.receive(m, false, time.Time{})
	require.NoError(t, err)
	require.True(t, matched)
	require.Equal(t, 42, got)

	mb.mu.Lock()
	pendingLen := len(mb.pending)
	mb.mu.Unlock()
	require.Equal(t, 1, pendingLen, "the skipped string message must be preserved in pending")
}

func TestMailbox_pendingScannedBeforeIncoming(t *testing.T) {
	mb := newMailbox(mailboxOptions{})
	mb.pending = append(mb.pending, newMessage("from-pending"))
	mb.enqueue(newMessage("from-incoming"))

	var order []string
	m := NewMatcherMust(Case1(func(s string) error {
		order = append(order, s)
		return nil
	}))

	_, err := mb.receive(m, false, time.Time{})
	require.NoError(t, err)
	_, err = mb.receive(m, false, time.Time{})
	require.NoError(t, err)

	require.Equal(t, []string{"from-pending", "from-incoming"}, order)
}

func TestMailbox_receiveForZeroDoesNotBlock(t *testing.T) {
	mb := newMailbox(mailboxOptions{})
	m := NewMatcherMust(Case1(func(n int) error { return nil }))

	start := time.Now()
	matched, err := mb.receive(m, true, time.Now())
	require.NoError(t, err)
	require.False(t, matched)
	require.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestMailbox_receiveForTimesOutThenDeliversLateMessage(t *testing.T) {
	mb := newMailbox(mailboxOptions{})
	m := NewMatcherMust(Case1(func(n int) error { return nil }))

	matched, err := mb.receive(m, true, time.Now().Add(20*time.Millisecond))
	require.NoError(t, err)
	require.False(t, matched)

	mb.enqueue(newMessage(7))
	matched, err = mb.receive(m, false, time.Time{})
	require.NoError(t, err)
	require.True(t, matched)
}

func TestMailbox_monitorReceivesExitNotice(t *testing.T) {
	target := newMailbox(mailboxOptions{})
	subscriber := newMailbox(mailboxOptions{})

	require.True(t, target.monitor(subscriber))

	deceased := Handle{mb: target}
	target.markDead(newMessage(ExitMarker, deceased))

	var kind DeathKind
	var who Handle
	m := NewMatcherMust(Case2(func(k DeathKind, h Handle) error {
		kind = k
		who = h
		return nil
	}))
	matched, err := subscriber.receive(m, false, time.Time{})
	require.NoError(t, err)
	require.True(t, matched)
	require.Equal(t, ExitMarker, kind)
	require.True(t, who.Equal(deceased))
}

func TestMailbox_monitorOnDeadTargetReturnsFalse(t *testing.T) {
	target := newMailbox(mailboxOptions{})
	subscriber := newMailbox(mailboxOptions{})
	target.markDead(newMessage(ExitMarker, Handle{mb: target}))

	require.False(t, target.monitor(subscriber))
}
