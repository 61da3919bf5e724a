package actor

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	"weak"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/actorcore/internal/ds"
)

var mailboxSeq atomic.Uint64

// Mailbox is a thread-safe, unbounded, ordered buffer of heterogeneous
// Messages, augmented with a side pending buffer for messages a prior
// selective receive examined but did not match. It owns the
// synchronization primitives (one mutex, one condition variable), a
// liveness flag, and the set of monitor subscribers.
type Mailbox struct {
	id  string // nanoid, cosmetic — used only in logs and metrics labels
	idn uint64 // monotonic, used for Handle total ordering

	mu   sync.Mutex
	cond *sync.Cond

	incoming []Message
	pending  []Message
	living   bool

	monitors *ds.Set[weak.Pointer[Mailbox]]

	log     *slog.Logger
	metrics ActorMetrics
}

type mailboxOptions struct {
	log     *slog.Logger
	metrics ActorMetrics
}

func newMailbox(opts mailboxOptions) *Mailbox {
	if opts.log == nil {
		opts.log = slog.Default()
	}
	if opts.metrics == nil {
		opts.metrics = NopActorMetrics()
	}

	mb := &Mailbox{
		id:       gonanoid.Must(8),
		idn:      mailboxSeq.Add(1),
		living:   true,
		monitors: ds.NewSet[weak.Pointer[Mailbox]](),
		log:      opts.log,
		metrics:  opts.metrics,
	}
	mb.cond = sync.NewCond(&mb.mu)
	return mb
}

// enqueue appends msg to incoming and wakes one waiter. If the mailbox
// is already dead, msg is silently discarded (invariant I1).
func (mb *Mailbox) enqueue(msg Message) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if !mb.living {
		mb.metrics.MessageDropped(msg.Signature())
		return
	}

	mb.incoming = append(mb.incoming, msg)
	mb.metrics.MailboxDepth(mb.id, len(mb.incoming))
	mb.cond.Signal()
}

// monitor subscribes subscriber's mailbox to this mailbox's death
// notifications. Returns false if this mailbox is already dead, in
// which case the caller should assume no notification will ever arrive.
// Repeated calls for the same subscriber collapse into one subscription:
// monitors is a set and weak.Make returns equal pointers for the same
// mailbox, so the subscriber receives a single notification however many
// times it called monitor.
func (mb *Mailbox) monitor(subscriber *Mailbox) bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if !mb.living {
		return false
	}
	mb.monitors.Add(weak.Make(subscriber))
	return true
}

// isAlive is a non-authoritative liveness snapshot.
func (mb *Mailbox) isAlive() bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.living
}

// markDead transitions the mailbox to dead exactly once, drains both
// queues, and delivers a copy of notice to every monitor whose weak
// reference still resolves.
func (mb *Mailbox) markDead(notice Message) {
	mb.mu.Lock()
	if !mb.living {
		mb.mu.Unlock()
		return
	}
	mb.living = false
	mb.incoming = nil
	mb.pending = nil
	mb.metrics.MailboxDepth(mb.id, 0)
	mb.metrics.PendingDepth(mb.id, 0)

	subscribers := mb.monitors.Values()
	mb.monitors.Clear()
	mb.cond.Broadcast()
	mb.mu.Unlock()

	kind := "exit"
	if notice.Arity() == 3 {
		kind = "error"
	}
	for _, wp := range subscribers {
		if target := wp.Value(); target != nil {
			target.enqueue(notice)
			mb.metrics.DeathNotification(kind)
		}
	}
}

// receive implements the selective-receive algorithm of spec §4.1: scan
// pending first, in insertion order, then loop on incoming, moving
// non-matching heads to the tail of pending. hasDeadline selects between
// an indefinite receive (false) and a timed receive (true, bounded by
// deadline). matched is always true for an indefinite receive that
// returns a nil error.
func (mb *Mailbox) receive(matcher *Matcher, hasDeadline bool, deadline time.Time) (matched bool, err error) {
	if matcher == nil || len(matcher.handlers) == 0 {
		return false, ErrEmptyMatcher
	}

	mb.mu.Lock()

	if h, msg, ok := scanPending(matcher, &mb.pending); ok {
		mb.metrics.PendingDepth(mb.id, len(mb.pending))
		mb.mu.Unlock()
		return true, mb.invoke(h, msg)
	}

	var timer *time.Timer
	if hasDeadline {
		wait := time.Until(deadline)
		if wait <= 0 {
			mb.mu.Unlock()
			return false, nil
		}
		timer = time.AfterFunc(wait, func() {
			mb.mu.Lock()
			mb.cond.Broadcast()
			mb.mu.Unlock()
		})
		defer timer.Stop()
	}

	for {
		for len(mb.incoming) == 0 {
			if hasDeadline && !time.Now().Before(deadline) {
				mb.mu.Unlock()
				return false, nil
			}
			mb.cond.Wait()
			if !mb.living {
				mb.mu.Unlock()
				if hasDeadline {
					return false, nil
				}
				return false, ErrNotRunning
			}
		}

		msg := mb.incoming[0]
		if h, ok := matcher.match(msg); ok {
			mb.incoming = mb.incoming[1:]
			mb.metrics.MailboxDepth(mb.id, len(mb.incoming))
			mb.mu.Unlock()
			return true, mb.invoke(h, msg)
		}

		mb.incoming = mb.incoming[1:]
		mb.metrics.MailboxDepth(mb.id, len(mb.incoming))
		mb.pending = append(mb.pending, msg)
		mb.metrics.PendingDepth(mb.id, len(mb.pending))
	}
}

// invoke calls a matched handler outside the mailbox lock — the handler
// may send, receive (including recursively on this same mailbox), or
// spawn without deadlocking.
func (mb *Mailbox) invoke(h Handler, msg Message) error {
	timer := mb.metrics.HandleDuration(msg.Signature())
	defer timer.ObserveDuration()

	defer func() {
		if r := recover(); r != nil {
			mb.metrics.HandlerPanic(msg.Signature())
			panic(r) // re-raise; the actor body's own recover decides the fate
		}
	}()
	err := h.invoke(msg.values)
	if err == nil {
		mb.metrics.MessageDelivered(msg.Signature())
	}
	return err
}

// scanPending walks pending in insertion order looking for a match,
// removing and returning the first hit.
func scanPending(matcher *Matcher, pending *[]Message) (Handler, Message, bool) {
	for i, msg := range *pending {
		if h, ok := matcher.match(msg); ok {
			*pending = append((*pending)[:i:i], (*pending)[i+1:]...)
			return h, msg, true
		}
	}
	return Handler{}, Message{}, false
}
