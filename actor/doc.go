// Package actor implements a small, header-only actor runtime: actors
// are independent goroutines that own one [Mailbox] each and that
// communicate only by asynchronous message passing through [Handle]s.
//
// # Core components
//
//   - [Mailbox] is a thread-safe, unbounded, ordered buffer of
//     heterogeneous messages, augmented with a side "pending" buffer for
//     messages a prior selective receive examined but did not consume.
//   - [Matcher] is an ordered list of [Handler]s assembled at a receive
//     call site; it dispatches a message to the first handler whose
//     declared parameter types match the message's payload types.
//   - [Handle] is a shareable, comparable reference to a Mailbox — the
//     only way to address another actor.
//   - [Spawn] starts a new actor: it allocates a fresh Mailbox, runs the
//     given body on a new goroutine with that mailbox installed as the
//     goroutine's current-actor context, and returns a Handle once the
//     child's context is ready.
//
// # Example
//
//	child := actor.Spawn(func() error {
//	    return actor.Receive(actor.NewMatcherMust(
//	        actor.Case1(func(greeting string) error {
//	            fmt.Println("got:", greeting)
//	            return nil
//	        }),
//	    ))
//	})
//	child.Send("hello")
//
// # Selective receive
//
// [Receive] scans the Mailbox's pending buffer first, in arrival order,
// then blocks on the incoming queue. A message that doesn't match any
// handler in the current Matcher is moved to the tail of pending and the
// scan continues — it is neither lost nor reordered relative to other
// pending messages. This is what gives Chameneos-Redux-style rendezvous
// its Erlang-style selective-receive semantics.
//
// # Monitoring
//
// [Handle.Monitor] subscribes the calling actor to a death notification
// — (ExitMarker, handle) on normal return, (ErrorMarker, handle, payload)
// on an unhandled body failure or panic — delivered once when the
// target's mailbox transitions to dead. Repeated Monitor calls from the
// same actor on the same target register a single subscription and so
// yield a single notification.
package actor
