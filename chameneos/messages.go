package chameneos

// This file documents the wire protocol between chameneos and broker
// actors; no wrapper types are needed because the message arity itself
// disambiguates the two message shapes the Matcher dispatches on:
//
//   (actor.Handle, Color)  — a chameneos announcing its handle and
//                            current color, sent both to the broker
//                            while waiting for a meeting, and from the
//                            broker to a chameneos relaying who it met.
//   ()                     — sent by the broker to a chameneos it has
//                            chosen to kill; arity zero is matched by
//                            Case0 and carries no payload.
//   (int)                  — a dying chameneos reporting its final
//                            meeting count to the broker.
