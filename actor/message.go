package actor

import (
	"reflect"

	"github.com/codewandler/actorcore/internal/reflector"
)

// Message is an immutable, heterogeneous value-tuple carrying an
// arbitrary fixed arity of typed payloads. Its type signature — the
// ordered tuple of its values' dynamic types — is its identity for
// dispatch. A Message is created by Handle.Send, consumed exactly once
// by a matching receive, and carries no identity beyond its payload.
type Message struct {
	types  []reflect.Type
	values []any
	name   string // friendly signature, for logs and metrics labels only
}

func newMessage(values ...any) Message {
	types := make([]reflect.Type, len(values))
	for i, v := range values {
		types[i] = reflect.TypeOf(v)
	}
	return Message{
		types:  types,
		values: values,
		name:   reflector.Signature(types...),
	}
}

// Arity returns the number of payload values carried by m.
func (m Message) Arity() int { return len(m.values) }

// Signature returns a human-readable rendering of m's type tuple,
// suitable for logging and metrics labels. It is not used for dispatch
// matching, which compares exact reflect.Type values instead.
func (m Message) Signature() string { return m.name }

func matchTypes(handlerTypes, msgTypes []reflect.Type) bool {
	if len(handlerTypes) != len(msgTypes) {
		return false
	}
	for i := range handlerTypes {
		if handlerTypes[i] != msgTypes[i] {
			return false
		}
	}
	return true
}
