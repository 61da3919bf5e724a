package actor

import "reflect"

// Handler binds a declared parameter-type tuple to a callable that
// accepts a Message's payload destructured as positional arguments.
// Handlers are built with [Case0] through [Case4]; construct them with
// explicit expected-type tags rather than relying on hidden inference —
// the generic type parameters on each Case function are exactly that tag.
type Handler struct {
	types  []reflect.Type
	invoke func(values []any) error
}

// Matcher is a fixed, ordered list of Handlers assembled at the call
// site of a receive. It exists only for the duration of one receive
// call, or one iteration of a receive loop.
type Matcher struct {
	handlers []Handler
}

// NewMatcher builds a Matcher from an ordered list of handlers. Handlers
// are tried in order; the first whose parameter-type tuple equals a
// message's signature wins ties against later handlers that would also
// match. NewMatcher rejects an empty handler list — the spec requires
// this to be caught before any wait.
func NewMatcher(handlers ...Handler) (*Matcher, error) {
	if len(handlers) == 0 {
		return nil, ErrEmptyMatcher
	}
	return &Matcher{handlers: handlers}, nil
}

// NewMatcherMust is like NewMatcher but panics on error. Intended for
// call sites (essentially everywhere but the rare dynamic matcher) where
// the handler list is a compile-time literal and can never be empty.
func NewMatcherMust(handlers ...Handler) *Matcher {
	m, err := NewMatcher(handlers...)
	if err != nil {
		panic(err)
	}
	return m
}

// match returns the first handler whose declared types equal msg's
// value types, and whether any handler matched.
func (m *Matcher) match(msg Message) (Handler, bool) {
	for _, h := range m.handlers {
		if matchTypes(h.types, msg.types) {
			return h, true
		}
	}
	return Handler{}, false
}

// Case0 registers a handler for zero-payload messages.
func Case0(fn func() error) Handler {
	return Handler{
		types:  nil,
		invoke: func(values []any) error { return fn() },
	}
}

// Case1 registers a handler for single-payload messages of type T1.
func Case1[T1 any](fn func(T1) error) Handler {
	return Handler{
		types: []reflect.Type{reflect.TypeFor[T1]()},
		invoke: func(values []any) error {
			return fn(values[0].(T1))
		},
	}
}

// Case2 registers a handler for two-payload messages of types (T1, T2).
func Case2[T1, T2 any](fn func(T1, T2) error) Handler {
	return Handler{
		types: []reflect.Type{reflect.TypeFor[T1](), reflect.TypeFor[T2]()},
		invoke: func(values []any) error {
			return fn(values[0].(T1), values[1].(T2))
		},
	}
}

// Case3 registers a handler for three-payload messages of types
// (T1, T2, T3).
func Case3[T1, T2, T3 any](fn func(T1, T2, T3) error) Handler {
	return Handler{
		types: []reflect.Type{reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]()},
		invoke: func(values []any) error {
			return fn(values[0].(T1), values[1].(T2), values[2].(T3))
		},
	}
}

// Case4 registers a handler for four-payload messages of types
// (T1, T2, T3, T4).
func Case4[T1, T2, T3, T4 any](fn func(T1, T2, T3, T4) error) Handler {
	return Handler{
		types: []reflect.Type{reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3](), reflect.TypeFor[T4]()},
		invoke: func(values []any) error {
			return fn(values[0].(T1), values[1].(T2), values[2].(T3), values[3].(T4))
		},
	}
}
