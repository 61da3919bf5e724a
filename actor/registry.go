package actor

import (
	"sort"
	"sync"

	"github.com/codewandler/actorcore/internal/cache"
	"github.com/codewandler/actorcore/internal/sf"
)

// Registry is a bounded, named-actor directory: a convenience layered
// on top of Spawn and Handle for the common case of "get the actor
// called X, spawning it on first use." It is not part of the spec's
// core model — Handles are the only addressing primitive there — but a
// directory of this shape is how every non-trivial actor system in
// practice avoids threading Handles through global state by hand.
type Registry struct {
	mu  sync.Mutex
	lru *cache.LRU[string, Handle]
	sf  *sf.Singleflight[Handle]
}

// NewRegistry creates a Registry holding at most size live named
// actors. size <= 0 defaults to the underlying LRU's default of 128.
func NewRegistry(size int) *Registry {
	return &Registry{
		lru: cache.NewLRU[string, Handle](size),
		sf:  sf.New[Handle](),
	}
}

// GetOrSpawn returns the Handle registered under name, spawning a fresh
// one via body if none is registered or the registered one has died.
// Concurrent calls for the same name that race GetOrSpawn collapse into
// a single spawn through the singleflight group; both callers observe
// the same Handle.
func (r *Registry) GetOrSpawn(name string, body func() error) Handle {
	h, _ := r.sf.Do(name, func() (Handle, error) {
		r.mu.Lock()
		if existing, ok := r.lru.Get(name); ok && existing.Alive() {
			r.mu.Unlock()
			return existing, nil
		}
		r.mu.Unlock()

		fresh := Spawn(body)

		r.mu.Lock()
		r.lru.Put(name, fresh)
		r.mu.Unlock()

		return fresh, nil
	})
	return h
}

// Forget removes name from the registry without affecting the actor
// itself; a subsequent GetOrSpawn for the same name always spawns fresh.
func (r *Registry) Forget(name string) {
	r.mu.Lock()
	r.lru.Delete(name)
	r.mu.Unlock()
}

// Snapshot returns every Handle currently registered, ordered by
// Handle.Less (spawn sequence) rather than the LRU's recency order —
// stable, diagnostic-friendly output for logging a registry's contents.
func (r *Registry) Snapshot() []Handle {
	r.mu.Lock()
	handles := r.lru.Values()
	r.mu.Unlock()

	sort.Slice(handles, func(i, j int) bool {
		return handles[i].Less(handles[j])
	})
	return handles
}
