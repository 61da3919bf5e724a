// Package reflector provides type reflection utilities with caching.
// It extracts and caches type metadata for efficient repeated lookups,
// and renders ordered type tuples into human-readable display names.
package reflector

import (
	"reflect"
	"strings"
	"sync"
)

// maxCacheSize bounds the type cache. The number of distinct message
// and handler-parameter types in an actor program is small and fixed
// at compile time, so this limit is rarely hit; if it ever is, the
// cache is simply cleared and rebuilt.
const maxCacheSize = 1024

var (
	muCache sync.RWMutex
	cache   = make(map[reflect.Type]TypeInfo)
)

// TypeInfo holds metadata about a reflected type.
type TypeInfo struct {
	Name string       // fully qualified name: "pkg/path.TypeName"
	Type reflect.Type // the underlying reflect.Type, pointer stripped
}

// TypeInfoForType returns TypeInfo for the given reflect.Type, unwrapping
// one level of pointer indirection so *T and T share an identity. Results
// are cached; thread-safe for concurrent use.
func TypeInfoForType(t reflect.Type) TypeInfo {
	if t == nil {
		return TypeInfo{Name: "<nil>"}
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	muCache.RLock()
	ti, ok := cache[t]
	muCache.RUnlock()
	if ok {
		return ti
	}

	ti = TypeInfo{Name: qualifiedName(t), Type: t}

	muCache.Lock()
	if existing, ok := cache[t]; ok {
		muCache.Unlock()
		return existing
	}
	if len(cache) >= maxCacheSize {
		cache = make(map[reflect.Type]TypeInfo)
	}
	cache[t] = ti
	muCache.Unlock()

	return ti
}

func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// Signature renders an ordered tuple of types as a human-readable
// label, for logging and metrics only. Because TypeInfoForType unwraps
// one level of pointer indirection, two signatures can render identically
// for a *T value and a T value — dispatch matching must not use this;
// it compares raw reflect.Type values instead (see matchTypes).
func Signature(types ...reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = TypeInfoForType(t).Name
	}
	return strings.Join(names, ",")
}
