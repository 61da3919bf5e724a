package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLRU_basic(t *testing.T) {
	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Put("b", 2)

	v, ok := l.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestLRU_evictsLeastRecentlyUsed(t *testing.T) {
	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Put("b", 2)
	l.Get("a") // promote a
	l.Put("c", 3)

	_, ok := l.Get("b")
	require.False(t, ok, "b should have been evicted")

	_, ok = l.Get("a")
	require.True(t, ok)
	_, ok = l.Get("c")
	require.True(t, ok)
}

func TestLRU_updateExisting(t *testing.T) {
	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Put("a", 2)

	v, ok := l.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestLRU_delete(t *testing.T) {
	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Delete("a")

	_, ok := l.Get("a")
	require.False(t, ok)
}

func TestLRU_values(t *testing.T) {
	l := NewLRU[string, int](3)
	l.Put("a", 1)
	l.Put("b", 2)
	l.Put("c", 3)

	vals := l.Values()
	require.ElementsMatch(t, []int{1, 2, 3}, vals)
}

func TestLRU_defaultSize(t *testing.T) {
	l := NewLRU[string, int](0)
	for i := 0; i < 128; i++ {
		l.Put(string(rune('a'+i)), i)
	}
	_, ok := l.Get("a")
	require.True(t, ok, "first key should still fit within the default size of 128")
}
