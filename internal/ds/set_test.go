package ds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_addIsIdempotentAndPreservesOrder(t *testing.T) {
	s := NewSet[int]()
	s.Add(3)
	s.Add(1)
	s.Add(3)
	s.Add(2)

	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{3, 1, 2}, s.Values())
}

func TestSet_remove(t *testing.T) {
	s := NewSet(1, 2, 3)
	s.Remove(2)

	require.False(t, s.Contains(2))
	require.Equal(t, []int{1, 3}, s.Values())
}

func TestSet_clear(t *testing.T) {
	s := NewSet(1, 2, 3)
	s.Clear()

	require.Zero(t, s.Len())
	require.Empty(t, s.Values())
}

func TestSet_forEach(t *testing.T) {
	s := NewSet(1, 2, 3)
	var sum int
	s.ForEach(func(v int) { sum += v })
	require.Equal(t, 6, sum)
}
