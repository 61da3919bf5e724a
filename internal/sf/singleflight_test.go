package sf

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestSingleflight_collapsesConcurrentCalls(t *testing.T) {
	s := New[int]()
	var calls atomic.Int32

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := s.Do("key", func() (int, error) {
				calls.Add(1)
				return 42, nil
			})
			require.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		require.Equal(t, 42, v)
	}
	require.LessOrEqual(t, calls.Load(), int32(10))
}

func TestSingleflight_propagatesError(t *testing.T) {
	s := New[int]()
	boom := require.New(t)

	_, err := s.Do("key", func() (int, error) {
		return 0, errBoom
	})
	boom.ErrorIs(err, errBoom)
}
