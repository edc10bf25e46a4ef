package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrent_VisitsAll(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var sum atomic.Int64
	err := Concurrent(context.Background(), items, 4, func(_ context.Context, idx int, v int) error {
		assert.Equal(t, idx, v)
		sum.Add(int64(v))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4950), sum.Load())
}

func TestConcurrent_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	items := make([]struct{}, 32)

	err := Concurrent(context.Background(), items, 3, func(context.Context, int, struct{}) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestConcurrent_FirstError(t *testing.T) {
	errBoom := errors.New("boom")
	items := []int{1, 2, 3, 4}

	err := Concurrent(context.Background(), items, 1, func(ctx context.Context, _ int, v int) error {
		if v == 2 {
			return errBoom
		}
		return ctx.Err()
	})
	assert.ErrorIs(t, err, errBoom)
}

func TestConcurrent_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := Concurrent(ctx, []int{1, 2, 3}, 2, func(context.Context, int, int) error {
		calls.Add(1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestParallelMap(t *testing.T) {
	out, err := ParallelMap(context.Background(), []int{1, 2, 3, 4, 5}, 2, func(_ context.Context, v int) (int, error) {
		return v * v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9, 16, 25}, out)

	_, err = ParallelMap(context.Background(), []int{1, 2}, 0, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, errors.New("bad")
		}
		return v, nil
	})
	assert.Error(t, err)
}
