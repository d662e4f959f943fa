package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── SerialRunner ──────────────────────────────────────────────────────────────

// TestSerialRunner_RunsInOrder verifies in-order execution on the calling
// goroutine.
func TestSerialRunner_RunsInOrder(t *testing.T) {
	var got []int
	err := SerialRunner{}.Run(context.Background(), 5, func(_ context.Context, i int) error {
		got = append(got, i)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

// TestSerialRunner_StopsAtFirstError verifies that no job runs past a
// failure.
func TestSerialRunner_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	var ran int
	err := SerialRunner{}.Run(context.Background(), 5, func(_ context.Context, i int) error {
		ran++
		if i == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, ran)
}

// TestSerialRunner_Cancelled verifies that cancellation is checked between
// jobs.
func TestSerialRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ran int
	err := SerialRunner{}.Run(ctx, 5, func(_ context.Context, i int) error {
		ran++
		if i == 1 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, ran)
}

// ── PoolRunner ────────────────────────────────────────────────────────────────

// TestPoolRunner_RunsEveryJobOnce verifies that every index is processed
// exactly once under concurrency.
func TestPoolRunner_RunsEveryJobOnce(t *testing.T) {
	const n = 100
	var mu sync.Mutex
	seen := make(map[int]int, n)

	err := PoolRunner{Workers: 8}.Run(context.Background(), n, func(_ context.Context, i int) error {
		mu.Lock()
		seen[i]++
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, n)
	for i, count := range seen {
		assert.Equal(t, 1, count, "index %d", i)
	}
}

// TestPoolRunner_RespectsWorkerLimit verifies that concurrency never
// exceeds the configured pool size.
func TestPoolRunner_RespectsWorkerLimit(t *testing.T) {
	const limit = 3
	var active, peak atomic.Int32

	err := PoolRunner{Workers: limit}.Run(context.Background(), 50, func(_ context.Context, _ int) error {
		cur := active.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		active.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(limit))
}

// TestPoolRunner_FirstErrorCancelsRest verifies error propagation and that
// pending jobs observe the cancelled group context.
func TestPoolRunner_FirstErrorCancelsRest(t *testing.T) {
	boom := errors.New("boom")

	err := PoolRunner{Workers: 1}.Run(context.Background(), 50, func(ctx context.Context, i int) error {
		if i == 0 {
			return boom
		}
		return ctx.Err()
	})
	assert.ErrorIs(t, err, boom)
}

// TestPoolRunner_DefaultWorkers verifies that a zero pool size still runs.
func TestPoolRunner_DefaultWorkers(t *testing.T) {
	var count atomic.Int32
	err := PoolRunner{}.Run(context.Background(), 10, func(_ context.Context, _ int) error {
		count.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 10, count.Load())
}
