package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompletesAllItems(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	var calls int64
	results := Run(context.Background(), items, 8, func(ctx context.Context, item int) error {
		atomic.AddInt64(&calls, 1)
		return nil
	})

	assert.Equal(t, int64(50), calls)
	require.Len(t, results, 50)
	assert.Equal(t, 0, results.Failures())

	seen := make(map[int]bool)
	for _, r := range results {
		seen[r.Item] = true
	}
	assert.Len(t, seen, 50)
}

func TestRunEmptyBatchReturnsImmediately(t *testing.T) {
	results := Run(context.Background(), nil, 4, func(ctx context.Context, item string) error {
		t.Fatal("fn must not be called for an empty batch")
		return nil
	})
	assert.Nil(t, results)
	assert.Equal(t, 0, results.Failures())
}

func TestRunCollectsFailuresWithoutStopping(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	boom := errors.New("boom")

	results := Run(context.Background(), items, 2, func(ctx context.Context, item string) error {
		if item == "b" || item == "d" {
			return boom
		}
		return nil
	})

	require.Len(t, results, 4)
	assert.Equal(t, 2, results.Failures())
	for _, r := range results {
		if r.Item == "b" || r.Item == "d" {
			assert.ErrorIs(t, r.Err, boom)
		} else {
			assert.NoError(t, r.Err)
		}
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	var mu sync.Mutex
	var active, peak int

	items := make([]int, 30)
	results := Run(context.Background(), items, 3, func(ctx context.Context, item int) error {
		mu.Lock()
		active++
		if active > peak {
			peak = active
		}
		mu.Unlock()

		mu.Lock()
		active--
		mu.Unlock()
		return nil
	})

	require.Len(t, results, 30)
	assert.LessOrEqual(t, peak, 3)
}

func TestRunSingleWorkerFloor(t *testing.T) {
	// workers below one degrade to sequential dispatch, not a deadlock
	results := Run(context.Background(), []int{1, 2, 3}, 0, func(ctx context.Context, item int) error {
		return fmt.Errorf("item %d", item)
	})
	require.Len(t, results, 3)
	assert.Equal(t, 3, results.Failures())
}
