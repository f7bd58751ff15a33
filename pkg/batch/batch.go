// Package batch is the join primitive for fan-out stages: N independent
// same-shape commands whose completions must all be observed before the
// workflow advances. The total is fixed before any dispatch begins, the
// join fires exactly once, and a zero-size batch completes immediately.
package batch

import (
	"context"
	"sync"
)

// Result pairs an input item with its outcome.
type Result[T any] struct {
	Item T
	Err  error
}

type Results[T any] []Result[T]

func (rs Results[T]) Failures() int {
	n := 0
	for _, r := range rs {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Run dispatches fn over every item through a bounded worker pool and
// returns only after exactly len(items) completions. No ordering is
// guaranteed between items; per-item failures are collected, never
// propagated early.
func Run[T any](ctx context.Context, items []T, workers int, fn func(ctx context.Context, item T) error) Results[T] {
	total := len(items)
	if total == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	itemChan := make(chan T, total)
	resultChan := make(chan Result[T], total)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range itemChan {
				resultChan <- Result[T]{Item: item, Err: fn(ctx, item)}
			}
		}()
	}

	for _, item := range items {
		itemChan <- item
	}
	close(itemChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make(Results[T], 0, total)
	for r := range resultChan {
		results = append(results, r)
	}
	return results
}
