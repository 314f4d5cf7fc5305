// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Gather runs a worker pool over the provided work items, invoking process
// for each and collecting every result. Results are returned in completion
// order, not submission order. Every item is processed exactly once unless
// the context is canceled, in which case unstarted items are skipped.
func Gather[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) R,
) []R {
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}
	if workerCount == 0 {
		return nil
	}

	tasks := make(chan T, workerCount)
	results := make(chan R, len(items))
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					results <- process(ctx, item)
				}
			}
		}()
	}

	go func() {
		for _, item := range items {
			select {
			case <-ctx.Done():
				close(tasks)
				return
			case tasks <- item:
			}
		}
		close(tasks)
	}()

	wg.Wait()
	close(results)

	gathered := make([]R, 0, len(items))
	for r := range results {
		gathered = append(gathered, r)
	}
	return gathered
}
