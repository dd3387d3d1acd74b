package concurrency

import (
	"context"
	"sync"
)

// ParallelOptions configures bounded parallel processing.
type ParallelOptions struct {
	// MaxWorkers caps the number of goroutines processing items.
	MaxWorkers int

	// OnProgress, when set, is invoked after every EveryN completed items
	// (and once more at the end if the total is not a multiple). It runs on
	// the collector goroutine, so implementations need no locking.
	OnProgress func(completed, total int)
	EveryN     int
}

// DefaultOptions returns options suitable for network-bound work.
func DefaultOptions() ParallelOptions {
	return ParallelOptions{
		MaxWorkers: 10,
	}
}

// ProcessParallel runs itemFunc over items with a bounded worker pool.
// Results are returned in input order regardless of completion order; one
// item's error never stops the others. The returned error slice collects
// every per-item error.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan int, len(items))
	results := make(chan struct {
		index  int
		result R
		err    error
	}, len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobIndex := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
					result, err := itemFunc(ctx, jobIndex, items[jobIndex])
					results <- struct {
						index  int
						result R
						err    error
					}{jobIndex, result, err}
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	resultList := make([]R, len(items))
	var errs []error

	completed := 0
	for i := 0; i < len(items); i++ {
		res, ok := <-results
		if !ok {
			// Workers bailed out on context cancellation before draining
			// the queue; remaining slots keep their zero values.
			break
		}
		if res.err != nil {
			errs = append(errs, res.err)
		}
		resultList[res.index] = res.result

		completed++
		if opts.OnProgress != nil && opts.EveryN > 0 && completed%opts.EveryN == 0 {
			opts.OnProgress(completed, len(items))
		}
	}

	if opts.OnProgress != nil && opts.EveryN > 0 && completed%opts.EveryN != 0 {
		opts.OnProgress(completed, len(items))
	}

	return resultList, errs
}

// ForEach runs itemFunc over items in parallel without collecting results.
// Useful when only side effects matter.
func ForEach[T any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) error,
) []error {
	if len(items) == 0 {
		return nil
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan int, len(items))
	errCh := make(chan error, len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobIndex := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
					if err := itemFunc(ctx, jobIndex, items[jobIndex]); err != nil {
						errCh <- err
					}
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(errCh)

	var errList []error
	for err := range errCh {
		errList = append(errList, err)
	}

	return errList
}
