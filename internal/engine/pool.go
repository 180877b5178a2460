package engine

import (
	"context"
	"sync"
)

// forEach runs fn for every index in [0, n) on at most workers goroutines
// and returns when all indices are handled. Indices picked up after ctx is
// done are passed to canceled instead of fn; items already running finish.
func forEach(ctx context.Context, n, workers int, fn func(i int), canceled func(i int)) {
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					canceled(i)
					continue
				}
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
