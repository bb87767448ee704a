package emwave

import (
	"context"
	"runtime"
	"sync"
)

// parallelFor runs fn(i) for i in [0, n) on up to NumCPU workers, each taking a
// contiguous block. The first error wins and stops the remaining work.
func parallelFor(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	per, rem := n/workers, n%workers
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	from := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for i := from; i < to; i++ {
				if err := ctx.Err(); err != nil {
					errCh <- err
					return
				}
				if err := fn(i); err != nil {
					errCh <- err
					cancel()
					return
				}
			}
		}(from, from+count)
		from += count
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// Frames evaluates every frame of the animation in parallel.
func (a *Animation) Frames(ctx context.Context) ([]*Frame, error) {
	n := a.FrameCount()
	frames := make([]*Frame, n)
	DebugLogOnce("Evaluating %d frames on %d CPUs", n, runtime.NumCPU())
	err := parallelFor(ctx, n, func(i int) error {
		f, err := a.Frame(i)
		if err != nil {
			return err
		}
		frames[i] = f
		framesEvaluated.Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return frames, nil
}
