// Package ensemble runs many independent realizations of the same
// tessellation in parallel and summarizes them.
package ensemble

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/osuushi/stit"
	"github.com/osuushi/stit/advanced"
	"github.com/pkg/errors"
)

type Options struct {
	Runs int
	// Number of goroutines. Zero means one per CPU.
	Workers int
	// Run i is seeded with Seed+i, so an ensemble is reproducible whatever the
	// number of workers.
	Seed uint64
}

// A Realization is one finished run.
type Realization struct {
	ID     string
	Index  int
	Seed   uint64
	Result advanced.Result
}

// Run simulates options.Runs independent tessellations of polygon. Each run
// gets its own PCG source, overriding config.Source. Tracing and warning
// callbacks are dropped since runs execute concurrently; warnings are still
// collected in each Result.
//
// The first failing run cancels the rest and its error is returned. The
// realizations are ordered by index.
func Run(ctx context.Context, polygon advanced.Polygon, config advanced.Config, options Options) ([]Realization, error) {
	if options.Runs <= 0 {
		return nil, errors.Wrapf(advanced.ErrInvalidConfig, "ensemble needs at least one run, got %d", options.Runs)
	}
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > options.Runs {
		workers = options.Runs
	}
	config.Trace = nil
	config.OnWarning = nil

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	var (
		wg           sync.WaitGroup
		mutex        sync.Mutex
		realizations = make([]Realization, 0, options.Runs)
		firstErr     error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				seed := options.Seed + uint64(index)
				runConfig := config
				runConfig.Source = advanced.NewPCGSource(seed)
				result, err := stit.Simulate(polygon, runConfig)

				mutex.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = errors.Wrapf(err, "run %d", index)
					}
					cancel()
				} else {
					realizations = append(realizations, Realization{
						ID:     uuid.New().String(),
						Index:  index,
						Seed:   seed,
						Result: result,
					})
				}
				mutex.Unlock()
			}
		}()
	}

feed:
	for i := 0; i < options.Runs; i++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if len(realizations) < options.Runs {
		return nil, errors.Wrap(ctx.Err(), "ensemble interrupted")
	}
	sort.Slice(realizations, func(i, j int) bool {
		return realizations[i].Index < realizations[j].Index
	})
	return realizations, nil
}
