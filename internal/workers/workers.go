// Package workers provides the execution strategies for batch jobs.
// A Runner executes n independent, index-addressed jobs and reports the
// first failure; implementations decide whether jobs run on the calling
// goroutine or on a bounded pool.
package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job processes the batch element at index i. Implementations must be
// safe for concurrent invocation with distinct indices.
type Job func(ctx context.Context, i int) error

// Runner executes a batch of independent jobs. Results are written by the
// jobs themselves into index-addressed slots, so any Runner preserves the
// caller's input order regardless of scheduling.
type Runner interface {
	Run(ctx context.Context, n int, job Job) error
}

// SerialRunner executes every job on the calling goroutine. It is the
// dispatch strategy for small batches and for tests.
type SerialRunner struct{}

// Run implements [Runner]. It stops at the first job error or when ctx
// is cancelled.
func (SerialRunner) Run(ctx context.Context, n int, job Job) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := job(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// PoolRunner fans jobs out to at most Workers goroutines, keeping large
// batches off the caller's goroutine.
type PoolRunner struct {
	Workers int
}

// Run implements [Runner]. The first job error cancels the remaining
// jobs; Run returns after all started jobs have finished.
func (p PoolRunner) Run(ctx context.Context, n int, job Job) error {
	workers := p.Workers
	if workers <= 0 {
		workers = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return job(gctx, i)
		})
	}
	return g.Wait()
}
