// Package batch formats many inputs concurrently against a single "now".
package batch

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spiffcs/ago/internal/instant"
	"github.com/spiffcs/ago/internal/log"
	"github.com/spiffcs/ago/internal/reltime"
)

// DefaultWorkers is the concurrency used when none is configured.
const DefaultWorkers = 8

// Result is the outcome of formatting one input.
type Result struct {
	Input       string
	Instant     time.Time
	Description reltime.Description
	Err         error
}

// ProgressFunc is called after each input completes. It may be called
// from several goroutines at once.
type ProgressFunc func(completed, total int)

// Runner formats inputs in parallel.
type Runner struct {
	formatter  *reltime.Formatter
	workers    int
	onProgress ProgressFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the maximum number of concurrent workers.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithProgress sets a callback invoked as inputs complete.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Runner) {
		r.onProgress = fn
	}
}

// NewRunner creates a Runner that formats with f.
func NewRunner(f *reltime.Formatter, opts ...Option) *Runner {
	r := &Runner{
		formatter: f,
		workers:   DefaultWorkers,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run formats every input and returns results in input order. Per-input
// failures are recorded on the Result; only context cancellation fails the run.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]Result, error) {
	now := r.formatter.Now()
	pinned := r.formatter.At(now)
	results := make([]Result, len(inputs))
	total := len(inputs)

	log.Debug("formatting batch", "inputs", total, "workers", r.workers, "now", now)

	var completed int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(pinned, now, input)
			if results[i].Err != nil {
				log.Debug("input rejected", "input", input, "error", results[i].Err)
			}
			r.reportProgress(int(atomic.AddInt32(&completed, 1)), total)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) reportProgress(completed, total int) {
	if r.onProgress != nil {
		r.onProgress(completed, total)
	}
}

func formatOne(f *reltime.Formatter, now time.Time, input string) Result {
	res := Result{Input: input}

	t, err := instant.Parse(input, now)
	if err != nil {
		res.Err = err
		return res
	}
	res.Instant = t

	d, err := f.Describe(t)
	if err != nil {
		res.Err = err
		return res
	}
	res.Description = d
	return res
}
