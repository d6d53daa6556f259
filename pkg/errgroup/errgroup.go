// Package errgroup provides a bounded fan-out group that, unlike
// x/sync/errgroup, never cancels siblings on failure: every task runs to
// completion and reports its own result, which the caller reduces after the
// join. Batch file operations need the full per-item picture, not the first
// error.
package errgroup

import (
	"context"
	"sync"

	"github.com/avast/retry-go"
)

type token struct{}

// Result is the outcome of a single task.
type Result[R any] struct {
	Value R
	Err   error
}

type Group[R any] struct {
	ctx  context.Context
	opts []retry.Option

	wg  sync.WaitGroup
	sem chan token

	results []Result[R]
}

// NewGroupWithContext creates a group joining n tasks, running at most limit
// of them concurrently (limit <= 0 means unbounded). Retry options apply to
// every task.
func NewGroupWithContext[R any](ctx context.Context, n, limit int, retryOpts ...retry.Option) *Group[R] {
	g := &Group[R]{
		ctx:     ctx,
		opts:    append(retryOpts, retry.Context(ctx)),
		results: make([]Result[R], n),
	}
	if limit > 0 {
		g.sem = make(chan token, limit)
	}
	return g
}

// Go schedules task i. Each index must be used at most once; results keep
// the caller's order regardless of completion order.
func (g *Group[R]) Go(i int, do func(ctx context.Context) (R, error)) {
	if g.sem != nil {
		select {
		case <-g.ctx.Done():
			g.results[i] = Result[R]{Err: context.Cause(g.ctx)}
			return
		case g.sem <- token{}:
		}
	}

	g.wg.Add(1)
	go func() {
		defer g.done()
		var value R
		err := retry.Do(func() error {
			var derr error
			value, derr = do(g.ctx)
			return derr
		}, g.opts...)
		g.results[i] = Result[R]{Value: value, Err: err}
	}()
}

func (g *Group[R]) done() {
	if g.sem != nil {
		<-g.sem
	}
	g.wg.Done()
}

// Wait blocks until every scheduled task has finished and returns the
// ordered results.
func (g *Group[R]) Wait() []Result[R] {
	g.wg.Wait()
	return g.results
}
