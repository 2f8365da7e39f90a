package quditvis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Q is a fixed-size worker pool. It is owned by a Renderer, so concurrent
renderers never share workers or queues.
*/
type Q struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	jobs    chan Job
	metrics *Metrics
}

// NewQ creates a pool with the given number of workers (at least one).
func NewQ(ctx context.Context, workers int) *Q {
	if workers < 1 {
		workers = 1
	}

	errnie.Info("NewQ - workers %d", workers)

	ctx, cancel := context.WithCancel(ctx)
	q := &Q{
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(chan Job, workers*10),
		metrics: NewMetrics(),
	}

	for i := 0; i < workers; i++ {
		q.startWorker(i)
	}

	return q
}

func (q *Q) startWorker(id int) {
	w := &Worker{pool: q, id: id}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		w.start(q.ctx)
	}()
}

// Schedule queues fn and returns a channel that receives exactly one Result,
// unless the pool is closed first.
func (q *Q) Schedule(id string, fn func() error, opts ...JobOption) <-chan Result {
	job := Job{
		ID:        id,
		Fn:        fn,
		StartTime: time.Now(),
		result:    make(chan Result, 1),
	}
	for _, opt := range opts {
		opt(&job)
	}

	select {
	case q.jobs <- job:
	case <-q.ctx.Done():
		job.result <- Result{JobID: id, Error: ErrPoolClosed}
	}

	return job.result
}

/*
ForEach runs fn(0) through fn(n-1) on the pool and waits for all of
them. The first error wins; once ctx is done the remaining results are
abandoned.
*/
func (q *Q) ForEach(ctx context.Context, n int, fn func(i int) error, opts ...JobOption) error {
	results := make([]<-chan Result, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[i] = q.Schedule(fmt.Sprintf("row-%d", i), func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		}, opts...)
	}

	for _, ch := range results {
		select {
		case res := <-ch:
			if res.Error != nil {
				return fmt.Errorf("job %s: %w", res.JobID, res.Error)
			}
		case <-ctx.Done():
			return ctx.Err()
		case <-q.ctx.Done():
			return ErrPoolClosed
		}
	}

	return nil
}

func (q *Q) Metrics() Stats {
	return q.metrics.Snapshot()
}

// Close stops the workers and waits for them to exit.
func (q *Q) Close() {
	q.cancel()
	q.wg.Wait()
}
