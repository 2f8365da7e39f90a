package quditvis

import (
	"context"
	"fmt"
	"time"
)

// Worker processes jobs
type Worker struct {
	pool *Q
	id   int
}

func (w *Worker) start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-w.pool.jobs:
			job.result <- w.processJob(job)
		}
	}
}

func (w *Worker) processJob(job Job) (res Result) {
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			res.Error = fmt.Errorf("worker %d: job %s panicked: %v", w.id, job.ID, r)
		}
		res.JobID = job.ID
		res.Duration = time.Since(started)

		w.pool.metrics.recordJobExecution(job.StartTime, res.Error == nil)
		if job.metrics != nil {
			job.metrics.recordJobExecution(job.StartTime, res.Error == nil)
		}
	}()

	return Result{Error: job.Fn()}
}
