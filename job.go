package quditvis

import "time"

// Job represents work to be done
type Job struct {
	ID        string
	Fn        func() error
	StartTime time.Time

	metrics *Metrics
	result  chan Result
}

// Result is what a worker reports back for a single job.
type Result struct {
	JobID    string
	Error    error
	Duration time.Duration
}

// JobOption is a function type for configuring jobs
type JobOption func(*Job)

// WithMetrics records the job's latency into m as well as the pool's metrics.
func WithMetrics(m *Metrics) JobOption {
	return func(j *Job) {
		j.metrics = m
	}
}
