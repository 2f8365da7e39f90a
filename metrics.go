package quditvis

import (
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Metrics collects job latencies for a pool or for a single render.
type Metrics struct {
	mu           sync.RWMutex
	JobCount     int64
	FailedJobs   int64
	TotalJobTime time.Duration

	// last windowSize latencies, oldest first
	latencies  []time.Duration
	windowSize int
}

// Stats is an immutable copy of Metrics plus the timings of one render.
type Stats struct {
	Samples           int
	JobCount          int64
	FailedJobs        int64
	AverageJobLatency time.Duration
	P95JobLatency     time.Duration
	P99JobLatency     time.Duration

	FieldTime   time.Duration
	ComposeTime time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{
		latencies:  make([]time.Duration, 0, 1000),
		windowSize: 1000,
	}
}

func (m *Metrics) recordJobExecution(startTime time.Time, success bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalJobTime += duration
	m.JobCount++
	if !success {
		m.FailedJobs++
	}

	m.latencies = append(m.latencies, duration)
	if len(m.latencies) > m.windowSize {
		m.latencies = m.latencies[1:]
	}
}

// Snapshot computes averages and percentiles over the latency window.
func (m *Metrics) Snapshot() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Stats{
		JobCount:   m.JobCount,
		FailedJobs: m.FailedJobs,
	}
	if m.JobCount == 0 {
		return s
	}

	s.AverageJobLatency = m.TotalJobTime / time.Duration(m.JobCount)

	sorted := make([]float64, len(m.latencies))
	for i, d := range m.latencies {
		sorted[i] = float64(d)
	}
	sort.Float64s(sorted)

	s.P95JobLatency = time.Duration(stat.Quantile(0.95, stat.Empirical, sorted, nil))
	s.P99JobLatency = time.Duration(stat.Quantile(0.99, stat.Empirical, sorted, nil))

	return s
}
