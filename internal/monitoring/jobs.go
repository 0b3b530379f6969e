package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobStatus is the last observed state of one background job.
type JobStatus struct {
	LastRun      time.Time `json:"last_run"`
	LastSuccess  time.Time `json:"last_success"`
	LastDuration float64   `json:"last_duration_seconds"`
	LastError    string    `json:"last_error,omitempty"`
	Healthy      bool      `json:"healthy"`
}

// JobStatusManager tracks background job outcomes for the /healthz/jobs
// endpoint and exports them as metrics.
type JobStatusManager struct {
	mu     sync.RWMutex
	status map[string]JobStatus

	jobRuns     *prometheus.CounterVec
	jobDuration *prometheus.HistogramVec
}

func NewJobStatusManager() *JobStatusManager {
	return &JobStatusManager{
		status: make(map[string]JobStatus),
		jobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "broadcastr_background_job_runs_total",
				Help: "Total background job runs by outcome",
			},
			[]string{"job", "status"},
		),
		jobDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "broadcastr_background_job_duration_seconds",
				Help:    "Duration of background job runs in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 600},
			},
			[]string{"job"},
		),
	}
}

// MustRegister registers job metrics with the provided registry
func (m *JobStatusManager) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(m.jobRuns, m.jobDuration)
}

func (m *JobStatusManager) RecordSuccess(job string, started time.Time) {
	duration := time.Since(started)
	m.jobRuns.WithLabelValues(job, "success").Inc()
	m.jobDuration.WithLabelValues(job).Observe(duration.Seconds())

	m.mu.Lock()
	m.status[job] = JobStatus{
		LastRun:      started,
		LastSuccess:  time.Now(),
		LastDuration: duration.Seconds(),
		Healthy:      true,
	}
	m.mu.Unlock()
}

func (m *JobStatusManager) RecordFailure(job string, started time.Time, err error) {
	duration := time.Since(started)
	m.jobRuns.WithLabelValues(job, "failure").Inc()
	m.jobDuration.WithLabelValues(job).Observe(duration.Seconds())

	m.mu.Lock()
	prev := m.status[job]
	m.status[job] = JobStatus{
		LastRun:      started,
		LastSuccess:  prev.LastSuccess,
		LastDuration: duration.Seconds(),
		LastError:    err.Error(),
		Healthy:      false,
	}
	m.mu.Unlock()
}

// Snapshot returns a copy of every tracked job's status.
func (m *JobStatusManager) Snapshot() map[string]JobStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]JobStatus, len(m.status))
	for name, st := range m.status {
		out[name] = st
	}
	return out
}
