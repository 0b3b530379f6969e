package health

import "github.com/broadcastr/broadcastr-backend/internal/monitoring"

type BasicHealthResponse struct {
	Message string `json:"message"`
}

type CheckResponse struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type JobsResponse struct {
	Jobs map[string]monitoring.JobStatus `json:"jobs"`
}
