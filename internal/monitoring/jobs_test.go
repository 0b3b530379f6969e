package monitoring

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatusManager_RecordSuccess(t *testing.T) {
	m := NewJobStatusManager()
	m.MustRegister(prometheus.NewRegistry())

	started := time.Now().Add(-2 * time.Second)
	m.RecordSuccess("listening_refresh", started)

	snapshot := m.Snapshot()
	require.Contains(t, snapshot, "listening_refresh")

	st := snapshot["listening_refresh"]
	assert.True(t, st.Healthy)
	assert.Empty(t, st.LastError)
	assert.InDelta(t, 2.0, st.LastDuration, 0.5)
}

func TestJobStatusManager_FailureKeepsLastSuccess(t *testing.T) {
	m := NewJobStatusManager()

	m.RecordSuccess("listening_refresh", time.Now())
	lastSuccess := m.Snapshot()["listening_refresh"].LastSuccess

	m.RecordFailure("listening_refresh", time.Now(), errors.New("lastfm unreachable"))

	st := m.Snapshot()["listening_refresh"]
	assert.False(t, st.Healthy)
	assert.Equal(t, "lastfm unreachable", st.LastError)
	assert.Equal(t, lastSuccess, st.LastSuccess)
}

func TestJobStatusManager_SnapshotIsACopy(t *testing.T) {
	m := NewJobStatusManager()
	m.RecordSuccess("a", time.Now())

	snapshot := m.Snapshot()
	snapshot["a"] = JobStatus{Healthy: false}

	assert.True(t, m.Snapshot()["a"].Healthy)
}
