package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_IncAndSnapshot(t *testing.T) {
	m := NewMetrics()
	assert.Equal(t, uint64(0), m.Get(MetricJoins))

	m.Inc(MetricJoins)
	m.Inc(MetricJoins)
	m.Inc(MetricRelayDropped)

	assert.Equal(t, uint64(2), m.Get(MetricJoins))

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap[MetricJoins])
	assert.Equal(t, uint64(1), snap[MetricRelayDropped])

	// Snapshot is a copy.
	snap[MetricJoins] = 99
	assert.Equal(t, uint64(2), m.Get(MetricJoins))
}

func TestMetrics_PrometheusExposition(t *testing.T) {
	m := NewMetrics()
	m.Inc(MetricRoomsCreated)
	m.Inc(MetricRoomsCreated)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	body := rec.Body.String()
	assert.Contains(t, body, "# TYPE vc_signaling_events_total counter")
	assert.Contains(t, body, `vc_signaling_events_total{event="rooms_created"} 2`)
}
