package app

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Event counter names.
const (
	MetricJoins          = "joins"
	MetricRejoins        = "rejoins"
	MetricJoinRejected   = "join_rejected"
	MetricLeaves         = "leaves"
	MetricMuteUpdates    = "mute_updates"
	MetricRoomsCreated   = "rooms_created"
	MetricRoomsEvicted   = "rooms_evicted"
	MetricRelayForwarded = "relay_forwarded"
	MetricRelayDropped   = "relay_dropped"
	MetricSendDropped    = "send_dropped"
)

// Metrics is a minimal, concurrency-safe counter registry.
type Metrics struct {
	mu sync.Mutex
	m  map[string]uint64
}

func NewMetrics() *Metrics {
	return &Metrics{m: make(map[string]uint64)}
}

func (m *Metrics) Inc(name string) {
	m.mu.Lock()
	m.m[name]++
	m.mu.Unlock()
}

func (m *Metrics) Get(name string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.m[name]
}

func (m *Metrics) Snapshot() map[string]uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]uint64, len(m.m))
	for k, v := range m.m {
		out[k] = v
	}
	return out
}

// Handler exposes the counters in Prometheus' text exposition format as a
// single metric with an `event` label.
func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := m.Snapshot()
		keys := make([]string, 0, len(snap))
		for k := range snap {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = fmt.Fprintln(w, "# HELP vc_signaling_events_total Internal event counters.")
		_, _ = fmt.Fprintln(w, "# TYPE vc_signaling_events_total counter")
		for _, k := range keys {
			escaped := strings.NewReplacer("\\", "\\\\", "\"", "\\\"").Replace(k)
			_, _ = fmt.Fprintf(w, "vc_signaling_events_total{event=\"%s\"} %d\n", escaped, snap[k])
		}
	})
}
