package observability

import (
	"chat-relay/domain"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_counters(t *testing.T) {
	req := require.New(t)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	// When the coordinator reports traffic
	m.Enqueued(domain.KindText)
	m.Enqueued(domain.KindText)
	m.Dropped(domain.KindText)
	m.RoutingMiss(domain.KindPrivate, "absent_recipient")
	m.Population(3, 2)
	m.Relay(3, 2, 5, 1024)
	m.Process(1<<20, 12.5)
	m.ConnectionAccepted()
	m.FrameDropped("invalid_frame")

	// Then collectors reflect it
	req.Equal(2.0, testutil.ToFloat64(m.enqueued.WithLabelValues("text")))
	req.Equal(1.0, testutil.ToFloat64(m.dropped.WithLabelValues("text")))
	req.Equal(1.0, testutil.ToFloat64(m.routingMisses.WithLabelValues("private", "absent_recipient")))
	req.Equal(3.0, testutil.ToFloat64(m.sessions))
	req.Equal(2.0, testutil.ToFloat64(m.rooms))
	req.Equal(5.0, testutil.ToFloat64(m.pendingCmds))
	req.Equal(float64(1<<20), testutil.ToFloat64(m.processRSS))
	req.Equal(1.0, testutil.ToFloat64(m.wsConnections))
	req.Equal(1.0, testutil.ToFloat64(m.droppedFrames.WithLabelValues("invalid_frame")))
}

func TestHandler_exposes_relay_metrics(t *testing.T) {
	req := require.New(t)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.RoutingMiss(domain.KindText, "no_recipient")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	req.NoError(err)
	req.Equal(200, rec.Code)
	req.Contains(string(body), `relay_routing_misses_total{kind="text",reason="no_recipient"} 1`)
}

func TestMonitor_GetLatest(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := NewMonitor()
	m.now = func() time.Time { return at }

	m.Relay(4, 2, 1, 1024)
	m.Process(2048, 3.5)

	snap := m.GetLatest()
	req.Equal(4, snap.Sessions)
	req.Equal(2, snap.Rooms)
	req.Equal(1, snap.PendingCommands)
	req.Equal(1024, snap.CommandCapacity)
	req.Equal(uint64(2048), snap.RSSBytes)
	req.Equal(3.5, snap.CPUPercent)
	req.Positive(snap.Goroutines)
	req.Equal(at, snap.SampledAt)
}

func TestSelfProbe_Sample(t *testing.T) {
	req := require.New(t)
	probe, err := NewSelfProbe()
	req.NoError(err)

	rss, cpu, err := probe.Sample()
	req.NoError(err)
	req.Positive(rss)
	req.GreaterOrEqual(cpu, 0.0)
}
