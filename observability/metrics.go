package observability

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "relay"

var (
	_ contract.RelayMetrics  = (*Metrics)(nil)
	_ contract.RuntimeGauges = (*Metrics)(nil)
)

// Metrics exposes the relay traffic as Prometheus collectors.
type Metrics struct {
	enqueued      *prometheus.CounterVec
	dropped       *prometheus.CounterVec
	routingMisses *prometheus.CounterVec
	sessions      prometheus.Gauge
	rooms         prometheus.Gauge
	pendingCmds   prometheus.Gauge
	commandCap    prometheus.Gauge
	processRSS    prometheus.Gauge
	processCPU    prometheus.Gauge
	wsConnections prometheus.Counter
	droppedFrames *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		enqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_enqueued_total",
			Help:      "Messages pushed onto an outbox, by kind.",
		}, []string{"kind"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_dropped_total",
			Help:      "Messages lost because an outbox was full, by kind of the incoming message.",
		}, []string{"kind"}),
		routingMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "routing_misses_total",
			Help:      "Messages that reached no recipient.",
		}, []string{"kind", "reason"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Registered sessions.",
		}),
		rooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms",
			Help:      "Rooms with at least one member.",
		}),
		pendingCmds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_commands",
			Help:      "Commands waiting in the coordinator queue.",
		}),
		commandCap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "command_capacity",
			Help:      "Size of the coordinator queue.",
		}),
		processRSS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Resident memory of the relay process.",
		}),
		processCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_percent",
			Help:      "CPU usage of the relay process.",
		}),
		wsConnections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_connections_total",
			Help:      "Accepted WebSocket connections.",
		}),
		droppedFrames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_frames_dropped_total",
			Help:      "Inbound frames discarded by the connection adapter.",
		}, []string{"reason"}),
	}
	reg.MustRegister(
		m.enqueued, m.dropped, m.routingMisses,
		m.sessions, m.rooms, m.pendingCmds, m.commandCap,
		m.processRSS, m.processCPU,
		m.wsConnections, m.droppedFrames,
	)
	return m
}

func (m *Metrics) Enqueued(kind domain.Kind) {
	m.enqueued.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) Dropped(kind domain.Kind) {
	m.dropped.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) RoutingMiss(kind domain.Kind, reason string) {
	m.routingMisses.WithLabelValues(string(kind), reason).Inc()
}

func (m *Metrics) Population(sessions, rooms int) {
	m.sessions.Set(float64(sessions))
	m.rooms.Set(float64(rooms))
}

func (m *Metrics) Relay(sessions, rooms, pendingCommands, commandCapacity int) {
	m.Population(sessions, rooms)
	m.pendingCmds.Set(float64(pendingCommands))
	m.commandCap.Set(float64(commandCapacity))
}

func (m *Metrics) Process(rssBytes uint64, cpuPercent float64) {
	m.processRSS.Set(float64(rssBytes))
	m.processCPU.Set(cpuPercent)
}

func (m *Metrics) ConnectionAccepted() {
	m.wsConnections.Inc()
}

func (m *Metrics) FrameDropped(reason string) {
	m.droppedFrames.WithLabelValues(reason).Inc()
}

// Handler exposes the gathered metrics at /metrics.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
