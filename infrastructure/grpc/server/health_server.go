package server

import (
	"chat-relay/contract"
	"chat-relay/runtime"
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	// RelayService is the service name reported next to the overall "" status.
	RelayService          = "chat.relay"
	DefaultHealthInterval = 5 * time.Second
)

var _ contract.Worker = (*HealthReporter)(nil)

type StatsSource interface {
	Stats(ctx context.Context) (runtime.Stats, error)
}

// HealthReporter serves grpc.health.v1 and keeps it in line with the
// coordinator: SERVING while it answers queries, NOT_SERVING otherwise.
type HealthReporter struct {
	log      *slog.Logger
	health   *health.Server
	source   StatsSource
	interval time.Duration
	timeout  time.Duration
}

func NewHealthReporter(log *slog.Logger, source StatsSource, interval time.Duration) *HealthReporter {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	h := &HealthReporter{
		log:      log,
		health:   health.NewServer(),
		source:   source,
		interval: interval,
		timeout:  interval / 2,
	}
	h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

func (h *HealthReporter) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Run probes the coordinator every interval until ctx is done.
// On exit every status turns NOT_SERVING and watchers are notified.
func (h *HealthReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return nil
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

func (h *HealthReporter) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if _, err := h.source.Stats(ctx); err != nil {
		h.log.Warn("Relay not answering", "error", err)
		h.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.set(healthpb.HealthCheckResponse_SERVING)
}

func (h *HealthReporter) set(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(RelayService, status)
}
