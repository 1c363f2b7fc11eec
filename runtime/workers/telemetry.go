package workers

import (
	"chat-relay/contract"
	"chat-relay/runtime"
	"context"
	"log/slog"
	"time"
)

const DefaultMetricInterval = 5 * time.Second

// StatsSource is the read side of the coordinator used for sampling.
type StatsSource interface {
	Stats(ctx context.Context) (runtime.Stats, error)
}

// TelemetryWorker periodically samples the coordinator and the process,
// and hands the figures to every gauge.
// Sampling goes through the coordinator queue, so a saturated queue delays
// the sample instead of reading state concurrently.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	source         StatsSource
	probe          contract.ProcessProbe
	gauges         []contract.RuntimeGauges
}

func NewTelemetryWorker(log *slog.Logger,
	metricInterval time.Duration,
	source StatsSource,
	probe contract.ProcessProbe,
	gauges ...contract.RuntimeGauges) *TelemetryWorker {
	if metricInterval <= 0 {
		metricInterval = DefaultMetricInterval
	}
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		source:         source,
		probe:          probe,
		gauges:         gauges,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

func (w *TelemetryWorker) sample(ctx context.Context) {
	sampleCtx, cancel := context.WithTimeout(ctx, w.metricInterval)
	defer cancel()

	stats, err := w.source.Stats(sampleCtx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Warn("Coordinator did not answer the telemetry probe", "error", err)
		}
	} else {
		for _, g := range w.gauges {
			g.Relay(stats.Sessions, stats.Rooms, stats.Pending, stats.Capacity)
		}
	}

	if w.probe == nil {
		return
	}
	rss, cpu, err := w.probe.Sample()
	if err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
		return
	}
	for _, g := range w.gauges {
		g.Process(rss, cpu)
	}
	w.log.Debug("Telemetry sampled",
		"sessions", stats.Sessions,
		"rooms", stats.Rooms,
		"pending_commands", stats.Pending,
		"rss_bytes", rss,
		"cpu_percent", cpu,
	)
}
