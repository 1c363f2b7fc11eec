package workers

import (
	"chat-relay/mocks"
	"chat-relay/runtime"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTelemetryWorker_samples_coordinator_and_process(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)

	// Given a running coordinator with one session
	coord := runtime.NewCoordinator(log, 8, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = coord.Run(ctx) }()
	req.NoError(coord.Dispatch(ctx, runtime.RegisterSession{User: "alice", Outbox: runtime.NewOutbox("alice", 1)}))

	probe := mocks.NewMockProcessProbe(ctrl)
	probe.EXPECT().Sample().Return(uint64(4096), 1.5, nil).MinTimes(1)

	sampled := make(chan struct{})
	gauges := mocks.NewMockRuntimeGauges(ctrl)
	gauges.EXPECT().Relay(1, 0, gomock.Any(), 8).MinTimes(1)
	gauges.EXPECT().Process(uint64(4096), 1.5).Do(func(uint64, float64) {
		select {
		case sampled <- struct{}{}:
		default:
		}
	}).MinTimes(1)

	// When the worker ticks
	w := NewTelemetryWorker(log, 10*time.Millisecond, coord, probe, gauges)
	workerCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- w.Run(workerCtx) }()

	// Then both the relay and process gauges were fed
	select {
	case <-sampled:
	case <-time.After(time.Second):
		req.Fail("no telemetry sample")
	}
	stop()
	req.NoError(<-done)
}
