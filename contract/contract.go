//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// RelayMetrics receives the coordinator's delivery accounting.
// Implementations must be cheap: they are called from the coordinator goroutine.
type RelayMetrics interface {
	Enqueued(kind domain.Kind)
	Dropped(kind domain.Kind)
	RoutingMiss(kind domain.Kind, reason string)
	Population(sessions, rooms int)
}

// RuntimeGauges receives the periodic telemetry samples.
type RuntimeGauges interface {
	Relay(sessions, rooms, pendingCommands, commandCapacity int)
	Process(rssBytes uint64, cpuPercent float64)
}

// ProcessProbe samples the relay process resources for telemetry.
type ProcessProbe interface {
	Sample() (rssBytes uint64, cpuPercent float64, err error)
}

// ConnectionMetrics receives the connection adapter's accounting.
type ConnectionMetrics interface {
	ConnectionAccepted()
	FrameDropped(reason string)
}
