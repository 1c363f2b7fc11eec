package observability

import (
	"chat-relay/contract"
	"runtime"
	"sync"
	"time"
)

var _ contract.RuntimeGauges = (*Monitor)(nil)

// Snapshot aggregates the last telemetry sample served by /stats.
type Snapshot struct {
	Sessions        int       `json:"sessions"`
	Rooms           int       `json:"rooms"`
	PendingCommands int       `json:"pending_commands"`
	CommandCapacity int       `json:"command_capacity"`
	RSSBytes        uint64    `json:"rss_bytes"`
	CPUPercent      float64   `json:"cpu_percent"`
	AllocMemMb      uint64    `json:"alloc_mem_mb"`
	NumGC           uint32    `json:"num_gc"`
	Goroutines      int       `json:"goroutines"`
	SampledAt       time.Time `json:"sampled_at"`
}

// Monitor keeps the latest telemetry sample, safe for concurrent use.
type Monitor struct {
	mu     sync.RWMutex
	latest Snapshot
	now    func() time.Time
}

func NewMonitor() *Monitor {
	return &Monitor{now: time.Now}
}

func (m *Monitor) Relay(sessions, rooms, pendingCommands, commandCapacity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest.Sessions = sessions
	m.latest.Rooms = rooms
	m.latest.PendingCommands = pendingCommands
	m.latest.CommandCapacity = commandCapacity
	m.latest.SampledAt = m.now().UTC()
}

// Process also records the Go runtime memory figures.
func (m *Monitor) Process(rssBytes uint64, cpuPercent float64) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest.RSSBytes = rssBytes
	m.latest.CPUPercent = cpuPercent
	m.latest.AllocMemMb = mem.Alloc / 1024 / 1024
	m.latest.NumGC = mem.NumGC
	m.latest.Goroutines = runtime.NumGoroutine()
	m.latest.SampledAt = m.now().UTC()
}

func (m *Monitor) GetLatest() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}
