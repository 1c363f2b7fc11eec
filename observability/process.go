package observability

import (
	"chat-relay/contract"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/process"
)

var _ contract.ProcessProbe = (*SelfProbe)(nil)

// SelfProbe samples the current process with gopsutil.
type SelfProbe struct {
	proc *process.Process
}

func NewSelfProbe() (*SelfProbe, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("unable to inspect own process: %w", err)
	}
	return &SelfProbe{proc: p}, nil
}

// Sample returns the resident memory and the CPU usage since the process started.
func (p *SelfProbe) Sample() (uint64, float64, error) {
	memInfo, err := p.proc.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.proc.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
