package collecting

import (
	"context"
	"errors"
	"time"

	"SysMonitor/pkg/probing"
	"SysMonitor/pkg/system"
)

var errNotSupported = errors.New("not supported on this platform")

type fakeHost struct {
	cpu, load, mem   float64
	cpuErr, loadErr  error
	memErr, partsErr error
	netErr           error
	parts            []system.Partition
	usage            map[string]float64
	usageErr         map[string]error
	net              system.NetCounters
	window           time.Duration
	usageCalls       []string
}

func (h *fakeHost) CPUPercent(_ context.Context, window time.Duration) (float64, error) {
	h.window = window
	return h.cpu, h.cpuErr
}

func (h *fakeHost) LoadAverage(context.Context) (float64, error) { return h.load, h.loadErr }

func (h *fakeHost) MemoryUsedPercent(context.Context) (float64, error) { return h.mem, h.memErr }

func (h *fakeHost) Partitions(context.Context) ([]system.Partition, error) {
	return h.parts, h.partsErr
}

func (h *fakeHost) DiskUsedPercent(_ context.Context, mountpoint string) (float64, error) {
	h.usageCalls = append(h.usageCalls, mountpoint)
	if err := h.usageErr[mountpoint]; err != nil {
		return 0, err
	}
	return h.usage[mountpoint], nil
}

func (h *fakeHost) NetCounters(context.Context) (system.NetCounters, error) {
	return h.net, h.netErr
}

type fakeTCP struct {
	name   string
	counts []probing.StateCount
	err    error
	calls  int
}

func (s *fakeTCP) Name() string { return s.name }

func (s *fakeTCP) StateCounts(context.Context) ([]probing.StateCount, error) {
	s.calls++
	return s.counts, s.err
}

type fakeRunner struct {
	out string
	err error
}

func (r fakeRunner) Run(context.Context, string) (string, error) { return r.out, r.err }
