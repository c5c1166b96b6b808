package system

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// ErrNoData is returned when a counter call succeeds but yields nothing.
var ErrNoData = errors.New("no data")

var _ Host = (*GopsutilHost)(nil)

// GopsutilHost reads counters through gopsutil.
type GopsutilHost struct{}

func NewGopsutilHost() *GopsutilHost { return &GopsutilHost{} }

func (h *GopsutilHost) CPUPercent(ctx context.Context, window time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, fmt.Errorf("cpu percent: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("cpu percent: %w", ErrNoData)
	}
	return percents[0], nil
}

func (h *GopsutilHost) LoadAverage(ctx context.Context) (float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("load average: %w", err)
	}
	return avg.Load1, nil
}

func (h *GopsutilHost) MemoryUsedPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("virtual memory: %w", err)
	}
	return vm.UsedPercent, nil
}

// Partitions lists physical mounts only, matching psutil's all=False.
func (h *GopsutilHost) Partitions(ctx context.Context) ([]Partition, error) {
	stats, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("disk partitions: %w", err)
	}
	parts := make([]Partition, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, Partition{
			Device:     s.Device,
			Mountpoint: s.Mountpoint,
			Fstype:     s.Fstype,
		})
	}
	return parts, nil
}

// DiskUsedPercent reports usage the way df does, so blocks reserved for root
// do not count as free.
func (h *GopsutilHost) DiskUsedPercent(ctx context.Context, mountpoint string) (float64, error) {
	usage, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		return 0, fmt.Errorf("disk usage %s: %w", mountpoint, err)
	}
	if usage.Total == 0 {
		return 0, fmt.Errorf("disk usage %s: %w", mountpoint, ErrNoData)
	}
	return usage.UsedPercent, nil
}

func (h *GopsutilHost) NetCounters(ctx context.Context) (NetCounters, error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return NetCounters{}, fmt.Errorf("net io counters: %w", err)
	}
	if len(counters) == 0 {
		return NetCounters{}, fmt.Errorf("net io counters: %w", ErrNoData)
	}
	return NetCounters{
		BytesSent: counters[0].BytesSent,
		BytesRecv: counters[0].BytesRecv,
	}, nil
}
