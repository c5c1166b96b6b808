// Package system exposes the host resource counters the collectors read.
package system

import (
	"context"
	"time"
)

// Partition is a mounted filesystem.
type Partition struct {
	Device     string
	Mountpoint string
	Fstype     string
}

// NetCounters are cumulative interface byte counters since boot.
type NetCounters struct {
	BytesSent uint64
	BytesRecv uint64
}

// Host supplies resource readings on demand.
type Host interface {
	// CPUPercent blocks for window and returns overall utilization.
	CPUPercent(ctx context.Context, window time.Duration) (float64, error)
	LoadAverage(ctx context.Context) (float64, error)
	MemoryUsedPercent(ctx context.Context) (float64, error)
	Partitions(ctx context.Context) ([]Partition, error)
	DiskUsedPercent(ctx context.Context, mountpoint string) (float64, error)
	NetCounters(ctx context.Context) (NetCounters, error)
}
