package collecting

import (
	"context"

	"SysMonitor/pkg/metrics"
	"SysMonitor/pkg/system"
)

type Memory struct {
	host system.Host
}

func NewMemory(host system.Host) *Memory { return &Memory{host: host} }

func (c *Memory) Name() string { return "memory" }

func (c *Memory) Collect(ctx context.Context, ts int64) ([]metrics.Record, error) {
	v, err := c.host.MemoryUsedPercent(ctx)
	return singleFloat(metrics.MemUsage, ts, v, err)
}
