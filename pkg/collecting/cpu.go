package collecting

import (
	"context"
	"time"

	"SysMonitor/pkg/metrics"
	"SysMonitor/pkg/system"
)

// CPU reports utilization averaged over a blocking sampling window.
type CPU struct {
	host   system.Host
	window time.Duration
}

func NewCPU(host system.Host, window time.Duration) *CPU {
	return &CPU{host: host, window: window}
}

func (c *CPU) Name() string { return "cpu" }

func (c *CPU) Collect(ctx context.Context, ts int64) ([]metrics.Record, error) {
	v, err := c.host.CPUPercent(ctx, c.window)
	return singleFloat(metrics.CPUUsage, ts, v, err)
}

// Load reports the 1-minute load average.
type Load struct {
	host system.Host
}

func NewLoad(host system.Host) *Load { return &Load{host: host} }

func (c *Load) Name() string { return "load" }

func (c *Load) Collect(ctx context.Context, ts int64) ([]metrics.Record, error) {
	v, err := c.host.LoadAverage(ctx)
	return singleFloat(metrics.LoadAverage, ts, v, err)
}
