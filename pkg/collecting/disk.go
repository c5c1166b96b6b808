package collecting

import (
	"context"

	"SysMonitor/pkg/metrics"
	"SysMonitor/pkg/system"

	"go.uber.org/zap"
)

// Disk reports used percent for every real partition. A partition whose usage
// cannot be read is skipped without failing the others.
type Disk struct {
	host     system.Host
	excluded func(device, fstype string) bool
	logger   *zap.Logger
}

func NewDisk(host system.Host, excluded func(device, fstype string) bool, logger *zap.Logger) *Disk {
	if excluded == nil {
		excluded = func(string, string) bool { return false }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Disk{host: host, excluded: excluded, logger: logger}
}

func (c *Disk) Name() string { return "disk" }

func (c *Disk) Collect(ctx context.Context, ts int64) ([]metrics.Record, error) {
	parts, err := c.host.Partitions(ctx)
	if err != nil {
		return nil, err
	}

	var records []metrics.Record
	for _, p := range parts {
		if c.excluded(p.Device, p.Fstype) {
			continue
		}

		pct, err := c.host.DiskUsedPercent(ctx, p.Mountpoint)
		if err == nil {
			var r metrics.Record
			r, err = floatRecord(metrics.DiskUsage, metrics.Tags{metrics.TagDevice: p.Device}, ts, pct)
			if err == nil {
				records = append(records, r)
				continue
			}
		}
		c.logger.Debug("skipping partition",
			zap.String("device", p.Device),
			zap.String("mountpoint", p.Mountpoint),
			zap.Error(err))
	}
	return records, nil
}
