package collecting

import (
	"context"

	"SysMonitor/pkg/metrics"
	"SysMonitor/pkg/system"
)

// Network reports cumulative bytes sent and received since boot.
type Network struct {
	host system.Host
}

func NewNetwork(host system.Host) *Network { return &Network{host: host} }

func (c *Network) Name() string { return "network" }

func (c *Network) Collect(ctx context.Context, ts int64) ([]metrics.Record, error) {
	n, err := c.host.NetCounters(ctx)
	if err != nil {
		return nil, err
	}
	return []metrics.Record{
		metrics.NewRecord(metrics.NetBytesSent, nil, ts, metrics.Uint(n.BytesSent)),
		metrics.NewRecord(metrics.NetBytesRecv, nil, ts, metrics.Uint(n.BytesRecv)),
	}, nil
}
