package collecting

import (
	"context"
	"fmt"

	"SysMonitor/pkg/metrics"
	"SysMonitor/pkg/probing"

	"go.uber.org/zap"
)

// TCPSource counts TCP connections by state.
type TCPSource interface {
	Name() string
	StateCounts(ctx context.Context) ([]probing.StateCount, error)
}

// TCP reports connection counts per state. Sources are tried in order and
// the first one that succeeds wins.
type TCP struct {
	sources []TCPSource
	logger  *zap.Logger
}

func NewTCP(logger *zap.Logger, sources ...TCPSource) *TCP {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TCP{sources: sources, logger: logger}
}

func (c *TCP) Name() string { return "tcp" }

func (c *TCP) Collect(ctx context.Context, ts int64) ([]metrics.Record, error) {
	if len(c.sources) == 0 {
		return nil, fmt.Errorf("tcp: %w: no sources configured", ErrUnavailable)
	}

	var lastErr error
	for _, src := range c.sources {
		counts, err := src.StateCounts(ctx)
		if err != nil {
			c.logger.Debug("tcp source failed", zap.String("source", src.Name()), zap.Error(err))
			lastErr = err
			continue
		}
		return stateRecords(counts, ts), nil
	}
	return nil, fmt.Errorf("tcp: all sources failed: %w", lastErr)
}

func stateRecords(counts []probing.StateCount, ts int64) []metrics.Record {
	records := make([]metrics.Record, 0, len(counts))
	for _, sc := range counts {
		if !probing.IsTCPState(sc.State) {
			continue
		}
		records = append(records, metrics.NewRecord(
			metrics.TCPStatus,
			metrics.Tags{metrics.TagStatus: sc.State},
			ts,
			metrics.Int(sc.Count),
		))
	}
	return records
}
