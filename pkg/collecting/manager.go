// Package collecting runs the metric providers and assembles the batch.
package collecting

import (
	"context"
	"time"

	"SysMonitor/pkg/config"
	"SysMonitor/pkg/metrics"
	"SysMonitor/pkg/probing"
	"SysMonitor/pkg/system"

	"go.uber.org/zap"
)

// Manager runs collectors sequentially in a fixed order.
type Manager struct {
	collectors []Collector
	interval   int64
	now        func() time.Time
	logger     *zap.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithClock replaces the wall clock used to stamp the batch.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager wires the providers in report order: cpu, load, memory, disk,
// network, tcp. Zero fields of cfg take their defaults; cfg is not modified.
func NewManager(cfg *config.Config, host system.Host, tcpSources []TCPSource, logger *zap.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := *cfg
	c.ApplyDefaults()
	cfg = &c

	m := &Manager{
		collectors: []Collector{
			NewCPU(host, cfg.SampleWindow),
			NewLoad(host),
			NewMemory(host),
			NewDisk(host, cfg.IsExcludedFilesystem, logger),
			NewNetwork(host),
			NewTCP(logger, tcpSources...),
		},
		interval: cfg.IntervalSeconds(),
		now:      time.Now,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	logger.Debug("initialized collectors", zap.Strings("collectors", m.CollectorNames()))
	return m
}

// NewHostManager builds a Manager over the live host: gopsutil counters, the
// procfs TCP table, and the shell pipeline as TCP fallback.
func NewHostManager(cfg *config.Config, logger *zap.Logger, opts ...ManagerOption) *Manager {
	sources := []TCPSource{
		&probing.ProcNetSource{Dir: cfg.ProcNetDir},
		&probing.CommandSource{
			Runner:  probing.NewShellRunner(cfg.TCPTimeout),
			Command: cfg.TCPCommand,
		},
	}
	return NewManager(cfg, system.NewGopsutilHost(), sources, logger, opts...)
}

// Collect stamps one bucketed timestamp and runs every collector. A failing
// collector is logged and contributes no records.
func (m *Manager) Collect(ctx context.Context) metrics.Batch {
	ts := metrics.Bucket(m.now(), m.interval)
	return m.CollectAt(ctx, ts)
}

// CollectAt runs every collector with an explicit timestamp. Records outside
// the fixed metric name set are dropped.
func (m *Manager) CollectAt(ctx context.Context, ts int64) metrics.Batch {
	batch := make(metrics.Batch, 0, 16)
	for _, c := range m.collectors {
		records, err := c.Collect(ctx, ts)
		if err != nil {
			m.logger.Debug("collector failed", zap.String("provider", c.Name()), zap.Error(err))
			continue
		}
		for _, r := range records {
			if !metrics.IsKnown(r.Metric) {
				m.logger.Debug("dropping unknown metric", zap.String("provider", c.Name()), zap.String("metric", r.Metric))
				continue
			}
			batch = append(batch, r)
		}
	}
	return batch
}

// CollectorNames returns the collector names in run order.
func (m *Manager) CollectorNames() []string {
	names := make([]string, len(m.collectors))
	for i, c := range m.collectors {
		names[i] = c.Name()
	}
	return names
}
