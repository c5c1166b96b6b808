// Package cmd implements the two invocation modes of the monitor.
package cmd

import (
	"context"
	"fmt"
	"io"

	"SysMonitor/pkg/collecting"
	"SysMonitor/pkg/config"
	"SysMonitor/pkg/logging"
	"SysMonitor/pkg/system"

	"go.uber.org/zap"
)

// Run dispatches on args (without the program name) and returns the exit code.
// A single argument equal to the interval token selects interval mode; any
// other argument list selects collection mode.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: invalid configuration: %v\n", config.AppName, err)
		return 1
	}

	logger, err := logging.NewWithWriter(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	defer logger.Sync()

	if IsIntervalMode(args, cfg) {
		if err := Interval(stdout, cfg); err != nil {
			logger.Error("failed to report interval", zap.Error(err))
			return 1
		}
		return 0
	}

	logger.Debug("collecting",
		zap.String("kernel", system.KernelRelease()),
		zap.Int64("interval", cfg.IntervalSeconds()))

	manager := collecting.NewHostManager(cfg, logger)
	if err := Collect(context.Background(), stdout, manager); err != nil {
		logger.Error("failed to write batch", zap.Error(err))
		return 1
	}
	return 0
}

// IsIntervalMode reports whether args select interval mode.
func IsIntervalMode(args []string, cfg *config.Config) bool {
	return len(args) == 1 && args[0] == cfg.IntervalToken
}
