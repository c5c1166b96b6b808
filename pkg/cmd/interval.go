package cmd

import (
	"fmt"
	"io"

	"SysMonitor/pkg/config"
)

// Interval writes the collection interval in seconds as one line, so the
// scheduler can read its cadence from this binary.
func Interval(w io.Writer, cfg *config.Config) error {
	if _, err := fmt.Fprintln(w, cfg.IntervalSeconds()); err != nil {
		return fmt.Errorf("failed to write interval: %w", err)
	}
	return nil
}
