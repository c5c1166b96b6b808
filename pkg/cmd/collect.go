package cmd

import (
	"context"
	"io"

	"SysMonitor/pkg/formatting"
	"SysMonitor/pkg/metrics"
)

// BatchCollector produces one batch per call.
type BatchCollector interface {
	Collect(ctx context.Context) metrics.Batch
}

// Collect gathers a batch and writes it as a single JSON array line. Only
// encoding or write failures are returned.
func Collect(ctx context.Context, w io.Writer, c BatchCollector) error {
	batch := c.Collect(ctx)
	return formatting.WriteBatch(w, batch)
}
