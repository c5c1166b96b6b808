package collecting

import (
	"context"
	"errors"
	"fmt"

	"SysMonitor/pkg/metrics"
)

// ErrUnavailable is returned when a provider has no data on this host.
var ErrUnavailable = errors.New("provider unavailable")

// Collector produces the records of one provider. A returned error means the
// provider contributes nothing to the batch.
type Collector interface {
	Name() string
	Collect(ctx context.Context, ts int64) ([]metrics.Record, error)
}

func floatRecord(name string, tags metrics.Tags, ts int64, v float64) (metrics.Record, error) {
	val := metrics.Float(v)
	if !val.Valid() {
		return metrics.Record{}, fmt.Errorf("%s: %w: %v", name, metrics.ErrNonFinite, v)
	}
	return metrics.NewRecord(name, tags, ts, val), nil
}

func singleFloat(name string, ts int64, v float64, err error) ([]metrics.Record, error) {
	if err != nil {
		return nil, err
	}
	r, err := floatRecord(name, nil, ts, v)
	if err != nil {
		return nil, err
	}
	return []metrics.Record{r}, nil
}
