// Package formatting encodes metric batches for the monitoring pipeline.
package formatting

import (
	"bufio"
	"fmt"
	"io"

	"SysMonitor/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
)

// Standard-library compatible config sorts map keys, so tag order is stable.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// wireRecord fixes the key order metric, tags, timestamp, value.
type wireRecord struct {
	Metric    string            `json:"metric"`
	Tags      map[string]string `json:"tags"`
	Timestamp int64             `json:"timestamp"`
	Value     metrics.Value     `json:"value"`
}

func toWire(r metrics.Record) wireRecord {
	tags := map[string]string(r.Tags)
	if tags == nil {
		tags = map[string]string{}
	}
	return wireRecord{
		Metric:    r.Metric,
		Tags:      tags,
		Timestamp: r.Timestamp,
		Value:     r.Value,
	}
}

// FormatRecord encodes a single record as a JSON object.
func FormatRecord(r metrics.Record) ([]byte, error) {
	// jsoniter flattens marshaler errors to text, so check before encoding
	if !r.Value.Valid() {
		return nil, fmt.Errorf("failed to marshal metric %s: %w", r.Metric, metrics.ErrNonFinite)
	}
	data, err := jsonAPI.Marshal(toWire(r))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metric %s: %w", r.Metric, err)
	}
	return data, nil
}

// Marshal encodes a batch as one JSON array. An empty batch encodes as [].
func Marshal(batch metrics.Batch) ([]byte, error) {
	buf := make([]byte, 0, 128*len(batch)+2)
	buf = append(buf, '[')
	for i, r := range batch {
		data, err := FormatRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, data...)
	}
	buf = append(buf, ']')
	return buf, nil
}

// WriteBatch writes the batch as a single newline-terminated line.
func WriteBatch(w io.Writer, batch metrics.Batch) error {
	data, err := Marshal(batch)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(data); err != nil {
		return fmt.Errorf("failed to write batch: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush batch: %w", err)
	}
	return nil
}
