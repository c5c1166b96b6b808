// Package metrics defines the records emitted by one collection run.
package metrics

import "time"

// Tags maps a tag key to its value. A record with no tags carries an empty map.
type Tags map[string]string

// Record is a single timestamped metric sample.
type Record struct {
	Metric    string `json:"metric"`
	Tags      Tags   `json:"tags"`
	Timestamp int64  `json:"timestamp"`
	Value     Value  `json:"value"`
}

// NewRecord builds a Record, replacing nil tags with an empty set.
func NewRecord(metric string, tags Tags, ts int64, value Value) Record {
	if tags == nil {
		tags = Tags{}
	}
	return Record{
		Metric:    metric,
		Tags:      tags,
		Timestamp: ts,
		Value:     value,
	}
}

// Batch is the ordered set of records produced by one invocation.
type Batch []Record

// Bucket rounds now down to the nearest multiple of interval seconds.
func Bucket(now time.Time, interval int64) int64 {
	sec := now.Unix()
	if interval <= 0 {
		return sec
	}
	q := sec / interval
	if sec%interval < 0 {
		q--
	}
	return q * interval
}
