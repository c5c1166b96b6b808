package metrics

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		sec      int64
		interval int64
		want     int64
	}{
		{1700000000, 10, 1700000000},
		{1700000009, 10, 1700000000},
		{1700000010, 10, 1700000010},
		{1700000015, 10, 1700000010},
		{1700000015, 60, 1699999980},
		{1700000015, 0, 1700000015},
		{-5, 10, -10},
	}

	for _, tt := range tests {
		got := Bucket(time.Unix(tt.sec, 999_999_999), tt.interval)
		if got != tt.want {
			t.Errorf("Bucket(%d, %d) = %d, want %d", tt.sec, tt.interval, got, tt.want)
		}
		if tt.interval > 0 && got%tt.interval != 0 {
			t.Errorf("Bucket(%d, %d) = %d is not a multiple of the interval", tt.sec, tt.interval, got)
		}
	}
}

func TestNewRecordEmptyTags(t *testing.T) {
	r := NewRecord(CPUUsage, nil, 10, Float(1.5))
	if r.Tags == nil {
		t.Fatal("expected non-nil tags")
	}
	if len(r.Tags) != 0 {
		t.Errorf("expected empty tags, got %v", r.Tags)
	}
}

func TestValueMarshal(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Int(0), "0"},
		{Int(2000), "2000"},
		{Int(-3), "-3"},
		{Uint(math.MaxUint64), "9223372036854775807"},
		{Float(12.3), "12.3"},
		{Float(70), "70.0"},
		{Float(0), "0.0"},
		{Float(-2), "-2.0"},
		{Float(0.0000001), "1e-07"},
	}

	for _, tt := range tests {
		got, err := json.Marshal(tt.v)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", tt.v, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestValueMarshalNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := Float(f)
		if v.Valid() {
			t.Errorf("Float(%v).Valid() = true", f)
		}
		if _, err := v.MarshalJSON(); !errors.Is(err, ErrNonFinite) {
			t.Errorf("MarshalJSON(%v) error = %v, want ErrNonFinite", f, err)
		}
	}
}

func TestValueUnmarshalKind(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"3", KindInt},
		{"-12", KindInt},
		{"12.3", KindFloat},
		{"1e3", KindFloat},
		{"70.0", KindFloat},
	}

	for _, tt := range tests {
		var v Value
		if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", tt.in, err)
		}
		if v.Kind() != tt.kind {
			t.Errorf("Unmarshal(%s).Kind() = %v, want %v", tt.in, v.Kind(), tt.kind)
		}
	}

	var v Value
	if err := json.Unmarshal([]byte(`"x"`), &v); err == nil {
		t.Error("expected error for string value")
	}
}

func TestNamesAreKnown(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("expected 7 metric names, got %d", len(names))
	}
	for _, n := range names {
		if !IsKnown(n) {
			t.Errorf("IsKnown(%q) = false", n)
		}
	}
	if IsKnown("sentry_sys_process_number") {
		t.Error("unexpected known name")
	}
}
