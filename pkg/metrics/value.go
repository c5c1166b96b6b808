package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrNonFinite is returned when a float value is NaN or infinite.
var ErrNonFinite = errors.New("non-finite metric value")

// Kind discriminates the numeric representation of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Value is a metric value that is either an integer or a floating point number.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Uint returns an integer Value, saturating at math.MaxInt64.
func Uint(v uint64) Value {
	if v > math.MaxInt64 {
		return Int(math.MaxInt64)
	}
	return Int(int64(v))
}

// Float returns a floating point Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

func (v Value) Kind() Kind { return v.kind }

// Float64 returns the value as a float.
func (v Value) Float64() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return float64(v.i)
}

// Valid reports whether the value can be serialized.
func (v Value) Valid() bool {
	if v.kind == KindFloat {
		return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
	}
	return true
}

func (v Value) String() string {
	return string(v.appendTo(nil))
}

func (v Value) appendTo(b []byte) []byte {
	if v.kind == KindInt {
		return strconv.AppendInt(b, v.i, 10)
	}
	format := byte('f')
	if abs := math.Abs(v.f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	start := len(b)
	b = strconv.AppendFloat(b, v.f, format, -1, 64)
	// keep integral floats distinguishable from integers
	if format == 'f' && !bytes.ContainsRune(b[start:], '.') {
		b = append(b, '.', '0')
	}
	return b
}

// MarshalJSON writes the value as a bare JSON number.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrNonFinite, v.f)
	}
	return v.appendTo(nil), nil
}

// UnmarshalJSON reads a JSON number. Numbers without a fraction or exponent
// decode as integers.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if !bytes.ContainsAny(data, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			*v = Int(i)
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid metric value %q: %w", s, err)
	}
	*v = Float(f)
	return nil
}
