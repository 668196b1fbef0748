// SPDX-License-Identifier: MIT

package apsp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Weight is an extended real: either a finite value or +infinity.
// The zero value is Finite(0).
type Weight struct {
	v   float64
	inf bool
}

// Finite returns the finite weight v. v must be a finite float; Graph
// setters reject anything else with ErrInvalidWeight.
func Finite(v float64) Weight { return Weight{v: v} }

// Inf returns the infinite weight ("no edge", "unreachable").
func Inf() Weight { return Weight{inf: true} }

// FromFloat converts a native float: +Inf becomes Inf(), NaN and −Inf are
// rejected with ErrInvalidWeight.
func FromFloat(v float64) (Weight, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, -1):
		return Weight{}, fmt.Errorf("%w: %v", ErrInvalidWeight, v)
	case math.IsInf(v, 1):
		return Inf(), nil
	default:
		return Finite(v), nil
	}
}

// ParseWeight parses a decimal number or one of "inf", "+inf", "infinity",
// "∞" (case-insensitive) as Inf().
func ParseWeight(s string) (Weight, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "inf", "+inf", "infinity", "+infinity", "∞":
		return Inf(), nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return Weight{}, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}

	return FromFloat(v)
}

// IsInf reports whether w is infinite.
func (w Weight) IsInf() bool { return w.inf }

// IsNegative reports whether w is finite and below zero.
func (w Weight) IsNegative() bool { return !w.inf && w.v < 0 }

// Float64 returns the value, with math.Inf(1) for Inf().
func (w Weight) Float64() float64 {
	if w.inf {
		return math.Inf(1)
	}
	return w.v
}

// Add returns w+o. Inf absorbs; finite sums saturate at ±math.MaxFloat64
// so repeated relaxation around a negative cycle never yields −Inf or NaN.
func (w Weight) Add(o Weight) Weight {
	if w.inf || o.inf {
		return Inf()
	}
	s := w.v + o.v
	switch {
	case s > math.MaxFloat64:
		s = math.MaxFloat64
	case s < -math.MaxFloat64:
		s = -math.MaxFloat64
	}

	return Weight{v: s}
}

// Less reports whether w < o, with every finite weight below Inf.
func (w Weight) Less(o Weight) bool {
	if w.inf {
		return false
	}
	if o.inf {
		return true
	}
	return w.v < o.v
}

// String returns "inf" or the shortest decimal representation.
func (w Weight) String() string {
	if w.inf {
		return "inf"
	}
	return strconv.FormatFloat(w.v, 'g', -1, 64)
}

// MarshalJSON encodes a finite weight as a JSON number and Inf() as the
// string "inf" (JSON has no infinity literal).
func (w Weight) MarshalJSON() ([]byte, error) {
	if w.inf {
		return []byte(`"inf"`), nil
	}
	return json.Marshal(w.v)
}

// MarshalYAML mirrors MarshalJSON for YAML encoders that honour the
// MarshalYAML() (any, error) convention.
func (w Weight) MarshalYAML() (any, error) {
	if w.inf {
		return "inf", nil
	}
	return w.v, nil
}

// UnmarshalJSON accepts a number, a string accepted by ParseWeight, or
// null (no edge).
func (w *Weight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*w = Inf()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidWeight, err)
		}
		parsed, err := ParseWeight(s)
		if err != nil {
			return err
		}
		*w = parsed
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, err)
	}
	*w = Finite(v)

	return nil
}

// valid reports whether a finite-tagged weight holds a finite float.
func (w Weight) valid() bool {
	return w.inf || !(math.IsNaN(w.v) || math.IsInf(w.v, 0))
}
