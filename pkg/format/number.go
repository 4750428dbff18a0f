// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"encoding/json"
	"math"
)

// ToFloat converts a JSON number in any of its Go
// representations to a float64.
func ToFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// IsIntegral reports whether f is finite with no fractional part.
func IsIntegral(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// isInt32 reports whether v is an integer that fits in 32 bits.
func isInt32(v any) bool {
	f, ok := ToFloat(v)
	return ok && IsIntegral(f) && f >= math.MinInt32 && f <= math.MaxInt32
}

// isInt64 reports whether v is an integer.
// Any integral JSON number is accepted.
func isInt64(v any) bool {
	f, ok := ToFloat(v)
	return ok && IsIntegral(f)
}

// isFiniteNumber reports whether v is a finite number.
func isFiniteNumber(v any) bool {
	f, ok := ToFloat(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}
