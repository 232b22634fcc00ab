// Package safe provides helpers for numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int64 converts unsigned integers to int64, rejecting values above math.MaxInt64.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Uint64 converts signed integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// AddPercentCeil returns v increased by percent, rounded up. Percent is capped at 1000.
func AddPercentCeil(v uint64, percent uint64) (uint64, error) {
	if percent > 1000 {
		return 0, fmt.Errorf("percent %d out of range", percent)
	}
	if percent == 0 || v == 0 {
		return v, nil
	}
	whole := v / 100
	if whole > math.MaxUint64/percent {
		return 0, fmt.Errorf("value %d overflows when scaled by %d%%", v, percent)
	}
	extra := whole*percent + ((v%100)*percent+99)/100
	if v > math.MaxUint64-extra {
		return 0, fmt.Errorf("value %d overflows when increased by %d", v, extra)
	}
	return v + extra, nil
}

// AddInt64 returns a+b, rejecting results outside the int64 range.
func AddInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("sum %d + %d out of int64 range", a, b)
	}
	return a + b, nil
}
