// Package velocity converts raw effort estimates into per-person durations.
package velocity

import "math"

// ResolveDuration converts an effort estimate into work days for a person
// with the given velocity multiplier. The result is rounded and floored at a
// one-day minimum; non-positive effort or multiplier fall back to defensive
// defaults instead of erroring, since both originate from user-editable
// fields.
func ResolveDuration(effortDays int, multiplier float64) int {
	if effortDays <= 0 {
		return 1
	}
	if multiplier <= 0 {
		multiplier = 1
	}
	d := int(math.Round(float64(effortDays) / multiplier))
	if d < 1 {
		return 1
	}
	return d
}
