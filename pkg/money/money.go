// Package money provides currency codes and overflow-checked arithmetic on
// amounts held in the smallest currency unit.
//
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., cents for EUR).
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
package money

import "math"

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., cents for USD).
type Amount = int64

// Add returns a+b. ok is false when the sum does not fit in an int64.
func Add(a, b Amount) (sum Amount, ok bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}

// Sub returns a-b. ok is false when the difference does not fit in an int64.
func Sub(a, b Amount) (diff Amount, ok bool) {
	if b < 0 && a > math.MaxInt64+b {
		return 0, false
	}
	if b > 0 && a < math.MinInt64+b {
		return 0, false
	}
	return a - b, true
}
