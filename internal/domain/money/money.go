package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in minor units (cents). Using an integer
// representation keeps repeated totalling free of floating-point drift.
type Amount int64

// ParseMajor reads a user-typed major-unit amount ("1,200.50"). Malformed or
// empty input yields 0 so arithmetic over editable rows never fails.
func ParseMajor(s string) Amount {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	// Round half up to the nearest cent.
	return Amount(v*100 + 0.5)
}

// ParseCents reads a sub-unit field. Values >= 100 are kept as-is here;
// normalization into the major amount happens when totalling.
func ParseCents(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func FromParts(major int64, cents int64) Amount {
	return Amount(major*100 + cents)
}

// Major returns the integer major-unit part.
func (a Amount) Major() int64 { return int64(a) / 100 }

// Cents returns the sub-unit remainder in [0, 99].
func (a Amount) Cents() int64 { return int64(a) % 100 }

// String formats with exactly two decimal places, e.g. "121.25".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a.Major(), a.Cents())
}

// Float64 exposes the major-unit value for serialization boundaries that
// expect a number (stored records, API responses).
func (a Amount) Float64() float64 {
	return float64(a) / 100
}
