package angular

import (
	"fmt"
	"math"
)

// Range selects the interval WrapValue maps into.
type Range int

const (
	// RangePositive is [0, full).
	RangePositive Range = iota
	// RangeSigned is (-half, half].
	RangeSigned
	// RangeSignedLo is [-half, half).
	RangeSignedLo
	// RangeQuarterFold is [-quarter, quarter].
	RangeQuarterFold
)

var rangeNames = map[Range]string{
	RangePositive:    "pos",
	RangeSigned:      "signed",
	RangeSignedLo:    "signed-lo",
	RangeQuarterFold: "quarter",
}

// String returns the short name used by ParseRange.
func (r Range) String() string {
	if name, ok := rangeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Range(%d)", int(r))
}

// ParseRange is the inverse of Range.String.
func ParseRange(s string) (Range, error) {
	for r, name := range rangeNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown angle range %q (want pos, signed, signed-lo or quarter)", s)
}

// WrapValue maps the raw angle x into the interval r, where fullTurn is the
// size of one turn in the unit of x. It backs the typed Wrap functions and
// serves callers that only know the unit at runtime.
func WrapValue(x, fullTurn float64, r Range) float64 {
	half := fullTurn * 0.5
	switch r {
	case RangeSigned:
		y := remEuclid(x+half, fullTurn) - half
		if y <= -half {
			y += fullTurn
		}
		return y
	case RangeSignedLo:
		y := remEuclid(x+half, fullTurn) - half
		if y >= half {
			y -= fullTurn
		}
		return y
	case RangeQuarterFold:
		quarter := fullTurn * 0.25
		y := remEuclid(x+quarter, fullTurn)
		return quarter - math.Abs(y-half)
	default:
		return remEuclid(x, fullTurn)
	}
}

// remEuclid returns the least non-negative remainder of x / m for m > 0.
// A negative remainder lifted by m can round up to m itself; that case
// folds back to 0 so the result always lies in [0, m).
func remEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
		if r >= m {
			r = 0
		}
	}
	return r
}
