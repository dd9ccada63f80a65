package qtty

import (
	"errors"
	"fmt"
)

// ErrIncompatibleDimension is returned when converting between units that
// measure different dimensions.
var ErrIncompatibleDimension = errors.New("incompatible dimensions")

// Convert returns q expressed in the unit T.
//
// The value is scaled by U.Ratio / T.Ratio. Converting between units of
// different dimensions fails with ErrIncompatibleDimension.
func Convert[T, U Unit](q Quantity[U]) (Quantity[T], error) {
	var from U
	var to T
	if !SameDimension(from, to) {
		return Quantity[T]{}, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			ErrIncompatibleDimension,
			symbolOrName(from), from.Dimension().DimensionName(),
			symbolOrName(to), to.Dimension().DimensionName())
	}
	return Quantity[T]{value: q.value * (from.Ratio() / to.Ratio())}, nil
}

// To is like Convert but panics when T and U measure different dimensions.
// It is meant for conversions whose units are fixed in the source code.
func To[T, U Unit](q Quantity[U]) Quantity[T] {
	out, err := Convert[T](q)
	if err != nil {
		panic(err)
	}
	return out
}

func symbolOrName(u Unit) string {
	if s := u.Symbol(); s != "" {
		return s
	}
	return "unitless"
}
