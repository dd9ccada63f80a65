package registry

import (
	"fmt"

	"github.com/opd-ai/go-qtty/pkg/qtty/angular"
)

// FullTurn returns one turn expressed in the angle unit id. It matches
// angular.FullTurn for the same unit.
func FullTurn(id UnitID) (float64, error) {
	m, err := Lookup(id)
	if err != nil {
		return 0, err
	}
	if m.Dimension != DimAngle {
		return 0, fmt.Errorf("%w: %s (%s) is not an angle", ErrIncompatibleDimension, m.Symbol, m.Dimension)
	}
	return angular.Tau * (angular.Radian{}.Ratio() / m.Scale), nil
}

// Wrap maps the angle q into r, keeping its unit.
func Wrap(q Quantity, r angular.Range) (Quantity, error) {
	turn, err := FullTurn(q.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: angular.WrapValue(q.Value, turn, r), Unit: q.Unit}, nil
}

// Separation returns the shortest signed angle from b to a and its
// magnitude, both in a's unit. b is converted first.
func Separation(a, b Quantity) (signed, abs Quantity, err error) {
	bv, err := Convert(b.Value, b.Unit, a.Unit)
	if err != nil {
		return Quantity{}, Quantity{}, err
	}
	signed, err = Wrap(Quantity{Value: a.Value - bv, Unit: a.Unit}, angular.RangeSigned)
	if err != nil {
		return Quantity{}, Quantity{}, err
	}
	abs = signed
	if abs.Value < 0 {
		abs.Value = -abs.Value
	}
	return signed, abs, nil
}
