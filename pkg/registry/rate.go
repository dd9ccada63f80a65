package registry

import (
	"fmt"
	"strconv"
)

// Rate is a runtime quotient quantity: Value units of Num per unit of Den.
// It is what qtty.Per is for typed code.
type Rate struct {
	Value float64
	Num   UnitID
	Den   UnitID
}

// NewRate returns a Rate after checking both units.
func NewRate(value float64, num, den UnitID) (Rate, error) {
	if _, err := Lookup(num); err != nil {
		return Rate{}, err
	}
	if _, err := Lookup(den); err != nil {
		return Rate{}, err
	}
	return Rate{Value: value, Num: num, Den: den}, nil
}

// Divide returns n / d as a Rate of n's unit per d's unit.
func Divide(n, d Quantity) (Rate, error) {
	return NewRate(n.Value/d.Value, n.Unit, d.Unit)
}

// MultiplyByDenominator returns r * d in r's numerator unit. d is first
// converted into r's denominator unit, so multiplying a rate per day by a
// quantity in hours works; a d of another dimension fails with
// ErrIncompatibleDimension.
func (r Rate) MultiplyByDenominator(d Quantity) (Quantity, error) {
	if _, err := Lookup(r.Num); err != nil {
		return Quantity{}, err
	}
	dv, err := Convert(d.Value, d.Unit, r.Den)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: r.Value * dv, Unit: r.Num}, nil
}

// Convert returns r expressed in num per den. Each new unit must share the
// dimension of the unit it replaces.
func (r Rate) Convert(num, den UnitID) (Rate, error) {
	n, err := Convert(r.Value, r.Num, num)
	if err != nil {
		return Rate{}, fmt.Errorf("numerator: %w", err)
	}
	// Converting one unit of the old denominator into the new one tells how
	// many new denominators the value is spread over.
	per, err := Convert(1, r.Den, den)
	if err != nil {
		return Rate{}, fmt.Errorf("denominator: %w", err)
	}
	return Rate{Value: n / per, Num: num, Den: den}, nil
}

// String renders r as "<value> <num>/<den>".
func (r Rate) String() string {
	return strconv.FormatFloat(r.Value, 'f', -1, 64) + " " + symbolOf(r.Num) + "/" + symbolOf(r.Den)
}

func symbolOf(id UnitID) string {
	if m, err := Lookup(id); err == nil {
		return m.Symbol
	}
	return id.String()
}
