package registry

import (
	"fmt"
	"strconv"

	"github.com/opd-ai/go-qtty/pkg/qtty"
)

// Quantity is a value tagged with a runtime unit id. It is the untyped
// counterpart of qtty.Quantity for data whose unit is only known at runtime.
type Quantity struct {
	Value float64
	Unit  UnitID
}

// NewQuantity returns a Quantity after checking that unit is registered.
func NewQuantity(value float64, unit UnitID) (Quantity, error) {
	if !IsValid(unit) {
		return Quantity{}, fmt.Errorf("%w: id %d", ErrUnknownUnit, uint32(unit))
	}
	return Quantity{Value: value, Unit: unit}, nil
}

// Convert returns q expressed in the unit to.
func (q Quantity) Convert(to UnitID) (Quantity, error) {
	v, err := Convert(q.Value, q.Unit, to)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: to}, nil
}

// Dimension returns the dimension of q's unit.
func (q Quantity) Dimension() (DimensionID, error) {
	return DimensionOf(q.Unit)
}

// String renders q like qtty.Quantity does: "<value> <symbol>".
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'f', -1, 64)
	m, err := Lookup(q.Unit)
	if err != nil {
		return v + " " + q.Unit.String()
	}
	return v + " " + m.Symbol
}

// FromTyped converts a typed quantity into a carrier. Only catalog units
// have ids; composite units fail with ErrUnknownUnit.
func FromTyped[U qtty.Unit](q qtty.Quantity[U]) (Quantity, error) {
	id, ok := IDOf(q.Unit())
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %s has no registry id", ErrUnknownUnit, q.Unit().Symbol())
	}
	return Quantity{Value: q.Value(), Unit: id}, nil
}

// ToTyped converts a carrier into a typed quantity of unit U, converting
// the value on the way when the units differ.
func ToTyped[U qtty.Unit](q Quantity) (qtty.Quantity[U], error) {
	var u U
	id, ok := IDOf(u)
	if !ok {
		return qtty.Quantity[U]{}, fmt.Errorf("%w: %s has no registry id", ErrUnknownUnit, u.Symbol())
	}
	v, err := Convert(q.Value, q.Unit, id)
	if err != nil {
		return qtty.Quantity[U]{}, err
	}
	return qtty.New[U](v), nil
}
