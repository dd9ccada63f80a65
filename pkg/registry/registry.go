// Package registry exposes the unit catalog at runtime.
//
// Every catalog unit has a permanent numeric UnitID, grouped by dimension
// (Length 100-199, Time 200-299, Angle 300-399, Mass 400-499, Power
// 500-599). Callers that only learn a unit at runtime, such as a JSON
// payload or a command-line argument, convert through this package; code
// that knows its units statically should use the typed qtty.Quantity.
//
// The registry is built once at init and is read-only afterwards, so it is
// safe for concurrent use.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/opd-ai/go-qtty/pkg/qtty"
)

// DimensionID identifies a dimension at runtime.
type DimensionID uint32

// String returns the dimension name.
func (d DimensionID) String() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DimensionID(%d)", uint32(d))
}

// UnitID identifies a catalog unit at runtime.
type UnitID uint32

// String returns the unit name, or UnitID(n) for unknown ids.
func (id UnitID) String() string {
	if m, ok := byID[id]; ok {
		return m.Name
	}
	return fmt.Sprintf("UnitID(%d)", uint32(id))
}

// Meta describes a registered unit.
type Meta struct {
	ID        UnitID
	Dimension DimensionID
	// Scale is the unit's ratio to the canonical unit of its dimension.
	Scale  float64
	Name   string
	Symbol string
	Unit   qtty.Unit
}

var (
	// ErrUnknownUnit is returned for ids, names or symbols that are not in
	// the catalog.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrIncompatibleDimension is returned when converting between units of
	// different dimensions. It is the same value as
	// qtty.ErrIncompatibleDimension.
	ErrIncompatibleDimension = qtty.ErrIncompatibleDimension

	// ErrNilOutput is returned when an output pointer is nil.
	ErrNilOutput = errors.New("nil output pointer")

	// ErrInvalidValue is returned when a payload does not hold a usable value.
	ErrInvalidValue = errors.New("invalid value")
)

var (
	byID     = make(map[UnitID]Meta)
	bySymbol = make(map[string]UnitID)
	byName   = make(map[string]UnitID)
	byUnit   = make(map[qtty.Unit]UnitID)
)

func init() {
	for i := range table {
		m := &table[i]
		m.Scale = m.Unit.Ratio()
		byID[m.ID] = *m
		bySymbol[m.Symbol] = m.ID
		byName[m.Name] = m.ID
		byUnit[m.Unit] = m.ID
	}
	sort.Slice(table, func(i, j int) bool { return table[i].ID < table[j].ID })
}

// Lookup returns the metadata of id.
func Lookup(id UnitID) (Meta, error) {
	m, ok := byID[id]
	if !ok {
		return Meta{}, fmt.Errorf("%w: id %d", ErrUnknownUnit, uint32(id))
	}
	return m, nil
}

// IsValid reports whether id names a registered unit.
func IsValid(id UnitID) bool {
	_, ok := byID[id]
	return ok
}

// DimensionOf returns the dimension of id.
func DimensionOf(id UnitID) (DimensionID, error) {
	m, err := Lookup(id)
	if err != nil {
		return 0, err
	}
	return m.Dimension, nil
}

// Name returns the unit name of id, e.g. "Kilometer".
func Name(id UnitID) (string, error) {
	m, err := Lookup(id)
	if err != nil {
		return "", err
	}
	return m.Name, nil
}

// Compatible reports whether a and b share a dimension.
func Compatible(a, b UnitID) (bool, error) {
	ma, err := Lookup(a)
	if err != nil {
		return false, err
	}
	mb, err := Lookup(b)
	if err != nil {
		return false, err
	}
	return ma.Dimension == mb.Dimension, nil
}

// Convert returns value, expressed in from, in the unit to:
// value * from.Scale / to.Scale.
func Convert(value float64, from, to UnitID) (float64, error) {
	mf, err := Lookup(from)
	if err != nil {
		return 0, err
	}
	mt, err := Lookup(to)
	if err != nil {
		return 0, err
	}
	if mf.Dimension != mt.Dimension {
		return 0, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			ErrIncompatibleDimension, mf.Symbol, mf.Dimension, mt.Symbol, mt.Dimension)
	}
	if from == to {
		return value, nil
	}
	return value * mf.Scale / mt.Scale, nil
}

// ConvertInto is Convert writing its result through out. out is left
// untouched on error.
func ConvertInto(out *float64, value float64, from, to UnitID) error {
	if out == nil {
		return ErrNilOutput
	}
	v, err := Convert(value, from, to)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

// All returns every registered unit ordered by id.
func All() []Meta {
	out := make([]Meta, len(table))
	copy(out, table)
	return out
}

// ByDimension returns the units of dim ordered by id.
func ByDimension(dim DimensionID) []Meta {
	var out []Meta
	for _, m := range table {
		if m.Dimension == dim {
			out = append(out, m)
		}
	}
	return out
}

// Dimensions returns the registered dimension ids in ascending order.
func Dimensions() []DimensionID {
	out := make([]DimensionID, 0, len(dimensionNames))
	for d := range dimensionNames {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseDimension returns the id of the dimension called name.
func ParseDimension(name string) (DimensionID, error) {
	for d, n := range dimensionNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q", name)
}

// BySymbol returns the id of the unit displayed as sym, e.g. "Km".
func BySymbol(sym string) (UnitID, error) {
	id, ok := bySymbol[sym]
	if !ok {
		return 0, fmt.Errorf("%w: symbol %q", ErrUnknownUnit, sym)
	}
	return id, nil
}

// ByName returns the id of the unit called name, e.g. "Kilometer".
func ByName(name string) (UnitID, error) {
	id, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: name %q", ErrUnknownUnit, name)
	}
	return id, nil
}

// Resolve accepts either a unit symbol or a unit name.
func Resolve(s string) (UnitID, error) {
	if id, ok := bySymbol[s]; ok {
		return id, nil
	}
	if id, ok := byName[s]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// IDOf returns the registry id of a typed unit. Composite units have none.
func IDOf(u qtty.Unit) (UnitID, bool) {
	id, ok := byUnit[u]
	return id, ok
}
