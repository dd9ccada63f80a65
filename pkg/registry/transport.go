package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-qtty/pkg/validation"
)

type quantityJSON struct {
	Value  float64 `json:"value"`
	UnitID UnitID  `json:"unit_id"`
}

type rateJSON struct {
	Value     float64 `json:"value"`
	NumUnitID UnitID  `json:"num_unit_id"`
	DenUnitID UnitID  `json:"den_unit_id"`
}

// MarshalValue encodes only the value of q as a bare JSON number. The
// receiver must already know the unit.
func MarshalValue(q Quantity) ([]byte, error) {
	if err := checkFinite(q.Value); err != nil {
		return nil, err
	}
	return json.Marshal(q.Value)
}

// UnmarshalValue decodes a bare JSON number in the given unit.
func UnmarshalValue(data []byte, unit UnitID) (Quantity, error) {
	if !IsValid(unit) {
		return Quantity{}, fmt.Errorf("%w: id %d", ErrUnknownUnit, uint32(unit))
	}
	if err := validation.ValidatePayload(data); err != nil {
		return Quantity{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	v, err := decodeNumber(data)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: unit}, nil
}

// MarshalJSON encodes q as {"value": <number>, "unit_id": <id>}.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if err := checkFinite(q.Value); err != nil {
		return nil, err
	}
	return json.Marshal(quantityJSON{Value: q.Value, UnitID: q.Unit})
}

// UnmarshalJSON decodes {"value": <number>, "unit_id": <id>}. A missing or
// non-numeric value fails with ErrInvalidValue; a missing or unknown unit
// id fails with ErrUnknownUnit.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	v, err := numberField(fields, "value")
	if err != nil {
		return err
	}
	id, err := unitField(fields, "unit_id")
	if err != nil {
		return err
	}
	*q = Quantity{Value: v, Unit: id}
	return nil
}

// MarshalJSON encodes r as {"value", "num_unit_id", "den_unit_id"}.
func (r Rate) MarshalJSON() ([]byte, error) {
	if err := checkFinite(r.Value); err != nil {
		return nil, err
	}
	return json.Marshal(rateJSON{Value: r.Value, NumUnitID: r.Num, DenUnitID: r.Den})
}

// UnmarshalJSON is the inverse of MarshalJSON with the same error rules as
// Quantity.
func (r *Rate) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	v, err := numberField(fields, "value")
	if err != nil {
		return err
	}
	num, err := unitField(fields, "num_unit_id")
	if err != nil {
		return err
	}
	den, err := unitField(fields, "den_unit_id")
	if err != nil {
		return err
	}
	*r = Rate{Value: v, Num: num, Den: den}
	return nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	if err := validation.ValidatePayload(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidValue)
	}
	return fields, nil
}

func numberField(fields map[string]json.RawMessage, name string) (float64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrInvalidValue, name)
	}
	v, err := decodeNumber(raw)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", name, err)
	}
	return v, nil
}

func unitField(fields map[string]json.RawMessage, name string) (UnitID, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrUnknownUnit, name)
	}
	var id uint32
	if err := json.Unmarshal(raw, &id); err != nil || isNull(raw) {
		return 0, fmt.Errorf("%w: %q is not a unit id", ErrUnknownUnit, name)
	}
	if !IsValid(UnitID(id)) {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownUnit, id)
	}
	return UnitID(id), nil
}

func decodeNumber(raw []byte) (float64, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil || isNull(raw) {
		return 0, fmt.Errorf("%w: not a number", ErrInvalidValue)
	}
	return v, nil
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v cannot be encoded as JSON", ErrInvalidValue, v)
	}
	return nil
}

type quantityYAML struct {
	Value  *float64 `yaml:"value"`
	UnitID *UnitID  `yaml:"unit_id,omitempty"`
	Unit   string   `yaml:"unit,omitempty"`
}

// MarshalYAML encodes q with both its id and its symbol so files stay
// readable.
func (q Quantity) MarshalYAML() (interface{}, error) {
	v, id := q.Value, q.Unit
	out := quantityYAML{Value: &v, UnitID: &id}
	if m, err := Lookup(q.Unit); err == nil {
		out.Unit = m.Symbol
	}
	return out, nil
}

// UnmarshalYAML decodes a mapping with a value and either unit_id or unit
// (a symbol or name). When both are present they must agree.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	var raw quantityYAML
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrInvalidValue, node.Line, err)
	}
	if raw.Value == nil {
		return fmt.Errorf("%w: line %d: missing value", ErrInvalidValue, node.Line)
	}

	var id UnitID
	switch {
	case raw.UnitID != nil:
		id = *raw.UnitID
		if !IsValid(id) {
			return fmt.Errorf("%w: line %d: id %d", ErrUnknownUnit, node.Line, uint32(id))
		}
		if raw.Unit != "" {
			named, err := Resolve(raw.Unit)
			if err != nil || named != id {
				return fmt.Errorf("%w: line %d: unit %q does not match unit_id %d",
					ErrUnknownUnit, node.Line, raw.Unit, uint32(id))
			}
		}
	case raw.Unit != "":
		resolved, err := Resolve(raw.Unit)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		id = resolved
	default:
		return fmt.Errorf("%w: line %d: missing unit", ErrUnknownUnit, node.Line)
	}

	*q = Quantity{Value: *raw.Value, Unit: id}
	return nil
}
