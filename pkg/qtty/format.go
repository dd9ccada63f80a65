package qtty

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// String renders q as "<value> <symbol>" using the shortest decimal form of
// the value. Quantities without a symbol render the value alone.
func (q Quantity[U]) String() string {
	s := strconv.FormatFloat(q.value, 'f', -1, 64)
	if sym := q.Unit().Symbol(); sym != "" {
		return s + " " + sym
	}
	return s
}

// Format implements fmt.Formatter. Numeric verbs and their flags apply to
// the value and the unit symbol is appended, so "%.2f" prints "45.50 Deg".
// Width and the '-' flag of %v and %s pad the whole rendered quantity.
func (q Quantity[U]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), q.String())
		return
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), q.value)
	default:
		fmt.Fprintf(f, "%%!%c(qtty.Quantity=%s)", verb, q.String())
		return
	}
	if sym := q.Unit().Symbol(); sym != "" {
		fmt.Fprint(f, " "+sym)
	}
}

// MarshalJSON encodes q as a bare JSON number. The unit is implied by the
// Go type on both ends.
func (q Quantity[U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.value)
}

// UnmarshalJSON decodes a bare JSON number into q.
func (q *Quantity[U]) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode %s quantity: %w", symbolOrName(q.Unit()), err)
	}
	q.value = v
	return nil
}
