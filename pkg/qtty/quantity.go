package qtty

import (
	"cmp"
	"math"
)

// Quantity is a value measured in the unit U.
type Quantity[U Unit] struct {
	value float64
}

// New returns a quantity of v units of U. Any float64, including NaN and
// infinities, is accepted.
func New[U Unit](v float64) Quantity[U] {
	return Quantity[U]{value: v}
}

// NaN returns a quantity holding NaN.
func NaN[U Unit]() Quantity[U] {
	return Quantity[U]{value: math.NaN()}
}

// Value returns the raw number in units of U.
func (q Quantity[U]) Value() float64 {
	return q.value
}

// Unit returns the zero value of U.
func (q Quantity[U]) Unit() U {
	var u U
	return u
}

// Abs returns the absolute value of q.
func (q Quantity[U]) Abs() Quantity[U] {
	return Quantity[U]{value: math.Abs(q.value)}
}

// Neg returns -q.
func (q Quantity[U]) Neg() Quantity[U] {
	return Quantity[U]{value: -q.value}
}

// Add returns q + other.
func (q Quantity[U]) Add(other Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value + other.value}
}

// Sub returns q - other.
func (q Quantity[U]) Sub(other Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value - other.value}
}

// Mul multiplies the raw values of q and other and keeps the unit U.
func (q Quantity[U]) Mul(other Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value * other.value}
}

// Div divides the raw values of q and other and keeps the unit U.
// Use Divide to obtain a Per quantity instead.
func (q Quantity[U]) Div(other Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value / other.value}
}

// Scale multiplies q by a scalar factor.
func (q Quantity[U]) Scale(factor float64) Quantity[U] {
	return Quantity[U]{value: q.value * factor}
}

// DivScalar divides q by a scalar.
func (q Quantity[U]) DivScalar(divisor float64) Quantity[U] {
	return Quantity[U]{value: q.value / divisor}
}

// Rem returns the floating point remainder of q divided by a scalar, with
// the sign of q (math.Mod semantics).
func (q Quantity[U]) Rem(divisor float64) Quantity[U] {
	return Quantity[U]{value: math.Mod(q.value, divisor)}
}

// Min returns the smaller of q and other, following math.Min for NaN.
func (q Quantity[U]) Min(other Quantity[U]) Quantity[U] {
	return Quantity[U]{value: math.Min(q.value, other.value)}
}

// Max returns the larger of q and other, following math.Max for NaN.
func (q Quantity[U]) Max(other Quantity[U]) Quantity[U] {
	return Quantity[U]{value: math.Max(q.value, other.value)}
}

// ValueEquals reports whether the raw value of q equals f.
func (q Quantity[U]) ValueEquals(f float64) bool {
	return q.value == f
}

// Compare returns -1, 0 or +1 depending on whether q is less than, equal
// to or greater than other. NaN sorts before every other value.
func (q Quantity[U]) Compare(other Quantity[U]) int {
	return cmp.Compare(q.value, other.value)
}

// Less reports whether q < other.
func (q Quantity[U]) Less(other Quantity[U]) bool {
	return q.value < other.value
}

// IsNaN reports whether q holds NaN.
func (q Quantity[U]) IsNaN() bool {
	return math.IsNaN(q.value)
}

// AddAssign sets q to q + other.
func (q *Quantity[U]) AddAssign(other Quantity[U]) {
	q.value += other.value
}

// SubAssign sets q to q - other.
func (q *Quantity[U]) SubAssign(other Quantity[U]) {
	q.value -= other.value
}

// DivAssign sets q to q / other, keeping the unit.
func (q *Quantity[U]) DivAssign(other Quantity[U]) {
	q.value /= other.value
}
