package angular

import (
	"math"

	"github.com/opd-ai/go-qtty/pkg/qtty"
)

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// FullTurn returns one full turn expressed in U (360 for Degree).
func FullTurn[U Unit]() float64 {
	var u U
	return Tau * (Radian{}.Ratio() / u.Ratio())
}

// HalfTurn returns half a turn expressed in U.
func HalfTurn[U Unit]() float64 {
	return FullTurn[U]() * 0.5
}

// QuarterTurn returns a quarter turn expressed in U.
func QuarterTurn[U Unit]() float64 {
	return FullTurn[U]() * 0.25
}

// QuartedTurn returns a quarter turn expressed in U.
//
// Deprecated: use QuarterTurn.
func QuartedTurn[U Unit]() float64 {
	return QuarterTurn[U]()
}

// ToRadians converts any angle to radians.
func ToRadians[U Unit](a qtty.Quantity[U]) Radians {
	return qtty.To[Radian](a)
}

// ToDegrees converts any angle to degrees.
func ToDegrees[U Unit](a qtty.Quantity[U]) Degrees {
	return qtty.To[Degree](a)
}

// Sin returns the sine of a.
func Sin[U Unit](a qtty.Quantity[U]) float64 {
	return math.Sin(ToRadians(a).Value())
}

// Cos returns the cosine of a.
func Cos[U Unit](a qtty.Quantity[U]) float64 {
	return math.Cos(ToRadians(a).Value())
}

// Tan returns the tangent of a.
func Tan[U Unit](a qtty.Quantity[U]) float64 {
	return math.Tan(ToRadians(a).Value())
}

// SinCos returns the sine and cosine of a.
func SinCos[U Unit](a qtty.Quantity[U]) (sin, cos float64) {
	return math.Sincos(ToRadians(a).Value())
}

// Signum returns 1 for +0 and positive values, -1 for -0 and negative
// values and NaN for NaN.
func Signum[U Unit](a qtty.Quantity[U]) float64 {
	v := a.Value()
	switch {
	case math.IsNaN(v):
		return math.NaN()
	case math.Signbit(v):
		return -1
	default:
		return 1
	}
}

// Normalize is WrapPos.
func Normalize[U Unit](a qtty.Quantity[U]) qtty.Quantity[U] {
	return WrapPos(a)
}

// WrapPos maps a into [0, FullTurn).
func WrapPos[U Unit](a qtty.Quantity[U]) qtty.Quantity[U] {
	return qtty.New[U](WrapValue(a.Value(), FullTurn[U](), RangePositive))
}

// WrapSigned maps a into (-HalfTurn, HalfTurn].
func WrapSigned[U Unit](a qtty.Quantity[U]) qtty.Quantity[U] {
	return qtty.New[U](WrapValue(a.Value(), FullTurn[U](), RangeSigned))
}

// WrapSignedLo maps a into [-HalfTurn, HalfTurn).
func WrapSignedLo[U Unit](a qtty.Quantity[U]) qtty.Quantity[U] {
	return qtty.New[U](WrapValue(a.Value(), FullTurn[U](), RangeSignedLo))
}

// WrapQuarterFold folds a into [-QuarterTurn, QuarterTurn] the way a
// latitude is folded: 100° becomes 80°, 180° becomes 0°.
func WrapQuarterFold[U Unit](a qtty.Quantity[U]) qtty.Quantity[U] {
	return qtty.New[U](WrapValue(a.Value(), FullTurn[U](), RangeQuarterFold))
}

// SignedSeparation returns the shortest signed angle from b to a, in
// (-HalfTurn, HalfTurn].
func SignedSeparation[U Unit](a, b qtty.Quantity[U]) qtty.Quantity[U] {
	return WrapSigned(a.Sub(b))
}

// AbsSeparation returns the magnitude of SignedSeparation, in [0, HalfTurn].
func AbsSeparation[U Unit](a, b qtty.Quantity[U]) qtty.Quantity[U] {
	return SignedSeparation(a, b).Abs()
}
