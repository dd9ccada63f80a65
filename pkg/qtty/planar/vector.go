// Package planar provides two-dimensional vectors whose components are
// typed quantities, such as an offset on the sky in arcseconds or a
// displacement in kilometers.
package planar

import (
	"math"

	"github.com/opd-ai/go-qtty/pkg/qtty"
	"github.com/opd-ai/go-qtty/pkg/qtty/angular"
)

// Vector is a 2D vector with both components in unit U.
type Vector[U qtty.Unit] struct {
	X qtty.Quantity[U]
	Y qtty.Quantity[U]
}

// New returns the vector (x, y) in unit U.
func New[U qtty.Unit](x, y float64) Vector[U] {
	return Vector[U]{X: qtty.New[U](x), Y: qtty.New[U](y)}
}

// Add returns the sum of two vectors
func (v Vector[U]) Add(other Vector[U]) Vector[U] {
	return Vector[U]{X: v.X.Add(other.X), Y: v.Y.Add(other.Y)}
}

// Sub returns the difference between two vectors
func (v Vector[U]) Sub(other Vector[U]) Vector[U] {
	return Vector[U]{X: v.X.Sub(other.X), Y: v.Y.Sub(other.Y)}
}

// Scale multiplies the vector by a scalar value
func (v Vector[U]) Scale(factor float64) Vector[U] {
	return Vector[U]{X: v.X.Scale(factor), Y: v.Y.Scale(factor)}
}

// Length returns the magnitude of the vector
func (v Vector[U]) Length() qtty.Quantity[U] {
	return qtty.New[U](math.Hypot(v.X.Value(), v.Y.Value()))
}

// LengthSquared returns the squared magnitude as a bare number in U².
func (v Vector[U]) LengthSquared() float64 {
	x, y := v.X.Value(), v.Y.Value()
	return x*x + y*y
}

// Normalize returns a vector of length one in the same direction. The zero
// vector stays zero.
func (v Vector[U]) Normalize() Vector[U] {
	length := v.Length().Value()
	if length == 0 {
		return Vector[U]{}
	}
	return v.Scale(1 / length)
}

// Distance returns the distance between two points
func (v Vector[U]) Distance(other Vector[U]) qtty.Quantity[U] {
	return v.Sub(other).Length()
}

// Dot returns the dot product as a bare number in U².
func (v Vector[U]) Dot(other Vector[U]) float64 {
	return v.X.Value()*other.X.Value() + v.Y.Value()*other.Y.Value()
}

// Angle returns the direction of the vector, measured counterclockwise
// from the X axis, in [-π, π].
func (v Vector[U]) Angle() angular.Radians {
	return angular.NewRadians(math.Atan2(v.Y.Value(), v.X.Value()))
}

// Rotate rotates the vector counterclockwise by angle.
func Rotate[U qtty.Unit, A angular.Unit](v Vector[U], angle qtty.Quantity[A]) Vector[U] {
	sin, cos := angular.SinCos(angle)
	x, y := v.X.Value(), v.Y.Value()
	return New[U](x*cos-y*sin, x*sin+y*cos)
}

// FromPolar creates a vector from a direction and a magnitude.
func FromPolar[U qtty.Unit, A angular.Unit](angle qtty.Quantity[A], magnitude qtty.Quantity[U]) Vector[U] {
	sin, cos := angular.SinCos(angle)
	return Vector[U]{X: magnitude.Scale(cos), Y: magnitude.Scale(sin)}
}

// Convert expresses both components of v in T. Dimensions are checked as
// for qtty.Convert.
func Convert[T, U qtty.Unit](v Vector[U]) (Vector[T], error) {
	x, err := qtty.Convert[T](v.X)
	if err != nil {
		return Vector[T]{}, err
	}
	y, err := qtty.Convert[T](v.Y)
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{X: x, Y: y}, nil
}
