package qtty

// Dimension identifies a physical dimension such as length or time.
//
// Concrete dimensions are comparable zero-size structs, so two Dimension
// values are equal exactly when they name the same dimension.
type Dimension interface {
	DimensionName() string
}

// Unit is a unit of measure bound to exactly one Dimension.
//
// Ratio reports how many canonical units of the dimension one of this unit
// spans. The canonical unit of a dimension has a ratio of 1. Units carry no
// state and are only ever used through their zero value.
type Unit interface {
	Ratio() float64
	Symbol() string
	Dimension() Dimension
}

// Dimensionless is the dimension of pure numbers.
type Dimensionless struct{}

// DimensionName returns "Dimensionless".
func (Dimensionless) DimensionName() string { return "Dimensionless" }

// Dimension returns the Dimensionless tag. Units embedding the tag inherit it.
func (Dimensionless) Dimension() Dimension { return Dimensionless{} }

// Unitless is the unit of a plain number.
type Unitless struct{ Dimensionless }

// Ratio returns 1.
func (Unitless) Ratio() float64 { return 1 }

// Symbol returns the empty string.
func (Unitless) Symbol() string { return "" }

// DivDim is the dimension of a quotient of two dimensions.
// Two DivDim values are equal when both numerator and denominator are.
type DivDim struct {
	Num Dimension
	Den Dimension
}

// DimensionName returns "<num>/<den>".
func (d DivDim) DimensionName() string {
	return d.Num.DimensionName() + "/" + d.Den.DimensionName()
}

// Per is the unit N divided by the unit D.
type Per[N, D Unit] struct{}

// Ratio returns the ratio of N divided by the ratio of D.
func (Per[N, D]) Ratio() float64 {
	var n N
	var d D
	return n.Ratio() / d.Ratio()
}

// Symbol returns "<N>/<D>".
func (Per[N, D]) Symbol() string {
	var n N
	var d D
	return n.Symbol() + "/" + d.Symbol()
}

// Dimension returns DivDim{N's dimension, D's dimension}.
func (Per[N, D]) Dimension() Dimension {
	var n N
	var d D
	return DivDim{Num: n.Dimension(), Den: d.Dimension()}
}

// SameDimension reports whether a and b measure the same dimension.
func SameDimension(a, b Unit) bool {
	return a.Dimension() == b.Dimension()
}
