package qtty

import "math"

// SimplifyRatio collapses U/U into a plain number. The value is unchanged.
func SimplifyRatio[U Unit](q Quantity[Per[U, U]]) Quantity[Unitless] {
	return Quantity[Unitless]{value: q.value}
}

// SimplifyQuotient collapses N/(N/D) into D. The value is unchanged.
func SimplifyQuotient[N, D Unit](q Quantity[Per[N, Per[N, D]]]) Quantity[D] {
	return Quantity[D]{value: q.value}
}

// Asin returns the arcsine, in radians, of a same-unit ratio.
func Asin[U Unit](q Quantity[Per[U, U]]) float64 {
	return math.Asin(q.value)
}
