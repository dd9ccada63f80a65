package qtty

// Divide returns n / d as a quantity of the composite unit Per[N, D].
// The value is n.Value() / d.Value() with IEEE-754 semantics.
func Divide[N, D Unit](n Quantity[N], d Quantity[D]) Quantity[Per[N, D]] {
	return Quantity[Per[N, D]]{value: n.value / d.value}
}

// MulRate multiplies a rate in N per D by a quantity in D, yielding N.
func MulRate[N, D Unit](rate Quantity[Per[N, D]], d Quantity[D]) Quantity[N] {
	return Quantity[N]{value: rate.value * d.value}
}

// MulByRate is MulRate with its operands swapped.
func MulByRate[N, D Unit](d Quantity[D], rate Quantity[Per[N, D]]) Quantity[N] {
	return Quantity[N]{value: d.value * rate.value}
}
