// Package qtty provides strongly typed physical quantities.
//
// A Quantity is a float64 tagged at compile time with a Unit. Units are
// zero-size struct types that embed the tag of the Dimension they measure,
// so conversion between two units of the same dimension is a multiplication
// by the ratio of their scale factors and mixing a length with a time in an
// addition does not compile.
//
// Concrete units live in the sub-packages (length, chrono, mass, power,
// angular) and are generated from catalog/units.yaml by cmd/unitgen.
// Derived units are built with Per:
//
//	d := length.NewKilometers(1000)
//	t := chrono.NewSeconds(100)
//	v := qtty.Divide(d, t) // qtty.Quantity[qtty.Per[length.Kilometer, chrono.Second]]
package qtty

//go:generate go run ../../cmd/unitgen --catalog ../../catalog/units.yaml --out ../..
