// Package velocity names the common Length/Time composite units.
package velocity

import (
	"github.com/opd-ai/go-qtty/pkg/qtty"
	"github.com/opd-ai/go-qtty/pkg/qtty/chrono"
	"github.com/opd-ai/go-qtty/pkg/qtty/length"
)

// Dimension is Length/Time.
var Dimension qtty.Dimension = qtty.DivDim{Num: length.Length{}, Den: chrono.Time{}}

// Is reports whether u is a velocity unit.
func Is(u qtty.Unit) bool {
	return u.Dimension() == Dimension
}

type (
	MeterPerSecond  = qtty.Per[length.Meter, chrono.Second]
	MetersPerSecond = qtty.Quantity[MeterPerSecond]

	MeterPerHour  = qtty.Per[length.Meter, chrono.Hour]
	MetersPerHour = qtty.Quantity[MeterPerHour]

	MeterPerDay  = qtty.Per[length.Meter, chrono.Day]
	MetersPerDay = qtty.Quantity[MeterPerDay]

	KilometerPerSecond  = qtty.Per[length.Kilometer, chrono.Second]
	KilometersPerSecond = qtty.Quantity[KilometerPerSecond]

	KilometerPerHour  = qtty.Per[length.Kilometer, chrono.Hour]
	KilometersPerHour = qtty.Quantity[KilometerPerHour]

	KilometerPerDay  = qtty.Per[length.Kilometer, chrono.Day]
	KilometersPerDay = qtty.Quantity[KilometerPerDay]

	AuPerSecond  = qtty.Per[length.AstronomicalUnit, chrono.Second]
	AusPerSecond = qtty.Quantity[AuPerSecond]

	AuPerHour  = qtty.Per[length.AstronomicalUnit, chrono.Hour]
	AusPerHour = qtty.Quantity[AuPerHour]

	AuPerDay  = qtty.Per[length.AstronomicalUnit, chrono.Day]
	AusPerDay = qtty.Quantity[AuPerDay]
)
