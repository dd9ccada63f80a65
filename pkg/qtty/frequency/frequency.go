// Package frequency names the common Angle/Time composite units, such as
// the proper motion of a star or the rotation rate of a planet.
package frequency

import (
	"github.com/opd-ai/go-qtty/pkg/qtty"
	"github.com/opd-ai/go-qtty/pkg/qtty/angular"
	"github.com/opd-ai/go-qtty/pkg/qtty/chrono"
)

// Dimension is Angle/Time.
var Dimension qtty.Dimension = qtty.DivDim{Num: angular.Angle{}, Den: chrono.Time{}}

// Is reports whether u is an angular frequency unit.
func Is(u qtty.Unit) bool {
	return u.Dimension() == Dimension
}

type (
	RadianPerSecond  = qtty.Per[angular.Radian, chrono.Second]
	RadiansPerSecond = qtty.Quantity[RadianPerSecond]

	RadianPerDay  = qtty.Per[angular.Radian, chrono.Day]
	RadiansPerDay = qtty.Quantity[RadianPerDay]

	DegreePerSecond  = qtty.Per[angular.Degree, chrono.Second]
	DegreesPerSecond = qtty.Quantity[DegreePerSecond]

	DegreePerHour  = qtty.Per[angular.Degree, chrono.Hour]
	DegreesPerHour = qtty.Quantity[DegreePerHour]

	DegreePerDay  = qtty.Per[angular.Degree, chrono.Day]
	DegreesPerDay = qtty.Quantity[DegreePerDay]

	DegreePerYear  = qtty.Per[angular.Degree, chrono.Year]
	DegreesPerYear = qtty.Quantity[DegreePerYear]

	ArcsecondPerYear  = qtty.Per[angular.Arcsecond, chrono.Year]
	ArcsecondsPerYear = qtty.Quantity[ArcsecondPerYear]

	MilliArcsecondPerDay  = qtty.Per[angular.MilliArcsecond, chrono.Day]
	MilliArcsecondsPerDay = qtty.Quantity[MilliArcsecondPerDay]

	MilliArcsecondPerYear  = qtty.Per[angular.MilliArcsecond, chrono.Year]
	MilliArcsecondsPerYear = qtty.Quantity[MilliArcsecondPerYear]
)
