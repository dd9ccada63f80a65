// Package chrono provides units of time, from the millisecond to the Julian
// century. The canonical unit is Day.
//
// The package is not called time so that it can be imported next to the
// standard library package.
package chrono
