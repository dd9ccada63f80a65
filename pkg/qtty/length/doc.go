// Package length provides units of distance, from the meter up to the parsec.
// The canonical unit is Meter.
package length
