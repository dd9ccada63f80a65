// Package power provides units of power. The canonical unit is Watt.
package power
