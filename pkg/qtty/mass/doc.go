// Package mass provides units of mass. The canonical unit is Gram.
package mass
