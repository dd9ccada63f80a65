package length

import "github.com/opd-ai/go-qtty/pkg/qtty"

// ToUnitless drops the unit of q and keeps its value as expressed in U, so
// 3 Km becomes 3.
func ToUnitless[U Unit](q qtty.Quantity[U]) qtty.Quantity[qtty.Unitless] {
	return qtty.New[qtty.Unitless](q.Value())
}
