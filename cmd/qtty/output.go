package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/opd-ai/go-qtty/pkg/config"
	"github.com/opd-ai/go-qtty/pkg/parse"
	"github.com/opd-ai/go-qtty/pkg/registry"
)

// printer renders results according to the output configuration.
type printer struct {
	w   io.Writer
	cfg config.OutputConfig
}

func (a *app) printer() printer {
	return printer{w: a.stdout, cfg: a.cfg.Output}
}

func (p printer) json() bool {
	return p.cfg.Format == config.FormatJSON
}

// number formats v with the configured precision and digit grouping.
// Grouped output drops trailing zeros.
func (p printer) number(v float64) string {
	if !p.cfg.Grouping {
		return strconv.FormatFloat(v, 'f', p.cfg.Precision, 64)
	}
	if p.cfg.Precision == config.ShortestPrecision {
		return humanize.Commaf(v)
	}
	// CommafWithDigits truncates, so round first.
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', p.cfg.Precision, 64), 64)
	if err != nil {
		rounded = v
	}
	return humanize.CommafWithDigits(rounded, p.cfg.Precision)
}

func (p printer) expr(e parse.Expr) string {
	return p.number(e.Value) + " " + e.Units.String()
}

func (p printer) quantity(q registry.Quantity) string {
	return p.expr(parse.Expr{Value: q.Value, Units: parse.Units{Num: q.Unit}})
}

func (p printer) line(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}

func (p printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	return enc.Encode(v)
}

// carrier returns the registry value behind e, which marshals to the JSON
// transport form.
func carrier(e parse.Expr) any {
	if e.Units.IsRate {
		return registry.Rate{Value: e.Value, Num: e.Units.Num, Den: e.Units.Den}
	}
	return registry.Quantity{Value: e.Value, Unit: e.Units.Num}
}

// printExpr writes e as text or in its JSON transport form.
func (p printer) printExpr(e parse.Expr) error {
	if p.json() {
		return p.writeJSON(carrier(e))
	}
	return p.line(p.expr(e))
}
