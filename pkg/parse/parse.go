// Package parse reads quantity expressions such as "12.5 Km", "-3e2 Deg" or
// "1 Au/d" into registry carriers.
package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/opd-ai/go-qtty/pkg/registry"
	"github.com/opd-ai/go-qtty/pkg/validation"
)

var (
	// ErrSyntax is returned for input that does not match the grammar.
	ErrSyntax = errors.New("invalid quantity expression")

	// ErrShape is returned when a plain quantity is given where a rate is
	// required, or the other way around.
	ErrShape = errors.New("wrong expression shape")
)

//nolint:govet // participle grammar tags are not standard struct tags
type exprGrammar struct {
	Value float64   `parser:"@Number"`
	Unit  *unitPart `parser:"@@"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type unitPart struct {
	Num string  `parser:"@Unit"`
	Den *string `parser:"( \"/\" @Unit )?"`
}

// exprLexer tokenises expressions. Unit tokens start with a letter or a
// symbol rune so that "M☉" and "L☉" lex as one token.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Unit", Pattern: `[\p{L}\p{So}_][\p{L}\p{N}\p{So}_]*`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	exprParser = participle.MustBuild[exprGrammar](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
	)
	unitParser = participle.MustBuild[unitPart](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
	)
)

// Units is a parsed unit or unit quotient.
type Units struct {
	Num registry.UnitID
	// Den is zero unless IsRate.
	Den    registry.UnitID
	IsRate bool
}

// String renders u as "<num>" or "<num>/<den>" using unit symbols.
func (u Units) String() string {
	s := symbol(u.Num)
	if u.IsRate {
		s += "/" + symbol(u.Den)
	}
	return s
}

// Expr is a parsed expression: a value and its units.
type Expr struct {
	Value float64
	Units Units
}

// String renders e the way it would be typed back in.
func (e Expr) String() string {
	return strconv.FormatFloat(e.Value, 'f', -1, 64) + " " + e.Units.String()
}

// Quantity returns e as a registry.Quantity. Rates fail with ErrShape.
func (e Expr) Quantity() (registry.Quantity, error) {
	if e.Units.IsRate {
		return registry.Quantity{}, fmt.Errorf("%w: %q is a rate", ErrShape, e.String())
	}
	return registry.Quantity{Value: e.Value, Unit: e.Units.Num}, nil
}

// Rate returns e as a registry.Rate. Plain quantities fail with ErrShape.
func (e Expr) Rate() (registry.Rate, error) {
	if !e.Units.IsRate {
		return registry.Rate{}, fmt.Errorf("%w: %q is not a rate", ErrShape, e.String())
	}
	return registry.Rate{Value: e.Value, Num: e.Units.Num, Den: e.Units.Den}, nil
}

// ConvertTo expresses e in target. Both must have the same shape and each
// unit must share the dimension of the unit it replaces.
func (e Expr) ConvertTo(target Units) (Expr, error) {
	if e.Units.IsRate != target.IsRate {
		return Expr{}, fmt.Errorf("%w: cannot convert %s to %s", ErrShape, e.Units, target)
	}
	if !e.Units.IsRate {
		v, err := registry.Convert(e.Value, e.Units.Num, target.Num)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Value: v, Units: target}, nil
	}
	r, err := registry.Rate{Value: e.Value, Num: e.Units.Num, Den: e.Units.Den}.Convert(target.Num, target.Den)
	if err != nil {
		return Expr{}, err
	}
	return Expr{Value: r.Value, Units: target}, nil
}

// Expression parses "<number> <unit>" or "<number> <unit>/<unit>". Units
// may be given by symbol ("Km") or by name ("Kilometer").
func Expression(s string) (Expr, error) {
	s, err := validation.ValidateExpression(s)
	if err != nil {
		return Expr{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	parsed, err := exprParser.ParseString("", s)
	if err != nil {
		return Expr{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}

	units, err := resolve(parsed.Unit)
	if err != nil {
		return Expr{}, err
	}
	return Expr{Value: parsed.Value, Units: units}, nil
}

// Quantity parses a plain quantity such as "4.24 Ly".
func Quantity(s string) (registry.Quantity, error) {
	e, err := Expression(s)
	if err != nil {
		return registry.Quantity{}, err
	}
	return e.Quantity()
}

// Rate parses a rate such as "29.78 Km/sec".
func Rate(s string) (registry.Rate, error) {
	e, err := Expression(s)
	if err != nil {
		return registry.Rate{}, err
	}
	return e.Rate()
}

// Unit parses a unit or quotient with no value, such as "Km/h".
func Unit(s string) (Units, error) {
	s, err := validation.ValidateExpression(s)
	if err != nil {
		return Units{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	parsed, err := unitParser.ParseString("", s)
	if err != nil {
		return Units{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}
	return resolve(parsed)
}

func resolve(p *unitPart) (Units, error) {
	num, err := registry.Resolve(p.Num)
	if err != nil {
		return Units{}, err
	}
	if p.Den == nil {
		return Units{Num: num}, nil
	}
	den, err := registry.Resolve(*p.Den)
	if err != nil {
		return Units{}, err
	}
	return Units{Num: num, Den: den, IsRate: true}, nil
}

func symbol(id registry.UnitID) string {
	if m, err := registry.Lookup(id); err == nil {
		return m.Symbol
	}
	return id.String()
}
