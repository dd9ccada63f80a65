// Package unitgen turns the declarative unit catalog into Go source: one
// file of unit types per dimension package and the registry id table.
package unitgen

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-qtty/pkg/validation"
)

// Catalog is the decoded form of catalog/units.yaml.
type Catalog struct {
	Dimensions []Dimension `yaml:"dimensions"`
	Units      []Unit      `yaml:"units"`
}

// Dimension declares a dimension and the package its units live in.
type Dimension struct {
	Name    string    `yaml:"name"`
	Package string    `yaml:"package"`
	ID      uint32    `yaml:"id"`
	Range   [2]uint32 `yaml:"range"`
	Doc     string    `yaml:"doc"`
}

// Unit declares one unit. Ratio is a Go constant expression.
type Unit struct {
	Name      string `yaml:"name"`
	Quantity  string `yaml:"quantity"`
	Symbol    string `yaml:"symbol"`
	Dimension string `yaml:"dimension"`
	Ratio     string `yaml:"ratio"`
	ID        uint32 `yaml:"id,omitempty"`
	Doc       string `yaml:"doc"`
}

// Load reads and decodes the catalog at path. It does not validate it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// Dimension returns the declared dimension called name.
func (c *Catalog) Dimension(name string) (Dimension, bool) {
	for _, d := range c.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}

// UnitsOf returns the units of the dimension called name in catalog order.
func (c *Catalog) UnitsOf(name string) []Unit {
	var out []Unit
	for _, u := range c.Units {
		if u.Dimension == name {
			out = append(out, u)
		}
	}
	return out
}

// Validate reports every problem in the catalog at once.
func (c *Catalog) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(c.Dimensions) == 0 {
		fail("catalog declares no dimensions")
	}

	dimIDs := make(map[uint32]string)
	packages := make(map[string]string)
	for _, d := range c.Dimensions {
		if err := validation.ValidateIdentifier(d.Name); err != nil {
			fail("dimension %q: %w", d.Name, err)
		}
		if err := validation.ValidatePackageName(d.Package); err != nil {
			fail("dimension %s: %w", d.Name, err)
		}
		if err := validation.ValidateDocComment(d.Doc); err != nil {
			fail("dimension %s: %w", d.Name, err)
		}
		if err := validation.ValidateIDRange(d.Range[0], d.Range[1]); err != nil {
			fail("dimension %s: %w", d.Name, err)
		}
		if d.ID == 0 {
			fail("dimension %s: id must be set", d.Name)
		} else if other, ok := dimIDs[d.ID]; ok {
			fail("dimension %s: id %d already used by %s", d.Name, d.ID, other)
		}
		dimIDs[d.ID] = d.Name
		if other, ok := packages[d.Package]; ok {
			fail("dimension %s: package %q already used by %s", d.Name, d.Package, other)
		}
		packages[d.Package] = d.Name
	}
	for i, a := range c.Dimensions {
		for _, b := range c.Dimensions[i+1:] {
			if a.Range[0] <= b.Range[1] && b.Range[0] <= a.Range[1] {
				fail("dimensions %s and %s have overlapping id ranges", a.Name, b.Name)
			}
		}
	}

	names := make(map[string]bool)
	symbols := make(map[string]string)
	unitIDs := make(map[uint32]string)
	canonical := make(map[string][]string)
	for _, u := range c.Units {
		for _, ident := range []string{u.Name, u.Quantity} {
			if err := validation.ValidateIdentifier(ident); err != nil {
				fail("unit %q: %w", u.Name, err)
			}
			if names[ident] {
				fail("unit %s: identifier %s declared twice", u.Name, ident)
			}
			names[ident] = true
		}
		if err := validation.ValidateSymbol(u.Symbol); err != nil {
			fail("unit %s: %w", u.Name, err)
		} else if other, ok := symbols[u.Symbol]; ok {
			fail("unit %s: symbol %q already used by %s", u.Name, u.Symbol, other)
		}
		symbols[u.Symbol] = u.Name
		if err := validation.ValidateDocComment(u.Doc); err != nil {
			fail("unit %s: %w", u.Name, err)
		}

		d, ok := c.Dimension(u.Dimension)
		if !ok {
			fail("unit %s: unknown dimension %q", u.Name, u.Dimension)
			continue
		}

		ratio, err := EvalRatio(u.Ratio)
		if err != nil {
			fail("unit %s: %w", u.Name, err)
		} else if ratio == 1 {
			canonical[d.Name] = append(canonical[d.Name], u.Name)
		}

		if u.ID != 0 {
			if u.ID < d.Range[0] || u.ID > d.Range[1] {
				fail("unit %s: id %d outside %s range [%d, %d]", u.Name, u.ID, d.Name, d.Range[0], d.Range[1])
			}
			if other, ok := unitIDs[u.ID]; ok {
				fail("unit %s: id %d already used by %s", u.Name, u.ID, other)
			}
			unitIDs[u.ID] = u.Name
		}
	}

	for _, d := range c.Dimensions {
		switch n := len(canonical[d.Name]); {
		case n == 0:
			fail("dimension %s: no canonical unit (ratio 1)", d.Name)
		case n > 1:
			fail("dimension %s: several canonical units %v", d.Name, canonical[d.Name])
		}
	}

	return errors.Join(errs...)
}

// AssignIDs gives every unit without an id the lowest free id in its
// dimension's range. Existing ids are never changed. It returns the units
// that received an id.
func (c *Catalog) AssignIDs() ([]Unit, error) {
	used := make(map[uint32]bool)
	for _, u := range c.Units {
		if u.ID != 0 {
			used[u.ID] = true
		}
	}

	var assigned []Unit
	for i := range c.Units {
		u := &c.Units[i]
		if u.ID != 0 {
			continue
		}
		d, ok := c.Dimension(u.Dimension)
		if !ok {
			return nil, fmt.Errorf("unit %s: unknown dimension %q", u.Name, u.Dimension)
		}
		id, err := nextFree(d, used)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", u.Name, err)
		}
		u.ID = id
		used[id] = true
		assigned = append(assigned, *u)
	}
	return assigned, nil
}

func nextFree(d Dimension, used map[uint32]bool) (uint32, error) {
	for id := d.Range[0]; id <= d.Range[1] && id >= d.Range[0]; id++ {
		if !used[id] {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%s id range [%d, %d] is exhausted", d.Name, d.Range[0], d.Range[1])
}

// EvalRatio evaluates a ratio expression the way the Go compiler will and
// rejects values that are not finite and non-zero.
func EvalRatio(expr string) (float64, error) {
	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, expr)
	if err != nil {
		return 0, fmt.Errorf("ratio %q: %w", expr, err)
	}
	if tv.Value == nil {
		return 0, fmt.Errorf("ratio %q is not a constant expression", expr)
	}

	v := constant.ToFloat(tv.Value)
	if v.Kind() != constant.Float && v.Kind() != constant.Int {
		return 0, fmt.Errorf("ratio %q is not numeric", expr)
	}

	f, _ := constant.Float64Val(v)
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("ratio %q must be finite and non-zero, got %v", expr, f)
	}
	return f, nil
}
