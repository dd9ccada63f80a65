package unitgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `# fixture catalog
dimensions:
  - name: Length
    package: length
    id: 1
    range: [100, 103]
    doc: distances
  - name: Mass
    package: mass
    id: 4
    range: [400, 499]
    doc: masses

units:
  - {name: Meter, quantity: Meters, symbol: m, dimension: Length, ratio: "1.0", id: 100, doc: the SI unit of length.}
  - {name: Kilometer, quantity: Kilometers, symbol: Km, dimension: Length, ratio: "1_000.0", id: 102, doc: one thousand meters.}
  - {name: Gram, quantity: Grams, symbol: g, dimension: Mass, ratio: "1.0", id: 400, doc: one thousandth of a kilogram.}
`

func parseFixture(t *testing.T, extra string) *Catalog {
	t.Helper()
	c, err := Parse([]byte(fixture + extra))
	require.NoError(t, err)
	return c
}

func TestParse(t *testing.T) {
	c := parseFixture(t, "")

	require.Len(t, c.Dimensions, 2)
	assert.Equal(t, [2]uint32{100, 103}, c.Dimensions[0].Range)
	require.Len(t, c.Units, 3)
	assert.Equal(t, "1_000.0", c.Units[1].Ratio)
	assert.Equal(t, uint32(102), c.Units[1].ID)
	assert.NoError(t, c.Validate())

	_, err := Parse([]byte("units: [unclosed"))
	assert.Error(t, err)
}

func TestEvalRatio(t *testing.T) {
	tests := []struct {
		expr    string
		want    float64
		wantErr bool
	}{
		{"1.0", 1, false},
		{"1_000.0", 1000, false},
		{"1.0 / 86_400.0", 1.0 / 86_400.0, false},
		{"180.0 / 3.141592653589793", 180.0 / 3.141592653589793, false},
		{"3.26 * 9_460_730_472_580_000.8", 3.26 * 9_460_730_472_580_000.8, false},
		{"7", 7, false},
		{"0.0", 0, true},
		{"1e400", 0, true},
		{"1.0 / 0.0", 0, true},
		{`"meter"`, 0, true},
		{"x + 1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := EvalRatio(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  string
	}{
		{
			name:  "second canonical unit",
			extra: "  - {name: Yard, quantity: Yards, symbol: yd, dimension: Length, ratio: \"1.0\", id: 101, doc: a yard.}\n",
			want:  "several canonical units",
		},
		{
			name:  "duplicate symbol",
			extra: "  - {name: Mile, quantity: Miles, symbol: Km, dimension: Length, ratio: \"1609.344\", id: 101, doc: a mile.}\n",
			want:  `symbol "Km" already used by Kilometer`,
		},
		{
			name:  "id outside range",
			extra: "  - {name: Mile, quantity: Miles, symbol: mi, dimension: Length, ratio: \"1609.344\", id: 150, doc: a mile.}\n",
			want:  "outside Length range",
		},
		{
			name:  "duplicate id",
			extra: "  - {name: Mile, quantity: Miles, symbol: mi, dimension: Length, ratio: \"1609.344\", id: 102, doc: a mile.}\n",
			want:  "id 102 already used by Kilometer",
		},
		{
			name:  "unknown dimension",
			extra: "  - {name: Watt, quantity: Watts, symbol: W, dimension: Power, ratio: \"1.0\", id: 500, doc: a watt.}\n",
			want:  `unknown dimension "Power"`,
		},
		{
			name:  "zero ratio",
			extra: "  - {name: Mile, quantity: Miles, symbol: mi, dimension: Length, ratio: \"0.0\", id: 101, doc: a mile.}\n",
			want:  "finite and non-zero",
		},
		{
			name:  "duplicate name",
			extra: "  - {name: Meter, quantity: Metres, symbol: mm, dimension: Length, ratio: \"2.0\", id: 101, doc: again.}\n",
			want:  "identifier Meter declared twice",
		},
		{
			name:  "bad symbol",
			extra: "  - {name: Mile, quantity: Miles, symbol: \"m i\", dimension: Length, ratio: \"1609.344\", id: 101, doc: a mile.}\n",
			want:  "unit Mile",
		},
		{
			name:  "unexported name",
			extra: "  - {name: mile, quantity: Miles, symbol: mi, dimension: Length, ratio: \"1609.344\", id: 101, doc: a mile.}\n",
			want:  "exported Go name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseFixture(t, tt.extra).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_Dimensions(t *testing.T) {
	c := parseFixture(t, "")
	c.Dimensions = append(c.Dimensions, Dimension{
		Name: "Time", Package: "mass", ID: 4, Range: [2]uint32{450, 460}, Doc: "durations",
	})

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "id 4 already used by Mass")
	assert.Contains(t, msg, `package "mass" already used by Mass`)
	assert.Contains(t, msg, "overlapping id ranges")
	assert.Contains(t, msg, "dimension Time: no canonical unit")
}

func TestAssignIDs(t *testing.T) {
	c := parseFixture(t, ""+
		"  - {name: Mile, quantity: Miles, symbol: mi, dimension: Length, ratio: \"1609.344\", doc: a mile.}\n"+
		"  - {name: Yard, quantity: Yards, symbol: yd, dimension: Length, ratio: \"0.9144\", doc: a yard.}\n"+
		"  - {name: Kilogram, quantity: Kilograms, symbol: Kg, dimension: Mass, ratio: \"1_000.0\", doc: a kilogram.}\n")

	assigned, err := c.AssignIDs()
	require.NoError(t, err)
	require.Len(t, assigned, 3)

	assert.Equal(t, "Mile", assigned[0].Name)
	assert.Equal(t, uint32(101), assigned[0].ID)
	assert.Equal(t, uint32(103), assigned[1].ID)
	assert.Equal(t, uint32(401), assigned[2].ID)

	// Existing ids are untouched.
	assert.Equal(t, uint32(100), c.Units[0].ID)
	assert.Equal(t, uint32(102), c.Units[1].ID)
	assert.NoError(t, c.Validate())

	again, err := c.AssignIDs()
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestAssignIDs_Exhausted(t *testing.T) {
	c := parseFixture(t, ""+
		"  - {name: Mile, quantity: Miles, symbol: mi, dimension: Length, ratio: \"1609.344\", doc: a mile.}\n"+
		"  - {name: Yard, quantity: Yards, symbol: yd, dimension: Length, ratio: \"0.9144\", doc: a yard.}\n"+
		"  - {name: Foot, quantity: Feet, symbol: ft, dimension: Length, ratio: \"0.3048\", doc: a foot.}\n")

	_, err := c.AssignIDs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unit Foot")
	assert.Contains(t, err.Error(), "exhausted")
}

func TestWriteBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	extra := "  - {name: Mile, quantity: Miles, symbol: mi, dimension: Length, ratio: \"1609.344\", doc: a mile.}\n"
	require.NoError(t, os.WriteFile(path, []byte(fixture+extra), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assigned, err := c.AssignIDs()
	require.NoError(t, err)
	require.NoError(t, WriteBack(path, assigned))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# fixture catalog")

	reloaded, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, reloaded.Units, 4)
	assert.Equal(t, uint32(101), reloaded.Units[3].ID)
	assert.Equal(t, uint32(102), reloaded.Units[1].ID)
	assert.Equal(t, "1_000.0", reloaded.Units[1].Ratio)
	assert.NoError(t, reloaded.Validate())

	assert.NoError(t, WriteBack(path, nil))
	err = WriteBack(path, []Unit{{Name: "Furlong", ID: 103}})
	assert.ErrorContains(t, err, "not found")
}

func TestRenderPackage(t *testing.T) {
	c := parseFixture(t, "")
	d, ok := c.Dimension("Length")
	require.True(t, ok)

	src, err := c.RenderPackage(d, "fixture.yaml")
	require.NoError(t, err)
	out := string(src)

	for _, want := range []string{
		"// Code generated by unitgen from fixture.yaml. DO NOT EDIT.",
		"package length",
		"type Length struct{}",
		"func (Length) isLength() {}",
		"type Kilometer struct{ Length }",
		"func (Kilometer) Ratio() float64 { return 1_000.0 }",
		`func (Kilometer) Symbol() string { return "Km" }`,
		"type Kilometers = qtty.Quantity[Kilometer]",
		"func NewMeters(v float64) Meters { return qtty.New[Meter](v) }",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Gram")
}

func TestRenderRegistry(t *testing.T) {
	c := parseFixture(t, "  - {name: Centimeter, quantity: Centimeters, symbol: cm, dimension: Length, ratio: \"0.01\", id: 101, doc: a centimeter.}\n")

	src, err := c.RenderRegistry("fixture.yaml")
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, `"github.com/opd-ai/go-qtty/pkg/qtty/length"`)
	assert.Contains(t, out, "DimMass   DimensionID = 4")
	assert.Contains(t, out, `{ID: Centimeter, Dimension: DimLength, Name: "Centimeter", Symbol: "cm", Unit: length.Centimeter{}},`)

	// Rows are ordered by id, not by catalog order.
	meter := strings.Index(out, "{ID: Meter,")
	centi := strings.Index(out, "{ID: Centimeter,")
	kilo := strings.Index(out, "{ID: Kilometer,")
	assert.True(t, meter < centi && centi < kilo, "rows out of id order:\n%s", out)

	c.Units[0].ID = 0
	_, err = c.RenderRegistry("fixture.yaml")
	assert.ErrorContains(t, err, "Meter has no id")
}

func TestGenerateAndWriteFiles(t *testing.T) {
	c := parseFixture(t, "")
	files, err := c.Generate("fixture.yaml")
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "pkg/qtty/length/zz_generated_units.go", files[0].Path)
	assert.Equal(t, "pkg/qtty/mass/zz_generated_units.go", files[1].Path)
	assert.Equal(t, RegistryFile, files[2].Path)

	root := t.TempDir()
	written, err := WriteFiles(root, files)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	written, err = WriteFiles(root, files)
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestRepositoryCatalog(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "catalog", "units.yaml"))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	for _, u := range c.Units {
		assert.NotZero(t, u.ID, "unit %s must carry a permanent id", u.Name)
	}

	files, err := c.Generate("catalog/units.yaml")
	require.NoError(t, err)
	for _, f := range files {
		committed, err := os.ReadFile(filepath.Join("..", "..", filepath.FromSlash(f.Path)))
		require.NoError(t, err, f.Path)
		assert.Contains(t, string(committed), "// Code generated by unitgen from catalog/units.yaml. DO NOT EDIT.", f.Path)
	}
}
