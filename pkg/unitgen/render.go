package unitgen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path"
	"path/filepath"
	"sort"
	"text/template"
)

// GeneratedFile is the name of the per-dimension output file.
const GeneratedFile = "zz_generated_units.go"

// RegistryFile is the path of the registry table, relative to the module root.
const RegistryFile = "pkg/registry/zz_generated_table.go"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// File is one rendered source file. Path is relative to the module root.
type File struct {
	Path    string
	Content []byte
}

type unitsData struct {
	Source    string
	Dimension Dimension
	Marker    string
	Units     []Unit
}

type registryUnit struct {
	Unit
	Package string
}

type registryData struct {
	Source     string
	Dimensions []Dimension
	Units      []registryUnit
}

// PackagePath returns the directory of a dimension package relative to the
// module root.
func PackagePath(d Dimension) string {
	return path.Join("pkg/qtty", d.Package)
}

// RenderPackage renders the unit types of dimension d. source names the
// catalog in the generated header.
func (c *Catalog) RenderPackage(d Dimension, source string) ([]byte, error) {
	return render("units.go.tmpl", unitsData{
		Source:    source,
		Dimension: d,
		Marker:    "is" + d.Name,
		Units:     c.UnitsOf(d.Name),
	})
}

// RenderRegistry renders the registry id table, ordered by unit id.
func (c *Catalog) RenderRegistry(source string) ([]byte, error) {
	data := registryData{Source: source}

	dims := make(map[string]Dimension, len(c.Dimensions))
	data.Dimensions = append(data.Dimensions, c.Dimensions...)
	sort.Slice(data.Dimensions, func(i, j int) bool { return data.Dimensions[i].ID < data.Dimensions[j].ID })
	for _, d := range c.Dimensions {
		dims[d.Name] = d
	}

	for _, u := range c.Units {
		if u.ID == 0 {
			return nil, fmt.Errorf("unit %s has no id", u.Name)
		}
		data.Units = append(data.Units, registryUnit{Unit: u, Package: dims[u.Dimension].Package})
	}
	sort.Slice(data.Units, func(i, j int) bool { return data.Units[i].ID < data.Units[j].ID })

	return render("registry.go.tmpl", data)
}

// Generate renders every output file of the catalog.
func (c *Catalog) Generate(source string) ([]File, error) {
	var files []File
	for _, d := range c.Dimensions {
		src, err := c.RenderPackage(d, source)
		if err != nil {
			return nil, fmt.Errorf("dimension %s: %w", d.Name, err)
		}
		files = append(files, File{Path: path.Join(PackagePath(d), GeneratedFile), Content: src})
	}

	src, err := c.RenderRegistry(source)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	files = append(files, File{Path: RegistryFile, Content: src})
	return files, nil
}

// WriteFiles writes files below root. Files whose content is unchanged are
// left alone; the returned slice lists the paths that were written.
func WriteFiles(root string, files []File) ([]string, error) {
	var written []string
	for _, f := range files {
		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if old, err := os.ReadFile(target); err == nil && bytes.Equal(old, f.Content) {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", target, err)
		}
		written = append(written, f.Path)
	}
	return written, nil
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return src, nil
}
