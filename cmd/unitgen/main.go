// cmd/unitgen/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-qtty/pkg/logging"
	"github.com/opd-ai/go-qtty/pkg/unitgen"
)

type options struct {
	catalog   string
	out       string
	writeBack bool
	check     bool
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd(logging.NewLogger()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(logger *logging.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "unitgen",
		Short: "Generate unit types and the registry table from the unit catalog",
		Long: `unitgen reads the unit catalog and writes one zz_generated_units.go
per dimension package plus the registry id table.

Units added without an id get the lowest free id of their dimension when
--write-back is set; the id is then stored in the catalog for good.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithCorrelationID(cmd.Context(), "")
			return run(ctx, opts, logger)
		},
	}

	cmd.Flags().StringVar(&opts.catalog, "catalog", "catalog/units.yaml", "Path to the unit catalog")
	cmd.Flags().StringVar(&opts.out, "out", ".", "Module root the generated files are written below")
	cmd.Flags().BoolVar(&opts.writeBack, "write-back", false, "Store newly assigned unit ids in the catalog")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if generated files are out of date instead of writing them")

	return cmd
}

func run(ctx context.Context, opts options, logger *logging.Logger) error {
	catalog, err := unitgen.Load(opts.catalog)
	if err != nil {
		return err
	}

	assigned, err := catalog.AssignIDs()
	if err != nil {
		return logging.WrapError(err, "assign ids")
	}
	if len(assigned) > 0 {
		if !opts.writeBack {
			return fmt.Errorf("%d unit(s) have no id, starting with %s; rerun with --write-back to assign them",
				len(assigned), assigned[0].Name)
		}
		for _, u := range assigned {
			logger.Info(ctx, "Assigned unit id", "unit", u.Name, "id", u.ID)
		}
	}

	if err := catalog.Validate(); err != nil {
		return logging.WrapError(err, "invalid catalog %s", opts.catalog)
	}

	if opts.writeBack {
		if err := unitgen.WriteBack(opts.catalog, assigned); err != nil {
			return err
		}
	}

	files, err := catalog.Generate(sourceName(opts.catalog, opts.out))
	if err != nil {
		return err
	}

	if opts.check {
		return checkFiles(opts.out, files)
	}

	written, err := unitgen.WriteFiles(opts.out, files)
	if err != nil {
		return err
	}
	for _, path := range written {
		logger.Info(ctx, "Wrote generated file", "path", path)
	}
	logger.Debug(ctx, "Generation complete",
		"dimensions", len(catalog.Dimensions),
		"units", len(catalog.Units),
		"changed", len(written),
	)
	return nil
}

// sourceName is the catalog path as recorded in generated headers: relative
// to the module root, with forward slashes.
func sourceName(catalog, out string) string {
	absCatalog, err1 := filepath.Abs(catalog)
	absOut, err2 := filepath.Abs(out)
	if err1 == nil && err2 == nil {
		if rel, err := filepath.Rel(absOut, absCatalog); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.Base(catalog)
}

func checkFiles(root string, files []unitgen.File) error {
	var stale []string
	for _, f := range files {
		old, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path)))
		if err != nil || string(old) != string(f.Content) {
			stale = append(stale, f.Path)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("generated files are out of date: %v", stale)
	}
	return nil
}
