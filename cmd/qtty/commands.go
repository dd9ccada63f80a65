package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-qtty/pkg/config"
	"github.com/opd-ai/go-qtty/pkg/parse"
	"github.com/opd-ai/go-qtty/pkg/qtty/angular"
	"github.com/opd-ai/go-qtty/pkg/registry"
)

func (a *app) convertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert QUANTITY --to UNIT",
		Short: "Convert a quantity or rate to other units",
		Example: `  qtty convert "1 Au" --to Km
  qtty convert "15 Deg/h" --to Rad/d`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parse.Expression(args[0])
			if err != nil {
				return err
			}
			target, err := parse.Unit(to)
			if err != nil {
				return err
			}
			out, err := e.ConvertTo(target)
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Context(), "Converted quantity", "from", e.String(), "to", target.String())
			return a.printer().printExpr(out)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target unit or unit quotient")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// unitJSON is one row of `qtty units --format json`.
type unitJSON struct {
	ID        uint32  `json:"id"`
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	Dimension string  `json:"dimension"`
	Scale     float64 `json:"scale"`
}

func (a *app) unitsCmd() *cobra.Command {
	var dimension string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the registered units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := registry.All()
			if dimension != "" {
				dim, err := registry.ParseDimension(dimension)
				if err != nil {
					return err
				}
				units = registry.ByDimension(dim)
			}

			p := a.printer()
			if p.json() {
				rows := make([]unitJSON, 0, len(units))
				for _, m := range units {
					rows = append(rows, unitJSON{
						ID:        uint32(m.ID),
						Name:      m.Name,
						Symbol:    m.Symbol,
						Dimension: m.Dimension.String(),
						Scale:     m.Scale,
					})
				}
				return p.writeJSON(rows)
			}

			tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSYMBOL\tDIMENSION\tSCALE")
			for _, m := range units {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", uint32(m.ID), m.Name, m.Symbol, m.Dimension, p.number(m.Scale))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dimension, "dimension", "", "Only list units of this dimension (Length, Time, Angle, Mass, Power)")
	return cmd
}

func (a *app) wrapCmd() *cobra.Command {
	var rangeName string

	cmd := &cobra.Command{
		Use:   "wrap ANGLE",
		Short: "Wrap an angle into a range",
		Long: `Wrap maps an angle into one of the ranges:
  pos        [0, turn)
  signed     (-half turn, half turn]
  signed-lo  [-half turn, half turn)
  quarter    [-quarter turn, quarter turn], folding like a latitude`,
		Example: `  qtty wrap "370 Deg"
  qtty wrap "-1 Hms" --range pos`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := rangeName
			if name == "" {
				name = a.cfg.Angles.Range
			}
			r, err := angular.ParseRange(name)
			if err != nil {
				return err
			}
			q, err := parse.Quantity(args[0])
			if err != nil {
				return err
			}
			w, err := registry.Wrap(q, r)
			if err != nil {
				return err
			}

			p := a.printer()
			if p.json() {
				return p.writeJSON(w)
			}
			return p.line(p.quantity(w))
		},
	}

	cmd.Flags().StringVar(&rangeName, "range", "", "Target range: pos, signed, signed-lo or quarter (default from config)")
	return cmd
}

func (a *app) sepCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sep A B",
		Short:   "Print the signed and absolute separation between two angles",
		Example: `  qtty sep "350 Deg" "10 Deg"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parse.Quantity(args[0])
			if err != nil {
				return err
			}
			y, err := parse.Quantity(args[1])
			if err != nil {
				return err
			}
			signed, abs, err := registry.Separation(x, y)
			if err != nil {
				return err
			}

			p := a.printer()
			if p.json() {
				return p.writeJSON(map[string]registry.Quantity{"signed": signed, "abs": abs})
			}
			if err := p.line("signed: " + p.quantity(signed)); err != nil {
				return err
			}
			return p.line("abs: " + p.quantity(abs))
		},
	}
}

func (a *app) jsonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Encode quantities to JSON and decode them back",
	}

	var valueOnly bool
	encode := &cobra.Command{
		Use:   "encode QUANTITY",
		Short: "Print the JSON transport form of a quantity or rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parse.Expression(args[0])
			if err != nil {
				return err
			}
			if valueOnly {
				q, err := e.Quantity()
				if err != nil {
					return err
				}
				data, err := registry.MarshalValue(q)
				if err != nil {
					return err
				}
				return a.printer().line(string(data))
			}
			return a.printer().writeJSON(carrier(e))
		},
	}
	encode.Flags().BoolVar(&valueOnly, "value-only", false, "Emit only the bare number")

	var unit string
	decode := &cobra.Command{
		Use:   "decode JSON",
		Short: "Decode a JSON quantity or rate",
		Example: `  qtty json decode '{"value":1.5,"unit_id":101}'
  qtty json decode 42 --unit Km`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := decodeJSON([]byte(args[0]), unit)
			if err != nil {
				return err
			}
			return a.printer().printExpr(e)
		},
	}
	decode.Flags().StringVar(&unit, "unit", "", "Unit of a bare-number payload")

	cmd.AddCommand(encode, decode)
	return cmd
}

// decodeJSON reads a bare number when unit is given, otherwise a quantity
// object or a rate object.
func decodeJSON(data []byte, unit string) (parse.Expr, error) {
	if unit != "" {
		id, err := registry.Resolve(unit)
		if err != nil {
			return parse.Expr{}, err
		}
		q, err := registry.UnmarshalValue(data, id)
		if err != nil {
			return parse.Expr{}, err
		}
		return parse.Expr{Value: q.Value, Units: parse.Units{Num: q.Unit}}, nil
	}

	var q registry.Quantity
	qErr := q.UnmarshalJSON(data)
	if qErr == nil {
		return parse.Expr{Value: q.Value, Units: parse.Units{Num: q.Unit}}, nil
	}

	var r registry.Rate
	if err := r.UnmarshalJSON(data); err == nil {
		return parse.Expr{Value: r.Value, Units: parse.Units{Num: r.Num, Den: r.Den, IsRate: true}}, nil
	}
	return parse.Expr{}, qErr
}

// batchResult is one converted entry of `qtty batch`.
type batchResult struct {
	Input  registry.Quantity `json:"input" yaml:"input"`
	Output registry.Quantity `json:"output" yaml:"output"`
}

func (a *app) batchCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "batch FILE --to UNIT",
		Short: "Convert a YAML list of quantities",
		Long: `Batch reads a YAML list of quantities, each with a value and a unit_id
or unit (symbol or name), and converts every entry to --to:

  - {value: 1, unit: Au}
  - {value: 4.24, unit_id: 103}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := registry.Resolve(to)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read batch file: %w", err)
			}
			results, err := convertBatch(data, target)
			if err != nil {
				return err
			}
			a.logger.Info(cmd.Context(), "Converted batch", "file", args[0], "entries", len(results))

			p := a.printer()
			if p.json() {
				return p.writeJSON(results)
			}
			for _, r := range results {
				if err := p.line(p.quantity(r.Input) + " = " + p.quantity(r.Output)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target unit")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func convertBatch(data []byte, target registry.UnitID) ([]batchResult, error) {
	var entries []registry.Quantity
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	results := make([]batchResult, 0, len(entries))
	for i, in := range entries {
		out, err := in.Convert(target)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		results = append(results, batchResult{Input: in, Output: out})
	}
	return results, nil
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create configuration files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer()
			if p.json() {
				return p.writeJSON(a.cfg)
			}
			enc := yaml.NewEncoder(p.w)
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the user configuration file with defaults if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.NewLoader(a.logger).EnsureUserConfig(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer().line(path)
		},
	})

	return cmd
}
