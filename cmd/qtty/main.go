// cmd/qtty/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-qtty/pkg/config"
	"github.com/opd-ai/go-qtty/pkg/logging"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "qtty"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.execute(context.Background(), os.Args[1:]); err != nil {
		a.logger.Error(context.Background(), "Command failed", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by every command of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	format     string
	precision  int
	group      bool

	cfg    *config.Config
	logger *logging.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	level, _ := logging.ParseLevel(os.Getenv("QTTY_LOG_LEVEL"))
	return &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    config.DefaultConfig(),
		logger: logging.NewLoggerWithWriter(stderr, level),
	}
}

// execute runs the command tree on args.
func (a *app) execute(ctx context.Context, args []string) error {
	cmd := a.rootCmd()
	cmd.SetArgs(positionalNegatives(cmd, args))
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	return cmd.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Convert and inspect physical quantities",
		Long: `qtty converts quantities between the units of the catalog, wraps angles
and moves quantities in and out of JSON.

Expressions are a number and a unit, or a unit quotient:
  qtty convert "1 Au" --to Km
  qtty convert "29.78 Km/sec" --to Au/d
  qtty wrap "-190 Deg" --range pos

Settings come from ~/.config/qtty/config.yaml, the nearest qtty.yaml, the
--config file and QTTY_* environment variables, in that order. Flags win.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.format, "format", "", "Output format (text, json)")
	flags.IntVar(&a.precision, "precision", config.ShortestPrecision, "Digits after the decimal point, -1 for the shortest exact form")
	flags.BoolVar(&a.group, "group", false, "Group digits with commas")

	cmd.AddCommand(
		a.convertCmd(),
		a.unitsCmd(),
		a.wrapCmd(),
		a.sepCmd(),
		a.jsonCmd(),
		a.batchCmd(),
		a.configCmd(),
		a.versionCmd(),
	)

	return cmd
}

// setup loads the layered configuration, applies flags on top and rebuilds
// the logger at the configured level.
func (a *app) setup(cmd *cobra.Command) error {
	ctx := logging.WithCorrelationID(cmd.Context(), "")
	cmd.SetContext(ctx)

	cfg, err := config.NewLoader(a.logger).Load(ctx, a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = a.precision
	}
	if flags.Changed("group") {
		cfg.Output.Grouping = a.group
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	a.logger = logging.NewLoggerWithWriter(a.stderr, level)
	a.cfg = cfg

	a.logger.Debug(ctx, "Configuration loaded",
		"command", cmd.Name(),
		"format", cfg.Output.Format,
		"precision", cfg.Output.Precision,
	)
	return nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer()
			if p.json() {
				return p.writeJSON(map[string]string{"name": appName, "version": Version, "build": BuildTime})
			}
			return p.line(fmt.Sprintf("%s version %s (build: %s)", appName, Version, BuildTime))
		},
	}
}
