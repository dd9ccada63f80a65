// cmd/qtty/args.go
package main

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// negativeArg matches expressions such as "-190 Deg" or "-.5 h", which
// pflag would otherwise read as a group of shorthand flags.
var negativeArg = regexp.MustCompile(`^-[0-9.]`)

// positionalNegatives rewrites args so that negative expressions reach the
// command as positional arguments. Everything positional from the first
// negative expression on is moved behind a "--", keeping its order. Flag
// values such as "--precision -1" stay attached to their flag.
func positionalNegatives(root *cobra.Command, args []string) []string {
	takesValue := valueFlags(root)

	var front, back []string
	moving := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			if !moving {
				return args
			}
			back = append(back, args[i+1:]...)
			return append(append(front, "--"), back...)
		case negativeArg.MatchString(arg):
			moving = true
			back = append(back, arg)
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			front = append(front, arg)
			if takesValue[arg] && i+1 < len(args) {
				i++
				front = append(front, args[i])
			}
		case moving:
			back = append(back, arg)
		default:
			front = append(front, arg)
		}
	}

	if !moving {
		return args
	}
	return append(append(front, "--"), back...)
}

// valueFlags returns the spellings ("--to", "-c") of every flag in the
// command tree that consumes the following argument.
func valueFlags(root *cobra.Command) map[string]bool {
	names := make(map[string]bool)
	visit := func(f *pflag.Flag) {
		if f.NoOptDefVal != "" {
			return
		}
		names["--"+f.Name] = true
		if f.Shorthand != "" {
			names["-"+f.Shorthand] = true
		}
	}

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.PersistentFlags().VisitAll(visit)
		c.Flags().VisitAll(visit)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
	return names
}
