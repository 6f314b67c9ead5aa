// SPDX-License-Identifier: MIT
// Package: lvfuzzy/internal/cli
//
// root.go — command tree of fuzzycalc and the process boundary where errors
// are turned into exit codes.

// Package cli implements the fuzzycalc command tree.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/katalvlaran/lvfuzzy/builder"
	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1 // domain, range and argument failures
	ExitUsage = 2 // malformed literals and command-line misuse
)

// options are the persistent flags shared by every subcommand.
type options struct {
	cuts   int
	format formatValue
}

// NewRootCmd assembles the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{cuts: builder.DefaultCuts, format: formatCompact}

	root := &cobra.Command{
		Use:   "fuzzycalc",
		Short: "Fuzzy-number arithmetic on alpha-cuts",
		Long: `fuzzycalc builds fuzzy numbers from shape literals and evaluates
arithmetic, alpha-cuts, membership degrees and functions on them.

A shape literal is one value (crisp "2.5"), three values (triangular
"1,2,3") or four values (trapezoidal "1,2,3,4"). Use "--" before literals
that start with a minus sign.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	pf := root.PersistentFlags()
	pf.IntVarP(&o.cuts, "cuts", "n", builder.DefaultCuts, "number of stored alpha levels for triangular and trapezoidal literals")
	pf.VarP(&o.format, "format", "f", "output format for fuzzy numbers: compact or text")

	root.AddCommand(
		newDescribeCmd(o),
		newBinaryCmd(o, "add", "Add two fuzzy numbers", opAdd),
		newBinaryCmd(o, "sub", "Subtract the second fuzzy number from the first", opSub),
		newBinaryCmd(o, "mul", "Multiply two fuzzy numbers", opMul),
		newBinaryCmd(o, "div", "Divide the first fuzzy number by the second", opDiv),
		newCutCmd(o),
		newMembershipCmd(o),
		newApplyCmd(o),
		newAlphasCmd(),
	)

	return root
}

// Execute runs the command tree on args and returns the process exit code.
// Errors are printed to stderr with a red "error:" prefix.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	color.New(color.FgRed, color.Bold).Fprint(stderr, "error: ")
	fmt.Fprintln(stderr, err)

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, fuzzyerr.ErrParse), errors.Is(err, errUsage):
		return ExitUsage
	default:
		return ExitError
	}
}
