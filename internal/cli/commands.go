// SPDX-License-Identifier: MIT
// Package: lvfuzzy/internal/cli
//
// commands.go — one constructor per subcommand. Every RunE parses its
// literals first and prints only after the whole evaluation succeeded.

package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/spf13/cobra"
)

type binaryOp func(a, b fuzzy.Number) (fuzzy.Number, error)

var (
	opAdd binaryOp = fuzzy.Number.Add
	opSub binaryOp = fuzzy.Number.Sub
	opMul binaryOp = fuzzy.Number.Mul
	opDiv binaryOp = fuzzy.Number.Div
)

func newDescribeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe SHAPE",
		Short: "Print the stored alpha-cuts of a shape literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseShape(args[0], o.cuts)
			if err != nil {
				return err
			}
			return o.render(cmd.OutOrStdout(), n)
		},
	}
}

func newBinaryCmd(o *options, name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SHAPE SHAPE",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseShape(args[0], o.cuts)
			if err != nil {
				return err
			}
			b, err := parseShape(args[1], o.cuts)
			if err != nil {
				return err
			}
			res, err := op(a, b)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return o.render(cmd.OutOrStdout(), res)
		},
	}
}

func newCutCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cut SHAPE ALPHA...",
		Short: "Print the (interpolated) alpha-cuts at the given levels",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseShape(args[0], o.cuts)
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(args)-1)
			for _, lit := range args[1:] {
				c, err := fuzzy.AlphaCutOf(n, lit)
				if err != nil {
					return err
				}
				lines = append(lines, c.String())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}
}

func newMembershipCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "membership SHAPE X...",
		Short: "Print the membership degree of crisp values",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseShape(args[0], o.cuts)
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(args)-1)
			for _, lit := range args[1:] {
				mu, err := fuzzy.MembershipOf(n, lit)
				if err != nil {
					return err
				}
				lines = append(lines, lit+" "+mu.String())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}
}

func newApplyCmd(o *options) *cobra.Command {
	var (
		monotone bool
		samples  int
	)
	cmd := &cobra.Command{
		Use:   "apply FUNC SHAPE",
		Short: "Apply a function by the extension principle",
		Long: "Apply a function by the extension principle.\n\nFunctions: " +
			strings.Join(sortedKeys(functions), ", ") + ".",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := functions[args[0]]
			if !ok {
				return fmt.Errorf("unknown function %q: %w", args[0], errUsage)
			}
			if samples < 1 {
				return fmt.Errorf("--samples %d: need at least 1: %w", samples, errUsage)
			}
			n, err := parseShape(args[1], o.cuts)
			if err != nil {
				return err
			}
			opts := []interval.Option{interval.WithSamples(samples)}
			if monotone {
				opts = append(opts, interval.WithMonotone())
			}
			res, err := n.ApplyFunction(f, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return o.render(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVarP(&monotone, "monotone", "m", interval.DefaultMonotone, "evaluate the endpoints only (exact for monotone functions)")
	cmd.Flags().IntVarP(&samples, "samples", "s", interval.DefaultSamples, "total sampling budget shared by the alpha-cuts")

	return cmd
}

func newAlphasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphas N",
		Short: "Print N equally spaced alpha levels from 0 to 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("alphas %q: %w", args[0], scalar.ErrMalformed)
			}
			levels, err := fuzzy.AlphaCutValues(count)
			if err != nil {
				return err
			}
			for _, a := range levels {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), a); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
