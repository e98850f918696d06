package main

import (
	"fmt"
	"strings"

	"github.com/govalues/fixedpoint"
	"github.com/govalues/fixedpoint/internal/calc"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	scale   int
	decimal bool
	raw     bool
}

func addRootCmdFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().IntVarP(
		&flags.scale,
		"scale",
		"s",
		fixedpoint.DefaultScale,
		"Number of fractional bits of every operand")
	cmd.Flags().BoolVarP(
		&flags.decimal,
		"decimal",
		"d",
		false,
		"Print the exact decimal value instead of the float approximation")
	cmd.Flags().BoolVarP(
		&flags.raw,
		"raw",
		"r",
		false,
		"Also print the raw value and the scale")
}

// NewRootCmd returns the fixcalc command.
// Arguments are joined with spaces, so an expression can be passed
// either quoted or as separate arguments. Use "--" before negative operands.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "fixcalc [flags] [--] EXPR...",
		Short: "Evaluate prefix expressions using binary fixed-point arithmetic",
		Example: `  fixcalc "/ 7 2"
  fixcalc --scale 8 --decimal -- * -1.5 3`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleEvaluate(cmd, args, flags)
		},
	}

	addRootCmdFlags(cmd, flags)

	return cmd
}

func handleEvaluate(cmd *cobra.Command, args []string, flags *rootFlags) error {
	d, err := calc.Evaluate(strings.Join(args, " "), flags.scale)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flags.decimal {
		fmt.Fprintln(out, d.Decimal())
	} else {
		fmt.Fprintln(out, d)
	}
	if flags.raw {
		fmt.Fprintf(out, "raw=%d scale=%d\n", d.Raw(), d.Scale())
	}
	return nil
}
