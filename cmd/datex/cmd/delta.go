// File: delta.go
// Title: delta Subcommand
// Description: Computes the difference between two timestamps and prints it
//              as a fractional count of a named unit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/datex"
	dxlog "github.com/msto63/datex/core/log"
	"github.com/msto63/datex/utils/timex"
)

var deltaUnit string

var deltaCmd = &cobra.Command{
	Use:   "delta <from> <to>",
	Short: "Express the difference of two timestamps in a unit",
	Long: `Parses two timestamps, normalizes both to UTC, and prints <to> minus
<from> as a fractional count of the given unit.

Units: ms, s, m, h, D, W, Y (case-sensitive; a year is the mean Gregorian
year of 365.2425 days).`,
	Args: cobra.ExactArgs(2),
	RunE: runDelta,
}

func init() {
	deltaCmd.Flags().StringVarP(&deltaUnit, "unit", "u", "m", "unit for the result")
	rootCmd.AddCommand(deltaCmd)
}

func runDelta(cmd *cobra.Command, args []string) error {
	from, err := datex.Parse(args[0])
	if err != nil {
		logger.ErrorWithErr("parse failed", err, dxlog.Fields{"input": args[0]})
		return err
	}
	to, err := datex.Parse(args[1])
	if err != nil {
		logger.ErrorWithErr("parse failed", err, dxlog.Fields{"input": args[1]})
		return err
	}

	delta := to.(timex.Timestamp).Sub(from.(timex.Timestamp))
	count, err := datex.DeltaToUnit(delta, deltaUnit)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", count, deltaUnit)
	return nil
}
