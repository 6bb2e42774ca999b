// File: parse.go
// Title: parse Subcommand
// Description: Parses one or more timestamp strings and prints them in
//              normalized form, optionally converted into a target timezone.
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

var (
	parseZone        string
	parseWhenMissing string
	parseISO         bool
	parseMillis      bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <timestamp>...",
	Short: "Parse timestamp strings and print them normalized",
	Long: `Parses free-form timestamp strings and prints them normalized.

By default every input is converted to UTC and printed without timezone
information, assuming UTC where the input carries no offset. Use --zone to
convert into a timezone instead, and --when-missing to change the assumption
for unmarked inputs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseZone, "zone", "", "target timezone (default: normalize to UTC)")
	parseCmd.Flags().StringVar(&parseWhenMissing, "when-missing", "utc", "timezone assumed for inputs without an offset")
	parseCmd.Flags().BoolVar(&parseISO, "iso", false, "print with the ISO-8601 'T' separator")
	parseCmd.Flags().BoolVar(&parseMillis, "millis", false, "keep subsecond digits")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := &datex.ParseConfig{
		Zone:        timex.Zone(parseZone),
		WhenMissing: timex.Zone(parseWhenMissing),
	}

	for _, arg := range args {
		out, err := datex.Parse(arg, cfg)
		if err != nil {
			logger.ErrorWithErr("parse failed", err, dxlog.Fields{"input": arg})
			return err
		}

		rendered, err := datex.Format(out.(timex.Timestamp), &datex.FormatConfig{
			Zone:       timex.Zone(parseZone),
			ISO:        parseISO,
			KeepMillis: parseMillis,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}
	return nil
}
