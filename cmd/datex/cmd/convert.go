// File: convert.go
// Title: convert Subcommand
// Description: Converts timestamp strings into a target timezone and prints
//              the resulting wall clock.
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
	convertTo          string
	convertWhenMissing string
	convertOverwrite   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <timestamp>...",
	Short: "Convert timestamps into another timezone",
	Long: `Converts timestamp strings into the timezone given with --to and
prints the resulting wall clock. Inputs without an offset are assumed to be
in the --when-missing timezone.

With --overwrite the timezone tag is replaced without shifting the wall
clock; use this to repair wrongly tagged data.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "localtz", "target timezone")
	convertCmd.Flags().StringVar(&convertWhenMissing, "when-missing", "utc", "timezone assumed for inputs without an offset")
	convertCmd.Flags().BoolVar(&convertOverwrite, "overwrite", false, "replace the tag without shifting the wall clock")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	target := timex.Zone(convertTo)

	for _, arg := range args {
		ts, err := timex.ParseString(arg)
		if err != nil {
			logger.ErrorWithErr("parse failed", err, dxlog.Fields{"input": arg})
			return err
		}

		var out interface{}
		if convertOverwrite {
			out, err = datex.OverwriteZone(ts, target)
		} else {
			out, err = datex.SetZone(ts, target, timex.Zone(convertWhenMissing))
		}
		if err != nil {
			logger.ErrorWithErr("conversion failed", err, dxlog.Fields{"input": arg, "target": convertTo})
			return err
		}

		converted := out.(timex.Timestamp)
		if converted.IsAware() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", converted.Detach().String(), converted.ZoneName())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), converted.String())
		}
	}
	return nil
}
