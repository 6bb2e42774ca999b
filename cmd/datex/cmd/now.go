// File: now.go
// Title: now Subcommand
// Description: Prints the current time, optionally converted into a target
//              timezone or cleared to the UTC-naive instant.
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
	"github.com/msto63/datex/utils/timex"
)

var (
	nowZone   string
	nowUTC    bool
	nowISO    bool
	nowMillis bool
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current time",
	Long: `Prints the current time in the host timezone. Use --zone to convert
into another timezone, or --utc for the UTC instant.`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	nowCmd.Flags().StringVar(&nowZone, "zone", "", "convert into this timezone")
	nowCmd.Flags().BoolVar(&nowUTC, "utc", false, "print the UTC instant")
	nowCmd.Flags().BoolVar(&nowISO, "iso", false, "print with the ISO-8601 'T' separator")
	nowCmd.Flags().BoolVar(&nowMillis, "millis", false, "keep subsecond digits")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	cfg := datex.DefaultNowConfig()
	if nowZone != "" {
		cfg.ConvertTo = timex.Zone(nowZone)
	}
	if nowUTC {
		cfg.Clear = true
	}

	ts, err := datex.Now(cfg)
	if err != nil {
		return err
	}

	zone := ts.ZoneName()
	rendered, err := datex.Format(ts.Detach(), &datex.FormatConfig{
		ISO:        nowISO,
		KeepMillis: nowMillis,
	})
	if err != nil {
		return err
	}

	if zone != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", rendered, zone)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}
	return nil
}
