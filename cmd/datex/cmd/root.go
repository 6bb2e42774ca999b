// File: root.go
// Title: datex CLI Root Command
// Description: Defines the root command of the datex command-line tool,
//              shared flags, the optional settings file, and the per-run
//              correlation ID attached to all diagnostic output.
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
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/datex"
	dxlog "github.com/msto63/datex/core/log"
)

var (
	cfgFile string
	verbose bool
	logger  *dxlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "datex",
	Short: "datex - timestamp normalization from the command line",
	Long: `datex parses, converts, and formats timestamps without the usual
timezone headaches.

Commands:
  parse    - parse a timestamp string and print it normalized
  convert  - convert a timestamp into another timezone
  now      - print the current time
  delta    - express the difference of two timestamps in a unit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError("command failed", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output")
}

// setup loads the optional settings file and prepares the run logger. Every
// run gets a correlation ID so interleaved diagnostic lines can be grouped.
func setup() error {
	if verbose {
		dxlog.GetDefault().SetLevel(dxlog.LevelDebug)
	}

	if cfgFile != "" {
		settings, err := datex.LoadSettings(cfgFile)
		if err != nil {
			return err
		}
		if err := settings.Apply(); err != nil {
			return err
		}
	}

	logger = dxlog.GetDefault().
		WithName("datex-cli").
		WithField("run_id", uuid.New().String())
	logger.Debug("run configured", dxlog.Fields{"config": cfgFile})
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
