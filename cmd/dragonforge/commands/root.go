// Package commands provides the CLI commands for dragonforge.
package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/galactic-plane/dragonforge/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dragonforge",
	Short: "dragonforge - build tool for the winDragon scripts",
	Long: `Dragonforge combines the winDragon PowerShell script and its module
files into a single versioned build artifact, strips comments along the way,
and repoints the launcher script at the published copy.

Quick Start:
  dragonforge init     Seed settings.json and a starter dragonforge.yaml
  dragonforge build    Produce a versioned build under build/
  dragonforge watch    Rebuild whenever a .ps1 file changes

Project paths default to the winDragon repo layout and can be overridden in
dragonforge.yaml or with flags.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for automation)")

	// Commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
}
