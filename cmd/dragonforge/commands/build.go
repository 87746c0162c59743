package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/galactic-plane/dragonforge/pkg/bundle"
	"github.com/galactic-plane/dragonforge/pkg/project"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Combine the scripts into a versioned build artifact",
	Long: `Combine the main script and its dot-sourced modules into a single
versioned artifact and patch the launcher to fetch it.

This command:
  1. Wipes and recreates the build directory
  2. Splices module files into the main script, stripping comments
  3. Rewrites the launcher to download the published artifact
  4. Advances the build counter in settings.json

Examples:
  dragonforge build
  dragonforge build --source winDragon.ps1 --modules Modules
  dragonforge build --out dist
  dragonforge build --json`,
	Run: runBuild,
}

var (
	buildSource   string
	buildModules  string
	buildLauncher string
	buildSettings string
	buildOut      string
)

func init() {
	buildCmd.Flags().StringVar(&buildSource, "source", "", "Main script path (default: winDragon.ps1)")
	buildCmd.Flags().StringVar(&buildModules, "modules", "", "Modules directory (default: Modules)")
	buildCmd.Flags().StringVar(&buildLauncher, "launcher", "", "Launcher script path (default: launcher.ps1)")
	buildCmd.Flags().StringVar(&buildSettings, "settings", "", "Settings file path (default: settings.json)")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Build output directory (default: build)")
}

// loadConfig reads dragonforge.yaml (when present) and applies any flag
// overrides on top.
func loadConfig() (*project.Config, error) {
	cfg, err := project.Load(".")
	if err != nil {
		return nil, err
	}
	if buildSource != "" {
		cfg.Source = buildSource
	}
	if buildModules != "" {
		cfg.Modules = buildModules
	}
	if buildLauncher != "" {
		cfg.Launcher = buildLauncher
	}
	if buildSettings != "" {
		cfg.Settings = buildSettings
	}
	if buildOut != "" {
		cfg.BuildDir = buildOut
	}
	return cfg, nil
}

func runBuild(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitError(err)
	}

	result, err := bundle.New(cfg).Run()
	if err != nil {
		exitError(err)
	}

	if jsonOutput {
		printSuccess(BuildOutput{
			Artifact: result.Artifact,
			Launcher: result.Launcher,
			Version:  result.Version,
		})
		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("  %s Built version %s\n", green("✓"), cyan(result.Version))
	fmt.Printf("Combined script has been saved to %s\n", result.Artifact)
}

func exitError(err error) {
	if jsonOutput {
		printJSONError(err)
	} else {
		fmt.Printf("  %s %v\n", color.RedString("Error:"), err)
	}
	os.Exit(1)
}
