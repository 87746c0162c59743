package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/galactic-plane/dragonforge/pkg/project"
	"github.com/galactic-plane/dragonforge/pkg/settings"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed settings.json and a starter dragonforge.yaml",
	Long: `Create the settings file that tracks the build counter, plus a
starter dragonforge.yaml with the default project paths.

Prompts for the source and destination drives; with --json or --yes the
defaults are written without prompting.

Examples:
  dragonforge init
  dragonforge init --yes`,
	Run: runInit,
}

var initYes bool

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept defaults without prompting")
}

func runInit(cmd *cobra.Command, args []string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	cfg := project.DefaultConfig()
	if _, err := os.Stat(cfg.Settings); err == nil {
		err := fmt.Errorf("%s already exists", cfg.Settings)
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s %v\n", color.RedString("Error:"), err)
		}
		os.Exit(1)
	}

	s := settings.Default()
	if !initYes && !jsonOutput {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Source drive").
					Description("Default source the scripts operate on").
					Value(&s.DefaultSource),
				huh.NewInput().
					Title("Destination").
					Description("Default backup destination").
					Value(&s.DefaultDestination),
			),
		)
		if err := form.Run(); err != nil {
			fmt.Printf("  %s Cancelled\n", yellow("!"))
			return
		}
	}

	if err := s.Save(cfg.Settings); err != nil {
		exitError(err)
	}

	out := InitOutput{Settings: cfg.Settings}
	configPath := "dragonforge.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := project.WriteDefault(configPath); err != nil {
			exitError(err)
		}
		out.Config = configPath
	}

	if jsonOutput {
		printSuccess(out)
		return
	}
	fmt.Printf("  %s Created %s\n", green("✓"), cfg.Settings)
	if out.Config != "" {
		fmt.Printf("  %s Created %s\n", green("✓"), out.Config)
	}
}
