package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/galactic-plane/dragonforge/pkg/bundle"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever a script changes",
	Long: `Watch the main script, the launcher, and the modules directory, and
run a full build whenever a .ps1 file changes.

Examples:
  dragonforge watch`,
	Run: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("  %s %v\n", red("Error:"), err)
		os.Exit(1)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Printf("  %s Failed to create file watcher: %v\n", red("Error:"), err)
		os.Exit(1)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directories holding the inputs, not the files themselves:
	// editors replace files on save, which drops file-level watches.
	watchDirs := map[string]bool{
		filepath.Dir(cfg.Source):   true,
		filepath.Dir(cfg.Launcher): true,
	}
	if _, err := os.Stat(cfg.Modules); err == nil {
		watchDirs[cfg.Modules] = true
	}
	for dir := range watchDirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Printf("  %s Failed to watch %s: %v\n", red("Error:"), dir, err)
			os.Exit(1)
		}
	}

	runOnce := func() {
		result, err := bundle.New(cfg).Run()
		if err != nil {
			fmt.Printf("  %s Build failed: %v\n", red("Error:"), err)
			return
		}
		timestamp := time.Now().Format("15:04:05")
		fmt.Printf("  %s [%s] Built version %s -> %s\n", green("✓"), timestamp, cyan(result.Version), result.Artifact)
	}

	fmt.Printf("  %s Watching for changes...\n", green("✓"))
	runOnce()

	// Debounce channel
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	// Signal handling
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Only react to write, create, and remove events
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}

			// Only script sources trigger a rebuild
			if !strings.EqualFold(filepath.Ext(event.Name), ".ps1") {
				continue
			}

			// Ignore churn in the build output itself
			if strings.HasPrefix(event.Name, cfg.BuildDir+string(filepath.Separator)) {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDuration, runOnce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("  %s Watcher error: %v\n", red("Error:"), err)

		case <-signals:
			fmt.Printf("\n  %s Stopped\n", green("✓"))
			return
		}
	}
}
