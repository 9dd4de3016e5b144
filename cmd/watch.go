package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/flakesmith/flakesmith/internal/config"
	"github.com/flakesmith/flakesmith/internal/runner"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch [script]",
	Aliases: []string{"w"},
	Short:   "Rebuild the flake whenever its script changes",
	Long: `Watch a flake script and rebuild its output on every change.

A failing rebuild is reported and watching continues, so you can fix the
script without restarting the command.

Examples:
  flakesmith watch                # Watch the configured default script
  flakesmith watch dev/flake.go   # Watch a specific script`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	scriptPath := resolveScriptPath(args, cfg)
	if err := validateScriptPath(scriptPath); err != nil {
		return err
	}

	logger := newLogger(cfg)
	r := runner.NewGoRunner(logger)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that write via rename
	// replace the inode and a file-level watch would go stale.
	if err := watcher.Add(filepath.Dir(scriptPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(scriptPath), err)
	}

	rebuild := func() {
		fmt.Printf("🔨 Rebuilding %s...\n", scriptPath)
		written, err := buildScript(cmd.Context(), r, scriptPath, buildOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Build failed: %v\n", err)
			return
		}
		fmt.Printf("✅ Wrote %s\n", written)
	}

	// Initial build so the output exists before the first change.
	rebuild()

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	var timer *time.Timer

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("👀 Watching %s (Ctrl+C to stop)\n", scriptPath)

	pending := make(chan struct{}, 1)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(scriptPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)
		case <-sigChan:
			fmt.Println("\n👋 Stopping watch")
			return nil
		}
	}
}
