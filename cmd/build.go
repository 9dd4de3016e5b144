package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flakesmith/flakesmith/internal/config"
	"github.com/flakesmith/flakesmith/internal/errors"
	"github.com/flakesmith/flakesmith/internal/logging"
	"github.com/flakesmith/flakesmith/internal/runner"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:     "build [script]",
	Aliases: []string{"b"},
	Short:   "Run a flake script and write its output",
	Long: `Run a flake script and write the captured flake text to disk.

The script is an ordinary Go program that prints the rendered flake to
stdout. By default the output lands next to the script with the .go
extension replaced by .nix.

Examples:
  flakesmith build                    # Build the configured default script
  flakesmith build dev/flake.go       # Build a specific script
  flakesmith build flake.go -o flake.nix`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

var buildOutput string

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output path (default: script path with .nix extension)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	scriptPath := resolveScriptPath(args, cfg)
	outputPath := buildOutput
	if outputPath == "" {
		outputPath = cfg.Build.Output
	}

	logger := newLogger(cfg)
	r := runner.NewGoRunner(logger)

	fmt.Printf("🔨 Building %s...\n", scriptPath)

	written, err := buildScript(cmd.Context(), r, scriptPath, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Wrote %s in %v\n", written, time.Since(startTime).Round(time.Millisecond))
	return nil
}

// buildScript validates the script path, runs the script, and writes the
// captured output. Nothing is written unless the run succeeds, so a
// failing build never leaves a truncated output file behind.
func buildScript(ctx context.Context, r runner.Runner, scriptPath, outputPath string) (string, error) {
	if err := validateScriptPath(scriptPath); err != nil {
		return "", err
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(scriptPath, ".go") + ".nix"
	}

	output, err := r.Run(ctx, scriptPath)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return "", errors.NewIOError("write_output", "failed to write output", err).WithPath(outputPath)
	}

	return outputPath, nil
}

// validateScriptPath enforces the build preconditions: the script must
// exist, be a regular file, and carry the .go extension.
func validateScriptPath(scriptPath string) error {
	if scriptPath == "" {
		return errors.NewValidationError("no_script", "no flake script given")
	}
	if filepath.Ext(scriptPath) != ".go" {
		return errors.NewValidationError("wrong_extension",
			"flake script must have a .go extension").WithPath(scriptPath)
	}

	info, err := os.Stat(scriptPath)
	if err != nil {
		return errors.NewIOError("missing_script", "flake script not found", err).WithPath(scriptPath)
	}
	if info.IsDir() {
		return errors.NewValidationError("not_a_file",
			"flake script is a directory").WithPath(scriptPath)
	}
	return nil
}

func resolveScriptPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Build.Script != "" {
		return cfg.Build.Script
	}
	return "flake.go"
}

func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
