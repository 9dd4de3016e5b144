// Package cmd provides the command-line interface for flakesmith.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --output, etc.) - highest priority
//	2. FLAKESMITH_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (FLAKESMITH_BUILD_SCRIPT, etc.)
//	4. Configuration files (.flakesmith.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flakesmith",
	Short: "Generate Nix flakes from declarative Go scripts",
	Long: `Flakesmith generates Nix flakes describing development shells and
home-manager user profiles from small Go scripts built on the flake package.

A flake script constructs the document with a fluent builder and prints it;
flakesmith runs the script and writes the captured output next to it as a
.nix file.

Quick Start:
  flakesmith init                 Scaffold a starter flake script
  flakesmith build flake.go       Run the script and write flake.nix
  flakesmith watch flake.go       Rebuild whenever the script changes

Command Aliases (for faster typing):
  init (i), build (b), watch (w)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .flakesmith.yml, can also use FLAKESMITH_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. FLAKESMITH_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .flakesmith.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("FLAKESMITH_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".flakesmith")
	}

	// Enable automatic environment variable binding with FLAKESMITH_ prefix
	// Examples: FLAKESMITH_BUILD_SCRIPT, FLAKESMITH_LOG_LEVEL
	viper.SetEnvPrefix("FLAKESMITH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or malformed config files fall through to defaults; an
	// explicit config file is still reported when found.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
