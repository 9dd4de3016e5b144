// Package docs provides the top-level documentation for flakesmith, a
// CLI tool that generates Nix flakes from declarative Go scripts.
//
// Flakesmith turns a small Go program built on the flake package into a
// flake.nix describing development shells and home-manager user
// profiles. The script constructs the document with a fluent builder and
// prints it; the CLI runs the script and writes the captured output.
//
// # Quick Start
//
//	// Scaffold a starter flake script
//	flakesmith init
//
//	// Run the script and write flake.nix next to it
//	flakesmith build flake.go
//
//	// Rebuild whenever the script changes
//	flakesmith watch flake.go
//
// # Architecture
//
// The module is organized into a public builder API and internal
// command plumbing:
//
//   - CLI Commands (cmd/): Cobra-based command interface
//   - Flake Builder (pkg/flake/): Value model, serializer and document builders
//   - Package Index (pkg/pypi/): Bundled allow-list for python3Packages names
//   - Script Runner (internal/runner/): Executes flake scripts and captures output
//   - Scaffolding (internal/scaffolding/): Starter script templates for init
//   - Configuration (internal/config/): Viper-based configuration management
//
// # Configuration
//
// Flakesmith supports configuration through multiple sources:
//
//   - Configuration file (.flakesmith.yml)
//   - Environment variables (FLAKESMITH_*)
//   - Command-line flags
//
// Flags take precedence over environment variables, which take
// precedence over the configuration file.
package docs
