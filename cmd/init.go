package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/flakesmith/flakesmith/internal/scaffolding"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:     "init [path]",
	Aliases: []string{"i"},
	Short:   "Scaffold a starter flake script",
	Long: `Scaffold a starter flake script at the given path (default flake.go).

The command refuses to overwrite an existing file. When the path names a
directory, the script is created inside it as flake.go. Generated scripts
are standalone Go programs; keep each one in its own directory so it does
not collide with your package's main function.

Examples:
  flakesmith init                       # Create ./flake.go
  flakesmith init dev                   # Create ./dev/flake.go
  flakesmith init --template profile    # Include a home-manager profile
  flakesmith init --list                # List available templates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var (
	initTemplate    string
	initDescription string
	initList        bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "Starter template to use")
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "Flake description")
	initCmd.Flags().BoolVar(&initList, "list", false, "List available templates")
}

func runInit(cmd *cobra.Command, args []string) error {
	generator := scaffolding.NewGenerator()

	if initList {
		fmt.Println("Available templates:")
		for _, tmpl := range generator.ListTemplates() {
			fmt.Printf("  %-10s %s\n", tmpl.Name, tmpl.Description)
		}
		return nil
	}

	target := "flake.go"
	if len(args) > 0 {
		target = args[0]
		if filepath.Ext(target) != ".go" {
			target = filepath.Join(target, "flake.go")
		}
	}

	err := generator.Generate(scaffolding.GenerateOptions{
		Path:        target,
		Template:    initTemplate,
		Description: initDescription,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✅ Created %s\n", target)
	fmt.Println("   Edit it, then run: flakesmith build " + target)
	return nil
}
