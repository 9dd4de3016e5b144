package scaffolding

// ScriptTemplate is one starter flake-script variant.
type ScriptTemplate struct {
	Name        string
	Description string
	Content     string
}

// TemplateContext carries the values substituted into a template.
type TemplateContext struct {
	Description string
	Date        string
}

// BuiltinTemplates returns the bundled starter templates.
func BuiltinTemplates() map[string]ScriptTemplate {
	return map[string]ScriptTemplate{
		"default": {
			Name:        "default",
			Description: "One development shell with a few common packages",
			Content:     defaultTemplate,
		},
		"profile": {
			Name:        "profile",
			Description: "A development shell plus a home-manager user profile",
			Content:     profileTemplate,
		},
		"minimal": {
			Name:        "minimal",
			Description: "An empty flake to grow from",
			Content:     minimalTemplate,
		},
	}
}

const defaultTemplate = `// Flake script generated by flakesmith on {{.Date}}.
// Edit it, then run "flakesmith build" to regenerate flake.nix.
package main

import (
	"fmt"
	"log"

	"github.com/flakesmith/flakesmith/pkg/flake"
	"github.com/flakesmith/flakesmith/pkg/pypi"
)

func main() {
	f := flake.New(pypi.Default())
	f.Description("{{.Description}}")
	f.Input("nixpkgs", "github:NixOS/nixpkgs/nixos-unstable")

	dev := f.BeginEnvironment("default")
	dev.System("x86_64-linux")
	dev.Packages("git", "ripgrep")
	if err := dev.PythonPackages("requests"); err != nil {
		log.Fatal(err)
	}

	fmt.Print(f.Render())
}
`

const profileTemplate = `// Flake script generated by flakesmith on {{.Date}}.
// Edit it, then run "flakesmith build" to regenerate flake.nix.
package main

import (
	"fmt"

	"github.com/flakesmith/flakesmith/pkg/flake"
	"github.com/flakesmith/flakesmith/pkg/pypi"
)

func main() {
	f := flake.New(pypi.Default())
	f.Description("{{.Description}}")
	f.Input("nixpkgs", "github:NixOS/nixpkgs/nixos-unstable")
	f.Input("home-manager", "github:nix-community/home-manager")

	f.Environment("default", func(e *flake.Environment) {
		e.Packages("git")
	})

	f.Profile("me", func(p *flake.Profile) {
		p.HomeDirectory("/home/me")
		p.Packages("htop")
		p.EnableProgram("git")
		p.Set("programs.git.userName", flake.Str("me"))
	})

	fmt.Print(f.Render())
}
`

const minimalTemplate = `// Flake script generated by flakesmith on {{.Date}}.
package main

import (
	"fmt"

	"github.com/flakesmith/flakesmith/pkg/flake"
)

func main() {
	f := flake.New(nil)
	f.Description("{{.Description}}")

	fmt.Print(f.Render())
}
`
