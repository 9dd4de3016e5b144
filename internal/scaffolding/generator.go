// Package scaffolding generates starter flake scripts for the init
// command from a set of built-in templates.
package scaffolding

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"
	"time"

	"github.com/flakesmith/flakesmith/internal/errors"
)

// Generator renders starter scripts from the built-in templates.
type Generator struct {
	templates map[string]ScriptTemplate
}

// GenerateOptions holds options for script generation.
type GenerateOptions struct {
	Path        string
	Template    string
	Description string
}

// NewGenerator creates a generator backed by the built-in templates.
func NewGenerator() *Generator {
	return &Generator{templates: BuiltinTemplates()}
}

// Generate writes a starter script to opts.Path. It refuses to touch a
// path that already exists, and writes nothing on any failure.
func (g *Generator) Generate(opts GenerateOptions) error {
	if opts.Template == "" {
		opts.Template = "default"
	}
	tmpl, exists := g.templates[opts.Template]
	if !exists {
		return errors.NewValidationError("unknown_template",
			fmt.Sprintf("template %q not found", opts.Template))
	}

	if _, err := os.Stat(opts.Path); err == nil {
		return errors.NewValidationError("target_exists",
			"target already exists, refusing to overwrite").WithPath(opts.Path)
	}

	ctx := TemplateContext{
		Description: opts.Description,
		Date:        time.Now().Format("2006-01-02"),
	}
	if ctx.Description == "" {
		ctx.Description = "Development environment"
	}

	parsed, err := template.New(tmpl.Name).Parse(tmpl.Content)
	if err != nil {
		return errors.NewInternalError("template_parse", "failed to parse template", err)
	}

	if dir := filepath.Dir(opts.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewIOError("mkdir", "failed to create target directory", err).WithPath(dir)
		}
	}

	file, err := os.OpenFile(opts.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.NewIOError("create", "failed to create script", err).WithPath(opts.Path)
	}
	defer file.Close()

	if err := parsed.Execute(file, ctx); err != nil {
		return errors.NewIOError("write", "failed to write script", err).WithPath(opts.Path)
	}

	return nil
}

// ListTemplates returns the available templates sorted by name.
func (g *Generator) ListTemplates() []ScriptTemplate {
	templates := make([]ScriptTemplate, 0, len(g.templates))
	for _, tmpl := range g.templates {
		templates = append(templates, tmpl)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates
}
