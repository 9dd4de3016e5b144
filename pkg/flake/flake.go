package flake

import (
	"strings"
)

// Flake is the top-level builder for one flake.nix document. It owns the
// flake's inputs and description and collects development shells and user
// profiles. Render reads the builders' current state, so a handle
// obtained from BeginEnvironment, BeginProfile or the Add variants may be
// mutated right up until Render is called.
type Flake struct {
	description string
	inputNames  []string
	inputs      map[string]string
	envs        []*Environment
	profiles    []*Profile
	index       PackageIndex
}

// New creates an empty flake builder. The index is handed to every
// environment created through this builder for Python package
// validation; nil disables validation.
func New(index PackageIndex) *Flake {
	return &Flake{inputs: make(map[string]string), index: index}
}

// Description overwrites the flake's description.
func (f *Flake) Description(text string) *Flake {
	f.description = text
	return f
}

// Input registers a flake input by name and URL. Registering the same
// name again overwrites the URL but keeps the input's position.
func (f *Flake) Input(name, url string) *Flake {
	if _, exists := f.inputs[name]; !exists {
		f.inputNames = append(f.inputNames, name)
	}
	f.inputs[name] = url
	return f
}

// Environment adds a development shell configured inline and returns the
// flake for chaining.
func (f *Flake) Environment(name string, configure func(*Environment)) *Flake {
	env := NewEnvironment(name, f.index)
	if configure != nil {
		configure(env)
	}
	f.envs = append(f.envs, env)
	return f
}

// BeginEnvironment adds a development shell and returns its handle for
// later configuration.
func (f *Flake) BeginEnvironment(name string) *Environment {
	env := NewEnvironment(name, f.index)
	f.envs = append(f.envs, env)
	return env
}

// AddEnvironment attaches a pre-built environment. The caller's handle
// stays valid: mutations made before Render are reflected in the output.
func (f *Flake) AddEnvironment(env *Environment) *Flake {
	f.envs = append(f.envs, env)
	return f
}

// Profile adds a user profile configured inline and returns the flake
// for chaining.
func (f *Flake) Profile(username string, configure func(*Profile)) *Flake {
	p := NewProfile(username)
	if configure != nil {
		configure(p)
	}
	f.profiles = append(f.profiles, p)
	return f
}

// BeginProfile adds a user profile and returns its handle for later
// configuration.
func (f *Flake) BeginProfile(username string) *Profile {
	p := NewProfile(username)
	f.profiles = append(f.profiles, p)
	return p
}

// AddProfile attaches a pre-built profile by reference.
func (f *Flake) AddProfile(p *Profile) *Flake {
	f.profiles = append(f.profiles, p)
	return f
}

// Render serializes the flake to flake.nix text. It performs no
// mutation: rendering twice without intervening builder calls yields
// byte-identical output.
//
// The outputs argument set is kept minimal: home-manager is declared as a
// collaborator only when at least one profile exists, so shell-only
// flakes never force an unused input to be fetched.
func (f *Flake) Render() string {
	var b strings.Builder
	b.WriteString("{\n")

	if f.description != "" {
		b.WriteString(indentAt(1) + `description = "` + f.description + `";` + "\n\n")
	}

	if len(f.inputNames) > 0 {
		b.WriteString(indentAt(1) + "inputs = {\n")
		for _, name := range f.inputNames {
			b.WriteString(indentAt(2) + name + `.url = "` + f.inputs[name] + `";` + "\n")
		}
		b.WriteString(indentAt(1) + "};\n\n")
	}

	args := "{ self, nixpkgs }"
	if len(f.profiles) > 0 {
		args = "{ self, nixpkgs, home-manager }"
	}

	if len(f.envs) == 0 && len(f.profiles) == 0 {
		b.WriteString(indentAt(1) + "outputs = " + args + ": { };\n")
		b.WriteString("}\n")
		return b.String()
	}

	b.WriteString(indentAt(1) + "outputs = " + args + ":\n")
	b.WriteString(indentAt(2) + "{\n")
	for _, env := range f.envs {
		b.WriteString(env.render(3))
	}
	for _, p := range f.profiles {
		b.WriteString(f.renderProfile(p))
	}
	b.WriteString(indentAt(2) + "};\n")
	b.WriteString("}\n")
	return b.String()
}

// renderProfile wraps a profile's body in its homeConfigurations entry.
// The profile's custom module paths come first in the modules list, then
// one inline module holding the generated body.
func (f *Flake) renderProfile(p *Profile) string {
	system := p.system
	if system == "" {
		system = DefaultSystem
	}

	var b strings.Builder
	b.WriteString(indentAt(3) + "homeConfigurations." + p.username +
		" = home-manager.lib.homeManagerConfiguration {\n")
	b.WriteString(indentAt(4) + "pkgs = nixpkgs.legacyPackages." + system + ";\n")
	b.WriteString(indentAt(4) + "modules = [\n")
	for _, path := range p.modules {
		b.WriteString(indentAt(5) + path + "\n")
	}
	b.WriteString(indentAt(5) + "{\n")
	b.WriteString(p.render(6))
	b.WriteString(indentAt(5) + "}\n")
	b.WriteString(indentAt(4) + "];\n")
	b.WriteString(indentAt(3) + "};\n")
	return b.String()
}
