package flake

import (
	"fmt"
	"strings"
)

// DefaultSystem is the platform an environment targets when none is set.
const DefaultSystem = "x86_64-linux"

// PackageIndex is the allow-list capability used to validate Python
// package names before they are accepted into an environment.
type PackageIndex interface {
	// FilterInvalid returns the subset of names not present in the index,
	// in input order.
	FilterInvalid(names []string) []string
}

// UnknownPackagesError reports package names rejected by the index. It
// carries every offending name from the call that produced it, since the
// append that failed was rejected as a whole.
type UnknownPackagesError struct {
	Names []string
}

// Error implements the error interface.
func (e *UnknownPackagesError) Error() string {
	return fmt.Sprintf("unknown python packages: %s", strings.Join(e.Names, ", "))
}

// Environment describes one development shell: a name, a target system
// and the packages the shell provides. Base packages come from the
// top-level nixpkgs namespace; Python packages come from the nested
// python3Packages namespace and are validated against a PackageIndex.
//
// Package lists are append-only and preserve insertion order, duplicates
// included. Base packages are accepted as opaque identifiers; only the
// Python namespace is validated, since typos there surface as much more
// confusing evaluation errors.
type Environment struct {
	name           string
	system         string
	packages       []string
	pythonPackages []string
	index          PackageIndex
}

// NewEnvironment creates a development-shell builder. A nil index
// disables Python package validation.
func NewEnvironment(name string, index PackageIndex) *Environment {
	return &Environment{name: name, index: index}
}

// Name returns the shell's name.
func (e *Environment) Name() string {
	return e.name
}

// System sets the target platform, overwriting any previous value.
func (e *Environment) System(system string) *Environment {
	e.system = system
	return e
}

// Packages appends base packages from the nixpkgs namespace. Names are
// not validated or deduplicated.
func (e *Environment) Packages(names ...string) *Environment {
	e.packages = append(e.packages, names...)
	return e
}

// PythonPackages appends packages from the python3Packages namespace.
// Every name is checked against the index first; if any name is unknown
// the whole call is rejected, nothing is appended, and the returned
// UnknownPackagesError lists every offending name.
func (e *Environment) PythonPackages(names ...string) error {
	if e.index != nil {
		if invalid := e.index.FilterInvalid(names); len(invalid) > 0 {
			return &UnknownPackagesError{Names: invalid}
		}
	}
	e.pythonPackages = append(e.pythonPackages, names...)
	return nil
}

// render emits the shell's devShells attribute at the given indent level.
// The package list is flattened onto one line: base packages first, then
// Python packages, each in its own insertion order.
func (e *Environment) render(indent int) string {
	system := e.system
	if system == "" {
		system = DefaultSystem
	}

	refs := make([]string, 0, len(e.packages)+len(e.pythonPackages))
	for _, name := range e.packages {
		refs = append(refs, "pkgs."+name)
	}
	for _, name := range e.pythonPackages {
		refs = append(refs, "pkgs.python3Packages."+name)
	}

	list := "[ ]"
	if len(refs) > 0 {
		list = "[ " + strings.Join(refs, " ") + " ]"
	}

	ind := indentAt(indent)
	var b strings.Builder
	b.WriteString(ind + "devShells." + system + "." + e.name +
		" = let pkgs = nixpkgs.legacyPackages." + system + "; in pkgs.mkShell {\n")
	b.WriteString(ind + indentUnit + "packages = " + list + ";\n")
	b.WriteString(ind + "};\n")
	return b.String()
}
