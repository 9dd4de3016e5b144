package flake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubIndex accepts a fixed set of names.
type stubIndex struct {
	known map[string]bool
}

func newStubIndex(names ...string) *stubIndex {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	return &stubIndex{known: known}
}

func (s *stubIndex) FilterInvalid(names []string) []string {
	var invalid []string
	for _, n := range names {
		if !s.known[n] {
			invalid = append(invalid, n)
		}
	}
	return invalid
}

func TestEnvironment_PackageOrderPreserved(t *testing.T) {
	env := NewEnvironment("default", newStubIndex("requests", "numpy"))
	env.Packages("git", "ripgrep")
	env.Packages("git") // duplicates are kept
	require.NoError(t, env.PythonPackages("numpy"))
	require.NoError(t, env.PythonPackages("requests"))

	out := env.render(0)

	// Base packages first in insertion order, then python packages in
	// insertion order, flattened onto one line.
	assert.Contains(t, out,
		"packages = [ pkgs.git pkgs.ripgrep pkgs.git pkgs.python3Packages.numpy pkgs.python3Packages.requests ];")
}

func TestEnvironment_PythonPackagesValidationAtomic(t *testing.T) {
	env := NewEnvironment("default", newStubIndex("requests"))

	err := env.PythonPackages("requests", "not-a-package")
	require.Error(t, err)

	var unknown *UnknownPackagesError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"not-a-package"}, unknown.Names)

	// The valid name from the failed call must not have been appended.
	assert.NotContains(t, env.render(0), "requests")

	// A subsequent all-valid call still works.
	require.NoError(t, env.PythonPackages("requests"))
	assert.Contains(t, env.render(0), "pkgs.python3Packages.requests")
}

func TestEnvironment_PythonPackagesReportsEveryInvalidName(t *testing.T) {
	env := NewEnvironment("default", newStubIndex())

	err := env.PythonPackages("foo", "bar", "foo")
	require.Error(t, err)

	var unknown *UnknownPackagesError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"foo", "bar", "foo"}, unknown.Names)
	assert.Contains(t, err.Error(), "foo, bar, foo")
}

func TestEnvironment_NilIndexSkipsValidation(t *testing.T) {
	env := NewEnvironment("default", nil)
	require.NoError(t, env.PythonPackages("anything-goes"))
	assert.Contains(t, env.render(0), "pkgs.python3Packages.anything-goes")
}

func TestEnvironment_SystemDefaultsAndOverwrites(t *testing.T) {
	env := NewEnvironment("default", nil)
	assert.Contains(t, env.render(0), "devShells.x86_64-linux.default")

	env.System("aarch64-darwin")
	out := env.render(0)
	assert.Contains(t, out, "devShells.aarch64-darwin.default")
	assert.Contains(t, out, "nixpkgs.legacyPackages.aarch64-darwin")
	assert.NotContains(t, out, "x86_64-linux")
}

func TestEnvironment_RenderEmptyPackages(t *testing.T) {
	env := NewEnvironment("empty", nil)
	out := env.render(3)

	assert.Contains(t, out, "packages = [ ];")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "      "), "line %q must be indented at level 3", line)
	}
}
