package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flakesmith/flakesmith/internal/config"
	"github.com/flakesmith/flakesmith/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner returns canned output without executing anything.
type stubRunner struct {
	output []byte
	err    error
	calls  int
}

func (s *stubRunner) Run(ctx context.Context, scriptPath string) ([]byte, error) {
	s.calls++
	return s.output, s.err
}

func writeScript(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0644))
	return path
}

func TestValidateScriptPath(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "flake.go")

	tests := []struct {
		name    string
		path    string
		errType errors.ErrorType
	}{
		{"valid script", script, ""},
		{"empty path", "", errors.ErrorTypeValidation},
		{"wrong extension", filepath.Join(dir, "flake.nix"), errors.ErrorTypeValidation},
		{"missing file", filepath.Join(dir, "nope.go"), errors.ErrorTypeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateScriptPath(tt.path)
			if tt.errType == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
			}
		})
	}
}

func TestValidateScriptPath_Directory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "scripts.go")
	require.NoError(t, os.Mkdir(sub, 0755))

	err := validateScriptPath(sub)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestBuildScript_WritesDerivedOutputPath(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "flake.go")

	r := &stubRunner{output: []byte("{ }\n")}
	written, err := buildScript(context.Background(), r, script, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "flake.nix"), written)
	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "{ }\n", string(content))
	assert.Equal(t, 1, r.calls)
}

func TestBuildScript_ExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "flake.go")
	out := filepath.Join(dir, "result.nix")

	r := &stubRunner{output: []byte("{ }\n")}
	written, err := buildScript(context.Background(), r, script, out)
	require.NoError(t, err)
	assert.Equal(t, out, written)
	assert.FileExists(t, out)
}

func TestBuildScript_NoWriteOnRunnerFailure(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "flake.go")

	r := &stubRunner{err: errors.NewExecError("script_failed", "boom", nil)}
	_, err := buildScript(context.Background(), r, script, "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeExec))
	assert.NoFileExists(t, filepath.Join(dir, "flake.nix"))
}

func TestBuildScript_PreconditionBeforeRun(t *testing.T) {
	r := &stubRunner{output: []byte("{ }\n")}
	_, err := buildScript(context.Background(), r, "missing.go", "")
	require.Error(t, err)
	assert.Equal(t, 0, r.calls, "the script must not run when preconditions fail")
}

func TestResolveScriptPath(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, "flake.go", resolveScriptPath(nil, cfg))

	cfg.Build.Script = "dev/flake.go"
	assert.Equal(t, "dev/flake.go", resolveScriptPath(nil, cfg))

	assert.Equal(t, "cli.go", resolveScriptPath([]string{"cli.go"}, cfg),
		"an argument overrides the configured script")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, expected := range []string{"build", "init", "watch", "version"} {
		assert.True(t, names[expected], "missing %s command", expected)
	}
}

func TestVersionCommand_RejectsUnknownFormat(t *testing.T) {
	original := versionFormat
	t.Cleanup(func() { versionFormat = original })

	versionFormat = "xml"
	err := runVersionCommand(versionCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestInitCommand_FailsOnExistingTarget(t *testing.T) {
	dir := t.TempDir()
	target := writeScript(t, dir, "flake.go")

	original := initList
	t.Cleanup(func() { initList = original })
	initList = false

	err := runInit(initCmd, []string{target})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestInitCommand_DirectoryArgumentAppendsFileName(t *testing.T) {
	dir := t.TempDir()

	err := runInit(initCmd, []string{filepath.Join(dir, "dev")})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "dev", "flake.go"))
}

func TestBuildScript_OutputError(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "flake.go")

	r := &stubRunner{output: []byte("{ }\n")}
	_, err := buildScript(context.Background(), r, script,
		filepath.Join(dir, "missing-dir", "out.nix"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeIO))
}
