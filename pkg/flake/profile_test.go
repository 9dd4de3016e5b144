package flake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Defaults(t *testing.T) {
	p := NewProfile("alice")
	out := p.render(0)

	assert.Contains(t, out, `home.username = "alice";`)
	assert.Contains(t, out, `home.stateVersion = "24.05";`)
	assert.NotContains(t, out, "home.homeDirectory")
	assert.NotContains(t, out, "home.packages")
}

func TestProfile_IdentityFields(t *testing.T) {
	p := NewProfile("bob").
		HomeDirectory("/home/bob").
		StateVersion("25.05").
		Packages("htop", "jq")

	out := p.render(0)
	assert.Contains(t, out, `home.username = "bob";`)
	assert.Contains(t, out, `home.homeDirectory = "/home/bob";`)
	assert.Contains(t, out, `home.stateVersion = "25.05";`)
	assert.Contains(t, out, "home.packages = with pkgs; [ htop jq ];")
}

func TestProfile_EnableProgramDefault(t *testing.T) {
	p := NewProfile("alice").EnableProgram("git")

	out := p.render(0)
	assert.Contains(t, out, "programs.git = {\n  enable = true;\n};")
}

func TestProfile_ProgramOverwrites(t *testing.T) {
	p := NewProfile("alice")
	p.EnableProgram("git")
	p.Program("git", Attrs(A("enable", Bool(false))))

	out := p.render(0)
	assert.Contains(t, out, "enable = false;")
	assert.NotContains(t, out, "enable = true;")
}

func TestProfile_SetDottedPathPreservesSiblings(t *testing.T) {
	p := NewProfile("alice")
	p.Set("programs.git.enable", Bool(true))
	p.Set("programs.git.userName", Str("Alice"))

	out := p.render(0)
	assert.Contains(t, out, "enable = true;")
	assert.Contains(t, out, `userName = "Alice";`)

	// Deeper paths create intermediates without clearing siblings either.
	p.Set("programs.git.extraConfig.pull.rebase", Bool(true))
	out = p.render(0)
	assert.Contains(t, out, "enable = true;")
	assert.Contains(t, out, `userName = "Alice";`)
	assert.Contains(t, out, "rebase = true;")
}

func TestProfile_SetSingleSegmentOverwritesWholesale(t *testing.T) {
	p := NewProfile("alice")
	p.Set("programs.git.enable", Bool(true))
	p.Set("programs.git", Attrs(A("package", Str("gitFull"))))

	out := p.render(0)
	assert.Contains(t, out, `package = "gitFull";`)
	assert.NotContains(t, out, "enable = true;")
}

func TestProfile_SetServices(t *testing.T) {
	p := NewProfile("alice")
	p.Set("services.gpg-agent.enable", Bool(true))

	assert.Contains(t, p.render(0), "services.gpg-agent = {\n  enable = true;\n};")
}

func TestProfile_SetHomeMergesIntoExtras(t *testing.T) {
	p := NewProfile("alice")
	p.Extra("home.sessionVariables.EDITOR", Str("vim"))
	p.Set("home", Attrs(
		A("home.shellAliases.ll", Str("ls -l")),
	))

	out := p.render(0)
	assert.Contains(t, out, `home.sessionVariables.EDITOR = "vim";`)
	assert.Contains(t, out, `home.shellAliases.ll = "ls -l";`)
}

func TestProfile_SetUnknownNamespaceIsNoOp(t *testing.T) {
	p := NewProfile("alice")
	before := p.render(0)
	p.Set("xsession.enable", Bool(true))
	p.Set("home", Str("not an attrset"))
	assert.Equal(t, before, p.render(0))
}

func TestProfile_ExtraOverwritesExactPathOnly(t *testing.T) {
	p := NewProfile("alice")
	p.Extra("xdg.enable", Bool(true))
	p.Extra("xdg.configFile", Attrs(A("foo", Str("bar"))))
	p.Extra("xdg.enable", Bool(false))

	out := p.render(0)
	assert.Contains(t, out, "xdg.enable = false;")
	assert.Contains(t, out, `foo = "bar";`)
	assert.NotContains(t, out, "xdg.enable = true;")
}

func TestProfile_ScalarEntriesRenderAsAssignments(t *testing.T) {
	p := NewProfile("alice")
	p.Program("bash", Bool(true))
	p.Extra("fonts.fontconfig.enable", Bool(true))

	out := p.render(0)
	assert.Contains(t, out, "programs.bash = true;")
	assert.Contains(t, out, "fonts.fontconfig.enable = true;")
}

func TestProfile_EntriesRenderInInsertionOrder(t *testing.T) {
	p := NewProfile("alice")
	p.EnableProgram("zsh")
	p.EnableProgram("git")
	p.EnableService("syncthing")

	out := p.render(0)
	zsh := strings.Index(out, "programs.zsh")
	git := strings.Index(out, "programs.git")
	syncthing := strings.Index(out, "services.syncthing")
	require.True(t, zsh >= 0 && git >= 0 && syncthing >= 0)
	assert.True(t, zsh < git, "programs must keep insertion order")
	assert.True(t, git < syncthing, "programs render before services")
}

func TestProfile_ModulesNotInOwnBody(t *testing.T) {
	p := NewProfile("alice").Module("./extra.nix")
	assert.NotContains(t, p.render(0), "extra.nix")
}
