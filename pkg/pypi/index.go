// Package pypi holds the static allow-list of python3Packages attribute
// names accepted into development shells. The list is bundled with the
// binary and loaded once; lookups are read-only and safe for concurrent
// use.
package pypi

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed packages.txt
var rawPackages string

// Index is a set of known package attribute names.
type Index struct {
	names map[string]struct{}
}

// NewIndex builds an index from the given names. Empty names are
// ignored.
func NewIndex(names []string) *Index {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return &Index{names: set}
}

var (
	defaultIndex *Index
	defaultOnce  sync.Once
)

// Default returns the index backed by the bundled package list, parsing
// it on first use. Lines starting with '#' are comments.
func Default() *Index {
	defaultOnce.Do(func() {
		var names []string
		for _, line := range strings.Split(rawPackages, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			names = append(names, line)
		}
		defaultIndex = NewIndex(names)
	})
	return defaultIndex
}

// Contains reports whether name is in the index.
func (ix *Index) Contains(name string) bool {
	_, ok := ix.names[name]
	return ok
}

// FilterInvalid returns the names not present in the index, in input
// order. Duplicate unknown names are reported once each time they occur.
func (ix *Index) FilterInvalid(names []string) []string {
	var invalid []string
	for _, name := range names {
		if !ix.Contains(name) {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

// Len returns the number of names in the index.
func (ix *Index) Len() int {
	return len(ix.names)
}
