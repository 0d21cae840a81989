// Package guide provides access to embedded help and guide pages used by
// the CLI's built-in documentation system.
package guide

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var files embed.FS

// ErrNotFound is returned by Get for an unknown page.
var ErrNotFound = fs.ErrNotExist

// Get returns the content of a guide page by name. If `name` is empty
// the default "guide" page is returned.
func Get(name string) (string, error) {
	if name == "" {
		name = "guide"
	}
	data, err := files.ReadFile(strings.ToLower(name) + ".md")
	if err != nil {
		return "", fmt.Errorf("guide %q: %w", name, ErrNotFound)
	}
	return string(data), nil
}

// List returns the available topic names (without the .md suffix), sorted.
// The default page is not a topic and is omitted.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != "guide" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
