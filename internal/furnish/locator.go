package furnish

import (
	"path/filepath"
	"strings"
)

// Locator finds the model file for an identifier by trying path templates
// inside <Root>/<identifier> in order
type Locator struct {
	Root      string
	Templates []string
}

// NewLocator creates a locator. {name} in a template expands to the
// identifier.
func NewLocator(root string, templates []string) *Locator {
	return &Locator{Root: root, Templates: templates}
}

// Candidates returns the paths Locate will try, in order
func (l *Locator) Candidates(id string) []string {
	folder := filepath.Join(l.Root, id)
	out := make([]string, len(l.Templates))
	for i, tmpl := range l.Templates {
		out[i] = filepath.Join(folder, strings.ReplaceAll(tmpl, "{name}", id))
	}
	return out
}

// Locate returns the first candidate that exists on disk. Not finding one
// is a normal outcome and reported through ok.
func (l *Locator) Locate(id string) (path string, ok bool) {
	for _, candidate := range l.Candidates(id) {
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
