package fs

import (
	"path/filepath"
	"strings"

	"github.com/tidwall/match"
)

// Matcher decides whether a source file is excluded.
//
// Patterns use '/' as separator. '*' matches any run of characters including
// '/', so "**/R.java" excludes R.java in every package, the root included.
// A pattern is anchored at the source root.
type Matcher struct {
	patterns []string
}

// NewMatcher compiles exclude patterns.
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		if !strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "*") {
			p = "/" + p
		}
		m.patterns = append(m.patterns, p)
	}
	return m
}

// Match reports whether rel, a path relative to a source root, is excluded.
func (m *Matcher) Match(rel string) bool {
	candidate := "/" + strings.TrimPrefix(filepath.ToSlash(rel), "/")
	for _, p := range m.patterns {
		if match.Match(candidate, p) {
			return true
		}
	}
	return false
}

// Filter returns the files below root that are not excluded, keeping their order.
func (m *Matcher) Filter(root string, files []string) []string {
	if len(m.patterns) == 0 {
		return files
	}
	kept := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil || !m.Match(rel) {
			kept = append(kept, f)
		}
	}
	return kept
}
