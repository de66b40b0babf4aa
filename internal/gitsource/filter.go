package gitsource

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter restricts extraction to paths matching include/exclude glob
// patterns. Exclude wins; an empty include list accepts everything.
type Filter struct {
	Include []string
	Exclude []string
}

// Match reports whether the path passes the filter.
func (f *Filter) Match(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range f.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}

// Empty reports whether the filter has no patterns at all.
func (f *Filter) Empty() bool {
	return f == nil || (len(f.Include) == 0 && len(f.Exclude) == 0)
}
