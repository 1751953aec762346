package drop

import (
	"slices"
	"strings"
)

// Filter is a set of accepted extensions, without the leading dot.
type Filter []string

// NewFilter creates a filter accepting the given extensions.
func NewFilter(exts ...string) Filter {
	if len(exts) == 0 {
		return nil
	}
	return Filter(slices.Clone(exts))
}

// Extension returns the text after the last '.' in path, or "" if path
// contains no '.'.
func Extension(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return path[i+1:]
}

// Empty returns true if the filter accepts everything.
func (f Filter) Empty() bool {
	return len(f) == 0
}

// Match reports whether path passes the filter.
func (f Filter) Match(path string) bool {
	if len(f) == 0 {
		return true
	}
	return slices.Contains(f, Extension(path))
}

// Apply returns the matching paths in their original order.
// The result is never nil so batch handlers can range over it safely.
func (f Filter) Apply(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// String returns the filter as a comma separated list.
func (f Filter) String() string {
	if len(f) == 0 {
		return "*"
	}
	return strings.Join(f, ",")
}

// PerPath adapts fn so it is invoked once for each matching path.
func PerPath(f Filter, fn func(path string)) func(paths []string) {
	return func(paths []string) {
		for _, p := range paths {
			if f.Match(p) {
				fn(p)
			}
		}
	}
}

// Batch adapts fn so it is invoked once per drop with the matching paths.
// fn is called even when no path matches.
func Batch(f Filter, fn func(paths []string)) func(paths []string) {
	return func(paths []string) {
		fn(f.Apply(paths))
	}
}
