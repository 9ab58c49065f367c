// Package strings has small string helpers shared by modules
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustPrefix normalizes a mount path like "charts" or "/qa/" to "/charts", "/qa".
// Panics when nothing is left after trimming.
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Filename turns a label like "Runs by Year" into "runs_by_year" for download names
func Filename(label string) string {
	var b std.Builder
	under := false
	for _, r := range std.ToLower(std.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			under = false
		case !under && b.Len() > 0:
			b.WriteByte('_')
			under = true
		}
	}
	return std.TrimSuffix(b.String(), "_")
}
