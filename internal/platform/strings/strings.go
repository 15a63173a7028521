// Package strings holds the small string helpers modules share
package strings

import std "strings"

// IfEmpty falls back to def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString panics naming what when s is blank
func MustString(s, what string) string {
	if std.TrimSpace(s) == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix cleans a mount path to "/a/b" form and panics on root or blank
func MustPrefix(s string) string {
	var parts []string
	for p := range std.SplitSeq(s, "/") {
		if p = std.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		panic("mount prefix is required")
	}
	return "/" + std.Join(parts, "/")
}
