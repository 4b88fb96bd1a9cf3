package core

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts a file path to the canonical comparison form:
// forward slashes and lower case. Editors on case-insensitive filesystems
// report the same file with varying casing and separators
// (`C:\Proj\a.ts` vs `c:/proj/a.ts`); annotations must match regardless.
//
// The normalized form is for comparison only. Stored annotations and
// payloads always carry the original spelling.
func NormalizePath(path string) string {
	return strings.ToLower(filepath.ToSlash(path))
}

// SamePath reports whether two paths identify the same file after
// normalization.
func SamePath(a, b string) bool {
	return NormalizePath(a) == NormalizePath(b)
}
