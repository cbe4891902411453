package fileutil

import (
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs are the names skipped when the caller does not supply an ignore list
var DefaultIgnoreDirs = []string{"node_modules", "__pycache__", ".git", ".vscode", ".idea"}

// NameSet is a set of exact path component names
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from a list of names. Empty names are dropped.
func NewNameSet(names []string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is a member of the set
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// IsIgnored reports whether any component of path equals a member of ignore.
// The path may be absolute or relative; it is cleaned before splitting.
func IsIgnored(path string, ignore NameSet) bool {
	if len(ignore) == 0 {
		return false
	}

	for _, part := range strings.Split(filepath.Clean(path), string(filepath.Separator)) {
		if part == "" || part == "." {
			continue
		}
		if ignore.Contains(part) {
			return true
		}
	}
	return false
}

// NormalizeExtensions lowercases extensions and ensures each starts with a dot.
// Returns nil when no usable extension is given, which means "all files".
func NormalizeExtensions(exts []string) NameSet {
	set := make(NameSet)
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		// Ensure extensions start with a dot
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
