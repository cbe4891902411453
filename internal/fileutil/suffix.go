package fileutil

import (
	"path/filepath"
	"strings"
)

// Suffix returns the extension of the final path element including its dot.
// A dot in first or last position does not start a suffix, so ".bashrc" and
// "notes." have none.
func Suffix(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// LanguageTag returns the fenced code block hint for path: its suffix without the dot
func LanguageTag(path string) string {
	return strings.TrimPrefix(Suffix(path), ".")
}
