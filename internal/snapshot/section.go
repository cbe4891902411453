package snapshot

import (
	"io"
	"strings"
)

// fence opens and closes every code block
const fence = "```"

// FormatSection renders one document entry: a level-2 heading with the
// relative path, a blank line, then content fenced with the language tag.
func FormatSection(relPath, tag, content string) string {
	var b strings.Builder
	b.Grow(len(relPath) + len(tag) + len(content) + 16)
	b.WriteString("## ")
	b.WriteString(relPath)
	b.WriteString("\n\n")
	b.WriteString(fence)
	b.WriteString(tag)
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(fence)
	b.WriteString("\n\n")
	return b.String()
}

func writeSection(w io.Writer, relPath, tag, content string) error {
	_, err := io.WriteString(w, FormatSection(relPath, tag, content))
	return err
}
