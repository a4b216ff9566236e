package compare

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalizer turns raw file content into comparable lines.
type Normalizer struct {
	// Placeholder is replaced wherever it occurs in a line. Empty disables substitution.
	Placeholder string
	// Replacement is the substituted value, usually the absolute working directory.
	Replacement string
}

// Line substitutes the placeholder and strips trailing whitespace.
func (n Normalizer) Line(s string) string {
	if n.Placeholder != "" {
		s = strings.ReplaceAll(s, n.Placeholder, n.Replacement)
	}
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Lines splits content into normalized lines. "\n", "\r\n" and a lone "\r"
// all end a line; a terminator at end of content does not start a new one.
func (n Normalizer) Lines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")

	raw := strings.Split(content, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = n.Line(line)
	}
	return lines
}

// ReadLines reads the file at path and normalizes its content.
func ReadLines(path string, n Normalizer) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &FileError{Path: path, Err: ErrInvalidUTF8}
	}
	return n.Lines(string(data)), nil
}
