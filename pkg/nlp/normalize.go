package nlp

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)

// NormalizeKey folds a label or token for case-insensitive lookup:
// lower case, inner whitespace collapsed, surrounding space trimmed.
func NormalizeKey(s string) string {
	s = strings.ToLower(s)
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

var (
	reInlineSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines    = regexp.MustCompile(`\n+`)
)

// NormalizeWhitespace collapses runs of spaces and blank lines, keeping line breaks.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reInlineSpace.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
