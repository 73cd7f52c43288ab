package nlp

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var reFence = regexp.MustCompile("(?s)```(?:json|JSON)?[ \t]*\r?\n?(.*?)```")

// StripFences returns the body of the first markdown code fence, or the
// trimmed input when there is none.
func StripFences(s string) string {
	if m := reFence.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}

// ExtractObject returns the first brace-balanced {...} object in s.
// Braces inside JSON string literals are ignored. ok is false when no
// balanced object exists.
func ExtractObject(s string) (obj string, ok bool) {
	for start := strings.IndexByte(s, '{'); start >= 0; {
		if end := matchBrace(s, start); end > 0 {
			return s[start : end+1], true
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

// matchBrace returns the index of the brace closing the one at start, or -1.
func matchBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Unwrap extracts the generated text from a provider envelope. It accepts
// {"text": "..."} and the Gemini candidates/content/parts shape; any other
// input is returned unchanged.
func Unwrap(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return raw
	}
	doc := gjson.Parse(trimmed)
	if t := doc.Get("text"); t.Type == gjson.String {
		return t.Str
	}
	parts := doc.Get("candidates.0.content.parts.#.text")
	if parts.IsArray() {
		var sb strings.Builder
		for _, p := range parts.Array() {
			sb.WriteString(p.String())
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return raw
}
