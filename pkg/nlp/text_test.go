package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "Rust", "Python"}, SplitList("Go, Rust; Python"))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, ;\n b \n"))
	assert.Empty(t, SplitList(" , ; "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "ok", SanitizeUTF8("ok"))
	assert.Equal(t, "a�b", SanitizeUTF8("a\xffb"))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "technical skills", NormalizeKey("  Technical\tSkills "))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", NormalizeWhitespace("  a \t b\n\n\nc  "))
}
