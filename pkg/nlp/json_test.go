package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "Here you go:\n```json\n{\"a\":1}\n```\nBye", `{"a":1}`},
		{"bare fence", "```\nFull Name: Jane\n```", "Full Name: Jane"},
		{"no fence", "  Full Name: Jane  ", "Full Name: Jane"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.in))
		})
	}
}

func TestExtractObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "prose around object",
			in:   `Sure! Here's the data: {"score": 70, "reasons": ["x"]} Hope that helps!`,
			want: `{"score": 70, "reasons": ["x"]}`,
			ok:   true,
		},
		{
			name: "nested objects",
			in:   `result {"jobs":{"a":{"score":1}}} trailing }`,
			want: `{"jobs":{"a":{"score":1}}}`,
			ok:   true,
		},
		{
			name: "braces inside strings",
			in:   `{"reasons":["uses {curly} braces \"}\""]}`,
			want: `{"reasons":["uses {curly} braces \"}\""]}`,
			ok:   true,
		},
		{
			name: "unbalanced first brace",
			in:   `{ broken then {"ok":true}`,
			want: `{"ok":true}`,
			ok:   true,
		},
		{name: "none", in: "no json here", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractObject(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, "hello", Unwrap(`{"text":"hello","usage":{}}`))
	assert.Equal(t, "ab", Unwrap(`{"candidates":[{"content":{"parts":[{"text":"a"},{"text":"b"}]}}]}`))
	assert.Equal(t, `{"score":5}`, Unwrap(`{"score":5}`))
	assert.Equal(t, "plain text", Unwrap("plain text"))
}
