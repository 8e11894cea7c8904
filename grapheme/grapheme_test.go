package grapheme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"combining mark", "e\u0301x", []string{"e\u0301", "x"}},
		{"flag", "🇮🇳!", []string{"🇮🇳", "!"}},
		{"zwj emoji", "👩\u200d👩\u200d👧a", []string{"👩\u200d👩\u200d👧", "a"}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Segment(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, strings.Join(got, ""), tc.input)
			assert.Equal(t, len(tc.want), Count(tc.input))
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "cba"},
		{"e\u0301x", "xe\u0301"},
		{"🇮🇳🇺🇸", "🇺🇸🇮🇳"},
		{"a👩\u200d👩\u200d👧b", "b👩\u200d👩\u200d👧a"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Reverse(tc.input), "Reverse(%q)", tc.input)
		assert.Equal(t, tc.input, Reverse(Reverse(tc.input)), "double Reverse(%q)", tc.input)
	}
}
