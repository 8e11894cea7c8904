// Package grapheme splits and reverses text by user-perceived character
// (extended grapheme cluster) instead of by rune.
package grapheme

import "github.com/rivo/uniseg"

// Segment returns the grapheme clusters of s in order.
func Segment(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Reverse reverses the order of the grapheme clusters in s, keeping each
// cluster intact.
func Reverse(s string) string {
	return uniseg.ReverseString(s)
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
