// Package translit implements table-driven reversible transliteration.
//
// A scheme is described by a Definition: an ordered list of "similar pairs"
// that rewrite legacy multi-codepoint spellings into canonical codepoints, and
// a substitution table keyed by tokens of one or more codepoints. Compile
// turns a Definition into a Table. Transliterating runs three stages:
//
//   - Normalize applies every similar pair, in order, to the whole text.
//   - Tokenize splits the text in one forward scan, consuming the longest
//     multi-codepoint key (a conjunct) at each position, else one codepoint
//     (or one grapheme cluster, see WithSegmentation).
//   - Each token is replaced by its table value. Tokens without an entry
//     pass through unchanged.
//
// Tables are immutable once compiled and safe for concurrent use by multiple
// goroutines.
//
// Applying a table twice returns the input when every entry A → B has a
// B → A partner. Tables that fold several tokens into one (see
// Definition.Lossy and Table.Audit) do not round-trip for those tokens.
package translit

import "slices"

// Pair is a (from, to) string pair. Similar pairs and table entries share it.
type Pair [2]string

// From returns the source side of the pair.
func (p Pair) From() string { return p[0] }

// To returns the replacement side of the pair.
func (p Pair) To() string { return p[1] }

// Definition describes one transliteration scheme.
type Definition struct {
	Name string

	// SimilarPairs are applied in order before tokenizing, each one to the
	// whole text. A legacy sequence must be listed before any shorter
	// sequence that is a prefix or substring of it.
	SimilarPairs []Pair

	// Entries is the substitution table in declared order. A key may repeat
	// only with the same value.
	Entries []Pair

	// Conjuncts optionally declares the multi-codepoint keys the scheme
	// depends on. Each one must be a key of Entries. Tokenizing uses every
	// multi-codepoint key whether or not it is declared here.
	Conjuncts []string

	// Lossy marks schemes that fold distinct tokens into the same value.
	Lossy bool
}

// Clone returns a deep copy of d.
func (d Definition) Clone() Definition {
	d.SimilarPairs = slices.Clone(d.SimilarPairs)
	d.Entries = slices.Clone(d.Entries)
	d.Conjuncts = slices.Clone(d.Conjuncts)
	return d
}
