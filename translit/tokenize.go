package translit

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Token is one unit of transliteration with its byte span in the text it
// was cut from.
type Token struct {
	Text  string
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
}

// Tokens yields the tokens of text in order. At each position the longest
// conjunct starting there wins; otherwise one fallback unit is taken. Invalid
// UTF-8 bytes come out as single-byte tokens.
//
// In grapheme mode the fallback unit is the grapheme cluster at the position,
// kept whole only if it is a key itself or nothing inside it is mapped.
// Otherwise the cluster is split into codepoints so that, for example, a
// consonant and its vowel sign are looked up separately.
//
// Tokens does not normalize; call Normalize first to match Transliterate.
func (t *Table) Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		state := -1
		for pos := 0; pos < len(text); {
			rest := text[pos:]

			var n int
			if n = t.matchConjunct(rest); n > 0 {
				state = -1
			} else if t.cfg.segmentation == Graphemes {
				cluster, _, _, next := uniseg.FirstGraphemeClusterInString(rest, state)
				if t.wholeCluster(rest, len(cluster)) {
					n, state = len(cluster), next
				} else {
					_, n = utf8.DecodeRuneInString(rest)
					state = -1
				}
			} else {
				_, n = utf8.DecodeRuneInString(rest)
			}

			if !yield(Token{Text: rest[:n], Start: pos, End: pos + n}) {
				return
			}
			pos += n
		}
	}
}

// Tokenize returns the tokens of text. See Tokens.
func (t *Table) Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	return slices.Collect(t.Tokens(text))
}

// wholeCluster reports whether the size-byte cluster at the start of s
// should be a single token.
func (t *Table) wholeCluster(s string, size int) bool {
	cluster := s[:size]
	if _, ok := t.entries[cluster]; ok {
		return true
	}
	if utf8.RuneCountInString(cluster) == 1 {
		return true
	}
	for i, r := range cluster {
		if _, ok := t.entries[string(r)]; ok {
			return false
		}
		if i > 0 && t.matchConjunct(s[i:]) > 0 {
			return false
		}
	}
	return true
}

// matchConjunct returns the byte length of the longest conjunct that s
// starts with, or 0.
func (t *Table) matchConjunct(s string) int {
	if t.maxConjunct == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	for _, c := range t.conjuncts[r] {
		if strings.HasPrefix(s, c) {
			return len(c)
		}
	}
	return 0
}

// Transliterate normalizes text, tokenizes it and replaces every token that
// has a table entry. Tokens without an entry are copied unchanged.
func (t *Table) Transliterate(text string) string {
	if text == "" {
		return ""
	}

	normalized := t.Normalize(text)

	var b strings.Builder
	b.Grow(len(normalized))
	for tok := range t.Tokens(normalized) {
		if v, ok := t.entries[tok.Text]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(tok.Text)
		}
	}

	return b.String()
}
