package translit

import "strings"

// Normalize replaces every non-overlapping occurrence of each pair's From
// with its To. Pairs run in order and each one covers the whole text before
// the next starts, so an earlier pair wins wherever two overlap.
func Normalize(text string, pairs []Pair) string {
	if text == "" {
		return ""
	}

	for _, p := range pairs {
		if p.From() == "" {
			continue
		}
		text = strings.ReplaceAll(text, p.From(), p.To())
	}

	return text
}

// Normalize applies the table's Unicode form, if any, and then its similar
// pairs.
func (t *Table) Normalize(text string) string {
	if text == "" {
		return ""
	}
	if t.cfg.form != nil {
		text = t.cfg.form.String(text)
	}
	return Normalize(text, t.def.SimilarPairs)
}
