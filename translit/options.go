package translit

import "golang.org/x/text/unicode/norm"

// Segmentation selects the fallback unit used when no conjunct matches.
type Segmentation int

const (
	// Codepoints emits one codepoint per fallback token.
	Codepoints Segmentation = iota

	// Graphemes emits one extended grapheme cluster per fallback token.
	Graphemes
)

func (s Segmentation) String() string {
	switch s {
	case Codepoints:
		return "codepoints"
	case Graphemes:
		return "graphemes"
	default:
		return "unknown"
	}
}

// Option configures how a Definition is compiled.
type Option func(*config)

type config struct {
	segmentation Segmentation
	form         *norm.Form
}

func defaultConfig() config {
	return config{
		segmentation: Codepoints,
	}
}

// WithSegmentation sets the fallback unit (default: Codepoints).
func WithSegmentation(s Segmentation) Option {
	return func(c *config) {
		c.segmentation = s
	}
}

// WithUnicodeForm applies a Unicode normalization form before the similar
// pairs (default: none).
func WithUnicodeForm(f norm.Form) Option {
	return func(c *config) {
		c.form = &f
	}
}
