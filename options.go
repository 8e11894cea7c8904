package lipi

import (
	"log/slog"
	"runtime"

	"golang.org/x/text/unicode/norm"

	"github.com/jamesainslie/go-lipi/translit"
)

// Option configures a Transliterator.
type Option func(*config)

type config struct {
	workers   int
	logger    *slog.Logger
	tableOpts []translit.Option
}

func defaultConfig() config {
	return config{
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
}

// WithWorkers sets how many inputs TransliterateAll processes at once
// (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGraphemes tokenizes by extended grapheme cluster instead of by
// codepoint when no conjunct matches.
func WithGraphemes() Option {
	return func(c *config) {
		c.tableOpts = append(c.tableOpts, translit.WithSegmentation(translit.Graphemes))
	}
}

// WithUnicodeForm normalizes input to f before the table's own
// normalization. The built-in tables expect unnormalized input, so this is
// off by default.
func WithUnicodeForm(f norm.Form) Option {
	return func(c *config) {
		c.tableOpts = append(c.tableOpts, translit.WithUnicodeForm(f))
	}
}
