package lipi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jamesainslie/go-lipi/internal/batch"
	"github.com/jamesainslie/go-lipi/tables"
	"github.com/jamesainslie/go-lipi/translit"
)

// Transliterate runs input through the built-in table id. It panics if id
// is not a built-in table.
func Transliterate(input string, id tables.ID) string {
	return tables.MustGet(id).Transliterate(input)
}

// Transliterator applies one compiled table. It is safe for concurrent use.
type Transliterator struct {
	table  *translit.Table
	pool   *batch.Pool
	logger *slog.Logger
}

// New creates a Transliterator for a built-in table.
func New(id tables.ID, opts ...Option) (*Transliterator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	def, ok := tables.Definition(id)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTable, id)
	}

	// Built-in tables compiled with default options are shared.
	var (
		table *translit.Table
		err   error
	)
	if len(cfg.tableOpts) == 0 {
		table, err = tables.Get(id)
	} else {
		table, err = translit.Compile(def, cfg.tableOpts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	return newTransliterator(table, cfg), nil
}

// NewFromFile creates a Transliterator from a YAML or binary table file.
func NewFromFile(path string, opts ...Option) (*Transliterator, error) {
	def, err := translit.LoadDefinition(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return NewFromDefinition(def, opts...)
}

// NewFromDefinition compiles def into a Transliterator.
func NewFromDefinition(def translit.Definition, opts ...Option) (*Transliterator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	table, err := translit.Compile(def, cfg.tableOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	return newTransliterator(table, cfg), nil
}

func newTransliterator(table *translit.Table, cfg config) *Transliterator {
	cfg.logger.Debug("table ready",
		slog.String("table", table.Name()),
		slog.Int("entries", table.Len()),
		slog.Int("conjuncts", len(table.Conjuncts())),
		slog.String("segmentation", table.Segmentation().String()),
	)

	return &Transliterator{
		table:  table,
		pool:   batch.NewPool(cfg.workers),
		logger: cfg.logger,
	}
}

// Transliterate returns text with every mapped token replaced.
func (t *Transliterator) Transliterate(text string) string {
	return t.table.Transliterate(text)
}

// Tokenize normalizes text and returns its tokens. Offsets refer to the
// normalized text.
func (t *Transliterator) Tokenize(text string) []translit.Token {
	return t.table.Tokenize(t.table.Normalize(text))
}

// TransliterateAll transliterates every input, in order, spreading the work
// over the worker pool.
func (t *Transliterator) TransliterateAll(ctx context.Context, inputs []string) ([]string, error) {
	t.logger.Debug("transliterating batch",
		slog.String("table", t.table.Name()),
		slog.Int("inputs", len(inputs)),
		slog.Int("workers", t.pool.Size()),
	)

	out, err := t.pool.Map(ctx, inputs, t.table.Transliterate)
	if err != nil {
		return nil, fmt.Errorf("transliterating batch: %w", err)
	}
	return out, nil
}

// Table returns the compiled table.
func (t *Transliterator) Table() *translit.Table {
	return t.table
}
