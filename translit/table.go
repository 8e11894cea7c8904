package translit

import (
	"cmp"
	"fmt"
	"slices"
	"unicode/utf8"
)

// Table is a compiled Definition.
type Table struct {
	def     Definition
	cfg     config
	entries map[string]string // token -> replacement
	order   []Pair            // entries in declared order, duplicates dropped

	// conjuncts indexes multi-codepoint keys by their first rune, longest
	// first. Equal lengths keep declared order.
	conjuncts   map[rune][]string
	conjunctSet []string
	maxConjunct int // longest conjunct in bytes
}

// Compile validates def and builds an immutable Table from it.
func Compile(def Definition, opts ...Option) (*Table, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, p := range def.SimilarPairs {
		if p.From() == "" {
			return nil, fmt.Errorf("%w: table %q: similar pair %d", ErrEmptyKey, def.Name, i)
		}
	}

	t := &Table{
		def:       def.Clone(),
		cfg:       cfg,
		entries:   make(map[string]string, len(def.Entries)),
		order:     make([]Pair, 0, len(def.Entries)),
		conjuncts: make(map[rune][]string),
	}

	for i, e := range def.Entries {
		key := e.From()
		if key == "" {
			return nil, fmt.Errorf("%w: table %q: entry %d", ErrEmptyKey, def.Name, i)
		}
		if prev, ok := t.entries[key]; ok {
			if prev != e.To() {
				return nil, fmt.Errorf("%w: table %q: %+q maps to both %+q and %+q",
					ErrConflictingEntry, def.Name, key, prev, e.To())
			}
			continue
		}
		t.entries[key] = e.To()
		t.order = append(t.order, e)

		if utf8.RuneCountInString(key) > 1 {
			first, _ := utf8.DecodeRuneInString(key)
			t.conjuncts[first] = append(t.conjuncts[first], key)
			t.conjunctSet = append(t.conjunctSet, key)
			t.maxConjunct = max(t.maxConjunct, len(key))
		}
	}

	for _, c := range def.Conjuncts {
		if _, ok := t.entries[c]; !ok {
			return nil, &ConjunctError{Table: def.Name, Conjunct: c}
		}
	}

	for r, candidates := range t.conjuncts {
		slices.SortStableFunc(candidates, func(a, b string) int {
			return cmp.Compare(len(b), len(a))
		})
		t.conjuncts[r] = candidates
	}

	return t, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(def Definition, opts ...Option) *Table {
	t, err := Compile(def, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the definition name.
func (t *Table) Name() string { return t.def.Name }

// Lossy reports whether the definition is marked lossy.
func (t *Table) Lossy() bool { return t.def.Lossy }

// Len returns the number of distinct keys.
func (t *Table) Len() int { return len(t.order) }

// Segmentation returns the fallback unit used by Tokenize.
func (t *Table) Segmentation() Segmentation { return t.cfg.segmentation }

// Lookup returns the replacement for token, if the table has one.
func (t *Table) Lookup(token string) (string, bool) {
	v, ok := t.entries[token]
	return v, ok
}

// Conjuncts returns every multi-codepoint key in declared order.
func (t *Table) Conjuncts() []string {
	return slices.Clone(t.conjunctSet)
}

// Entries returns the distinct entries in declared order.
func (t *Table) Entries() []Pair {
	return slices.Clone(t.order)
}

// Definition returns a copy of the definition the table was compiled from.
func (t *Table) Definition() Definition {
	return t.def.Clone()
}

// Audit returns the entries A → B that have no B → A partner. Applying the
// table twice does not restore A for these entries.
func (t *Table) Audit() []Pair {
	var broken []Pair
	for _, e := range t.order {
		if back, ok := t.entries[e.To()]; !ok || back != e.From() {
			broken = append(broken, e)
		}
	}
	return broken
}

// Involutive reports whether every entry has a reverse partner.
func (t *Table) Involutive() bool {
	return len(t.Audit()) == 0
}
