package translit

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Compile and the definition decoders.
var (
	// ErrInvalidDefinition indicates a definition that cannot be decoded.
	ErrInvalidDefinition = errors.New("translit: invalid definition")

	// ErrEmptyKey indicates an entry or similar pair with an empty source.
	ErrEmptyKey = errors.New("translit: empty key")

	// ErrConflictingEntry indicates a key listed twice with different values.
	ErrConflictingEntry = errors.New("translit: conflicting entry")

	// ErrMissingConjunct indicates a declared conjunct with no table entry.
	ErrMissingConjunct = errors.New("translit: conjunct has no table entry")
)

// ConjunctError reports which declared conjunct is missing from a table.
type ConjunctError struct {
	Table    string
	Conjunct string
}

func (e *ConjunctError) Error() string {
	return fmt.Sprintf("translit: table %q: conjunct %+q has no table entry", e.Table, e.Conjunct)
}

// Unwrap makes errors.Is(err, ErrMissingConjunct) hold.
func (e *ConjunctError) Unwrap() error {
	return ErrMissingConjunct
}
