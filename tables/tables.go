// Package tables holds the built-in Malayalam script-substitution schemes.
//
// Every scheme shares the same chillu normalization and is compiled once, on
// first use, into an immutable translit.Table.
package tables

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jamesainslie/go-lipi/translit"
)

// ErrUnknownID indicates a table name or ID that is not built in.
var ErrUnknownID = errors.New("tables: unknown table")

// ID names a built-in table.
type ID int

const (
	Brahmi ID = iota
	Keelakam
	Moolabhadri
	MoolabhadriLegacy
	Navashashti
)

var definitions = [...]*translit.Definition{
	Brahmi:            &brahmi,
	Keelakam:          &keelakam,
	Moolabhadri:       &moolabhadri,
	MoolabhadriLegacy: &moolabhadriLegacy,
	Navashashti:       &navashashti,
}

var compiled [len(definitions)]func() (*translit.Table, error)

func init() {
	for id, def := range definitions {
		compiled[id] = sync.OnceValues(func() (*translit.Table, error) {
			return translit.Compile(*def)
		})
	}
}

// chilluPairs rewrite the ZWJ spellings of the chillus (consonant + virama +
// ZWJ) into the atomic chillu codepoints. The ന + virama + ZWJ + റ cluster
// goes first so the shorter ന pair does not split it.
var chilluPairs = []translit.Pair{
	{"ന്\u200dറ", "ൻ്റ"},
	{"മ്\u200d", "ൔ"},
	{"യ്\u200d", "ൕ"},
	{"ഴ്\u200d", "ൖ"},
	{"ണ്\u200d", "ൺ"},
	{"ന്\u200d", "ൻ"},
	{"ര്\u200d", "ർ"},
	{"ല്\u200d", "ൽ"},
	{"ള്\u200d", "ൾ"},
	{"ക്\u200d", "ൿ"},
}

// IDs returns every built-in table ID.
func IDs() []ID {
	ids := make([]ID, len(definitions))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

func (id ID) valid() bool {
	return id >= 0 && int(id) < len(definitions)
}

// String returns the table name used on the command line and in files.
func (id ID) String() string {
	if !id.valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return definitions[id].Name
}

// ParseID returns the ID for a table name. Matching ignores case and
// surrounding space, and accepts '_' for '-'.
func ParseID(name string) (ID, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, id := range IDs() {
		if definitions[id].Name == key {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownID, name)
}

// Definition returns a copy of the definition of a built-in table.
func Definition(id ID) (translit.Definition, bool) {
	if !id.valid() {
		return translit.Definition{}, false
	}
	return definitions[id].Clone(), true
}

// Get returns the compiled table for id, compiling it on first use.
func Get(id ID) (*translit.Table, error) {
	if !id.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownID, id)
	}
	return compiled[id]()
}

// MustGet is like Get but panics on error.
func MustGet(id ID) *translit.Table {
	t, err := Get(id)
	if err != nil {
		panic(err)
	}
	return t
}
