package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-lipi/translit"
)

func TestGet_AllTablesCompile(t *testing.T) {
	for _, id := range IDs() {
		t.Run(id.String(), func(t *testing.T) {
			table, err := Get(id)
			require.NoError(t, err)
			assert.Equal(t, id.String(), table.Name())
			assert.Positive(t, table.Len())

			again, err := Get(id)
			require.NoError(t, err)
			assert.Same(t, table, again)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get(ID(42))
	assert.ErrorIs(t, err, ErrUnknownID)

	assert.Panics(t, func() { MustGet(ID(-1)) })
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input string
		want  ID
	}{
		{"brahmi", Brahmi},
		{"Keelakam", Keelakam},
		{" moolabhadri ", Moolabhadri},
		{"moolabhadri_legacy", MoolabhadriLegacy},
		{"NAVASHASHTI", Navashashti},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseID(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseID("grantha")
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestID_String(t *testing.T) {
	for _, id := range IDs() {
		got, err := ParseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	assert.Equal(t, "ID(9)", ID(9).String())
}

func TestDefinition_IsCopy(t *testing.T) {
	def, ok := Definition(Brahmi)
	require.True(t, ok)
	def.Entries[0] = translit.Pair{"x", "y"}

	fresh, _ := Definition(Brahmi)
	assert.Equal(t, translit.Pair{"അ", "𑀅"}, fresh.Entries[0])

	_, ok = Definition(ID(17))
	assert.False(t, ok)
}

func TestTransliterate_Empty(t *testing.T) {
	for _, id := range IDs() {
		assert.Empty(t, MustGet(id).Transliterate(""), id.String())
	}
}

func TestTransliterate_UnmappedIdentity(t *testing.T) {
	const input = "Hello, world! ¿Qué tal? 漢字 🙂"
	for _, id := range IDs() {
		assert.Equal(t, input, MustGet(id).Transliterate(input), id.String())
	}
}

func TestTransliterate_EntriesRoundTrip(t *testing.T) {
	for _, id := range IDs() {
		t.Run(id.String(), func(t *testing.T) {
			table := MustGet(id)
			for _, e := range table.Entries() {
				back, ok := table.Lookup(e.To())
				if !ok || back != e.From() {
					continue
				}
				if table.Normalize(e.From()) != e.From() || table.Normalize(e.To()) != e.To() {
					continue
				}
				once := table.Transliterate(e.From())
				assert.Equal(t, e.To(), once, "%+q", e.From())
				assert.Equal(t, e.From(), table.Transliterate(once), "%+q", e.From())
			}
		})
	}
}

func TestConjuncts_AreSingleTokens(t *testing.T) {
	for _, id := range IDs() {
		t.Run(id.String(), func(t *testing.T) {
			table := MustGet(id)
			def, _ := Definition(id)
			for _, c := range def.Conjuncts {
				tokens := table.Tokenize(c)
				require.Len(t, tokens, 1, "%+q", c)
				assert.Equal(t, c, tokens[0].Text)
			}
		})
	}
}

func TestBrahmi(t *testing.T) {
	table := MustGet(Brahmi)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ka", "ക", "𑀓"},
		{"word", "മലയാളം", "𑀫𑀮𑀬𑀸𑀴𑀁"},
		{"atomic chillu", "ൻ", "𑀷𑁰"},
		{"zwj chillu", "ന്\u200d", "𑀷𑁰"},
		{"brahmi chillu back", "𑀷𑁰", "ൻ"},
		{"digits", "൧൨", "𑁧𑁨"},
		{"mixed", "ക 1", "𑀓 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.Transliterate(tc.input))
		})
	}

	assert.Equal(t, "ക", table.Transliterate(table.Transliterate("ക")))
	assert.Equal(t, "മലയാളം", table.Transliterate(table.Transliterate("മലയാളം")))
}

func TestBrahmi_NormalizesBeforeTokenizing(t *testing.T) {
	table := MustGet(Brahmi)

	assert.Equal(t, "ൻ", table.Normalize("ന്\u200d"))
	assert.Equal(t, "ൻ്റ", table.Normalize("ന്\u200dറ"))

	tokens := table.Tokenize(table.Normalize("ന്\u200d"))
	require.Len(t, tokens, 1)
	assert.Equal(t, "ൻ", tokens[0].Text)
}

func TestBrahmi_Audit(t *testing.T) {
	table := MustGet(Brahmi)

	assert.True(t, table.Lossy())
	assert.Equal(t, []translit.Pair{
		{"ൟ", "𑀈"},
		{"ൗ", "𑁅"},
		{"ൎ", "𑀭𑁰"},
	}, table.Audit())

	// Lossy entries collapse onto their partner letters.
	assert.Equal(t, "ഈ", table.Transliterate(table.Transliterate("ൟ")))
	assert.Equal(t, "ർ", table.Transliterate(table.Transliterate("ൎ")))
}

func TestKeelakam(t *testing.T) {
	table := MustGet(Keelakam)

	assert.Equal(t, "പസ", table.Transliterate("കല"))
	assert.Equal(t, "കല", table.Transliterate("പസ"))
	assert.Equal(t, "9876", table.Transliterate("0123"))
	// ല + virama + ZWJ normalizes to ൽ, which swaps with ൻ.
	assert.Equal(t, "ൻ", table.Transliterate("ല്\u200d"))
}

func TestMoolabhadri(t *testing.T) {
	table := MustGet(Moolabhadri)

	assert.Equal(t, "കാമ", table.Transliterate("ആന"))
	assert.Equal(t, "ആന", table.Transliterate("കാമ"))

	tokens := table.Tokenize("ക്ഷ്\u200d")
	require.Len(t, tokens, 1)
	assert.Equal(t, "ൾ", table.Transliterate("ക്ഷ്\u200d"))
	assert.Equal(t, "ള", table.Transliterate("ക്ഷ"))
}

func TestMoolabhadriLegacy(t *testing.T) {
	table := MustGet(MoolabhadriLegacy)

	assert.Equal(t, "ഞ്ച", table.Transliterate("ങ്ക"))
	assert.Equal(t, "ങ്ക", table.Transliterate("ഞ്ച"))
	assert.Equal(t, "ഝ", table.Transliterate("ജ"))
}

func TestNavashashti(t *testing.T) {
	table := MustGet(Navashashti)

	assert.Equal(t, "ട്\u200d", table.Transliterate("ൺ"))
	assert.Equal(t, "ൺ", table.Transliterate("ട്\u200d"))
	assert.Equal(t, "4317", table.Transliterate("0132"))
}

func TestDefinitions_EncodeRoundTrip(t *testing.T) {
	for _, id := range IDs() {
		t.Run(id.String(), func(t *testing.T) {
			def, _ := Definition(id)

			bin, err := translit.DecodeBinary(translit.EncodeBinary(def))
			require.NoError(t, err)
			assert.Equal(t, def, bin)

			data, err := translit.EncodeYAML(def)
			require.NoError(t, err)
			doc, err := translit.DecodeYAML(data)
			require.NoError(t, err)
			assert.Equal(t, def, doc)
		})
	}
}

func TestGraphemes_MatchCodepointOutput(t *testing.T) {
	def, ok := Definition(Brahmi)
	require.True(t, ok)
	graphemes := translit.MustCompile(def, translit.WithSegmentation(translit.Graphemes))

	assert.Equal(t, "𑀓𑀺", graphemes.Transliterate("കി"))
	assert.Equal(t, "𑀫𑀮𑀬𑀸𑀴𑀁", graphemes.Transliterate("മലയാളം"))

	words := []string{"ക്ഷേത്രം", "മലയാളം ഒരു ഭാഷ", "പുസ്തകങ്ങൾ", "ന്\u200dറ"}
	for _, id := range IDs() {
		def, _ := Definition(id)
		graphemes := translit.MustCompile(def, translit.WithSegmentation(translit.Graphemes))
		for _, w := range words {
			assert.Equal(t, MustGet(id).Transliterate(w), graphemes.Transliterate(w), "%s: %q", id, w)
		}
	}
}
