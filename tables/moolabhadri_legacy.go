package tables

import "github.com/jamesainslie/go-lipi/translit"

// moolabhadriLegacy is the earlier Moolabhadri table. It differs from
// moolabhadri in the ജ/ഡ, ദ/ബ rows, in the chillu rows and in the nasal
// clusters (ങ്ക↔ഞ്ച, ണ്ട↔ന്ത, മ്പ↔ഩ്ഩ).
var moolabhadriLegacy = translit.Definition{
	Name:         "moolabhadri-legacy",
	Lossy:        true,
	SimilarPairs: chilluPairs,
	Entries: []translit.Pair{
		{"അ", "ക"},
		{"ആ", "കാ"},
		{"ഇ", "കി"},
		{"ഈ", "കീ"},
		{"ൟ", "കീ"},
		{"ഉ", "കു"},
		{"ഊ", "കൂ"},
		{"ഋ", "കൃ"},
		{"ൠ", "കൄ"},
		{"ഌ", "കൢ"},
		{"ൡ", "കൣ"},
		{"എ", "കെ"},
		{"ഏ", "കേ"},
		{"ഐ", "കൈ"},
		{"ഒ", "കൊ"},
		{"ഓ", "കോ"},
		{"ഔ", "കൌ"},
		{"അം", "കം"},
		{"അഃ", "കഃ"},
		{"അ്\u200d", "ൿ"},
		{"ഖ", "ഗ"},
		{"ഘ", "ങ"},
		{"ച", "ട"},
		{"ഛ", "ഠ"},
		{"ജ", "ഝ"},
		{"ഞ", "ണ"},
		{"ഞ്\u200d", "ൺ"},
		{"ഡ", "ഢ"},
		{"ത", "പ"},
		{"ഥ", "ഫ"},
		{"ദ", "ധ"},
		{"ബ", "ഭ"},
		{"ന", "മ"},
		{"ഩ", "മ"},
		{"യ", "ശ"},
		{"ൕ", "ശ്"},
		{"ര", "ഷ"},
		{"ല", "സ"},
		{"വ", "ഹ"},
		{"ള", "ക്ഷ"},
		{"ഴ", "റ"},
		{"ൖ", "റ്"},
		{"ങ്ക", "ഞ്ച"},
		{"ണ്ട", "ന്ത"},
		{"മ്പ", "ഩ്ഩ"},
		{"ൻ്റ", "റ്റ"},
		{"ഺ", "റ്റ"},
		{"ൻ", "ൽ"},
		{"ർ", "ൾ"},
		{"ൎ", "ൾ"},
		{"൧", "൨"},
		{"൩", "൪"},
		{"൫", "൬"},
		{"൭", "൮"},
		{"൯", "൦"},
		{"1", "2"},
		{"3", "4"},
		{"5", "6"},
		{"7", "8"},
		{"9", "0"},
		{"2", "1"},
		{"4", "3"},
		{"6", "5"},
		{"8", "7"},
		{"0", "9"},
		{"൨", "൧"},
		{"൪", "൩"},
		{"൬", "൫"},
		{"൮", "൭"},
		{"൦", "൯"},
		{"ക", "അ"},
		{"കാ", "ആ"},
		{"കി", "ഇ"},
		{"കീ", "ഈ"},
		{"കു", "ഉ"},
		{"കൂ", "ഊ"},
		{"കൃ", "ഋ"},
		{"കൄ", "ൠ"},
		{"കൢ", "ഌ"},
		{"കൣ", "ൡ"},
		{"കെ", "എ"},
		{"കേ", "ഏ"},
		{"കൈ", "ഐ"},
		{"കൊ", "ഒ"},
		{"കോ", "ഓ"},
		{"കൌ", "ഔ"},
		{"കൗ", "ഔ"},
		{"കം", "അം"},
		{"കഃ", "അഃ"},
		{"ൿ", "അ്\u200d"},
		{"ഗ", "ഖ"},
		{"ങ", "ഘ"},
		{"ട", "ച"},
		{"ഠ", "ഛ"},
		{"ഝ", "ജ"},
		{"ണ", "ഞ"},
		{"ൺ", "ഞ്\u200d"},
		{"ഢ", "ഡ"},
		{"പ", "ത"},
		{"ഫ", "ഥ"},
		{"ധ", "ദ"},
		{"ഭ", "ബ"},
		{"മ", "ന"},
		{"ൔ", "ന്"},
		{"ശ", "യ"},
		{"ഷ", "ര"},
		{"സ", "ല"},
		{"ഹ", "വ"},
		{"ക്ഷ", "ള"},
		{"റ", "ഴ"},
		{"ഞ്ച", "ങ്ക"},
		{"ന്ത", "ണ്ട"},
		{"ഩ്ഩ", "മ്പ"},
		{"റ്റ", "ൻ്റ"},
		{"ൽ", "ൻ"},
		{"ൾ", "ർ"},
	},
	Conjuncts: []string{
		"അ്\u200d",
		"കാ",
		"കി",
		"കീ",
		"കു",
		"കൂ",
		"കൃ",
		"കൄ",
		"കൢ",
		"കൣ",
		"കെ",
		"കേ",
		"കൈ",
		"കൊ",
		"കോ",
		"കൗ",
		"കൌ",
		"കം",
		"കഃ",
		"ഞ്\u200d",
		"ക്ഷ",
		"ങ്ക",
		"ഞ്ച",
		"ണ്ട",
		"ന്ത",
		"മ്പ",
		"ഩ്ഩ",
		"ൻ്റ",
		"റ്റ",
	},
}
