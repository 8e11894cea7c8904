package tables

import "github.com/jamesainslie/go-lipi/translit"

// navashashti is the Navashashti letter swap. ൺ, ൽ and ൻ swap with the
// ZWJ spellings ട്, റ് and ച്, which are therefore conjuncts. The
// digit rows are listed twice in the source material; the duplicates agree.
var navashashti = translit.Definition{
	Name:         "navashashti",
	Lossy:        true,
	SimilarPairs: chilluPairs,
	Entries: []translit.Pair{
		{"ഇ", "എ"},
		{"ഈ", "ഏ"},
		{"ഋ", "ഌ"},
		{"ൠ", "ൡ"},
		{"ഉ", "ഒ"},
		{"ഊ", "ഓ"},
		{"ഐ", "ഔ"},
		{"ി", "െ"},
		{"ീ", "േ"},
		{"ൃ", "ൢ"},
		{"ൄ", "ൣ"},
		{"ു", "ൊ"},
		{"ൂ", "ോ"},
		{"ൈ", "ൌ"},
		{"ക", "മ"},
		{"ഖ", "ഭ"},
		{"ഗ", "ബ"},
		{"ച", "ന"},
		{"ഛ", "ധ"},
		{"ജ", "ദ"},
		{"ട", "ണ"},
		{"ഠ", "ഢ"},
		{"ഡ", "സ"},
		{"ത", "ഞ"},
		{"ഥ", "ഝ"},
		{"പ", "ങ"},
		{"ഫ", "ഘ"},
		{"യ", "ള"},
		{"ര", "ഴ"},
		{"ല", "റ"},
		{"വ", "ശ"},
		{"ഷ", "ഹ"},
		{"ൿ", "ൔ"},
		{"ൾ", "ൕ"},
		{"ൺ", "ട്\u200d"},
		{"ൽ", "റ്\u200d"},
		{"ർ", "ൖ"},
		{"ൻ", "ച്\u200d"},
		{"ഩ", "ഺ"},
		{"൦", "൪"},
		{"൧", "൩"},
		{"൨", "൭"},
		{"൩", "൧"},
		{"൪", "൦"},
		{"൫", "൯"},
		{"൬", "൮"},
		{"൭", "൨"},
		{"൮", "൬"},
		{"൯", "൫"},
		{"0", "4"},
		{"1", "3"},
		{"2", "7"},
		{"3", "1"},
		{"4", "0"},
		{"5", "9"},
		{"6", "8"},
		{"7", "2"},
		{"8", "6"},
		{"9", "5"},
		{"4", "0"},
		{"3", "1"},
		{"7", "2"},
		{"1", "3"},
		{"0", "4"},
		{"9", "5"},
		{"8", "6"},
		{"2", "7"},
		{"6", "8"},
		{"5", "9"},
		{"൪", "൦"},
		{"൩", "൧"},
		{"൭", "൨"},
		{"൧", "൩"},
		{"൦", "൪"},
		{"൯", "൫"},
		{"൮", "൬"},
		{"൨", "൭"},
		{"൬", "൮"},
		{"൫", "൯"},
		{"എ", "ഇ"},
		{"ഏ", "ഈ"},
		{"ഌ", "ഋ"},
		{"ൡ", "ൠ"},
		{"ഒ", "ഉ"},
		{"ഓ", "ഊ"},
		{"ഔ", "ഐ"},
		{"െ", "ി"},
		{"േ", "ീ"},
		{"ൢ", "ൃ"},
		{"ൣ", "ൄ"},
		{"ൊ", "ു"},
		{"ോ", "ൂ"},
		{"ൌ", "ൈ"},
		{"ൗ", "ൈ"},
		{"മ", "ക"},
		{"ഭ", "ഖ"},
		{"ബ", "ഗ"},
		{"ന", "ച"},
		{"ധ", "ഛ"},
		{"ദ", "ജ"},
		{"ണ", "ട"},
		{"ഢ", "ഠ"},
		{"സ", "ഡ"},
		{"ഞ", "ത"},
		{"ഝ", "ഥ"},
		{"ങ", "പ"},
		{"ഘ", "ഫ"},
		{"ള", "യ"},
		{"ഴ", "ര"},
		{"റ", "ല"},
		{"ശ", "വ"},
		{"ഹ", "ഷ"},
		{"ൔ", "ൿ"},
		{"ൕ", "ൾ"},
		{"ട്\u200d", "ൺ"},
		{"റ്\u200d", "ൽ"},
		{"ൖ", "ർ"},
		{"ച്\u200d", "ൻ"},
		{"ഺ", "ഩ"},
	},
	Conjuncts: []string{
		"ട്\u200d",
		"റ്\u200d",
		"ച്\u200d",
	},
}
