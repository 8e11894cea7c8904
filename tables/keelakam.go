package tables

import "github.com/jamesainslie/go-lipi/translit"

// keelakam swaps Malayalam letters within their varga rows (ക↔പ, ച↔ത, ...)
// and mirrors vowels and digits. The ZWJ spellings of the chillus are listed
// as keys too, but the chillu pairs rewrite them before tokenizing, so only
// their atomic forms are ever looked up.
var keelakam = translit.Definition{
	Name:         "keelakam",
	Lossy:        true,
	SimilarPairs: chilluPairs,
	Entries: []translit.Pair{
		{"ഇ", "ഉ"},
		{"ഈ", "ഊ"},
		{"ൟ", "ഊ"},
		{"ഋ", "ഌ"},
		{"ൠ", "ൡ"},
		{"എ", "ഒ"},
		{"ഏ", "ഓ"},
		{"ഐ", "ഔ"},
		{"ി", "ു"},
		{"ീ", "ൂ"},
		{"ൃ", "ൢ"},
		{"ൄ", "ൣ"},
		{"െ", "ൊ"},
		{"േ", "ോ"},
		{"ൈ", "ൌ"},
		{"ക", "പ"},
		{"ഖ", "ഫ"},
		{"ഗ", "ബ"},
		{"ഘ", "ഭ"},
		{"ങ", "മ"},
		{"ച", "ത"},
		{"ഛ", "ഥ"},
		{"ജ", "ദ"},
		{"ഝ", "ധ"},
		{"ഞ", "ന"},
		{"ട", "റ"},
		{"ഠ", "ഴ"},
		{"ഡ", "ഷ"},
		{"ഢ", "ഹ"},
		{"ണ", "ള"},
		{"യ", "വ"},
		{"ൕ", "വ്"},
		{"ര", "ശ"},
		{"ല", "സ"},
		{"ഺ", "ഩ"},
		{"ൿ", "ൺ"},
		{"ക്\u200d", "ൺ"},
		{"ൾ", "ർ"},
		{"ള്\u200d", "ർ"},
		{"ൽ", "ൻ"},
		{"ല്\u200d", "ൻ"},
		{"ന്\u200dറ", "ൽ്ട"},
		{"൦", "൯"},
		{"൧", "൮"},
		{"൨", "൭"},
		{"൩", "൬"},
		{"൪", "൫"},
		{"0", "9"},
		{"1", "8"},
		{"2", "7"},
		{"3", "6"},
		{"4", "5"},
		{"5", "4"},
		{"6", "3"},
		{"7", "2"},
		{"8", "1"},
		{"9", "0"},
		{"൫", "൪"},
		{"൬", "൩"},
		{"൭", "൨"},
		{"൮", "൧"},
		{"൯", "൦"},
		{"ഉ", "ഇ"},
		{"ഊ", "ഈ"},
		{"ഌ", "ഋ"},
		{"ൡ", "ൠ"},
		{"ഒ", "എ"},
		{"ഓ", "ഏ"},
		{"ഔ", "ഐ"},
		{"ു", "ി"},
		{"ൂ", "ീ"},
		{"ൢ", "ൃ"},
		{"ൣ", "ൄ"},
		{"ൊ", "െ"},
		{"ോ", "േ"},
		{"ൌ", "ൈ"},
		{"ൗ", "ൈ"},
		{"പ", "ക"},
		{"ഫ", "ഖ"},
		{"ബ", "ഗ"},
		{"ഭ", "ഘ"},
		{"മ", "ങ"},
		{"ൔ", "ങ്"},
		{"ത", "ച"},
		{"ഥ", "ഛ"},
		{"ദ", "ജ"},
		{"ധ", "ഝ"},
		{"ന", "ഞ"},
		{"റ", "ട"},
		{"ഴ", "ഠ"},
		{"ൖ", "ഠ്"},
		{"ഷ", "ഡ"},
		{"ഹ", "ഢ"},
		{"ള", "ണ"},
		{"വ", "യ"},
		{"ശ", "ര"},
		{"സ", "ല"},
		{"ഩ", "ഺ"},
		{"ൺ", "ൿ"},
		{"ണ്\u200d", "ൿ"},
		{"ർ", "ൾ"},
		{"ര്\u200d", "ൾ"},
		{"ൎ", "ൾ"},
		{"ൻ", "ൽ"},
		{"ന്\u200d", "ൽ"},
	},
}
