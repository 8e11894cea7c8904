package tables

import "github.com/jamesainslie/go-lipi/translit"

// moolabhadri is the Moolabhadri letter swap: vowels become ക plus the
// matching vowel sign and the consonant rows swap pairwise. Vowel-sign
// syllables and a handful of clusters are conjuncts so they swap as a unit.
var moolabhadri = translit.Definition{
	Name:         "moolabhadri",
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
		{"ജ", "ഡ"},
		{"ഝ", "ഢ"},
		{"ഞ", "ണ"},
		{"ഞ്\u200d", "ൺ"},
		{"ത", "പ"},
		{"ഥ", "ഫ"},
		{"ദ", "ബ"},
		{"ധ", "ഭ"},
		{"ന", "മ"},
		{"യ", "ശ"},
		{"ൕ", "ശ്"},
		{"ര", "ഷ"},
		{"ർ", "ഷ്\u200d"},
		{"ൎ", "ഷ്\u200d"},
		{"ല", "സ"},
		{"ൽ", "സ്\u200d"},
		{"വ", "ഹ"},
		{"ള", "ക്ഷ"},
		{"ൾ", "ക്ഷ്\u200d"},
		{"ഴ", "റ"},
		{"ൖ", "റ്"},
		{"റ്റ", "ഩ"},
		{"ഺ", "ഩ"},
		{"റ്റ്\u200d", "ൻ"},
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
		{"ഡ", "ജ"},
		{"ഢ", "ഝ"},
		{"ണ", "ഞ"},
		{"ൺ", "ഞ്\u200d"},
		{"പ", "ത"},
		{"ഫ", "ഥ"},
		{"ബ", "ദ"},
		{"ഭ", "ധ"},
		{"മ", "ന"},
		{"ൔ", "ന്"},
		{"ശ", "യ"},
		{"ഷ", "ര"},
		{"ഷ്\u200d", "ർ"},
		{"സ", "ല"},
		{"സ്\u200d", "ൽ"},
		{"ഹ", "വ"},
		{"ക്ഷ", "ള"},
		{"ക്ഷ്\u200d", "ൾ"},
		{"റ", "ഴ"},
		{"ഩ", "റ്റ"},
		{"ൻ", "റ്റ്\u200d"},
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
		"സ്\u200d",
		"ക്ഷ്\u200d",
		"ക്ഷ",
		"ഷ്\u200d",
		"റ്റ്\u200d",
		"റ്റ",
	},
}
