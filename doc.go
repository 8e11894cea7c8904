// Package lipi transliterates Malayalam text through table-driven
// script-substitution schemes such as Brahmi, Keelakam, Moolabhadri and
// Navashashti.
//
// # Quick Start
//
//	fmt.Println(lipi.Transliterate("മലയാളം", tables.Brahmi)) // 𑀫𑀮𑀬𑀸𑀴𑀁
//
// Transliterating twice with the same table restores the input, except for
// the letters a table deliberately folds together (see translit.Table.Audit).
//
// # Custom Tables
//
//	tr, err := lipi.NewFromFile("scheme.yaml", lipi.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := tr.Transliterate(text)
//
// Table files are YAML or the compact binary format written by
// translit.SaveDefinition and "lipi compile".
//
// # Thread Safety
//
// Tables and Transliterators are immutable and safe for concurrent use.
// TransliterateAll spreads many inputs over a bounded worker pool,
// configurable via WithWorkers.
package lipi
