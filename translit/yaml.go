package translit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlDefinition is the on-disk YAML shape of a Definition. Pairs are two
// element sequences so tables stay readable:
//
//	name: brahmi
//	similar_pairs:
//	  - ["ന്\u200d", "ൻ"]
//	entries:
//	  - ["ക", "𑀓"]
//	  - ["𑀓", "ക"]
type yamlDefinition struct {
	Name         string     `yaml:"name"`
	Lossy        bool       `yaml:"lossy,omitempty"`
	SimilarPairs [][]string `yaml:"similar_pairs,omitempty"`
	Entries      [][]string `yaml:"entries"`
	Conjuncts    []string   `yaml:"conjuncts,omitempty"`
}

// EncodeYAML serializes def as YAML.
func EncodeYAML(def Definition) ([]byte, error) {
	doc := yamlDefinition{
		Name:         def.Name,
		Lossy:        def.Lossy,
		SimilarPairs: pairsToYAML(def.SimilarPairs),
		Entries:      pairsToYAML(def.Entries),
		Conjuncts:    def.Conjuncts,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a YAML definition.
func DecodeYAML(data []byte) (Definition, error) {
	var doc yamlDefinition
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Definition{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	similar, err := pairsFromYAML("similar_pairs", doc.SimilarPairs)
	if err != nil {
		return Definition{}, err
	}
	entries, err := pairsFromYAML("entries", doc.Entries)
	if err != nil {
		return Definition{}, err
	}

	return Definition{
		Name:         doc.Name,
		SimilarPairs: similar,
		Entries:      entries,
		Conjuncts:    doc.Conjuncts,
		Lossy:        doc.Lossy,
	}, nil
}

func pairsToYAML(pairs []Pair) [][]string {
	if pairs == nil {
		return nil
	}
	out := make([][]string, len(pairs))
	for i, p := range pairs {
		out[i] = []string{p.From(), p.To()}
	}
	return out
}

func pairsFromYAML(field string, rows [][]string) ([]Pair, error) {
	if rows == nil {
		return nil, nil
	}
	out := make([]Pair, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: %s[%d] has %d elements, want 2", ErrInvalidDefinition, field, i, len(row))
		}
		out[i] = Pair{row[0], row[1]}
	}
	return out, nil
}
