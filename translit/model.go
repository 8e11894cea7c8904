package translit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// Binary definitions use the protobuf wire format:
//
//	message Definition {
//	  string name = 1;
//	  repeated Pair similar_pairs = 2;
//	  repeated Pair entries = 3;
//	  repeated string conjuncts = 4;
//	  bool lossy = 5;
//	}
//	message Pair {
//	  string from = 1;
//	  string to = 2;
//	}
const (
	fieldName     protowire.Number = 1
	fieldSimilar  protowire.Number = 2
	fieldEntry    protowire.Number = 3
	fieldConjunct protowire.Number = 4
	fieldLossy    protowire.Number = 5

	fieldFrom protowire.Number = 1
	fieldTo   protowire.Number = 2
)

// EncodeBinary serializes def in the binary definition format.
func EncodeBinary(def Definition) []byte {
	var b []byte
	if def.Name != "" {
		b = protowire.AppendTag(b, fieldName, protowire.BytesType)
		b = protowire.AppendString(b, def.Name)
	}
	for _, p := range def.SimilarPairs {
		b = appendPair(b, fieldSimilar, p)
	}
	for _, p := range def.Entries {
		b = appendPair(b, fieldEntry, p)
	}
	for _, c := range def.Conjuncts {
		b = protowire.AppendTag(b, fieldConjunct, protowire.BytesType)
		b = protowire.AppendString(b, c)
	}
	if def.Lossy {
		b = protowire.AppendTag(b, fieldLossy, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

func appendPair(b []byte, num protowire.Number, p Pair) []byte {
	var msg []byte
	msg = protowire.AppendTag(msg, fieldFrom, protowire.BytesType)
	msg = protowire.AppendString(msg, p.From())
	msg = protowire.AppendTag(msg, fieldTo, protowire.BytesType)
	msg = protowire.AppendString(msg, p.To())

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// DecodeBinary parses a definition in the binary format. Unknown fields are
// skipped.
func DecodeBinary(data []byte) (Definition, error) {
	var def Definition
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Definition{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldName && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return Definition{}, fmt.Errorf("%w: name: %w", ErrInvalidDefinition, protowire.ParseError(n))
			}
			def.Name = v
			data = data[n:]

		case (num == fieldSimilar || num == fieldEntry) && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return Definition{}, fmt.Errorf("%w: pair: %w", ErrInvalidDefinition, protowire.ParseError(n))
			}
			p, err := decodePair(v)
			if err != nil {
				return Definition{}, err
			}
			if num == fieldSimilar {
				def.SimilarPairs = append(def.SimilarPairs, p)
			} else {
				def.Entries = append(def.Entries, p)
			}
			data = data[n:]

		case num == fieldConjunct && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return Definition{}, fmt.Errorf("%w: conjunct: %w", ErrInvalidDefinition, protowire.ParseError(n))
			}
			def.Conjuncts = append(def.Conjuncts, v)
			data = data[n:]

		case num == fieldLossy && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return Definition{}, fmt.Errorf("%w: lossy: %w", ErrInvalidDefinition, protowire.ParseError(n))
			}
			def.Lossy = protowire.DecodeBool(v)
			data = data[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return Definition{}, fmt.Errorf("%w: field %d: %w", ErrInvalidDefinition, num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return def, nil
}

func decodePair(data []byte) (Pair, error) {
	var p Pair
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Pair{}, fmt.Errorf("%w: pair: %w", ErrInvalidDefinition, protowire.ParseError(n))
		}
		data = data[n:]

		if (num == fieldFrom || num == fieldTo) && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return Pair{}, fmt.Errorf("%w: pair: %w", ErrInvalidDefinition, protowire.ParseError(n))
			}
			p[num-1] = v
			data = data[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return Pair{}, fmt.Errorf("%w: pair field %d: %w", ErrInvalidDefinition, num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return p, nil
}

// LoadDefinition reads a definition file. Files ending in .yaml or .yml are
// decoded as YAML, anything else as the binary format.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading definition file: %w", err)
	}

	if isYAML(path) {
		return DecodeYAML(data)
	}
	return DecodeBinary(data)
}

// SaveDefinition writes def to path, choosing the format the same way
// LoadDefinition does.
func SaveDefinition(path string, def Definition) error {
	var data []byte
	if isYAML(path) {
		var err error
		if data, err = EncodeYAML(def); err != nil {
			return err
		}
	} else {
		data = EncodeBinary(def)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing definition file: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
