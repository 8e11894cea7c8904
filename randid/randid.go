// Package randid generates random identifiers made of base-62 digits.
package randid

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/google/uuid"

	"github.com/jamesainslie/go-lipi/codec/base62"
)

// DefaultSteps yields 32-character identifiers.
const DefaultSteps = 4

// chunkBits is the width of each random step.
const chunkBits = 53

// ErrInvalidSteps indicates a non-positive step count.
var ErrInvalidSteps = errors.New("randid: steps must be positive")

// chunkLimit bounds each step to [0, 2^53-1).
var chunkLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), chunkBits), big.NewInt(1))

// Generator draws identifiers from a random source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator reading from r, or from crypto/rand when r is nil.
func New(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// String concatenates steps random 53-bit chunks into one number and
// returns its first steps*8 base-62 digits.
func (g *Generator) String(steps int) (string, error) {
	if steps < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}

	v := new(big.Int)
	for range steps {
		chunk, err := rand.Int(g.rand, chunkLimit)
		if err != nil {
			return "", fmt.Errorf("randid: reading random chunk: %w", err)
		}
		v.Lsh(v, chunkBits).Add(v, chunk)
	}

	s := base62.EncodeBig(v)
	if n := steps * 8; len(s) > n {
		s = s[:n]
	}
	return s, nil
}

// UUID returns a random version 4 UUID written in base 62.
func (g *Generator) UUID() (string, error) {
	u, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return "", fmt.Errorf("randid: generating uuid: %w", err)
	}
	return base62.EncodeBig(new(big.Int).SetBytes(u[:])), nil
}

var std = New(nil)

// String returns a random identifier from crypto/rand. See Generator.String.
func String(steps int) (string, error) {
	return std.String(steps)
}

// UUID returns a random UUID in base 62 from crypto/rand.
func UUID() (string, error) {
	return std.UUID()
}
