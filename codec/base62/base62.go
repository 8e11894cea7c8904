// Package base62 converts integers to and from base-62 strings.
//
// Digits run 0-9, then a-z, then A-Z, so "a" is 10 and "Z" is 61. Negative
// numbers carry a leading '-'. The alphabet matches big.Int.Text(62).
package base62

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Digits is the base-62 alphabet in value order.
const Digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const base = 62

var (
	// ErrEmpty indicates an empty string or a lone sign.
	ErrEmpty = errors.New("base62: empty input")

	// ErrInvalidDigit indicates a character outside the alphabet.
	ErrInvalidDigit = errors.New("base62: invalid digit")

	// ErrOverflow indicates a value that does not fit in an int64.
	ErrOverflow = errors.New("base62: value out of range")
)

// Encode returns the base-62 form of v.
func Encode(v int64) string {
	// uint64 holds the magnitude of math.MinInt64.
	u := uint64(v)
	neg := v < 0
	if neg {
		u = -u
	}

	var buf [12]byte
	i := len(buf)
	for {
		i--
		buf[i] = Digits[u%base]
		u /= base
		if u == 0 {
			break
		}
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Decode parses a base-62 string produced by Encode.
func Decode(s string) (int64, error) {
	digits, neg := strings.CutPrefix(s, "-")
	if digits == "" {
		return 0, ErrEmpty
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var u uint64
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d < 0 {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, digits[i], i)
		}
		if u > (limit-uint64(d))/base {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		u = u*base + uint64(d)
	}

	if neg {
		return int64(-u), nil
	}
	return int64(u), nil
}

// EncodeBig returns the base-62 form of v. A nil v encodes as "0".
func EncodeBig(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.Text(base)
}

// DecodeBig parses a base-62 string of any length.
func DecodeBig(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return nil, ErrEmpty
	}
	for i := 0; i < len(digits); i++ {
		if digitValue(digits[i]) < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, digits[i], i)
		}
	}

	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, s)
	}
	return v, nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 36
	}
	return -1
}
