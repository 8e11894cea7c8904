// Package base95 encodes bytes as printable ASCII with an explicit count of
// trailing zero bytes.
//
// Every three input bytes become four characters, each carrying six bits, in
// the range ' ' (0) through '_' (63). Trailing zero bytes are not encoded;
// instead the text ends with EndMarker (U+00A0) followed by two characters
// from ' '..'~' holding the zero count in base 95, so at most 9024 trailing
// zeros can be represented.
package base95

import (
	"errors"
	"fmt"
	"strings"
)

// EndMarker separates the payload from the trailing-zero count.
const EndMarker = '\u00a0'

const (
	first     = ' '
	radix     = 95
	maxZeros  = radix*radix - 1
	groupBits = 6
)

var (
	// ErrNoEndMarker indicates text without EndMarker.
	ErrNoEndMarker = errors.New("base95: no end marker")

	// ErrInvalidTrailer indicates a malformed trailing-zero count.
	ErrInvalidTrailer = errors.New("base95: invalid trailing zero count")

	// ErrInvalidChar indicates a payload character outside the alphabet.
	ErrInvalidChar = errors.New("base95: invalid character")

	// ErrTooManyTrailingZeros indicates input whose trailing zero count
	// cannot be represented.
	ErrTooManyTrailingZeros = errors.New("base95: too many trailing zero bytes")
)

// Encode returns the base-95 text for data.
func Encode(data []byte) (string, error) {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	zeros := len(data) - end
	if zeros > maxZeros {
		return "", fmt.Errorf("%w: %d", ErrTooManyTrailingZeros, zeros)
	}

	var b strings.Builder
	b.Grow((end+2)/3*4 + 4)

	for i := 0; i < end; i += 3 {
		var combined uint32
		for j := 0; j < 3 && i+j < end; j++ {
			combined |= uint32(data[i+j]) << (16 - 8*j)
		}
		for j := 0; j < 4; j++ {
			b.WriteByte(byte(first + (combined>>(18-groupBits*j))&0x3f))
		}
	}

	b.WriteRune(EndMarker)
	b.WriteByte(byte(first + zeros/radix))
	b.WriteByte(byte(first + zeros%radix))
	return b.String(), nil
}

// Decode reverses Encode.
func Decode(text string) ([]byte, error) {
	payload, trailer, ok := strings.Cut(text, string(EndMarker))
	if !ok {
		return nil, ErrNoEndMarker
	}

	zeros, err := decodeTrailer(trailer)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, (len(payload)+3)/4*3+zeros)
	for i := 0; i < len(payload); i += 4 {
		var combined uint32
		for j := 0; j < 4 && i+j < len(payload); j++ {
			c := payload[i+j]
			if c < first || c >= first+1<<groupBits {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidChar, c, i+j)
			}
			combined |= uint32(c-first) << (18 - groupBits*j)
		}
		out = append(out, byte(combined>>16), byte(combined>>8), byte(combined))
	}

	// Drop chunk padding; the zeros that belong to the input come from the
	// trailer.
	for len(out) > 0 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	for range zeros {
		out = append(out, 0)
	}
	return out, nil
}

func decodeTrailer(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTrailer, s)
	}
	hi, lo := int(s[0])-first, int(s[1])-first
	if hi < 0 || hi >= radix || lo < 0 || lo >= radix {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTrailer, s)
	}
	return hi*radix + lo, nil
}
