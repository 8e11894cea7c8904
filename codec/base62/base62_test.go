package base62

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{9, "9"},
		{10, "a"},
		{35, "z"},
		{36, "A"},
		{61, "Z"},
		{62, "10"},
		{3843, "ZZ"},
		{-1, "-1"},
		{-62, "-10"},
		{math.MaxInt64, "aZl8N0y58M7"},
		{math.MinInt64, "-aZl8N0y58M8"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Encode(tc.v), "Encode(%d)", tc.v)
		got, err := Decode(tc.want)
		require.NoError(t, err, "Decode(%q)", tc.want)
		assert.Equal(t, tc.v, got, "Decode(%q)", tc.want)
	}
}

func TestEncodeMatchesBig(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 123456789, -987654321, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, EncodeBig(big.NewInt(v)), Encode(v), "value %d", v)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"sign only", "-", ErrEmpty},
		{"invalid digit", "ab_c", ErrInvalidDigit},
		{"plus sign", "+1", ErrInvalidDigit},
		{"non-ascii", "1é", ErrInvalidDigit},
		{"overflow", "aZl8N0y58M8", ErrOverflow},
		{"negative overflow", "-aZl8N0y58M9", ErrOverflow},
		{"far too long", strings.Repeat("Z", 20), ErrOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBig(t *testing.T) {
	v, ok := new(big.Int).SetString("-123456789012345678901234567890", 10)
	require.True(t, ok)

	s := EncodeBig(v)
	assert.True(t, strings.HasPrefix(s, "-"))

	got, err := DecodeBig(s)
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(got))

	assert.Equal(t, "0", EncodeBig(nil))
	assert.Equal(t, "Z", EncodeBig(big.NewInt(61)))
}

func TestDecodeBig_Errors(t *testing.T) {
	_, err := DecodeBig("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = DecodeBig("-")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = DecodeBig("12 3")
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = DecodeBig("1_000")
	assert.ErrorIs(t, err, ErrInvalidDigit)
}
