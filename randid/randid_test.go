package randid

import (
	"bytes"
	"math/big"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-lipi/codec/base62"
)

func TestString(t *testing.T) {
	for _, steps := range []int{1, 2, DefaultSteps, 8} {
		id, err := String(steps)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.LessOrEqual(t, len(id), steps*8)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(base62.Digits, c), "unexpected %q in %q", c, id)
		}
	}
}

func TestString_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id, err := String(DefaultSteps)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestString_InvalidSteps(t *testing.T) {
	for _, steps := range []int{0, -1} {
		_, err := String(steps)
		assert.ErrorIs(t, err, ErrInvalidSteps)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	src := bytes.Repeat([]byte{0xab, 0x01, 0x7f, 0x33}, 64)

	a, err := New(bytes.NewReader(src)).String(3)
	require.NoError(t, err)
	b, err := New(bytes.NewReader(src)).String(3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 24)
}

func TestGenerator_ReadError(t *testing.T) {
	g := New(iotest.ErrReader(assert.AnError))

	_, err := g.String(1)
	assert.ErrorIs(t, err, assert.AnError)

	_, err = g.UUID()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUUID(t *testing.T) {
	s, err := UUID()
	require.NoError(t, err)

	v, err := base62.DecodeBig(s)
	require.NoError(t, err)

	var u uuid.UUID
	v.FillBytes(u[:])
	assert.Equal(t, uuid.Version(4), u.Version())
	assert.Equal(t, uuid.RFC4122, u.Variant())
}

func TestUUID_FromReader(t *testing.T) {
	src := bytes.Repeat([]byte{0xff}, 16)
	s, err := New(bytes.NewReader(src)).UUID()
	require.NoError(t, err)

	want := uuid.Must(uuid.NewRandomFromReader(bytes.NewReader(src)))
	assert.Equal(t, base62.EncodeBig(new(big.Int).SetBytes(want[:])), s)
}
