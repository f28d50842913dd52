package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(40, 10)
	bm.Set(3, 5)
	bm.Set(35, 9)
	assert.True(t, bm.Get(3, 5))
	assert.False(t, bm.Get(5, 3))
	assert.True(t, bm.Get(35, 9))
	assert.False(t, bm.Get(34, 9))
	assert.Equal(t, 40, bm.Width())
	assert.Equal(t, 10, bm.Height())
}

func TestBitMatrixSetRegion(t *testing.T) {
	bm := NewBitMatrix(8)
	bm.SetRegion(2, 2, 4, 4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			expected := x >= 2 && x < 6 && y >= 2 && y < 6
			require.Equal(t, expected, bm.Get(x, y), "(%d,%d)", x, y)
		}
	}
	require.Panics(t, func() { bm.SetRegion(6, 6, 4, 4) })
}

func TestBitMatrixParseString(t *testing.T) {
	bm := ParseStringMatrix("X . X \n. X . \n", "X ", ". ")
	require.Equal(t, 3, bm.Width())
	require.Equal(t, 2, bm.Height())
	require.Equal(t, [][]bool{{true, false, true}, {false, true, false}}, bm.Rows())
	require.Equal(t, "X . X \n. X . \n", bm.StringWithChars("X ", ". "))
	require.Equal(t, "X   X \n  X   \n", bm.String())
}

func TestBitMatrixEquals(t *testing.T) {
	a := NewBitMatrix(4)
	b := NewBitMatrix(4)
	a.Set(1, 2)
	b.Set(1, 2)
	require.True(t, a.Equals(b))
	b.Set(3, 3)
	require.False(t, a.Equals(b))
	require.False(t, a.Equals(NewBitMatrixWithSize(4, 5)))
}

func TestBitMatrixFingerprint(t *testing.T) {
	a := NewBitMatrix(21)
	b := NewBitMatrix(21)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	a.Set(20, 20)
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	b.Set(20, 20)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	// Same bits, different shape.
	require.NotEqual(t, NewBitMatrixWithSize(2, 8).Fingerprint(), NewBitMatrixWithSize(8, 2).Fingerprint())
}
