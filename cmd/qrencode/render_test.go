package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericlevine/qrencode/bitutil"
)

func TestWriteHalfBlocks(t *testing.T) {
	m := bitutil.NewBitMatrixWithSize(3, 3)
	m.Set(0, 0)
	m.Set(1, 1)
	m.Set(2, 0)
	m.Set(2, 1)

	var b strings.Builder
	require.NoError(t, writeHalfBlocks(&b, m))
	// Row pairs (0,1) and (2, past the end). Dark is blank.
	require.Equal(t, "▄▀ \n███\n", b.String())
}
