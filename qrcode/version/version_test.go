package version

import (
	"testing"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var levels = []ErrorCorrectionLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH}

func TestVersionTableInvariants(t *testing.T) {
	for n := MinNumber; n <= MaxNumber; n++ {
		v, err := ForNumber(n)
		require.NoError(t, err)
		require.Equal(t, n, v.Number)
		require.Equal(t, 17+4*n, v.Dimension())
		if n == 1 {
			require.Empty(t, v.AlignmentPatternCenters)
		} else {
			require.Equal(t, 2+n/7, len(v.AlignmentPatternCenters), "version %d", n)
			require.Equal(t, 6, v.AlignmentPatternCenters[0])
			require.Equal(t, v.Dimension()-7, v.AlignmentPatternCenters[len(v.AlignmentPatternCenters)-1])
		}
		for _, level := range levels {
			d := v.Detail(level)
			require.Equal(t, d.NumDataBytes,
				d.NumDataBytesGroup1*d.ECBlockGroup1+d.NumDataBytesGroup2*d.ECBlockGroup2,
				"version %d-%s", n, level)
			require.Equal(t, d.NumTotalBytes, d.NumDataBytes+d.NumECBlocks*d.NumECBytesPerBlock,
				"version %d-%s", n, level)
			require.Equal(t, d.NumECBlocks, d.ECBlockGroup1+d.ECBlockGroup2)
			if d.ECBlockGroup2 > 0 {
				require.Equal(t, d.NumDataBytesGroup1+1, d.NumDataBytesGroup2, "version %d-%s", n, level)
			}
			require.Equal(t, v.TotalCodewords, d.NumTotalBytes)
		}
	}
}

func TestTotalCodewordsMatchModuleCount(t *testing.T) {
	// Remainder bits per version: 0, 7, 3 or 4.
	remainder := map[int]bool{0: true, 3: true, 4: true, 7: true}
	for n := MinNumber; n <= MaxNumber; n++ {
		v, _ := ForNumber(n)
		size := v.Dimension()
		align := len(v.AlignmentPatternCenters)
		alignCount := 0
		if align > 0 {
			alignCount = align*align - 3
		}
		function := 3*64 + 2*(size-16) + 31 + alignCount*25
		if align > 2 {
			// Alignment patterns sitting on the timing lines.
			function -= 2 * (align - 2) * 5
		}
		if v.HasVersionInfo() {
			function += 36
		}
		free := size*size - function
		require.True(t, remainder[free-8*v.TotalCodewords], "version %d has %d spare modules", n, free-8*v.TotalCodewords)
	}
}

func TestForNumberOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 41} {
		_, err := ForNumber(n)
		require.ErrorIs(t, err, qrencode.ErrInvalidInput)
	}
}

func TestTier(t *testing.T) {
	for n := MinNumber; n <= MaxNumber; n++ {
		v, _ := ForNumber(n)
		first, last := TierRange(v.Tier())
		assert.True(t, first <= n && n <= last, "version %d tier %d", n, v.Tier())
	}
	v, _ := ForNumber(9)
	assert.Equal(t, 0, v.Tier())
	v, _ = ForNumber(10)
	assert.Equal(t, 1, v.Tier())
	v, _ = ForNumber(27)
	assert.Equal(t, 2, v.Tier())
}

func TestKnownCapacities(t *testing.T) {
	v1, _ := ForNumber(1)
	assert.Equal(t, 26, v1.TotalCodewords)
	assert.Equal(t, 13, v1.Detail(ECLevelQ).NumDataBytes)
	assert.Equal(t, 13, v1.Detail(ECLevelQ).NumECBytesPerBlock)
	assert.Equal(t, 104, v1.Detail(ECLevelQ).DataBits())

	v5, _ := ForNumber(5)
	d := v5.Detail(ECLevelQ)
	assert.Equal(t, VersionDetail{
		NumTotalBytes:      134,
		NumDataBytes:       62,
		NumECBlocks:        4,
		ECBlockGroup1:      2,
		ECBlockGroup2:      2,
		NumDataBytesGroup1: 15,
		NumDataBytesGroup2: 16,
		NumECBytesPerBlock: 18,
	}, d)

	v40, _ := ForNumber(40)
	assert.Equal(t, 3706, v40.TotalCodewords)
	assert.Equal(t, 2956, v40.Detail(ECLevelL).NumDataBytes)
}

func TestECLevel(t *testing.T) {
	for _, level := range levels {
		parsed, err := ParseECLevel(level.String())
		require.NoError(t, err)
		require.Equal(t, level, parsed)

		fromBits, err := ECLevelForBits(level.Bits())
		require.NoError(t, err)
		require.Equal(t, level, fromBits)
	}
	parsed, err := ParseECLevel("q")
	require.NoError(t, err)
	require.Equal(t, ECLevelQ, parsed)

	_, err = ParseECLevel("X")
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
	_, err = ECLevelForBits(4)
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
}

func TestFormatInfoBits(t *testing.T) {
	// Masked format words indexed by (level bits << 3 | mask).
	known := []int{
		0x5412, 0x5125, 0x5E7C, 0x5B4B, 0x45F9, 0x40CE, 0x4F97, 0x4AA0,
		0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976,
		0x1689, 0x13BE, 0x1CE7, 0x19D0, 0x0762, 0x0255, 0x0D0C, 0x083B,
		0x355F, 0x3068, 0x3F31, 0x3A06, 0x24B4, 0x2183, 0x2EDA, 0x2BED,
	}
	for _, level := range levels {
		for mask := 0; mask < 8; mask++ {
			got := FormatInfoBits(level, mask)
			require.Equal(t, known[level.Bits()<<3|mask], got, "%s mask %d", level, mask)
			require.Less(t, got, 1<<FormatInfoLength)
		}
	}
}

func TestDecodeFormatInfo(t *testing.T) {
	for _, level := range levels {
		for mask := 0; mask < 8; mask++ {
			word := FormatInfoBits(level, mask)
			for _, flips := range []int{0, 1 << 14, 1<<0 | 1<<7, 1<<2 | 1<<9 | 1<<13} {
				gotLevel, gotMask, err := DecodeFormatInfo(word ^ flips)
				require.NoError(t, err, "%s mask %d flips 0x%X", level, mask, flips)
				require.Equal(t, level, gotLevel)
				require.Equal(t, mask, gotMask)
			}
		}
	}

	// An all-light word is at least four bits from every format word.
	_, _, err := DecodeFormatInfo(0)
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
}

func TestVersionInfoBits(t *testing.T) {
	known := []int{
		0x07C94, 0x085BC, 0x09A99, 0x0A4D3, 0x0BBF6,
		0x0C762, 0x0D847, 0x0E60D, 0x0F928, 0x10B78,
		0x1145D, 0x12A17, 0x13532, 0x149A6, 0x15683,
		0x168C9, 0x177EC, 0x18EC4, 0x191E1, 0x1AFAB,
		0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75, 0x1F250,
		0x209D5, 0x216F0, 0x228BA, 0x2379F, 0x24B0B,
		0x2542E, 0x26A64, 0x27541, 0x28C69,
	}
	for i, want := range known {
		got := VersionInfoBits(i + 7)
		require.Equal(t, want, got, "version %d", i+7)
		require.Less(t, got, 1<<VersionInfoLength)
	}
	v6, _ := ForNumber(6)
	v7, _ := ForNumber(7)
	assert.False(t, v6.HasVersionInfo())
	assert.True(t, v7.HasVersionInfo())
}
