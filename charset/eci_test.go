package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetECIByName(t *testing.T) {
	for name, want := range map[string]*ECI{
		"ISO-8859-1":   ECIISO8859_1,
		"iso8859_1":    ECIISO8859_1,
		"Shift_JIS":    ECISJIS,
		"sjis":         ECISJIS,
		"UTF-8":        ECIUTF8,
		"windows-1251": ECICp1251,
		"ISO-8859-11":  ECIISO8859_11,
	} {
		eci, err := GetECIByName(name)
		require.NoError(t, err, name)
		assert.Same(t, want, eci, name)
	}
	_, err := GetECIByName("EBCDIC")
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestECITableOrdered(t *testing.T) {
	for i := 1; i < len(allECIs); i++ {
		require.Less(t, allECIs[i-1].Value, allECIs[i].Value)
	}
	require.Same(t, ECIUTF8, allECIs[len(allECIs)-1])
}

func TestEncode(t *testing.T) {
	b, err := ECIISO8859_1.Encode("café")
	require.NoError(t, err)
	require.Equal(t, []byte{'c', 'a', 'f', 0xE9}, b)

	b, err = ECISJIS.Encode("点")
	require.NoError(t, err)
	require.Equal(t, []byte{0x93, 0x5F}, b)

	_, err = ECIISO8859_1.Encode("Ω")
	require.ErrorIs(t, err, ErrUnsupported)

	b, err = ECIUTF8.Encode("Ω")
	require.NoError(t, err)
	require.Equal(t, []byte{0xCE, 0xA9}, b)
}

func TestBestFit(t *testing.T) {
	for content, want := range map[string]*ECI{
		"":             ECIISO8859_1,
		"hello":        ECIISO8859_1,
		"Grüße":        ECIISO8859_1,
		"Ωμέγα":        ECIISO8859_7,
		"Привет":       ECIISO8859_5,
		"こんにちは":        ECISJIS,
		"ŞΩ":           ECIUTF8,
		"😀":            ECIUTF8,
	} {
		assert.Same(t, want, BestFit(content), "%q", content)
	}
	assert.True(t, ECIISO8859_1.IsDefault())
	assert.False(t, ECIUTF8.IsDefault())
}

func TestEncodeRejectsInvalidUTF8(t *testing.T) {
	for _, content := range []string{"\xff", "ab\xc3", "\xed\xa0\x80"} {
		for _, eci := range []*ECI{ECIUTF8, ECIISO8859_1, ECISJIS} {
			_, err := eci.Encode(content)
			require.ErrorIs(t, err, ErrUnsupported, "%s %q", eci, content)
			assert.False(t, eci.CanEncode(content))
		}
	}
}
