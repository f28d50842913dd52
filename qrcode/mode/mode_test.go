package mode

import (
	"testing"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/bitutil"
	"github.com/ericlevine/qrencode/charset"
	"github.com/ericlevine/qrencode/qrcode/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitString(t *testing.T, bits *bitutil.BitArray) string {
	t.Helper()
	s := make([]byte, bits.Size())
	for i := range s {
		s[i] = '0'
		if bits.Get(i) {
			s[i] = '1'
		}
	}
	return string(s)
}

func TestRecognize(t *testing.T) {
	for content, want := range map[string]Recognition{
		"":            {Mode: ModeNumeric},
		"0123456789":  {Mode: ModeNumeric},
		"HELLO WORLD": {Mode: ModeAlphanumeric},
		"123ABC":      {Mode: ModeAlphanumeric},
		"$%*+-./: ":   {Mode: ModeAlphanumeric},
		"hello":       {Mode: ModeByte, ECI: charset.ECIISO8859_1},
		"HELLO world": {Mode: ModeByte, ECI: charset.ECIISO8859_1},
		"点茗":          {Mode: ModeKanji},
		"日本語":         {Mode: ModeKanji},
		"点a":          {Mode: ModeByte, ECI: charset.ECISJIS},
		"Ωμέγα":       {Mode: ModeByte, ECI: charset.ECIISO8859_7},
		"😀":           {Mode: ModeByte, ECI: charset.ECIUTF8},
	} {
		assert.Equal(t, want, Recognize(content), "%q", content)
	}
}

func TestRecognizeWithCharset(t *testing.T) {
	r, err := RecognizeWithCharset("hello", "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, Recognition{Mode: ModeByte, ECI: charset.ECIUTF8}, r)
	assert.True(t, r.NeedsECIHeader())

	r, err = RecognizeWithCharset("12345", "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, Recognition{Mode: ModeNumeric}, r)

	r, err = RecognizeWithCharset("点", "Shift_JIS")
	require.NoError(t, err)
	assert.Equal(t, Recognition{Mode: ModeKanji}, r)

	r, err = RecognizeWithCharset("点", "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, Recognition{Mode: ModeByte, ECI: charset.ECIUTF8}, r)

	r, err = RecognizeWithCharset("hello", "")
	require.NoError(t, err)
	assert.False(t, r.NeedsECIHeader())

	_, err = RecognizeWithCharset("hello", "KOI8-R")
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)

	_, err = RecognizeWithCharset("Ω", "ISO-8859-1")
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
}

func TestRecognizeInvalidUTF8(t *testing.T) {
	for _, content := range []string{"\xff", "ab\xc3", "123\x80"} {
		for _, name := range []string{"", "UTF-8", "ISO-8859-1"} {
			_, err := RecognizeWithCharset(content, name)
			require.ErrorIs(t, err, qrencode.ErrInvalidInput, "%q %q", content, name)
		}
	}

	_, err := NewEncoder(Recognition{Mode: ModeByte, ECI: charset.ECIUTF8}).DataBits("\xff")
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
}

func TestCharacterCountBits(t *testing.T) {
	for _, tc := range []struct {
		mode Mode
		want [3]int
	}{
		{ModeNumeric, [3]int{10, 12, 14}},
		{ModeAlphanumeric, [3]int{9, 11, 13}},
		{ModeByte, [3]int{8, 16, 16}},
		{ModeKanji, [3]int{8, 10, 12}},
	} {
		for i, n := range []int{9, 26, 40} {
			v, err := version.ForNumber(n)
			require.NoError(t, err)
			assert.Equal(t, tc.want[i], tc.mode.CharacterCountBits(v), "%s version %d", tc.mode, n)
		}
		v1, _ := version.ForNumber(1)
		v10, _ := version.ForNumber(10)
		v27, _ := version.ForNumber(27)
		assert.Equal(t, tc.want[0], tc.mode.CharacterCountBits(v1))
		assert.Equal(t, tc.want[1], tc.mode.CharacterCountBits(v10))
		assert.Equal(t, tc.want[2], tc.mode.CharacterCountBits(v27))
	}
}

func TestNumericDataBits(t *testing.T) {
	enc := NewEncoder(Recognition{Mode: ModeNumeric})
	require.Equal(t, ModeNumeric, enc.Mode())

	bits, err := enc.DataBits("123456")
	require.NoError(t, err)
	require.Equal(t, 20, bits.Size())
	// 123 and 456 in 10 bits each.
	require.Equal(t, "0001111011"+"0111001000", bitString(t, bits))

	bits, err = enc.DataBits("01234567")
	require.NoError(t, err)
	// 012, 345, 67
	require.Equal(t, "0000001100"+"0101011001"+"1000011", bitString(t, bits))

	bits, err = enc.DataBits("9")
	require.NoError(t, err)
	require.Equal(t, "1001", bitString(t, bits))

	bits, err = enc.DataBits("")
	require.NoError(t, err)
	require.Equal(t, 0, bits.Size())
	require.Equal(t, 8, enc.CharacterCount("01234567"))

	_, err = enc.DataBits("12a")
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
}

func TestAlphanumericDataBits(t *testing.T) {
	enc := NewEncoder(Recognition{Mode: ModeAlphanumeric})
	bits, err := enc.DataBits("AC-42")
	require.NoError(t, err)
	// AC = 10*45+12 = 462, -4 = 41*45+4 = 1849, 2 = 2
	require.Equal(t, "00111001110"+"11100111001"+"000010", bitString(t, bits))
	require.Equal(t, 5, enc.CharacterCount("AC-42"))

	bits, err = enc.DataBits("HELLO WORLD")
	require.NoError(t, err)
	require.Equal(t, 61, bits.Size())

	_, err = enc.DataBits("abc")
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
}

func TestByteDataBits(t *testing.T) {
	enc := NewEncoder(Recognition{Mode: ModeByte, ECI: charset.ECIISO8859_1})
	bits, err := enc.DataBits("é!")
	require.NoError(t, err)
	b, err := bits.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xE9, 0x21}, b)
	require.Equal(t, 2, enc.CharacterCount("é!"))

	utf := NewEncoder(Recognition{Mode: ModeByte, ECI: charset.ECIUTF8})
	bits, err = utf.DataBits("é")
	require.NoError(t, err)
	b, err = bits.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xEF, 0xBB, 0xBF, 0xC3, 0xA9}, b)
	require.Equal(t, 5, utf.CharacterCount("é"))

	_, err = enc.DataBits("Ω")
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
	require.Equal(t, 0, enc.CharacterCount("Ω"))

	// A byte recognition without a character set falls back to ISO-8859-1.
	require.Equal(t, enc, NewEncoder(Recognition{Mode: ModeByte}))
}

func TestKanjiDataBits(t *testing.T) {
	enc := NewEncoder(Recognition{Mode: ModeKanji})
	bits, err := enc.DataBits("点茗")
	require.NoError(t, err)
	require.Equal(t, "0110110011111"+"1101010101010", bitString(t, bits))
	require.Equal(t, 2, enc.CharacterCount("点茗"))

	_, err = enc.DataBits("a")
	require.ErrorIs(t, err, qrencode.ErrInvalidInput)
}

func TestAppendHeader(t *testing.T) {
	v1, _ := version.ForNumber(1)

	bits := bitutil.NewBitArray(0)
	require.NoError(t, AppendHeader(bits, Recognition{Mode: ModeAlphanumeric}, 11, v1))
	require.Equal(t, "0010"+"000001011", bitString(t, bits))
	require.Equal(t, 13, HeaderBits(Recognition{Mode: ModeAlphanumeric}, 0))

	r := Recognition{Mode: ModeByte, ECI: charset.ECIUTF8}
	bits = bitutil.NewBitArray(0)
	require.NoError(t, AppendHeader(bits, r, 5, v1))
	require.Equal(t, "0111"+"00011010"+"0100"+"00000101", bitString(t, bits))
	require.Equal(t, bits.Size(), HeaderBits(r, 0))

	bits = bitutil.NewBitArray(0)
	err := AppendHeader(bits, Recognition{Mode: ModeByte, ECI: charset.ECIISO8859_1}, 256, v1)
	require.ErrorIs(t, err, qrencode.ErrInternal)
}
