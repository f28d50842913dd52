package mode

import (
	"fmt"
	"unicode/utf8"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/charset"
)

// Recognition describes how a whole string is packed: its mode and, for
// byte mode, the character set the text is transcoded into.
type Recognition struct {
	Mode Mode
	ECI  *charset.ECI // nil unless Mode is ModeByte
}

// NeedsECIHeader reports whether the symbol must announce the character set.
func (r Recognition) NeedsECIHeader() bool {
	return r.Mode == ModeByte && r.ECI != nil && !r.ECI.IsDefault()
}

func (r Recognition) String() string {
	if r.ECI != nil {
		return fmt.Sprintf("%s(%s)", r.Mode, r.ECI)
	}
	return r.Mode.String()
}

// alphanumericTable maps ASCII values to alphanumeric codes.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// AlphanumericCode returns the alphanumeric code for a character, or -1.
func AlphanumericCode(c rune) int {
	if c >= 0 && c < 128 {
		return alphanumericTable[c]
	}
	return -1
}

// Recognize picks the most compact single mode able to represent the whole
// of content. Empty content is numeric.
func Recognize(content string) Recognition {
	m := ModeNumeric
	for _, c := range content {
		if c >= '0' && c <= '9' {
			continue
		}
		if AlphanumericCode(c) != -1 {
			m = ModeAlphanumeric
			continue
		}
		if isOnlyDoubleByteKanji(content) {
			return Recognition{Mode: ModeKanji}
		}
		return Recognition{Mode: ModeByte, ECI: charset.BestFit(content)}
	}
	return Recognition{Mode: m}
}

// RecognizeWithCharset is Recognize with the byte-mode character set forced
// to the named one. Numeric and alphanumeric content are unaffected; Kanji
// mode is only chosen when the forced set is Shift_JIS. An empty name keeps
// the automatic choice. Content must be valid UTF-8.
func RecognizeWithCharset(content, charsetName string) (Recognition, error) {
	if !utf8.ValidString(content) {
		return Recognition{}, fmt.Errorf("%w: contents are not valid UTF-8", qrencode.ErrInvalidInput)
	}
	if charsetName == "" {
		return Recognize(content), nil
	}
	eci, err := charset.GetECIByName(charsetName)
	if err != nil {
		return Recognition{}, fmt.Errorf("%w: %v", qrencode.ErrInvalidInput, err)
	}
	r := Recognize(content)
	switch r.Mode {
	case ModeNumeric, ModeAlphanumeric:
		return r, nil
	case ModeKanji:
		if eci == charset.ECISJIS {
			return r, nil
		}
	}
	if !eci.CanEncode(content) {
		return Recognition{}, fmt.Errorf("%w: %s cannot represent the contents", qrencode.ErrInvalidInput, eci)
	}
	return Recognition{Mode: ModeByte, ECI: eci}, nil
}

// isOnlyDoubleByteKanji reports whether every character of content is a
// Shift_JIS double-byte character in the Kanji mode ranges.
func isOnlyDoubleByteKanji(content string) bool {
	b, err := charset.ECISJIS.Encode(content)
	if err != nil || len(b) == 0 || len(b)%2 != 0 {
		return false
	}
	for i := 0; i < len(b); i += 2 {
		if !isKanjiPair(b[i], b[i+1]) {
			return false
		}
	}
	return true
}

func isKanjiPair(b1, b2 byte) bool {
	code := int(b1)<<8 | int(b2)
	return (code >= 0x8140 && code <= 0x9FFC) || (code >= 0xE040 && code <= 0xEBBF)
}
