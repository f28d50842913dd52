package mode

import (
	"fmt"
	"unicode/utf8"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/bitutil"
	"github.com/ericlevine/qrencode/charset"
	"github.com/ericlevine/qrencode/qrcode/version"
)

// ECIHeaderBits is the size of an ECI header with an 8-bit designator.
const ECIHeaderBits = IndicatorBits + 8

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encoder packs content into the bitstream of one mode.
type Encoder interface {
	Mode() Mode
	// CharacterCount is the value written into the character count
	// indicator.
	CharacterCount(content string) int
	// DataBits returns the packed content, without any header.
	DataBits(content string) (*bitutil.BitArray, error)
}

// NewEncoder returns the Encoder for a recognition.
func NewEncoder(r Recognition) Encoder {
	switch r.Mode {
	case ModeNumeric:
		return numericEncoder{}
	case ModeAlphanumeric:
		return alphanumericEncoder{}
	case ModeKanji:
		return kanjiEncoder{}
	}
	eci := r.ECI
	if eci == nil {
		eci = charset.ECIISO8859_1
	}
	return byteEncoder{eci: eci}
}

// HeaderBits returns the header size in bits for a recognition at the given
// version tier: the optional ECI header, the mode indicator and the
// character count indicator.
func HeaderBits(r Recognition, tier int) int {
	n := IndicatorBits + r.Mode.CharacterCountBitsForTier(tier)
	if r.NeedsECIHeader() {
		n += ECIHeaderBits
	}
	return n
}

// AppendHeader appends the ECI header when needed, the mode indicator and
// the character count for version v.
func AppendHeader(bits *bitutil.BitArray, r Recognition, count int, v *version.Version) error {
	if r.NeedsECIHeader() {
		bits.AppendBits(uint32(ModeECI.Bits()), IndicatorBits)
		bits.AppendBits(uint32(r.ECI.Value), 8)
	}
	countBits := r.Mode.CharacterCountBits(v)
	if count < 0 || count >= 1<<uint(countBits) {
		return fmt.Errorf("%w: %d characters do not fit in %d count bits", qrencode.ErrInternal, count, countBits)
	}
	bits.AppendBits(uint32(r.Mode.Bits()), IndicatorBits)
	bits.AppendBits(uint32(count), countBits)
	return nil
}

type numericEncoder struct{}

func (numericEncoder) Mode() Mode { return ModeNumeric }

func (numericEncoder) CharacterCount(content string) int { return len(content) }

func (numericEncoder) DataBits(content string) (*bitutil.BitArray, error) {
	bits := bitutil.NewBitArray(len(content)*10/3 + 4)
	length := len(content)
	for i := 0; i < length; i++ {
		if content[i] < '0' || content[i] > '9' {
			return nil, fmt.Errorf("%w: invalid numeric character %q", qrencode.ErrInvalidInput, content[i])
		}
	}
	i := 0
	for i < length {
		num1 := int(content[i] - '0')
		if i+2 < length {
			num2 := int(content[i+1] - '0')
			num3 := int(content[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		} else if i+1 < length {
			num2 := int(content[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		} else {
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
	return bits, nil
}

type alphanumericEncoder struct{}

func (alphanumericEncoder) Mode() Mode { return ModeAlphanumeric }

func (alphanumericEncoder) CharacterCount(content string) int { return len(content) }

func (alphanumericEncoder) DataBits(content string) (*bitutil.BitArray, error) {
	bits := bitutil.NewBitArray(len(content)*11/2 + 6)
	length := len(content)
	i := 0
	for i < length {
		code1 := AlphanumericCode(rune(content[i]))
		if code1 == -1 {
			return nil, fmt.Errorf("%w: invalid alphanumeric character %q", qrencode.ErrInvalidInput, content[i])
		}
		if i+1 < length {
			code2 := AlphanumericCode(rune(content[i+1]))
			if code2 == -1 {
				return nil, fmt.Errorf("%w: invalid alphanumeric character %q", qrencode.ErrInvalidInput, content[i+1])
			}
			bits.AppendBits(uint32(code1*45+code2), 11)
			i += 2
		} else {
			bits.AppendBits(uint32(code1), 6)
			i++
		}
	}
	return bits, nil
}

type byteEncoder struct {
	eci *charset.ECI
}

func (e byteEncoder) Mode() Mode { return ModeByte }

// CharacterCount counts transcoded bytes, including the UTF-8 byte order
// mark. Content the character set cannot represent counts as 0; DataBits
// reports the error.
func (e byteEncoder) CharacterCount(content string) int {
	b, err := e.payload(content)
	if err != nil {
		return 0
	}
	return len(b)
}

func (e byteEncoder) DataBits(content string) (*bitutil.BitArray, error) {
	b, err := e.payload(content)
	if err != nil {
		return nil, err
	}
	return bitutil.NewBitArrayFromBytes(b), nil
}

func (e byteEncoder) payload(content string) ([]byte, error) {
	b, err := e.eci.Encode(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qrencode.ErrInvalidInput, err)
	}
	if e.eci == charset.ECIUTF8 {
		b = append(append([]byte{}, utf8BOM...), b...)
	}
	return b, nil
}

type kanjiEncoder struct{}

func (kanjiEncoder) Mode() Mode { return ModeKanji }

func (kanjiEncoder) CharacterCount(content string) int { return utf8.RuneCountInString(content) }

func (kanjiEncoder) DataBits(content string) (*bitutil.BitArray, error) {
	b, err := charset.ECISJIS.Encode(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qrencode.ErrInvalidInput, err)
	}
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: kanji byte sequence is odd", qrencode.ErrInvalidInput)
	}
	bits := bitutil.NewBitArray(len(b) / 2 * 13)
	for i := 0; i < len(b); i += 2 {
		if !isKanjiPair(b[i], b[i+1]) {
			return nil, fmt.Errorf("%w: invalid kanji character 0x%02X%02X", qrencode.ErrInvalidInput, b[i], b[i+1])
		}
		code := int(b[i])<<8 | int(b[i+1])
		subtracted := code - 0x8140
		if code >= 0xE040 {
			subtracted = code - 0xC140
		}
		encoded := (subtracted>>8)*0xC0 + (subtracted & 0xFF)
		bits.AppendBits(uint32(encoded), 13)
	}
	return bits, nil
}
