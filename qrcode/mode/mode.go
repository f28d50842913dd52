// Package mode classifies input text into a QR Code data mode and packs it
// into the mode's bitstream representation.
package mode

import "github.com/ericlevine/qrencode/qrcode/version"

// Mode represents a QR code data encoding mode. Its value is the 4-bit mode
// indicator.
type Mode int

const (
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
	ModeECI          Mode = 0x07
	ModeKanji        Mode = 0x08
)

// IndicatorBits is the width of the mode indicator.
const IndicatorBits = 4

// characterCountBits contains [v1-9, v10-26, v27-40] bit counts.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
	ModeECI:          {0, 0, 0},
	ModeKanji:        {8, 10, 12},
}

// CharacterCountBits returns the number of bits used to encode the character
// count for this mode in the given version.
func (m Mode) CharacterCountBits(v *version.Version) int {
	return m.CharacterCountBitsForTier(v.Tier())
}

// CharacterCountBitsForTier is CharacterCountBits keyed by version tier.
func (m Mode) CharacterCountBitsForTier(tier int) int {
	return characterCountBits[m][tier]
}

// Bits returns the 4-bit encoding of this mode.
func (m Mode) Bits() int {
	return int(m)
}

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "NUMERIC"
	case ModeAlphanumeric:
		return "ALPHANUMERIC"
	case ModeByte:
		return "BYTE"
	case ModeECI:
		return "ECI"
	case ModeKanji:
		return "KANJI"
	}
	return "UNKNOWN"
}
