package version

import (
	"fmt"
	"math/bits"

	qrencode "github.com/ericlevine/qrencode"
)

// FormatInfoLength and VersionInfoLength are the BCH word sizes in bits.
const (
	FormatInfoLength  = 15
	VersionInfoLength = 18
)

const (
	formatInfoPoly   = 0x537
	formatInfoMaskQR = 0x5412
	versionInfoPoly  = 0x1f25
)

// FormatInfoBits returns the 15-bit format information word for the given
// level and mask pattern, already XORed with the fixed format mask.
func FormatInfoBits(ecLevel ErrorCorrectionLevel, maskPattern int) int {
	typeInfo := (ecLevel.Bits() << 3) | (maskPattern & 0x07)
	return ((typeInfo << 10) | calculateBCHCode(typeInfo, formatInfoPoly)) ^ formatInfoMaskQR
}

// maxFormatInfoErrors is the largest Hamming distance DecodeFormatInfo
// corrects. Format words are at least 7 bits apart.
const maxFormatInfoErrors = 3

// DecodeFormatInfo maps a masked 15-bit format word back to its error
// correction level and mask pattern. Up to three flipped bits are corrected.
func DecodeFormatInfo(word int) (ErrorCorrectionLevel, int, error) {
	bestDistance := FormatInfoLength + 1
	bestTypeInfo := 0
	for typeInfo := 0; typeInfo < 32; typeInfo++ {
		candidate := ((typeInfo << 10) | calculateBCHCode(typeInfo, formatInfoPoly)) ^ formatInfoMaskQR
		if d := bits.OnesCount(uint(candidate ^ word)); d < bestDistance {
			bestDistance = d
			bestTypeInfo = typeInfo
		}
	}
	if bestDistance > maxFormatInfoErrors {
		return 0, 0, fmt.Errorf("%w: format word 0x%04X is %d bits from any valid word",
			qrencode.ErrInvalidInput, word, bestDistance)
	}
	level, err := ECLevelForBits(bestTypeInfo >> 3)
	if err != nil {
		return 0, 0, err
	}
	return level, bestTypeInfo & 0x07, nil
}

// VersionInfoBits returns the 18-bit version information word. Only versions
// 7 and up carry version information.
func VersionInfoBits(number int) int {
	return (number << 12) | calculateBCHCode(number, versionInfoPoly)
}

// HasVersionInfo reports whether the version embeds version information.
func (v *Version) HasVersionInfo() bool {
	return v.Number >= 7
}

// calculateBCHCode returns the remainder of value*x^(deg poly) divided by
// poly over GF(2).
func calculateBCHCode(value, poly int) int {
	msbSetInPoly := bits.Len(uint(poly))
	value <<= uint(msbSetInPoly - 1)
	for bits.Len(uint(value)) >= msbSetInPoly {
		value ^= poly << uint(bits.Len(uint(value))-msbSetInPoly)
	}
	return value
}
