package matrix

import "github.com/ericlevine/qrencode/qrcode/version"

// EmbedFormatInfo writes both copies of the format information for the
// given level and mask pattern into the reserved modules.
func (m *TriStateMatrix) EmbedFormatInfo(ecLevel version.ErrorCorrectionLevel, maskPattern int) {
	formatInfoBits := version.FormatInfoBits(ecLevel, maskPattern)
	for i := 0; i < version.FormatInfoLength; i++ {
		dark := (formatInfoBits>>uint(i))&1 == 1
		first, second := FormatInfoCoordinates(i, m.width)
		m.setFormat(first[0], first[1], dark)
		m.setFormat(second[0], second[1], dark)
	}
}

// ReadFormatInfo reads both copies of the format information from m.
func ReadFormatInfo(m interface{ Get(x, y int) bool }, dimension int) (first, second int) {
	for i := 0; i < version.FormatInfoLength; i++ {
		c1, c2 := FormatInfoCoordinates(i, dimension)
		if m.Get(c1[0], c1[1]) {
			first |= 1 << uint(i)
		}
		if m.Get(c2[0], c2[1]) {
			second |= 1 << uint(i)
		}
	}
	return first, second
}

func (m *TriStateMatrix) setFormat(x, y int, dark bool) {
	i := y*m.width + x
	m.types[i] = NoMask
	m.values[i] = dark
}
