package matrix

import (
	"fmt"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/bitutil"
	"github.com/ericlevine/qrencode/qrcode/version"
)

// Position detection pattern (7x7 finder pattern)
var positionDetectionPattern = [7][7]bool{
	{true, true, true, true, true, true, true},
	{true, false, false, false, false, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, true, true, true, false, true},
	{true, false, false, false, false, false, true},
	{true, true, true, true, true, true, true},
}

// Position adjustment pattern (5x5 alignment pattern)
var positionAdjustmentPattern = [5][5]bool{
	{true, true, true, true, true},
	{true, false, false, false, true},
	{true, false, true, false, true},
	{true, false, false, false, true},
	{true, true, true, true, true},
}

// formatInfoCoordinates are the positions of format bits 0 to 14 in the
// copy around the top-left finder.
var formatInfoCoordinates = [version.FormatInfoLength][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// FormatInfoCoordinates returns the positions of format bit i in both
// copies.
func FormatInfoCoordinates(i, dimension int) (first, second [2]int) {
	first = formatInfoCoordinates[i]
	if i < 8 {
		second = [2]int{dimension - 1 - i, 8}
	} else {
		second = [2]int{8, dimension - 7 + (i - 8)}
	}
	return first, second
}

// assembler writes function patterns, keeping the first error.
type assembler struct {
	m   *TriStateMatrix
	err error
}

func (a *assembler) set(x, y int, dark bool) {
	if a.err != nil {
		return
	}
	a.err = a.m.setFixed(x, y, dark)
}

// Assemble lays out the function patterns of version v and places the
// interleaved codewords in the zig-zag order. Format information modules are
// reserved as light; EmbedFormatInfo fills them once a mask is chosen.
func Assemble(codewords *bitutil.BitArray, v *version.Version) (*TriStateMatrix, error) {
	if codewords.Size() != v.TotalCodewords*8 {
		return nil, fmt.Errorf("%w: %d codeword bits for version %d, want %d",
			qrencode.ErrInternal, codewords.Size(), v.Number, v.TotalCodewords*8)
	}
	a := &assembler{m: NewTriStateMatrix(v.Dimension())}
	a.embedPositionDetectionPatterns()
	a.embedTimingPatterns()
	a.embedPositionAdjustmentPatterns(v)
	a.set(8, a.m.width-8, true)
	a.reserveFormatInfo()
	a.maybeEmbedVersionInfo(v)
	if a.err != nil {
		return nil, a.err
	}
	if err := a.embedDataBits(codewords); err != nil {
		return nil, err
	}
	return a.m, nil
}

func (a *assembler) embedPositionDetectionPatterns() {
	dimension := a.m.width
	corners := [3][2]int{{0, 0}, {dimension - 7, 0}, {0, dimension - 7}}
	for _, c := range corners {
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				a.set(c[0]+x, c[1]+y, positionDetectionPattern[y][x])
			}
		}
	}

	// Horizontal separators
	for x := 0; x < 8; x++ {
		a.set(x, 7, false)
		a.set(dimension-8+x, 7, false)
		a.set(x, dimension-8, false)
	}
	// Vertical separators
	for y := 0; y < 7; y++ {
		a.set(7, y, false)
		a.set(dimension-8, y, false)
		a.set(7, dimension-7+y, false)
	}
}

func (a *assembler) embedTimingPatterns() {
	for i := 8; i < a.m.width-8; i++ {
		dark := i%2 == 0
		a.set(i, 6, dark)
		a.set(6, i, dark)
	}
}

func (a *assembler) embedPositionAdjustmentPatterns(v *version.Version) {
	centers := v.AlignmentPatternCenters
	last := len(centers) - 1
	for i, cy := range centers {
		for j, cx := range centers {
			// Skip the three centers that fall on finder patterns.
			if (i == 0 && j == 0) || (i == 0 && j == last) || (i == last && j == 0) {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					a.set(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func (a *assembler) reserveFormatInfo() {
	for i := 0; i < version.FormatInfoLength; i++ {
		first, second := FormatInfoCoordinates(i, a.m.width)
		a.set(first[0], first[1], false)
		a.set(second[0], second[1], false)
	}
}

func (a *assembler) maybeEmbedVersionInfo(v *version.Version) {
	if !v.HasVersionInfo() {
		return
	}
	versionInfoBits := version.VersionInfoBits(v.Number)
	dimension := a.m.width
	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			dark := (versionInfoBits>>uint(bitIndex))&1 == 1
			bitIndex++
			// Bottom-left
			a.set(i, dimension-11+j, dark)
			// Top-right
			a.set(dimension-11+j, i, dark)
		}
	}
}

// embedDataBits fills every unset module, two columns at a time from the
// right, alternating upward and downward and skipping the vertical timing
// column. Modules left after the codewords run out are light remainder bits.
func (a *assembler) embedDataBits(dataBits *bitutil.BitArray) error {
	m := a.m
	dimension := m.width
	bitIndex := 0
	remainder := 0
	direction := -1
	y := dimension - 1
	for x := dimension - 1; x > 0; x -= 2 {
		if x == 6 {
			x--
		}
		for y >= 0 && y < dimension {
			for i := 0; i < 2; i++ {
				xx := x - i
				if t, _ := m.Get(xx, y); t != None {
					continue
				}
				dark := false
				if bitIndex < dataBits.Size() {
					dark = dataBits.Get(bitIndex)
					bitIndex++
				} else {
					remainder++
				}
				m.setData(xx, y, dark)
			}
			y += direction
		}
		direction = -direction
		y += direction
	}
	if bitIndex != dataBits.Size() {
		return fmt.Errorf("%w: %d codeword bits left over", qrencode.ErrInternal, dataBits.Size()-bitIndex)
	}
	if remainder > 7 {
		return fmt.Errorf("%w: %d data modules left unfilled", qrencode.ErrInternal, remainder)
	}
	return nil
}
