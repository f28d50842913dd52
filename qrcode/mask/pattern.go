// Package mask applies the eight data mask patterns and picks the one whose
// symbol scores the lowest penalty.
package mask

import (
	"fmt"

	qrencode "github.com/ericlevine/qrencode"
)

// Pattern is one of the eight data mask patterns.
type Pattern int

// NumPatterns is the number of mask patterns.
const NumPatterns = 8

// patterns contains the 8 QR code data mask conditions. x is the column, y
// the row; a module is flipped when the condition holds.
var patterns = [NumPatterns]func(x, y int) bool{
	func(x, y int) bool { return (y+x)&0x01 == 0 },                       // 000
	func(x, y int) bool { return y&0x01 == 0 },                           // 001
	func(x, y int) bool { return x%3 == 0 },                              // 010
	func(x, y int) bool { return (y+x)%3 == 0 },                          // 011
	func(x, y int) bool { return ((y/2)+(x/3))&0x01 == 0 },               // 100
	func(x, y int) bool { return (y*x)%6 == 0 },                          // 101
	func(x, y int) bool { return ((y * x) % 6) < 3 },                     // 110
	func(x, y int) bool { return ((y + x + ((y * x) % 3)) & 0x01) == 0 }, // 111
}

// NewPattern validates a mask pattern number.
func NewPattern(n int) (Pattern, error) {
	if n < 0 || n >= NumPatterns {
		return 0, fmt.Errorf("%w: mask pattern %d out of range [0,%d)", qrencode.ErrInvalidInput, n, NumPatterns)
	}
	return Pattern(n), nil
}

// Func returns the mask condition of the pattern.
func (p Pattern) Func() func(x, y int) bool {
	return patterns[p]
}
