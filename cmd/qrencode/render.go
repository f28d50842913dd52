package main

import (
	"bufio"
	"io"

	"github.com/ericlevine/qrencode/bitutil"
)

// halfBlocks is indexed by top<<1 | bottom, dark modules drawn in the
// terminal's foreground colour.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// writeHalfBlocks prints two matrix rows per line of text. Dark modules are
// printed as blank cells and light ones as blocks so that a dark terminal
// background shows the symbol with the usual polarity. A missing last row
// counts as light.
func writeHalfBlocks(w io.Writer, m *bitutil.BitMatrix) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < m.Height(); y += 2 {
		for x := 0; x < m.Width(); x++ {
			top := !m.Get(x, y)
			bottom := y+1 >= m.Height() || !m.Get(x, y+1)
			i := 0
			if top {
				i |= 2
			}
			if bottom {
				i |= 1
			}
			bw.WriteString(halfBlocks[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
