// Package matrix lays function patterns and codewords out on the module grid
// of a QR Code symbol.
package matrix

import (
	"fmt"
	"strings"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/bitutil"
)

// CellType tells what occupies a module.
type CellType uint8

const (
	// None is a module nothing has been written to yet.
	None CellType = iota
	// NoMask is a function pattern or format/version module. Masks never
	// touch it.
	NoMask
	// Data is a codeword or remainder module.
	Data
)

func (c CellType) String() string {
	switch c {
	case None:
		return "none"
	case NoMask:
		return "function"
	case Data:
		return "data"
	}
	return "?"
}

// TriStateMatrix is a square module grid in which every module is either
// unset or carries a value together with the kind of module it is.
// x is the column position, y is the row position.
type TriStateMatrix struct {
	width  int
	types  []CellType
	values []bool
}

// NewTriStateMatrix creates an empty matrix with the given dimension.
func NewTriStateMatrix(dimension int) *TriStateMatrix {
	return &TriStateMatrix{
		width:  dimension,
		types:  make([]CellType, dimension*dimension),
		values: make([]bool, dimension*dimension),
	}
}

// Width returns the dimension of the matrix.
func (m *TriStateMatrix) Width() int { return m.width }

// Get returns the type and value of the module at (x, y).
func (m *TriStateMatrix) Get(x, y int) (CellType, bool) {
	i := y*m.width + x
	return m.types[i], m.values[i]
}

// setFixed writes a function module. A function module may be written again
// only with the value it already holds.
func (m *TriStateMatrix) setFixed(x, y int, dark bool) error {
	i := y*m.width + x
	switch m.types[i] {
	case None:
		m.types[i] = NoMask
		m.values[i] = dark
		return nil
	case NoMask:
		if m.values[i] == dark {
			return nil
		}
		return fmt.Errorf("%w: conflicting function module at (%d,%d)", qrencode.ErrInternal, x, y)
	}
	return fmt.Errorf("%w: function module at (%d,%d) overlaps data", qrencode.ErrInternal, x, y)
}

func (m *TriStateMatrix) setData(x, y int, dark bool) {
	i := y*m.width + x
	m.types[i] = Data
	m.values[i] = dark
}

// Clone returns a deep copy of the matrix.
func (m *TriStateMatrix) Clone() *TriStateMatrix {
	c := &TriStateMatrix{
		width:  m.width,
		types:  make([]CellType, len(m.types)),
		values: make([]bool, len(m.values)),
	}
	copy(c.types, m.types)
	copy(c.values, m.values)
	return c
}

// Mask flips every Data module for which fn(x, y) is true.
func (m *TriStateMatrix) Mask(fn func(x, y int) bool) {
	for y := 0; y < m.width; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			if m.types[i] == Data && fn(x, y) {
				m.values[i] = !m.values[i]
			}
		}
	}
}

// Freeze converts the matrix into a BitMatrix. Every module must be set.
func (m *TriStateMatrix) Freeze() (*bitutil.BitMatrix, error) {
	bm := bitutil.NewBitMatrix(m.width)
	for y := 0; y < m.width; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			if m.types[i] == None {
				return nil, fmt.Errorf("%w: module (%d,%d) was never set", qrencode.ErrInternal, x, y)
			}
			if m.values[i] {
				bm.Set(x, y)
			}
		}
	}
	return bm, nil
}

// String renders function modules as "X"/"O", data as "x"/"o" and unset
// modules as ".".
func (m *TriStateMatrix) String() string {
	var sb strings.Builder
	sb.Grow(m.width * (m.width + 1))
	for y := 0; y < m.width; y++ {
		for x := 0; x < m.width; x++ {
			t, v := m.Get(x, y)
			switch {
			case t == None:
				sb.WriteByte('.')
			case t == NoMask && v:
				sb.WriteByte('X')
			case t == NoMask:
				sb.WriteByte('O')
			case v:
				sb.WriteByte('x')
			default:
				sb.WriteByte('o')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
