// Package bitutil provides the bit containers used while building a symbol:
// an append-only BitArray for the codeword stream and a BitMatrix for the
// finished module grid.
package bitutil

import (
	"errors"
	"fmt"
)

// ErrUnaligned is returned when a BitArray is converted to bytes while its
// size is not a multiple of 8.
var ErrUnaligned = errors.New("bitutil: bit array is not byte aligned")

const loadFactor = 0.75

// BitArray is a growable array of bits represented compactly by an array of
// uint32 values internally. Bits are appended most significant first.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new BitArray with room for size bits and length 0.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{bits: makeArray(size)}
}

// NewBitArrayFromBytes creates a BitArray holding every bit of b, most
// significant bit of b[0] first.
func NewBitArrayFromBytes(b []byte) *BitArray {
	ba := NewBitArray(len(b) * 8)
	ba.AppendBytes(b)
	return ba
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (ba *BitArray) SizeInBytes() int {
	return (ba.size + 7) / 8
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	if i < 0 || i >= ba.size {
		panic(fmt.Sprintf("bitarray: index %d out of range [0,%d)", i, ba.size))
	}
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1F)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	nextSize := ba.size
	ba.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			ba.bits[nextSize/32] |= 1 << uint(nextSize&0x1F)
		}
		nextSize++
	}
	ba.size = nextSize
}

// AppendBitArray appends another BitArray to this one.
func (ba *BitArray) AppendBitArray(other *BitArray) {
	otherSize := other.size
	ba.ensureCapacity(ba.size + otherSize)
	for i := 0; i < otherSize; i++ {
		ba.AppendBit(other.Get(i))
	}
}

// AppendBytes appends 8 bits for every byte of b.
func (ba *BitArray) AppendBytes(b []byte) {
	ba.ensureCapacity(ba.size + 8*len(b))
	for _, v := range b {
		ba.AppendBits(uint32(v), 8)
	}
}

// ToBytes writes numBytes bytes starting at bitOffset into array[offset:],
// most significant bit first within each byte. Bits past Size read as 0.
func (ba *BitArray) ToBytes(bitOffset int, array []byte, offset, numBytes int) {
	for i := 0; i < numBytes; i++ {
		theByte := byte(0)
		for j := 0; j < 8; j++ {
			if bitOffset < ba.size && ba.Get(bitOffset) {
				theByte |= 1 << uint(7-j)
			}
			bitOffset++
		}
		array[offset+i] = theByte
	}
}

// Bytes returns the array packed into bytes. The size must be a multiple
// of 8.
func (ba *BitArray) Bytes() ([]byte, error) {
	if ba.size%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnaligned, ba.size)
	}
	out := make([]byte, ba.size/8)
	ba.ToBytes(0, out, 0, len(out))
	return out, nil
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
