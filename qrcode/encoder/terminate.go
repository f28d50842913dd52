package encoder

import (
	"fmt"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/bitutil"
)

const (
	terminatorBits = 4
	padByte1       = 0xEC
	padByte2       = 0x11
)

// TerminateBits fills bits up to numDataBytes bytes: a terminator of up to
// four zero bits, zero bits up to the next byte boundary, then alternating
// pad codewords. A stream that is already full is left untouched.
func TerminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: data bits cannot fit in the QR Code: %d > %d", qrencode.ErrInternal, bits.Size(), capacity)
	}

	// Terminator mode
	for i := 0; i < terminatorBits && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	// Pad to byte boundary
	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	// Pad with alternating bytes
	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(padByte1, 8)
		} else {
			bits.AppendBits(padByte2, 8)
		}
	}
	if bits.Size() != capacity {
		return fmt.Errorf("%w: bits size does not equal capacity: %d != %d", qrencode.ErrInternal, bits.Size(), capacity)
	}
	return nil
}
