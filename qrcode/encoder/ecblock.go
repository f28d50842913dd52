package encoder

import (
	"fmt"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/bitutil"
	"github.com/ericlevine/qrencode/qrcode/version"
	"github.com/ericlevine/qrencode/reedsolomon"
)

type blockPair struct {
	dataBytes []byte
	ecBytes   []byte
}

// InterleaveWithECBytes splits the data codewords into the blocks of d,
// appends Reed-Solomon codewords to each block and interleaves them: the
// i-th data codeword of every block in turn, then the i-th EC codeword of
// every block in turn.
func InterleaveWithECBytes(bits *bitutil.BitArray, d version.VersionDetail) (*bitutil.BitArray, error) {
	if bits.Size() != d.NumDataBytes*8 {
		return nil, fmt.Errorf("%w: number of bits and data bytes does not match: %d != %d*8",
			qrencode.ErrInternal, bits.Size(), d.NumDataBytes)
	}

	blocks := make([]blockPair, 0, d.NumECBlocks)
	dataBytesOffset := 0
	maxNumDataBytes := 0
	for i := 0; i < d.NumECBlocks; i++ {
		numDataBytesInBlock := d.NumDataBytesGroup1
		if i >= d.ECBlockGroup1 {
			numDataBytesInBlock = d.NumDataBytesGroup2
		}
		dataBytes := make([]byte, numDataBytesInBlock)
		bits.ToBytes(8*dataBytesOffset, dataBytes, 0, numDataBytesInBlock)
		ecBytes, err := reedsolomon.QRCodeEncoder.Encode(dataBytes, d.NumECBytesPerBlock)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blockPair{dataBytes: dataBytes, ecBytes: ecBytes})
		if numDataBytesInBlock > maxNumDataBytes {
			maxNumDataBytes = numDataBytesInBlock
		}
		dataBytesOffset += numDataBytesInBlock
	}
	if dataBytesOffset != d.NumDataBytes {
		return nil, fmt.Errorf("%w: data bytes does not match offset: %d != %d",
			qrencode.ErrInternal, d.NumDataBytes, dataBytesOffset)
	}

	result := bitutil.NewBitArray(d.NumTotalBytes * 8)

	// Interleave data bytes
	for i := 0; i < maxNumDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.dataBytes) {
				result.AppendBits(uint32(block.dataBytes[i]), 8)
			}
		}
	}
	// Interleave EC bytes
	for i := 0; i < d.NumECBytesPerBlock; i++ {
		for _, block := range blocks {
			result.AppendBits(uint32(block.ecBytes[i]), 8)
		}
	}

	if result.SizeInBytes() != d.NumTotalBytes {
		return nil, fmt.Errorf("%w: interleaving error: %d and %d differ",
			qrencode.ErrInternal, d.NumTotalBytes, result.SizeInBytes())
	}
	return result, nil
}
