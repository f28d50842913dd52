package version

// VersionDetail is the flattened block layout of one version at one error
// correction level. At most two block groups exist; group 2 blocks carry one
// more data codeword than group 1 blocks.
type VersionDetail struct {
	NumTotalBytes      int
	NumDataBytes       int
	NumECBlocks        int
	ECBlockGroup1      int
	ECBlockGroup2      int
	NumDataBytesGroup1 int
	NumDataBytesGroup2 int
	NumECBytesPerBlock int
}

// Detail returns the block layout for the given level.
func (v *Version) Detail(ecLevel ErrorCorrectionLevel) VersionDetail {
	ecBlocks := v.ECBlocksForLevel(ecLevel)
	d := VersionDetail{
		NumTotalBytes:      v.TotalCodewords,
		NumDataBytes:       ecBlocks.NumDataCodewords(),
		NumECBlocks:        ecBlocks.NumBlocks(),
		NumECBytesPerBlock: ecBlocks.ECCodewordsPerBlock,
	}
	d.ECBlockGroup1 = ecBlocks.Blocks[0].Count
	d.NumDataBytesGroup1 = ecBlocks.Blocks[0].DataCodewords
	if len(ecBlocks.Blocks) > 1 {
		d.ECBlockGroup2 = ecBlocks.Blocks[1].Count
		d.NumDataBytesGroup2 = ecBlocks.Blocks[1].DataCodewords
	}
	return d
}

// DataBits returns the data capacity in bits.
func (d VersionDetail) DataBits() int {
	return d.NumDataBytes * 8
}
