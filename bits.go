package qrgrid

import (
	"fmt"

	"github.com/mwaldron/qrgrid/bitutil"
	"github.com/mwaldron/qrgrid/reedsolomon"
)

// chooseVersion returns the smallest version whose data capacity at the
// given level fits the payload. The estimate counts the 4 mode indicator
// bits, the character count field at the width of the classified mode, and
// 8 bits per payload byte.
func chooseVersion(mode Mode, payloadLen int, level ErrorCorrectionLevel) (*Version, error) {
	for number := minVersion; number <= maxVersion; number++ {
		version := &versions[number-1]
		totalBits := 4 + mode.CharacterCountBits(number) + 8*payloadLen
		if totalBits <= version.NumDataCodewords(level)*8 {
			return version, nil
		}
	}
	return nil, ErrTooLong
}

// buildDataBits assembles the data codeword bit stream: byte mode
// indicator, character count, payload bytes, terminator and padding.
func buildDataBits(payload []byte, version *Version, level ErrorCorrectionLevel) (*bitutil.BitArray, error) {
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(uint32(ModeByte.Bits()), 4)
	bits.AppendBits(uint32(len(payload)), ModeByte.CharacterCountBits(version.Number))
	for _, b := range payload {
		bits.AppendBits(uint32(b), 8)
	}
	if err := terminateBits(version.NumDataCodewords(level), bits); err != nil {
		return nil, err
	}
	return bits, nil
}

// terminateBits appends the terminator, pads to a byte boundary and fills
// the remaining capacity with alternating pad bytes.
func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: data bits exceed capacity", ErrEncode)
	}

	// Terminator: up to four zero bits.
	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	// Pad to a byte boundary.
	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	// Fill with alternating pad bytes.
	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	return nil
}

// interleaveBlocks splits the data codewords into Reed-Solomon blocks,
// computes each block's error correction codewords and interleaves both
// column by column: the i-th data codeword of every block, then the i-th
// error correction codeword of every block.
func interleaveBlocks(bits *bitutil.BitArray, version *Version, level ErrorCorrectionLevel) (*bitutil.BitArray, error) {
	if bits.SizeInBytes() != version.NumDataCodewords(level) {
		return nil, fmt.Errorf("%w: data codeword count mismatch", ErrEncode)
	}

	type blockPair struct {
		dataBytes []byte
		ecBytes   []byte
	}
	layout := version.BlockLayout(level)
	blocks := make([]blockPair, len(layout))

	enc := reedsolomon.NewEncoder()
	offset := 0
	maxNumDataBytes := 0
	maxNumECBytes := 0
	for i, shape := range layout {
		dataBytes := make([]byte, shape.Data)
		bits.ToBytes(8*offset, dataBytes, 0, shape.Data)
		ecBytes := enc.EncodeBlock(dataBytes, shape.Total-shape.Data)
		blocks[i] = blockPair{dataBytes: dataBytes, ecBytes: ecBytes}
		offset += shape.Data
		if shape.Data > maxNumDataBytes {
			maxNumDataBytes = shape.Data
		}
		if len(ecBytes) > maxNumECBytes {
			maxNumECBytes = len(ecBytes)
		}
	}

	result := bitutil.NewBitArray(0)
	for i := 0; i < maxNumDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.dataBytes) {
				result.AppendBits(uint32(block.dataBytes[i]), 8)
			}
		}
	}
	for i := 0; i < maxNumECBytes; i++ {
		for _, block := range blocks {
			if i < len(block.ecBytes) {
				result.AppendBits(uint32(block.ecBytes[i]), 8)
			}
		}
	}

	if result.SizeInBytes() != version.TotalCodewords {
		return nil, fmt.Errorf("%w: interleaved %d codewords, want %d",
			ErrEncode, result.SizeInBytes(), version.TotalCodewords)
	}
	return result, nil
}
