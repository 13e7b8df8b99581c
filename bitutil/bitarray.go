// Package bitutil provides the bit-level containers used to assemble and
// render QR symbols.
package bitutil

import "strings"

const loadFactor = 0.75

// BitArray is a simple, fast array of bits represented compactly by an array
// of uint32 values internally.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new BitArray with the given size.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
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
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
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

// ToBytes writes bits to a byte slice (most-significant bit first within each byte).
func (ba *BitArray) ToBytes(bitOffset int, array []byte, offset, numBytes int) {
	for i := 0; i < numBytes; i++ {
		theByte := byte(0)
		for j := 0; j < 8; j++ {
			if ba.Get(bitOffset) {
				theByte |= 1 << uint(7-j)
			}
			bitOffset++
		}
		array[offset+i] = theByte
	}
}

// String returns a string representation using 'X' for set and '.' for unset.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size + ba.size/8 + 1)
	for i := 0; i < ba.size; i++ {
		if i&0x07 == 0 {
			sb.WriteByte(' ')
		}
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
