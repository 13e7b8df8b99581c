package bitutil

import "strings"

// BitMatrix represents a 2D matrix of bits.
// x is the column position, y is the row position. The origin is at the top-left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a new square BitMatrix with the given dimension.
func NewBitMatrix(dimension int) *BitMatrix {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize creates a new BitMatrix with the given width and height.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// SetRegion sets a rectangular region of bits.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	right := left + width
	bottom := top + height
	if bottom > bm.height || right > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			bm.data[offset+x/32] |= 1 << uint(x&0x1f)
		}
	}
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// String returns a string representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if two BitMatrices are equal.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height || bm.rowSize != other.rowSize {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
