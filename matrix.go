package qrgrid

import "github.com/mwaldron/qrgrid/bitutil"

// unsetModule marks a matrix cell no pattern or data has claimed yet.
const unsetModule = 0xFF

// byteMatrix holds module values during construction: 0 for light, 1 for
// dark, unsetModule for cells not yet written.
type byteMatrix struct {
	data   [][]byte
	width  int
	height int
}

func newByteMatrix(width, height int) *byteMatrix {
	data := make([][]byte, height)
	for i := range data {
		data[i] = make([]byte, width)
	}
	return &byteMatrix{data: data, width: width, height: height}
}

func (bm *byteMatrix) get(x, y int) byte { return bm.data[y][x] }

func (bm *byteMatrix) set(x, y int, value byte) { bm.data[y][x] = value }

func (bm *byteMatrix) setBool(x, y int, value bool) {
	if value {
		bm.data[y][x] = 1
	} else {
		bm.data[y][x] = 0
	}
}

func (bm *byteMatrix) clear(value byte) {
	for y := range bm.data {
		for x := range bm.data[y] {
			bm.data[y][x] = value
		}
	}
}

const (
	formatInfoPoly  = 0x537
	formatInfoMask  = 0x5412
	versionInfoPoly = 0x1f25
)

// buildMatrix builds the symbol matrix: function patterns, format and
// version information, then masked data. During mask trials the format and
// version areas are written light; mask scoring runs on such matrices and
// the final build rewrites them with the real bits.
func buildMatrix(dataBits *bitutil.BitArray, level ErrorCorrectionLevel,
	version *Version, maskPattern int, trial bool, matrix *byteMatrix) {

	matrix.clear(unsetModule)

	embedBasicPatterns(version, matrix)
	embedFormatInfo(level, maskPattern, trial, matrix)
	maybeEmbedVersionInfo(version, trial, matrix)
	embedDataBits(dataBits, maskPattern, matrix)
}

// Position detection pattern (7x7 finder pattern)
var positionDetectionPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// Position adjustment pattern (5x5 alignment pattern)
var positionAdjustmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

func embedBasicPatterns(version *Version, matrix *byteMatrix) {
	// Position detection patterns and separators
	embedPositionDetectionPattern(0, 0, matrix)
	embedPositionDetectionPattern(matrix.width-7, 0, matrix)
	embedPositionDetectionPattern(0, matrix.height-7, matrix)

	// Horizontal separators
	embedHorizontalSeparator(0, 7, matrix)
	embedHorizontalSeparator(matrix.width-8, 7, matrix)
	embedHorizontalSeparator(0, matrix.height-8, matrix)

	// Vertical separators
	embedVerticalSeparator(7, 0, matrix)
	embedVerticalSeparator(matrix.width-8, 0, matrix)
	embedVerticalSeparator(7, matrix.height-7, matrix)

	// Alignment patterns
	if version.Number >= 2 {
		embedPositionAdjustmentPatterns(version, matrix)
	}

	// Timing patterns
	embedTimingPatterns(matrix)

	// Dark module
	matrix.set(8, matrix.height-8, 1)
}

func embedPositionDetectionPattern(xStart, yStart int, matrix *byteMatrix) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			matrix.set(xStart+x, yStart+y, positionDetectionPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, yStart int, matrix *byteMatrix) {
	for x := 0; x < 8; x++ {
		if xStart+x < matrix.width {
			matrix.set(xStart+x, yStart, 0)
		}
	}
}

func embedVerticalSeparator(xStart, yStart int, matrix *byteMatrix) {
	for y := 0; y < 7; y++ {
		if yStart+y < matrix.height {
			matrix.set(xStart, yStart+y, 0)
		}
	}
}

func embedPositionAdjustmentPatterns(version *Version, matrix *byteMatrix) {
	centers := version.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			// Only embed if the center cell is empty (not already occupied by a finder pattern)
			if matrix.get(cx, cy) != unsetModule {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					matrix.set(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(matrix *byteMatrix) {
	for i := 8; i < matrix.width-8; i++ {
		bit := byte((i + 1) % 2)
		if matrix.get(i, 6) == unsetModule {
			matrix.set(i, 6, bit)
		}
		if matrix.get(6, i) == unsetModule {
			matrix.set(6, i, bit)
		}
	}
}

// formatInfoBits returns the masked 15-bit format information word for the
// given level and mask pattern.
func formatInfoBits(level ErrorCorrectionLevel, maskPattern int) int {
	formatInfo := (level.Bits() << 3) | maskPattern
	bits := (formatInfo << 10) | calculateBCHCode(formatInfo, formatInfoPoly)
	return bits ^ formatInfoMask
}

// versionInfoBits returns the 18-bit version information word for symbol
// versions 7 and up.
func versionInfoBits(number int) int {
	return (number << 12) | calculateBCHCode(number, versionInfoPoly)
}

func embedFormatInfo(level ErrorCorrectionLevel, maskPattern int, trial bool, matrix *byteMatrix) {
	bits := 0
	if !trial {
		bits = formatInfoBits(level, maskPattern)
	}

	// Format info coordinates around the top-left finder pattern
	formatInfoCoordinates := [][2]int{
		{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
		{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
	}

	for i := 0; i < 15; i++ {
		bit := byte((bits >> uint(i)) & 1)
		coord := formatInfoCoordinates[i]
		matrix.set(coord[0], coord[1], bit)

		// Also place in the second location
		if i < 8 {
			matrix.set(matrix.width-1-i, 8, bit)
		} else {
			matrix.set(8, matrix.height-7+(i-8), bit)
		}
	}
}

func maybeEmbedVersionInfo(version *Version, trial bool, matrix *byteMatrix) {
	if version.Number < 7 {
		return
	}
	bits := 0
	if !trial {
		bits = versionInfoBits(version.Number)
	}

	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := byte((bits >> uint(bitIndex)) & 1)
			bitIndex++
			// Bottom-left
			matrix.set(i, matrix.height-11+j, bit)
			// Top-right
			matrix.set(matrix.width-11+j, i, bit)
		}
	}
}

func embedDataBits(dataBits *bitutil.BitArray, maskPattern int, matrix *byteMatrix) {
	bitIndex := 0
	dimension := matrix.height

	for j := dimension - 1; j > 0; j -= 2 {
		if j == 6 {
			j-- // skip timing column
		}
		for count := 0; count < dimension; count++ {
			upward := (((dimension - 1 - j) / 2) & 1) == 0
			i := count
			if upward {
				i = dimension - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := j - col
				if matrix.get(x, i) == unsetModule {
					var bit bool
					if bitIndex < dataBits.Size() {
						bit = dataBits.Get(bitIndex)
						bitIndex++
					}
					// Apply mask
					if dataMasks[maskPattern](i, x) {
						bit = !bit
					}
					matrix.setBool(x, i, bit)
				}
			}
		}
	}
}

func calculateBCHCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}
