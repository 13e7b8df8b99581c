package qrgrid

import (
	"math"

	"github.com/mwaldron/qrgrid/bitutil"
)

const numMaskPatterns = 8

// chooseMaskPattern builds the symbol once per mask pattern and returns the
// pattern with the lowest penalty score. Trial builds leave the format and
// version areas light so every pattern is scored on the same footing.
func chooseMaskPattern(bits *bitutil.BitArray, level ErrorCorrectionLevel, version *Version, matrix *byteMatrix) int {
	minPenalty := math.MaxInt32
	bestPattern := 0
	for i := 0; i < numMaskPatterns; i++ {
		buildMatrix(bits, level, version, i, true, matrix)
		penalty := calculateMaskPenalty(matrix)
		if penalty < minPenalty {
			minPenalty = penalty
			bestPattern = i
		}
	}
	return bestPattern
}

func calculateMaskPenalty(matrix *byteMatrix) int {
	return applyMaskPenaltyRule1(matrix) +
		applyMaskPenaltyRule2(matrix) +
		applyMaskPenaltyRule3(matrix) +
		applyMaskPenaltyRule4(matrix)
}

// Mask penalty rule 1: penalize runs of 5+ same-color modules
func applyMaskPenaltyRule1(matrix *byteMatrix) int {
	return applyMaskPenaltyRule1Internal(matrix, true) + applyMaskPenaltyRule1Internal(matrix, false)
}

func applyMaskPenaltyRule1Internal(matrix *byteMatrix, isHorizontal bool) int {
	penalty := 0
	iLimit := matrix.height
	jLimit := matrix.width
	if !isHorizontal {
		iLimit = matrix.width
		jLimit = matrix.height
	}
	for i := 0; i < iLimit; i++ {
		numSameBitCells := 0
		prevBit := byte(255) // invalid
		for j := 0; j < jLimit; j++ {
			var bit byte
			if isHorizontal {
				bit = matrix.get(j, i)
			} else {
				bit = matrix.get(i, j)
			}
			if bit == prevBit {
				numSameBitCells++
			} else {
				if numSameBitCells >= 5 {
					penalty += 3 + (numSameBitCells - 5)
				}
				numSameBitCells = 1
				prevBit = bit
			}
		}
		if numSameBitCells >= 5 {
			penalty += 3 + (numSameBitCells - 5)
		}
	}
	return penalty
}

// Mask penalty rule 2: penalize 2x2 blocks of same color
func applyMaskPenaltyRule2(matrix *byteMatrix) int {
	penalty := 0
	for y := 0; y < matrix.height-1; y++ {
		for x := 0; x < matrix.width-1; x++ {
			value := matrix.get(x, y)
			if value == matrix.get(x+1, y) && value == matrix.get(x, y+1) && value == matrix.get(x+1, y+1) {
				penalty += 3
			}
		}
	}
	return penalty
}

// Mask penalty rule 3: penalize finder-like patterns
func applyMaskPenaltyRule3(matrix *byteMatrix) int {
	penalty := 0
	for y := 0; y < matrix.height; y++ {
		for x := 0; x < matrix.width; x++ {
			// Check horizontal
			if x+6 < matrix.width {
				if matrix.get(x, y) == 1 && matrix.get(x+1, y) == 0 &&
					matrix.get(x+2, y) == 1 && matrix.get(x+3, y) == 1 &&
					matrix.get(x+4, y) == 1 && matrix.get(x+5, y) == 0 &&
					matrix.get(x+6, y) == 1 {
					leadingWhite := x+10 < matrix.width && matrix.get(x+7, y) == 0 && matrix.get(x+8, y) == 0 &&
						matrix.get(x+9, y) == 0 && matrix.get(x+10, y) == 0
					trailingWhite := x >= 4 && matrix.get(x-1, y) == 0 && matrix.get(x-2, y) == 0 &&
						matrix.get(x-3, y) == 0 && matrix.get(x-4, y) == 0
					if leadingWhite || trailingWhite {
						penalty += 40
					}
				}
			}
			// Check vertical
			if y+6 < matrix.height {
				if matrix.get(x, y) == 1 && matrix.get(x, y+1) == 0 &&
					matrix.get(x, y+2) == 1 && matrix.get(x, y+3) == 1 &&
					matrix.get(x, y+4) == 1 && matrix.get(x, y+5) == 0 &&
					matrix.get(x, y+6) == 1 {
					leadingWhite := y+10 < matrix.height && matrix.get(x, y+7) == 0 && matrix.get(x, y+8) == 0 &&
						matrix.get(x, y+9) == 0 && matrix.get(x, y+10) == 0
					trailingWhite := y >= 4 && matrix.get(x, y-1) == 0 && matrix.get(x, y-2) == 0 &&
						matrix.get(x, y-3) == 0 && matrix.get(x, y-4) == 0
					if leadingWhite || trailingWhite {
						penalty += 40
					}
				}
			}
		}
	}
	return penalty
}

// Mask penalty rule 4: penalize deviation from 50% dark modules
func applyMaskPenaltyRule4(matrix *byteMatrix) int {
	numDarkCells := 0
	total := matrix.height * matrix.width
	for y := 0; y < matrix.height; y++ {
		for x := 0; x < matrix.width; x++ {
			if matrix.get(x, y) == 1 {
				numDarkCells++
			}
		}
	}
	fivePercentVariances := abs(numDarkCells*2-total) * 10 / total
	return fivePercentVariances * 10
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
