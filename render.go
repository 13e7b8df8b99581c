package qrgrid

import "github.com/mwaldron/qrgrid/bitutil"

// Dimension returns the number of modules along one side of the symbol,
// not counting the quiet zone.
func (c *Code) Dimension() int {
	return c.matrix.width
}

// Module reports whether the module at the given coordinates is dark.
// Coordinates outside the symbol are light.
func (c *Code) Module(x, y int) bool {
	if x < 0 || y < 0 || x >= c.matrix.width || y >= c.matrix.height {
		return false
	}
	return c.matrix.get(x, y) == 1
}

// Modules returns the symbol as a row-major grid of booleans, true for
// dark modules. The grid does not include the quiet zone.
func (c *Code) Modules() [][]bool {
	rows := make([][]bool, c.matrix.height)
	for y := range rows {
		row := make([]bool, c.matrix.width)
		for x := range row {
			row[x] = c.matrix.get(x, y) == 1
		}
		rows[y] = row
	}
	return rows
}

// Bitmap renders the symbol with its quiet zone into a BitMatrix of at
// least width x height. Modules are scaled by the largest whole multiple
// that fits and the symbol is centered. Passing zero for both dimensions
// renders at one module per cell.
func (c *Code) Bitmap(width, height int) *bitutil.BitMatrix {
	inputWidth := c.matrix.width
	inputHeight := c.matrix.height
	qrWidth := inputWidth + c.margin*2
	qrHeight := inputHeight + c.margin*2
	outputWidth := width
	if outputWidth < qrWidth {
		outputWidth = qrWidth
	}
	outputHeight := height
	if outputHeight < qrHeight {
		outputHeight = qrHeight
	}

	multiple := outputWidth / qrWidth
	if h := outputHeight / qrHeight; h < multiple {
		multiple = h
	}

	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	output := bitutil.NewBitMatrixWithSize(outputWidth, outputHeight)

	for inputY := 0; inputY < inputHeight; inputY++ {
		outputY := topPadding + inputY*multiple
		for inputX := 0; inputX < inputWidth; inputX++ {
			if c.matrix.get(inputX, inputY) == 1 {
				outputX := leftPadding + inputX*multiple
				output.SetRegion(outputX, outputY, multiple, multiple)
			}
		}
	}

	return output
}

// String returns a visual representation of the symbol with its quiet zone,
// drawing dark modules as "##".
func (c *Code) String() string {
	return c.Bitmap(0, 0).StringWithChars("##", "  ")
}
