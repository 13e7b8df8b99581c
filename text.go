package qrgrid

import "strings"

const (
	glyphBlank = " "
	glyphFull  = "█"
	glyphUpper = "▀"
	glyphLower = "▄"
)

// Text renders the symbol and its quiet zone for a terminal, packing two
// module rows into each text line with half block characters. With invert
// set, light modules are drawn as blocks instead of dark ones, which scans
// better on dark terminal backgrounds.
func (c *Code) Text(invert bool) string {
	total := c.matrix.width + 2*c.margin
	dark := func(x, y int) bool {
		return c.Module(x-c.margin, y-c.margin) != invert
	}

	var sb strings.Builder
	for y := 0; y < total; y += 2 {
		for x := 0; x < total; x++ {
			top := dark(x, y)
			bottom := y+1 < total && dark(x, y+1)
			switch {
			case top && bottom:
				sb.WriteString(glyphFull)
			case top:
				sb.WriteString(glyphUpper)
			case bottom:
				sb.WriteString(glyphLower)
			default:
				sb.WriteString(glyphBlank)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
