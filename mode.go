package qrgrid

// Mode represents a QR code data encoding mode.
type Mode int

const (
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
)

// characterCountBits contains [v1-9, v10-26, v27-40] bit counts.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
}

// Bits returns the 4-bit mode indicator.
func (m Mode) Bits() int {
	return int(m)
}

// CharacterCountBits returns the number of bits used to encode the character
// count for this mode in the given version.
func (m Mode) CharacterCountBits(version int) int {
	var offset int
	switch {
	case version <= 9:
		offset = 0
	case version <= 26:
		offset = 1
	default:
		offset = 2
	}
	return characterCountBits[m][offset]
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "NUMERIC"
	case ModeAlphanumeric:
		return "ALPHANUMERIC"
	case ModeByte:
		return "BYTE"
	}
	return "?"
}

// alphanumericTable maps ASCII values to alphanumeric codes.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// alphanumericCode returns the alphanumeric code for a character, or -1 if
// the character is outside the alphanumeric set.
func alphanumericCode(code int) int {
	if code >= 0 && code < 128 {
		return alphanumericTable[code]
	}
	return -1
}

// ChooseMode classifies content into the narrowest mode whose character set
// covers it.
func ChooseMode(content string) Mode {
	hasNumeric := false
	hasAlphanumeric := false
	for _, c := range content {
		switch {
		case c >= '0' && c <= '9':
			hasNumeric = true
		case alphanumericCode(int(c)) != -1:
			hasAlphanumeric = true
		default:
			return ModeByte
		}
	}
	if hasAlphanumeric {
		return ModeAlphanumeric
	}
	if hasNumeric {
		return ModeNumeric
	}
	return ModeByte
}
