package qrgrid

import "fmt"

// ErrorCorrectionLevel represents the four QR code error correction levels.
type ErrorCorrectionLevel int

const (
	LevelL ErrorCorrectionLevel = iota // ~7% recovery
	LevelM                             // ~15% recovery
	LevelQ                             // ~25% recovery
	LevelH                             // ~30% recovery
)

// Bits returns the 2-bit format information encoding of this level.
func (level ErrorCorrectionLevel) Bits() int {
	switch level {
	case LevelL:
		return 0x01
	case LevelM:
		return 0x00
	case LevelQ:
		return 0x03
	case LevelH:
		return 0x02
	}
	return 0
}

// Ordinal returns the ordinal position (L=0, M=1, Q=2, H=3).
func (level ErrorCorrectionLevel) Ordinal() int {
	return int(level)
}

// String returns the level name.
func (level ErrorCorrectionLevel) String() string {
	switch level {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return "?"
}

// LevelForName returns the level named by s: "L", "M", "Q" or "H".
func LevelForName(s string) (ErrorCorrectionLevel, error) {
	switch s {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: unknown error correction level %q", ErrInvalidOption, s)
}
