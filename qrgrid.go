// Package qrgrid generates QR code symbols as module matrices.
//
// Encode turns a text string into a Code: the text is converted to bytes in
// the requested character set, encoded as byte mode data codewords with
// Reed-Solomon error correction, and placed into the symbol grid under the
// mask pattern with the lowest penalty score. The resulting Code exposes
// the module grid directly and can render itself as a bit matrix, an image
// or terminal text.
package qrgrid

import (
	"fmt"

	"github.com/mwaldron/qrgrid/charset"
)

// defaultMargin is the quiet zone width in modules on each side.
const defaultMargin = 4

// EncodeOptions configures symbol generation. The zero value selects level
// M error correction, UTF-8 text encoding, a four module quiet zone and
// automatic version and mask pattern selection.
type EncodeOptions struct {
	// ErrorCorrection specifies the error correction level: "L", "M", "Q" or "H".
	ErrorCorrection string

	// CharacterSet names the character set the text is converted with
	// before encoding, e.g. "UTF-8" or "ISO-8859-1".
	CharacterSet string

	// Margin specifies the quiet zone width in modules around the symbol.
	Margin *int

	// Version forces a specific symbol version (1-40). Zero or negative
	// leaves the choice to the encoder.
	Version int

	// MaskPattern forces a specific mask pattern (0-7). Nil leaves the
	// choice to the penalty scorer.
	MaskPattern *int
}

// Code is an encoded QR symbol.
type Code struct {
	Mode        Mode
	Level       ErrorCorrectionLevel
	Version     *Version
	MaskPattern int

	margin int
	matrix *byteMatrix
}

// Encode encodes content into a QR symbol. A nil opts uses the defaults
// described on EncodeOptions. Content that does not fit any version at the
// requested error correction level fails with ErrTooLong.
func Encode(content string, opts *EncodeOptions) (*Code, error) {
	level := LevelM
	cs := charset.UTF8
	margin := defaultMargin
	forcedVersion := 0
	var forcedMask *int

	if opts != nil {
		var err error
		if opts.ErrorCorrection != "" {
			level, err = LevelForName(opts.ErrorCorrection)
			if err != nil {
				return nil, err
			}
		}
		if opts.CharacterSet != "" {
			cs, err = charset.Lookup(opts.CharacterSet)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
			}
		}
		if opts.Margin != nil {
			if *opts.Margin < 0 {
				return nil, fmt.Errorf("%w: negative margin %d", ErrInvalidOption, *opts.Margin)
			}
			margin = *opts.Margin
		}
		if opts.Version > 0 {
			forcedVersion = opts.Version
		}
		if opts.MaskPattern != nil {
			if *opts.MaskPattern < 0 || *opts.MaskPattern >= numMaskPatterns {
				return nil, fmt.Errorf("%w: mask pattern %d out of range", ErrInvalidOption, *opts.MaskPattern)
			}
			forcedMask = opts.MaskPattern
		}
	}

	payload, err := cs.Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	// The mode is detected from the text for reporting and for version
	// selection; the payload itself is always encoded in byte mode.
	mode := ChooseMode(content)

	var version *Version
	if forcedVersion > 0 {
		version, err = VersionForNumber(forcedVersion)
		if err != nil {
			return nil, err
		}
		needed := 4 + ModeByte.CharacterCountBits(version.Number) + 8*len(payload)
		if needed > version.NumDataCodewords(level)*8 {
			return nil, ErrTooLong
		}
	} else {
		version, err = chooseVersion(mode, len(payload), level)
		if err != nil {
			return nil, err
		}
	}

	dataBits, err := buildDataBits(payload, version, level)
	if err != nil {
		return nil, err
	}
	finalBits, err := interleaveBlocks(dataBits, version, level)
	if err != nil {
		return nil, err
	}

	dimension := version.Dimension()
	matrix := newByteMatrix(dimension, dimension)

	var maskPattern int
	if forcedMask != nil {
		maskPattern = *forcedMask
	} else {
		maskPattern = chooseMaskPattern(finalBits, level, version, matrix)
	}
	buildMatrix(finalBits, level, version, maskPattern, false, matrix)

	return &Code{
		Mode:        mode,
		Level:       level,
		Version:     version,
		MaskPattern: maskPattern,
		margin:      margin,
		matrix:      matrix,
	}, nil
}
