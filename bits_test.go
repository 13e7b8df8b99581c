package qrgrid

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mwaldron/qrgrid/bitutil"
)

func mustVersion(t *testing.T, number int) *Version {
	t.Helper()
	v, err := VersionForNumber(number)
	if err != nil {
		t.Fatalf("VersionForNumber(%d) failed: %v", number, err)
	}
	return v
}

func bitArrayBytes(t *testing.T, bits *bitutil.BitArray) []byte {
	t.Helper()
	out := make([]byte, bits.SizeInBytes())
	bits.ToBytes(0, out, 0, len(out))
	return out
}

func TestBuildDataBits(t *testing.T) {
	bits, err := buildDataBits([]byte("12345"), mustVersion(t, 1), LevelM)
	if err != nil {
		t.Fatalf("buildDataBits failed: %v", err)
	}
	want := []byte{
		0x40, 0x53, 0x13, 0x23, 0x33, 0x43, 0x50, 0xEC,
		0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC,
	}
	if got := bitArrayBytes(t, bits); !bytes.Equal(got, want) {
		t.Errorf("codewords = %v, want %v", got, want)
	}
}

func TestBuildDataBitsEmpty(t *testing.T) {
	bits, err := buildDataBits(nil, mustVersion(t, 1), LevelM)
	if err != nil {
		t.Fatalf("buildDataBits failed: %v", err)
	}
	want := []byte{
		0x40, 0x00, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
		0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
	}
	if got := bitArrayBytes(t, bits); !bytes.Equal(got, want) {
		t.Errorf("codewords = %v, want %v", got, want)
	}
}

func TestTerminateBitsPadding(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(0xA, 4)
	if err := terminateBits(5, bits); err != nil {
		t.Fatalf("terminateBits failed: %v", err)
	}
	want := []byte{0xA0, 0xEC, 0x11, 0xEC, 0x11}
	if got := bitArrayBytes(t, bits); !bytes.Equal(got, want) {
		t.Errorf("padded codewords = %v, want %v", got, want)
	}
}

func TestTerminateBitsOverCapacity(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	for i := 0; i < 20; i++ {
		bits.AppendBits(0xFF, 8)
	}
	err := terminateBits(16, bits)
	if !errors.Is(err, ErrEncode) {
		t.Errorf("terminateBits error = %v, want ErrEncode", err)
	}
}

func TestChooseVersion(t *testing.T) {
	tests := []struct {
		mode       Mode
		payloadLen int
		level      ErrorCorrectionLevel
		want       int
	}{
		{ModeByte, 0, LevelM, 1},
		{ModeByte, 14, LevelM, 1},
		{ModeByte, 15, LevelM, 2},
		{ModeNumeric, 14, LevelM, 1},
		{ModeAlphanumeric, 14, LevelM, 1},
		{ModeByte, 2331, LevelM, 40},
		{ModeByte, 2953, LevelL, 40},
		{ModeByte, 1273, LevelH, 40},
	}
	for _, tt := range tests {
		v, err := chooseVersion(tt.mode, tt.payloadLen, tt.level)
		if err != nil {
			t.Errorf("chooseVersion(%s, %d, %s) failed: %v", tt.mode, tt.payloadLen, tt.level, err)
			continue
		}
		if v.Number != tt.want {
			t.Errorf("chooseVersion(%s, %d, %s) = v%d, want v%d", tt.mode, tt.payloadLen, tt.level, v.Number, tt.want)
		}
	}
}

// TestChooseVersionMonotonic checks that a longer payload never selects a
// smaller version and that capacity runs out exactly at version 40.
func TestChooseVersionMonotonic(t *testing.T) {
	for _, level := range []ErrorCorrectionLevel{LevelL, LevelM, LevelQ, LevelH} {
		t.Run(level.String(), func(t *testing.T) {
			prev := 1
			for n := 0; ; n++ {
				v, err := chooseVersion(ModeByte, n, level)
				if err != nil {
					if !errors.Is(err, ErrTooLong) {
						t.Fatalf("chooseVersion(ModeByte, %d, %s) failed: %v", n, level, err)
					}
					if prev != 40 {
						t.Fatalf("capacity exhausted at version %d, want 40", prev)
					}
					return
				}
				if v.Number < prev {
					t.Fatalf("chooseVersion(ModeByte, %d, %s) = v%d after v%d", n, level, v.Number, prev)
				}
				prev = v.Number
			}
		})
	}
}

func TestChooseVersionTooLong(t *testing.T) {
	_, err := chooseVersion(ModeByte, 2332, LevelM)
	if !errors.Is(err, ErrTooLong) {
		t.Errorf("chooseVersion error = %v, want ErrTooLong", err)
	}
	_, err = chooseVersion(ModeByte, 2954, LevelL)
	if !errors.Is(err, ErrTooLong) {
		t.Errorf("chooseVersion error = %v, want ErrTooLong", err)
	}
}

func TestInterleaveBlocksSingleBlock(t *testing.T) {
	data := []byte{
		64, 83, 19, 35, 51, 67, 80, 236, 17, 236, 17, 236, 17, 236, 17, 236,
	}
	bits := bitutil.NewBitArray(0)
	for _, b := range data {
		bits.AppendBits(uint32(b), 8)
	}
	result, err := interleaveBlocks(bits, mustVersion(t, 1), LevelM)
	if err != nil {
		t.Fatalf("interleaveBlocks failed: %v", err)
	}
	want := append(append([]byte{}, data...), 209, 177, 85, 20, 30, 194, 205, 35, 252, 0)
	if got := bitArrayBytes(t, result); !bytes.Equal(got, want) {
		t.Errorf("stream = %v, want %v", got, want)
	}
}

// TestInterleaveBlocksFourBlocks exercises a version whose blocks have two
// different lengths, so the column-major interleave has to skip the short
// blocks at the end of the data pass.
func TestInterleaveBlocksFourBlocks(t *testing.T) {
	data := []byte{
		66, 244, 148, 229, 68, 85, 36, 196, 84, 21, 100, 82, 4, 20, 53, 36,
		245, 53, 50, 4, 100, 245, 85, 34, 4, 36, 196, 244, 52, 181, 50, 3,
		3, 19, 35, 51, 67, 83, 99, 115, 131, 146, 4, 20, 36, 52, 68, 84,
		96, 236, 17, 236, 17, 236, 17, 236, 17, 236, 17, 236, 17, 236,
	}
	bits := bitutil.NewBitArray(0)
	for _, b := range data {
		bits.AppendBits(uint32(b), 8)
	}
	result, err := interleaveBlocks(bits, mustVersion(t, 5), LevelQ)
	if err != nil {
		t.Fatalf("interleaveBlocks failed: %v", err)
	}
	want := []byte{
		66, 36, 50, 68, 244, 245, 3, 84, 148, 53, 3, 96, 229, 50, 19, 236,
		68, 4, 35, 17, 85, 100, 51, 236, 36, 245, 67, 17, 196, 85, 83, 236,
		84, 34, 99, 17, 21, 4, 115, 236, 100, 36, 131, 17, 82, 196, 146, 236,
		4, 244, 4, 17, 20, 52, 20, 236, 53, 181, 36, 17, 52, 236, 172, 134,
		221, 113, 186, 241, 190, 187, 2, 200, 187, 92, 231, 223, 60, 104, 19, 125,
		184, 191, 183, 142, 210, 58, 59, 96, 66, 7, 116, 16, 113, 124, 188, 70,
		35, 105, 76, 177, 84, 239, 162, 133, 5, 248, 246, 165, 164, 139, 183, 217,
		139, 51, 110, 60, 1, 202, 87, 120, 213, 240, 153, 45, 98, 100, 65, 8,
		188, 150, 142, 41, 202, 146,
	}
	got := bitArrayBytes(t, result)
	if len(got) != mustVersion(t, 5).TotalCodewords {
		t.Fatalf("stream length = %d, want %d", len(got), mustVersion(t, 5).TotalCodewords)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("stream = %v, want %v", got, want)
	}
}

func TestInterleaveBlocksSizeMismatch(t *testing.T) {
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(0xFF, 8)
	_, err := interleaveBlocks(bits, mustVersion(t, 1), LevelM)
	if !errors.Is(err, ErrEncode) {
		t.Errorf("interleaveBlocks error = %v, want ErrEncode", err)
	}
}
