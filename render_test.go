package qrgrid

import (
	"strings"
	"testing"
)

func TestModuleAccessors(t *testing.T) {
	code, err := Encode("12345", nil)
	if err != nil {
		t.Fatal(err)
	}
	modules := code.Modules()
	if len(modules) != 21 {
		t.Fatalf("len(Modules()) = %d, want 21", len(modules))
	}
	for y, row := range modules {
		if len(row) != 21 {
			t.Fatalf("len(Modules()[%d]) = %d, want 21", y, len(row))
		}
		for x, dark := range row {
			if dark != code.Module(x, y) {
				t.Fatalf("Modules()[%d][%d] = %v, Module(%d,%d) = %v", y, x, dark, x, y, code.Module(x, y))
			}
		}
	}
	for _, coord := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}} {
		if code.Module(coord[0], coord[1]) {
			t.Errorf("Module(%d,%d) outside symbol = true, want false", coord[0], coord[1])
		}
	}
}

func TestBitmapMinimal(t *testing.T) {
	code, err := Encode("12345", nil)
	if err != nil {
		t.Fatal(err)
	}
	bm := code.Bitmap(0, 0)
	if bm.Width() != 29 || bm.Height() != 29 {
		t.Fatalf("Bitmap(0,0) = %dx%d, want 29x29", bm.Width(), bm.Height())
	}
	if bm.Get(0, 0) {
		t.Error("quiet zone corner is dark")
	}
	if !bm.Get(4, 4) {
		t.Error("top-left finder corner is light")
	}
	if bm.Get(4+7, 4) {
		t.Error("separator module is dark")
	}
}

func TestBitmapScaled(t *testing.T) {
	code, err := Encode("12345", nil)
	if err != nil {
		t.Fatal(err)
	}
	bm := code.Bitmap(100, 100)
	if bm.Width() != 100 || bm.Height() != 100 {
		t.Fatalf("Bitmap(100,100) = %dx%d, want 100x100", bm.Width(), bm.Height())
	}

	// 29 quiet-zone-padded modules in 100 pixels scale by 3, and the 21
	// module symbol is centered at offset (100-63)/2 = 18.
	if bm.Get(17, 17) {
		t.Error("pixel before symbol start is dark")
	}
	for _, p := range [][2]int{{18, 18}, {19, 19}, {20, 20}} {
		if !bm.Get(p[0], p[1]) {
			t.Errorf("pixel (%d,%d) inside scaled finder corner is light", p[0], p[1])
		}
	}
	if bm.Get(18+7*3, 18) {
		t.Error("pixel inside scaled separator module is dark")
	}
	if bm.Get(99, 99) {
		t.Error("far corner is dark")
	}
}

func TestBitmapZeroMargin(t *testing.T) {
	margin := 0
	code, err := Encode("12345", &EncodeOptions{Margin: &margin})
	if err != nil {
		t.Fatal(err)
	}
	bm := code.Bitmap(0, 0)
	if bm.Width() != 21 || bm.Height() != 21 {
		t.Fatalf("Bitmap(0,0) = %dx%d, want 21x21", bm.Width(), bm.Height())
	}
	if !bm.Get(0, 0) {
		t.Error("finder corner is light with zero margin")
	}
}

func TestCodeString(t *testing.T) {
	code, err := Encode("12345", nil)
	if err != nil {
		t.Fatal(err)
	}
	s := code.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 29 {
		t.Fatalf("String() has %d lines, want 29", len(lines))
	}
	if lines[0] != strings.Repeat("  ", 29) {
		t.Errorf("first line = %q, want all light", lines[0])
	}

	// Line 4 starts at the symbol's top row: four quiet zone modules, then
	// the seven dark modules of the finder pattern.
	wantPrefix := strings.Repeat("  ", 4) + strings.Repeat("##", 7)
	if !strings.HasPrefix(lines[4], wantPrefix) {
		t.Errorf("line 4 = %q, want prefix %q", lines[4], wantPrefix)
	}
	if strings.Contains(s, "X") {
		t.Error("String() uses X for dark modules, want ##")
	}
}
