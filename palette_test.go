package vtfb

import "testing"

func TestIndexedColorFromByteMasksHighBits(t *testing.T) {
	if got := IndexedColorFromByte(0xFF); got != IndexedColor(0xF) {
		t.Errorf("IndexedColorFromByte(0xFF) = %d, want 15", got)
	}
	if got := IndexedColorFromByte(3); got != IndexedColor(3) {
		t.Errorf("IndexedColorFromByte(3) = %d, want 3", got)
	}
}

func TestXterm256IndexCorners(t *testing.T) {
	if got := xterm256Index(0, 0, 0); got != 16 {
		t.Errorf("xterm256Index(black) = %d, want 16", got)
	}
	if got := xterm256Index(255, 255, 255); got != 16+36*5+6*5+5 {
		t.Errorf("xterm256Index(white) = %d, want %d", got, 16+36*5+6*5+5)
	}
}

func TestXterm256IndexStaysWithinCubeRange(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {128, 64, 200}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		idx := xterm256Index(c[0], c[1], c[2])
		if idx < 16 || idx > 231 {
			t.Errorf("xterm256Index(%v) = %d, out of [16,231]", c, idx)
		}
	}
}

func TestDefaultThemeHasExpectedSlotCount(t *testing.T) {
	if len(DefaultTheme) != IndexedColorsCount {
		t.Errorf("len(DefaultTheme) = %d, want %d", len(DefaultTheme), IndexedColorsCount)
	}
}
