package vtfb

import "testing"

func TestOklabBlendNoOpOnZeroAlpha(t *testing.T) {
	dst := RgbaFromBE(0x112233ff)
	src := RgbaFromBE(0xaabbcc00)
	if got := dst.OklabBlend(src); got != dst {
		t.Errorf("OklabBlend with zero alpha = %#x, want unchanged %#x", got.ToBE(), dst.ToBE())
	}
}

func TestOklabBlendFullReplaceOnOpaque(t *testing.T) {
	dst := RgbaFromBE(0x112233ff)
	src := RgbaFromBE(0xaabbccff)
	if got := dst.OklabBlend(src); got != src {
		t.Errorf("OklabBlend with full alpha = %#x, want src %#x", got.ToBE(), src.ToBE())
	}
}

func TestLightnessOrdering(t *testing.T) {
	black := RgbaFromBE(0x000000ff)
	white := RgbaFromBE(0xffffffff)
	if black.Lightness() >= white.Lightness() {
		t.Errorf("expected black lightness (%f) < white lightness (%f)", black.Lightness(), white.Lightness())
	}
}

func TestOklabRoundTripApproximatesGray(t *testing.T) {
	gray := RgbaFromBE(0x808080ff)
	ok := srgbToOklab(gray)
	r, g, b := oklabToSrgb(ok)
	if absDiff(r, 0x80) > 2 || absDiff(g, 0x80) > 2 || absDiff(b, 0x80) > 2 {
		t.Errorf("round trip of #808080 = %02x%02x%02x, want close to 808080", r, g, b)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
