package vtfb

import "testing"

func TestRgbaFromBERoundTrip(t *testing.T) {
	c := RgbaFromBE(0xbe2c21ff)
	if r, g, b, a := c.Red(), c.Green(), c.Blue(), c.Alpha(); r != 0xbe || g != 0x2c || b != 0x21 || a != 0xff {
		t.Errorf("channels = %02x %02x %02x %02x, want be 2c 21 ff", r, g, b, a)
	}
	if got := c.ToBE(); got != 0xbe2c21ff {
		t.Errorf("ToBE() = %#08x, want %#08x", got, 0xbe2c21ff)
	}
}

func TestRgbaFromLERoundTrip(t *testing.T) {
	c := RgbaFromLE(0xff2c21be)
	if got := c.ToLE(); got != 0xff2c21be {
		t.Errorf("ToLE() = %#08x, want %#08x", got, 0xff2c21be)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RgbaFromBE(0x112233ff).WithAlpha(0x80)
	if c.Alpha() != 0x80 {
		t.Errorf("Alpha() = %#x, want 0x80", c.Alpha())
	}
	if c.Red() != 0x11 || c.Green() != 0x22 || c.Blue() != 0x33 {
		t.Errorf("WithAlpha changed color channels: %02x %02x %02x", c.Red(), c.Green(), c.Blue())
	}
}

func TestIsDefault(t *testing.T) {
	if !ZeroRgba.IsDefault() {
		t.Error("ZeroRgba should be IsDefault")
	}
	if RgbaFromBE(0x000000ff).IsDefault() {
		t.Error("opaque black should not be IsDefault")
	}
}
