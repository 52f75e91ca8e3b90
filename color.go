package vtfb

import "encoding/binary"

// StraightRgba is a 32-bit straight-alpha sRGB color. The canonical in-memory
// encoding is native-endian; From{LE,BE,NE} and To{LE,BE,NE} convert at the
// edges.
//
// A zero value (all four channels zero) is the sentinel "default" color: it
// is emitted as the terminal's own default fg/bg reset sequence instead of an
// explicit RGB triple, which is what lets a caller request a transparent or
// "whatever the terminal is configured to show" background.
type StraightRgba uint32

// ZeroRgba is the default/sentinel color: all channels zero.
const ZeroRgba StraightRgba = 0

func rgbaFromChannels(r, g, b, a uint8) StraightRgba {
	var buf [4]byte
	buf[0], buf[1], buf[2], buf[3] = r, g, b, a
	return StraightRgba(binary.NativeEndian.Uint32(buf[:]))
}

// RgbaFromLE builds a color from a little-endian-packed 0xAABBGGRR word.
func RgbaFromLE(v uint32) StraightRgba {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return StraightRgba(binary.NativeEndian.Uint32(buf[:]))
}

// RgbaFromBE builds a color from a big-endian-packed 0xRRGGBBAA word.
func RgbaFromBE(v uint32) StraightRgba {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return StraightRgba(binary.NativeEndian.Uint32(buf[:]))
}

// RgbaFromNE builds a color directly from a native-endian-packed word.
func RgbaFromNE(v uint32) StraightRgba {
	return StraightRgba(v)
}

// ToLE returns the color packed as a little-endian 0xAABBGGRR word.
func (c StraightRgba) ToLE() uint32 {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(c))
	return binary.LittleEndian.Uint32(buf[:])
}

// ToBE returns the color packed as a big-endian 0xRRGGBBAA word.
func (c StraightRgba) ToBE() uint32 {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(c))
	return binary.BigEndian.Uint32(buf[:])
}

// ToNE returns the color as its raw native-endian word.
func (c StraightRgba) ToNE() uint32 {
	return uint32(c)
}

func (c StraightRgba) channels() (r, g, b, a uint8) {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(c))
	return buf[0], buf[1], buf[2], buf[3]
}

// Red returns the red channel.
func (c StraightRgba) Red() uint8 { r, _, _, _ := c.channels(); return r }

// Green returns the green channel.
func (c StraightRgba) Green() uint8 { _, g, _, _ := c.channels(); return g }

// Blue returns the blue channel.
func (c StraightRgba) Blue() uint8 { _, _, b, _ := c.channels(); return b }

// Alpha returns the alpha channel. 0 is fully transparent, 255 is opaque.
func (c StraightRgba) Alpha() uint8 { _, _, _, a := c.channels(); return a }

// WithAlpha returns a copy of c with its alpha channel replaced.
func (c StraightRgba) WithAlpha(a uint8) StraightRgba {
	r, g, b, _ := c.channels()
	return rgbaFromChannels(r, g, b, a)
}

// IsDefault reports whether c is the all-zero sentinel "default" color.
func (c StraightRgba) IsDefault() bool {
	return c == ZeroRgba
}
