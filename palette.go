package vtfb

// IndexedColor names the slots of a Framebuffer's 18-entry palette: the
// standard 16 VT colors plus a Background and Foreground default.
type IndexedColor uint8

const (
	Black IndexedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite

	Background
	Foreground
)

// IndexedColorsCount is the number of slots in an indexed-color palette.
const IndexedColorsCount = 18

// IndexedColorFromByte maps an arbitrary byte (e.g. a raw SGR index operand)
// to one of the 16 standard colors, masking out of range bits.
func IndexedColorFromByte(v uint8) IndexedColor {
	return IndexedColor(v & 0xF)
}

// DefaultTheme is the fallback 18-entry palette, matching Windows
// Terminal's Ottosson theme.
var DefaultTheme = [IndexedColorsCount]StraightRgba{
	RgbaFromBE(0x000000ff), // Black
	RgbaFromBE(0xbe2c21ff), // Red
	RgbaFromBE(0x3fae3aff), // Green
	RgbaFromBE(0xbe9a4aff), // Yellow
	RgbaFromBE(0x204dbeff), // Blue
	RgbaFromBE(0xbb54beff), // Magenta
	RgbaFromBE(0x00a7b2ff), // Cyan
	RgbaFromBE(0xbebebeff), // White
	RgbaFromBE(0x808080ff), // BrightBlack
	RgbaFromBE(0xff3e30ff), // BrightRed
	RgbaFromBE(0x58ea51ff), // BrightGreen
	RgbaFromBE(0xffc944ff), // BrightYellow
	RgbaFromBE(0x2f6affff), // BrightBlue
	RgbaFromBE(0xfc74ffff), // BrightMagenta
	RgbaFromBE(0x00e1f0ff), // BrightCyan
	RgbaFromBE(0xffffffff), // BrightWhite
	RgbaFromBE(0x000000ff), // Background
	RgbaFromBE(0xbebebeff), // Foreground
}

// xterm256Index approximates an sRGB color into the xterm 256-color 6x6x6
// cube, returning a palette index in [16,231]. Adapted from the
// index->RGB direction of phroun-purfecterm's Get256ColorRGB: same 6x6x6
// arithmetic, run in reverse.
func xterm256Index(r, g, b uint8) int {
	ri := min(int(r)*6/256, 5)
	gi := min(int(g)*6/256, 5)
	bi := min(int(b)*6/256, 5)
	return 16 + 36*ri + 6*gi + bi
}
