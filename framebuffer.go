package vtfb

// Framebuffer is a double-buffered terminal framebuffer. Callers draw text
// and colors into it every frame; Render diffs the result against what was
// last sent to the terminal and serializes only the difference as VT.
//
// Framebuffer carries no internal locking: it is meant to be driven from a
// single goroutine, the same way a renderer owns one screen.
type Framebuffer struct {
	indexedColors [IndexedColorsCount]StraightRgba
	buffers       [2]Buffer
	frameCounter  uint64

	// autoColors holds [dark, light], used by Contrasted. Values swap if
	// SetIndexedColors detects the palette is a light theme.
	autoColors         [2]StraightRgba
	autoColorThreshold float64
	contrastCache      ContrastCache

	backgroundFill, foregroundFill StraightRgba
	disableTrueColor               bool
}

// NewFramebuffer returns a Framebuffer with DefaultTheme loaded and no
// buffers allocated; the first Flip call allocates them.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{
		indexedColors:      DefaultTheme,
		autoColors:         [2]StraightRgba{DefaultTheme[Black], DefaultTheme[BrightWhite]},
		autoColorThreshold: 0.5,
		backgroundFill:     DefaultTheme[Background],
		foregroundFill:     DefaultTheme[Foreground],
	}
}

// SetDisableTrueColor switches color emission to the xterm 256-color cube,
// for terminals (e.g. Termux over SSH) with no true-color support.
func (fb *Framebuffer) SetDisableTrueColor(disable bool) {
	fb.disableTrueColor = disable
}

// SetIndexedColors replaces the base palette. Once called, Framebuffer
// assumes the caller has already detected the terminal's light/dark mode
// and relies on the terminal's own default fg/bg (rendered as transparent)
// rather than DefaultTheme's Background/Foreground entries.
func (fb *Framebuffer) SetIndexedColors(colors [IndexedColorsCount]StraightRgba) {
	fb.indexedColors = colors
	fb.backgroundFill = ZeroRgba
	fb.foregroundFill = ZeroRgba

	fb.autoColors = [2]StraightRgba{colors[Black], colors[BrightWhite]}

	lightness := [2]float64{fb.autoColors[0].Lightness(), fb.autoColors[1].Lightness()}
	fb.autoColorThreshold = (lightness[0] + lightness[1]) * 0.5

	if lightness[0] > lightness[1] {
		fb.autoColors[0], fb.autoColors[1] = fb.autoColors[1], fb.autoColors[0]
	}
}

func (fb *Framebuffer) back() *Buffer {
	return &fb.buffers[fb.frameCounter&1]
}

// Flip begins a new frame of the given size. If size differs from the
// current buffers, both are reallocated and a full redraw is forced.
func (fb *Framebuffer) Flip(size Size) {
	if size != fb.buffers[0].Size() {
		for i := range fb.buffers {
			fb.buffers[i] = NewBuffer(size)
		}

		front := &fb.buffers[fb.frameCounter&1]
		// Poison the (new, all-zero) front fg bitmap so every cell reads
		// as changed on the next render, forcing a full redraw.
		front.Fg.Fill(RgbaFromLE(1))
		front.Cursor = InvalidCursor()
	}

	fb.frameCounter++
	back := fb.back()

	back.Text.FillWhitespace()
	back.Bg.Fill(fb.backgroundFill)
	back.Fg.Fill(fb.foregroundFill)
	back.Attributes.Reset()
	back.Cursor = DisabledCursor()
}

// ReplaceText replaces text in a single row of the back buffer. See
// LineBuffer.ReplaceText for the exact splice semantics.
func (fb *Framebuffer) ReplaceText(y, originX, clipRight CoordType, text string) {
	fb.back().Text.ReplaceText(y, originX, clipRight, text)
}

// Indexed returns a palette color by slot.
func (fb *Framebuffer) Indexed(index IndexedColor) StraightRgba {
	return fb.indexedColors[index]
}

// IndexedAlpha returns a palette color by slot with its alpha channel
// replaced by 255*numerator/denominator.
func (fb *Framebuffer) IndexedAlpha(index IndexedColor, numerator, denominator uint32) StraightRgba {
	c := fb.indexedColors[index].ToLE()
	a := 255 * numerator / denominator
	return RgbaFromLE(a<<24 | (c & 0x00ffffff))
}

// Contrasted returns a color on the opposite end of the brightness scale
// from color: a light color for a dark input, a dark color for a light
// input. Results are memoized in the Framebuffer's ContrastCache.
func (fb *Framebuffer) Contrasted(color StraightRgba) StraightRgba {
	if c, ok := fb.contrastCache.Lookup(color); ok {
		return c
	}

	idx := 0
	if color.Lightness() < fb.autoColorThreshold {
		idx = 1
	}
	contrast := fb.autoColors[idx]
	fb.contrastCache.Store(color, contrast)
	return contrast
}

// BlendBg alpha-blends bg onto the back buffer's background plane within
// target.
func (fb *Framebuffer) BlendBg(target Rect, bg StraightRgba) {
	fb.back().Bg.Blend(target, bg)
}

// BlendFg alpha-blends fg onto the back buffer's foreground plane within
// target.
func (fb *Framebuffer) BlendFg(target Rect, fg StraightRgba) {
	fb.back().Fg.Blend(target, fg)
}

// Reverse swaps the foreground and background colors of every cell in
// target.
func (fb *Framebuffer) Reverse(target Rect) {
	back := fb.back()
	target = target.Intersect(back.Bg.Size().AsRect())
	if target.IsEmpty() {
		return
	}

	left, right := int(target.Left), int(target.Right)
	for y := int(target.Top); y < int(target.Bottom); y++ {
		bgRow := back.Bg.Row(y)[left:right]
		fgRow := back.Fg.Row(y)[left:right]
		for i := range bgRow {
			bgRow[i], fgRow[i] = fgRow[i], bgRow[i]
		}
	}
}

// ReplaceAttr applies attribute mask/attr to every cell in target. See
// AttributeBuffer.Replace.
func (fb *Framebuffer) ReplaceAttr(target Rect, mask, attr Attributes) {
	fb.back().Attributes.Replace(target, mask, attr)
}

// SetCursor sets the back buffer's cursor position and insert/overtype
// mode. Call this once per frame when focus is inside an editable area.
func (fb *Framebuffer) SetCursor(pos Point, overtype bool) {
	back := fb.back()
	back.Cursor.Pos = pos
	back.Cursor.Overtype = overtype
}

// fractionalBlockGlyphs holds the UTF-8 bytes of U+2588 (FULL BLOCK); its
// last byte is overwritten to step down through U+2581..U+2588 (1/8th to
// 8/8th block elements) for the scrollbar thumb's fractional top/bottom row.
var fractionalBlockGlyphs = [3]byte{0xE2, 0x96, 0x88}

// DrawScrollbar draws a scrollbar thumb in track (clipped to clipRect),
// representing a viewport of content_height content scrolled to
// content_offset. It returns the thumb's pixel height in whole rows.
//
// The thumb position and height are computed at 1/8th-row resolution using
// eighth-block glyphs for the fractional top/bottom rows; only the returned
// height is rounded to whole rows.
func (fb *Framebuffer) DrawScrollbar(clipRect, track Rect, contentOffset, contentHeight CoordType) CoordType {
	trackClipped := track.Intersect(clipRect)
	if trackClipped.IsEmpty() {
		return 0
	}

	viewportHeight := track.Height()
	if contentHeight < viewportHeight {
		contentHeight = viewportHeight
	}

	contentOffsetMax := contentHeight - viewportHeight
	if contentOffsetMax == 0 {
		return 0
	}

	contentOffset = clamp32(contentOffset, 0, contentOffsetMax)

	vh := int64(viewportHeight) * 8
	offMax := int64(contentOffsetMax) * 8
	off := int64(contentOffset) * 8
	ch := int64(contentHeight) * 8

	numerator := vh*vh + ch/2
	thumbHeight := numerator / ch
	if thumbHeight < 8 {
		thumbHeight = 8
	}

	numerator = (vh-thumbHeight)*off + offMax/2
	thumbTop := numerator / offMax
	thumbBottom := thumbTop + thumbHeight

	thumbTop += int64(track.Top) * 8
	thumbBottom += int64(track.Top) * 8

	thumbTop = max(thumbTop, int64(trackClipped.Top)*8)
	thumbBottom = min(thumbBottom, int64(trackClipped.Bottom)*8)

	topFract := CoordType(thumbTop % 8)
	bottomFract := CoordType(thumbBottom % 8)

	thumbTopRow := CoordType((thumbTop + 7) / 8)
	thumbBottomRow := CoordType(thumbBottom / 8)

	fb.BlendBg(trackClipped, fb.Indexed(BrightBlack))
	fb.BlendFg(trackClipped, fb.Indexed(BrightWhite))

	for y := thumbTopRow; y < thumbBottomRow; y++ {
		fb.ReplaceText(y, trackClipped.Left, trackClipped.Right, "█")
	}

	glyph := fractionalBlockGlyphs
	if topFract != 0 {
		glyph[2] = 0x88 - byte(topFract)
		fb.ReplaceText(thumbTopRow-1, trackClipped.Left, trackClipped.Right, string(glyph[:]))
	}
	if bottomFract != 0 {
		glyph[2] = 0x88 - byte(bottomFract)
		fb.ReplaceText(thumbBottomRow, trackClipped.Left, trackClipped.Right, string(glyph[:]))

		rect := Rect{Left: trackClipped.Left, Top: thumbBottomRow, Right: trackClipped.Right, Bottom: thumbBottomRow + 1}
		fb.BlendBg(rect, fb.Indexed(BrightWhite))
		fb.BlendFg(rect, fb.Indexed(BrightBlack))
	}

	return CoordType((thumbHeight + 4) / 8)
}
