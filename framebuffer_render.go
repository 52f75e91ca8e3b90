package vtfb

import (
	"fmt"

	"github.com/arcterm/vtfb/arena"
	"github.com/arcterm/vtfb/measure"
)

// Render diffs the back buffer against the front buffer accumulated since
// the last Flip, and serializes the difference as VT into out (which the
// caller is responsible for Reset-ing between frames). It returns the
// portion of out written by this call.
//
// Rows that are pixel-for-pixel identical between front and back are
// skipped entirely; within a changed row, runs of cells sharing the same
// background, foreground, and attributes are batched into a single SGR
// prelude followed by their text.
func (fb *Framebuffer) Render(out *arena.Arena) string {
	idx := fb.frameCounter & 1
	back := &fb.buffers[idx]
	front := &fb.buffers[1-idx]

	begin := out.Len()

	// -1 is an impossible value for a color widened from uint32, unlike any
	// in-range StraightRgba sentinel, so it reliably forces the first
	// chunk's color prelude to be written. lastAttr starts at AttrNone,
	// which is the state the leading SGR reset leaves the terminal in.
	lastBg, lastFg := int64(-1), int64(-1)
	var lastAttr Attributes

	size := back.Size()
	for y := CoordType(0); y < size.Height; y++ {
		frontLine := front.Text.Row(y)
		frontBg := front.Bg.Row(int(y))
		frontFg := front.Fg.Row(int(y))
		frontAttr := front.Attributes.Row(int(y))

		backLine := back.Text.Row(y)
		backBg := back.Bg.Row(int(y))
		backFg := back.Fg.Row(int(y))
		backAttr := back.Attributes.Row(int(y))

		if frontLine == backLine &&
			rowEqualColors(frontBg, backBg) &&
			rowEqualColors(frontFg, backFg) &&
			rowEqualAttrs(frontAttr, backAttr) {
			continue
		}

		cfg := measure.NewConfig([]byte(backLine))
		chunkEnd := 0

		if out.Len() == begin {
			out.WriteString("\x1b[m")
		}
		fmt.Fprintf(out, "\x1b[%d;1H", y+1)

		for {
			bg := backBg[chunkEnd]
			fg := backFg[chunkEnd]
			attr := backAttr[chunkEnd]

			for {
				chunkEnd++
				if chunkEnd >= len(backBg) ||
					backBg[chunkEnd] != bg ||
					backFg[chunkEnd] != fg ||
					backAttr[chunkEnd] != attr {
					break
				}
			}

			if lastBg != int64(bg.ToNE()) {
				lastBg = int64(bg.ToNE())
				fb.formatColor(out, false, bg)
			}
			if lastFg != int64(fg.ToNE()) {
				lastFg = int64(fg.ToNE())
				fb.formatColor(out, true, fg)
			}
			if lastAttr != attr {
				diff := lastAttr ^ attr
				if diff.Is(AttrItalic) {
					if attr.Is(AttrItalic) {
						out.WriteString("\x1b[3m")
					} else {
						out.WriteString("\x1b[23m")
					}
				}
				if diff.Is(AttrUnderlined) {
					if attr.Is(AttrUnderlined) {
						out.WriteString("\x1b[4m")
					} else {
						out.WriteString("\x1b[24m")
					}
				}
				lastAttr = attr
			}

			beg := cfg.Cursor().Offset
			end := cfg.GotoVisual(chunkEnd).Offset
			out.WriteString(backLine[beg:end])

			if chunkEnd >= len(backBg) {
				break
			}
		}
	}

	cursorChanged := back.Cursor != front.Cursor
	if out.Len() != begin || cursorChanged {
		if back.Cursor.Pos.X >= 0 && back.Cursor.Pos.Y >= 0 {
			style := 5
			if back.Cursor.Overtype {
				style = 1
			}
			fmt.Fprintf(out, "\x1b[%d;%dH\x1b[%d q\x1b[?25h",
				back.Cursor.Pos.Y+1, back.Cursor.Pos.X+1, style)
		} else {
			out.WriteString("\x1b[?25l")
		}
	}

	return out.String()[begin:]
}

func rowEqualColors(a, b []StraightRgba) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func rowEqualAttrs(a, b []Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// formatColor writes the SGR sequence selecting color as the foreground
// (fg) or background color.
//
// A zero color is the "default" sentinel and emits CSI 39/49 m (reset to
// terminal default) rather than an RGB triple, which is what makes
// transparent backgrounds/foregrounds possible once SetIndexedColors has
// zeroed the fill colors. A non-opaque color is first blended against the
// palette's own Foreground/Background entry, both to approximate
// translucency and so that "default" and "a color that happens to equal
// default" stay visually and byte-wise distinct.
func (fb *Framebuffer) formatColor(dst *arena.Arena, fg bool, color StraightRgba) {
	typ := byte('4')
	if fg {
		typ = '3'
	}

	if color.ToNE() == 0 {
		fmt.Fprintf(dst, "\x1b[%c9m", typ)
		return
	}

	if color.Alpha() != 0xff {
		idx := Background
		if fg {
			idx = Foreground
		}
		color = fb.Indexed(idx).OklabBlend(color)
	}

	r, g, b := color.Red(), color.Green(), color.Blue()

	if fb.disableTrueColor {
		fmt.Fprintf(dst, "\x1b[%c8;5;%dm", typ, xterm256Index(r, g, b))
	} else {
		fmt.Fprintf(dst, "\x1b[%c8;2;%d;%d;%dm", typ, r, g, b)
	}
}
