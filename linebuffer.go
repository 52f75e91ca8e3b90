package vtfb

import (
	"strings"

	"github.com/arcterm/vtfb/measure"
)

// LineBuffer holds the UTF-8 text contents of a Buffer: one fixed-width,
// whitespace-padded row per display line.
type LineBuffer struct {
	lines []string
	size  Size
}

// NewLineBuffer allocates height empty rows, recording width for later
// fill/replace operations.
func NewLineBuffer(size Size) LineBuffer {
	return LineBuffer{lines: make([]string, size.Height), size: size}
}

// Size returns the line buffer's dimensions.
func (lb *LineBuffer) Size() Size { return lb.size }

// FillWhitespace resets every row to exactly width ASCII spaces.
func (lb *LineBuffer) FillWhitespace() {
	width := int(lb.size.Width)
	blank := strings.Repeat(" ", width)
	for i := range lb.lines {
		lb.lines[i] = blank
	}
}

// Row returns the current contents of row y.
func (lb *LineBuffer) Row(y CoordType) string {
	return lb.lines[y]
}

// Rows returns a view over every row.
func (lb *LineBuffer) Rows() []string {
	return lb.lines
}

// ReplaceText replaces the visual column range [originX, clipRight) of row
// y with as much of text's visual prefix as fits. Coordinates are viewport
// coordinates; text is assumed free of control characters.
//
// This performs the splice in a single pass: clip the
// portion of text hanging off the left edge (stepping a grapheme at a time
// so a wide glyph never gets half-consumed), measure how much of the
// remainder fits before clipRight, then locate the matching byte span in
// the existing row and replace it in one shift-and-copy, padding with
// spaces wherever the old or new content straddles a wide glyph boundary.
func (lb *LineBuffer) ReplaceText(y, originX, clipRight CoordType, text string) {
	if y < 0 || int(y) >= len(lb.lines) {
		return
	}
	if len(text) == 0 {
		return
	}

	clipRight = clamp32(clipRight, 0, lb.size.Width)
	layoutWidth := clipRight - originX
	if layoutWidth <= 0 {
		return
	}

	cfg := measure.NewConfig([]byte(text))

	left := originX
	if left < 0 {
		cur := cfg.GotoVisual(int(-left))
		if left+CoordType(cur.Visual) < 0 && cur.Offset < len(text) {
			cur = cfg.GotoLogical(cur.Logical + 1)
		}
		left += CoordType(cur.Visual)
	}

	if left < 0 || left >= clipRight {
		return
	}

	beg := cfg.Cursor()
	begOff := beg.Offset
	end := cfg.GotoVisual(int(layoutWidth))
	right := left + CoordType(end.Visual-beg.Visual)

	line := lb.lines[y]
	cfgOld := measure.NewConfig([]byte(line))
	resOldBeg := cfgOld.GotoVisual(int(left))
	resOldEnd := cfgOld.GotoVisual(int(right))
	if CoordType(resOldEnd.Visual) < right {
		resOldEnd = cfgOld.GotoLogical(resOldEnd.Logical + 1)
	}

	src := text[begOff:end.Offset]
	overlapBeg := max32(left-CoordType(resOldBeg.Visual), 0)
	overlapEnd := max32(CoordType(resOldEnd.Visual)-right, 0)

	var b strings.Builder
	b.Grow(len(line) - (resOldEnd.Offset - resOldBeg.Offset) + len(src) + int(overlapBeg) + int(overlapEnd))
	b.WriteString(line[:resOldBeg.Offset])
	for i := CoordType(0); i < overlapBeg; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(src)
	for i := CoordType(0); i < overlapEnd; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(line[resOldEnd.Offset:])
	lb.lines[y] = b.String()
}
