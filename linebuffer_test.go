package vtfb

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestLineBufferFillWhitespace(t *testing.T) {
	lb := NewLineBuffer(Size{Width: 5, Height: 2})
	lb.FillWhitespace()

	for y := CoordType(0); y < 2; y++ {
		row := lb.Row(y)
		if row != "     " {
			t.Errorf("row %d = %q, want 5 spaces", y, row)
		}
	}
}

func TestReplaceTextBasic(t *testing.T) {
	lb := NewLineBuffer(Size{Width: 10, Height: 1})
	lb.FillWhitespace()

	lb.ReplaceText(0, 2, 10, "hi")

	want := "  hi      "
	if got := lb.Row(0); got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}
}

func TestReplaceTextClipsToClipRight(t *testing.T) {
	lb := NewLineBuffer(Size{Width: 10, Height: 1})
	lb.FillWhitespace()

	lb.ReplaceText(0, 0, 4, "hello world")

	got := lb.Row(0)
	if len(got) != 10 {
		t.Fatalf("row length changed: %q", got)
	}
	if got[:4] != "hell" {
		t.Errorf("Row(0)[:4] = %q, want %q", got[:4], "hell")
	}
}

func TestReplaceTextNegativeOrigin(t *testing.T) {
	lb := NewLineBuffer(Size{Width: 10, Height: 1})
	lb.FillWhitespace()

	// "hello world!" is exactly as wide as originX..clipRight (-2..10 = 12
	// columns), so the first two columns ("he") scroll off the left edge
	// and the remaining ten exactly fill the row.
	lb.ReplaceText(0, -2, 10, "hello world!")

	want := "llo world!"
	if got := lb.Row(0); got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}
}

func TestReplaceTextOutOfRangeRowNoOp(t *testing.T) {
	lb := NewLineBuffer(Size{Width: 5, Height: 1})
	lb.FillWhitespace()

	// Must not panic.
	lb.ReplaceText(5, 0, 5, "hi")
	lb.ReplaceText(-1, 0, 5, "hi")

	if got := lb.Row(0); got != "     " {
		t.Errorf("Row(0) = %q, want unchanged", got)
	}
}

func TestReplaceTextWideGlyphPadding(t *testing.T) {
	lb := NewLineBuffer(Size{Width: 6, Height: 1})
	lb.FillWhitespace()

	// Three double-width CJK glyphs fill all 6 columns.
	lb.ReplaceText(0, 0, 6, "日本語")

	row := lb.Row(0)
	if got := runewidth.StringWidth(row); got != 6 {
		t.Errorf("row visual width = %d, want 6", got)
	}

	// Overwrite the middle glyph's left half-column with "x": this should
	// pad with a space to its right so the row stays a valid, full-width
	// fixed layout.
	lb.ReplaceText(0, 2, 3, "x")
	row = lb.Row(0)
	if got := runewidth.StringWidth(row); got != 6 {
		t.Errorf("row visual width after partial overwrite = %d, want 6", got)
	}
}

func TestReplaceTextEmptyTextNoOp(t *testing.T) {
	lb := NewLineBuffer(Size{Width: 5, Height: 1})
	lb.FillWhitespace()
	lb.ReplaceText(0, 0, 5, "")
	if got := lb.Row(0); got != "     " {
		t.Errorf("Row(0) = %q, want unchanged", got)
	}
}
