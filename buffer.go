package vtfb

// Buffer is one of the Framebuffer's front/back buffers: the text plane,
// the two color planes, the attribute plane, and the cursor, all sharing
// one size.
type Buffer struct {
	Text       LineBuffer
	Bg, Fg     Bitmap
	Attributes AttributeBuffer
	Cursor     Cursor
}

// NewBuffer allocates a buffer of the given size, with the text plane
// filled with whitespace and both color planes defaulted to zero.
func NewBuffer(size Size) Buffer {
	text := NewLineBuffer(size)
	text.FillWhitespace()
	return Buffer{
		Text:       text,
		Bg:         NewBitmap(size),
		Fg:         NewBitmap(size),
		Attributes: NewAttributeBuffer(size),
		Cursor:     DisabledCursor(),
	}
}

// Size returns the buffer's dimensions.
func (b *Buffer) Size() Size {
	return b.Text.Size()
}
