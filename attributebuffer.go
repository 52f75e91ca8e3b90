package vtfb

// AttributeBuffer is a rectangular array of Attributes bitfields, one per
// cell.
type AttributeBuffer struct {
	data []Attributes
	size Size
}

// NewAttributeBuffer allocates a width*height buffer of AttrNone.
func NewAttributeBuffer(size Size) AttributeBuffer {
	return AttributeBuffer{
		data: make([]Attributes, int(size.Width)*int(size.Height)),
		size: size,
	}
}

// Size returns the buffer's dimensions.
func (ab *AttributeBuffer) Size() Size { return ab.size }

// Reset clears every cell back to AttrNone.
func (ab *AttributeBuffer) Reset() {
	for i := range ab.data {
		ab.data[i] = AttrNone
	}
}

// Replace applies `cell = (cell &^ mask) | attr` to every cell in the
// clipped rect. With mask == AttrAll this degenerates to an unconditional
// assignment.
func (ab *AttributeBuffer) Replace(target Rect, mask, attr Attributes) {
	target = target.Intersect(ab.size.AsRect())
	if target.IsEmpty() {
		return
	}

	stride := int(ab.size.Width)
	for y := int(target.Top); y < int(target.Bottom); y++ {
		beg := y*stride + int(target.Left)
		end := y*stride + int(target.Right)
		row := ab.data[beg:end]
		for i := range row {
			row[i] = (row[i] &^ mask) | attr
		}
	}
}

// Row returns a view over row y's attributes.
func (ab *AttributeBuffer) Row(y int) []Attributes {
	stride := int(ab.size.Width)
	return ab.data[y*stride : y*stride+stride]
}
