package vtfb

// Attributes is a bitfield of VT text attributes. Being a bitfield lets
// render diff two attribute sets with a single XOR.
type Attributes uint8

const (
	// AttrNone sets no attributes.
	AttrNone Attributes = 0
	// AttrItalic is the italic attribute (SGR 3/23).
	AttrItalic Attributes = 1 << 0
	// AttrUnderlined is the underline attribute (SGR 4/24).
	AttrUnderlined Attributes = 1 << 1
	// AttrAll is a mask literal covering every defined bit.
	AttrAll Attributes = AttrItalic | AttrUnderlined
)

// Is reports whether every bit set in attr is also set in a.
func (a Attributes) Is(attr Attributes) bool {
	return a&attr == attr
}
