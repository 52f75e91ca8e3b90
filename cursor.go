package vtfb

// Cursor holds the framebuffer's cursor position and insert/overtype mode.
//
// Three distinct states are encoded in Pos:
//   - Invalid: Pos == PointMin, used to force a cursor update after resize.
//   - Disabled: Pos == (-1,-1), meaning "hide the cursor".
//   - Visible: both coordinates are >= 0.
type Cursor struct {
	Pos      Point
	Overtype bool
}

// InvalidCursor returns a cursor in the Invalid state.
func InvalidCursor() Cursor {
	return Cursor{Pos: PointMin}
}

// DisabledCursor returns a cursor in the Disabled (hidden) state.
func DisabledCursor() Cursor {
	return Cursor{Pos: Point{X: -1, Y: -1}}
}
