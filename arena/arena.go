// Package arena provides a reusable output buffer for the render pass, so
// that serializing a frame to VT doesn't allocate a fresh buffer on every
// call. This mirrors the renderer's own reset-once-per-frame output buffer.
package arena

import "bytes"

// Arena is a reusable byte buffer. Call Reset between frames instead of
// allocating a new Arena.
type Arena struct {
	b bytes.Buffer
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Reset discards the Arena's contents while keeping its backing storage.
func (a *Arena) Reset() {
	a.b.Reset()
}

// WriteString appends s.
func (a *Arena) WriteString(s string) {
	a.b.WriteString(s)
}

// WriteByte appends a single byte.
func (a *Arena) WriteByte(c byte) error {
	return a.b.WriteByte(c)
}

// Write appends p, satisfying io.Writer so an Arena can be passed directly
// to fmt.Fprintf and similar.
func (a *Arena) Write(p []byte) (int, error) {
	return a.b.Write(p)
}

// Len returns the number of bytes currently buffered.
func (a *Arena) Len() int {
	return a.b.Len()
}

// String returns the buffered contents. The returned string is only valid
// until the next Reset.
func (a *Arena) String() string {
	return a.b.String()
}
