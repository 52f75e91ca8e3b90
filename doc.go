// Package vtfb implements a double-buffered terminal framebuffer.
//
// A caller draws text, colors and attributes into the back buffer of a
// [Framebuffer] each frame, then calls [Framebuffer.Render] to obtain the
// minimal stream of VT escape sequences that transforms what the terminal
// currently shows into the newly drawn frame. The framebuffer never writes
// to the terminal itself; it only produces bytes for the caller to flush.
package vtfb
