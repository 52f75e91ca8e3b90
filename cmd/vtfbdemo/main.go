// Command vtfbdemo drives a vtfb.Framebuffer against the real terminal: it
// puts the terminal into raw mode, runs a small animated frame loop, and
// restores the terminal on exit or signal.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/arcterm/vtfb"
	"github.com/arcterm/vtfb/arena"
	"github.com/arcterm/vtfb/config"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtfbdemo: failed to enter raw mode: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Raw mode turns off the terminal's own ctrl-c handling, so watch stdin
	// for the 0x03 byte it now delivers instead.
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 1 && buf[0] == 0x03 {
				sigCh <- os.Interrupt
				return
			}
		}
	}()

	fb := vtfb.NewFramebuffer()
	fb.SetIndexedColors(config.LoadTheme())

	out := arena.New()

	os.Stdout.WriteString("\x1b[?1049h")
	defer os.Stdout.WriteString("\x1b[?1049l")

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	frame := 0
	for {
		select {
		case <-sigCh:
			return
		case <-tick.C:
			cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				cols, rows = 80, 24
			}
			size := vtfb.Size{Width: vtfb.CoordType(cols), Height: vtfb.CoordType(rows)}

			fb.Flip(size)
			drawDemoFrame(fb, size, frame)

			out.Reset()
			os.Stdout.WriteString(fb.Render(out))
			frame++
		}
	}
}

// drawDemoFrame paints a title bar, a scrollbar that crawls down the right
// edge, and a status line, exercising most of the Framebuffer drawing API
// in one place.
func drawDemoFrame(fb *vtfb.Framebuffer, size vtfb.Size, frame int) {
	full := size.AsRect()
	fb.BlendBg(full, fb.Indexed(vtfb.Background))
	fb.BlendFg(full, fb.Indexed(vtfb.Foreground))

	title := fmt.Sprintf(" vtfb demo - frame %d ", frame)
	fb.ReplaceText(0, 0, size.Width, title)
	fb.ReplaceAttr(vtfb.Rect{Left: 0, Top: 0, Right: size.Width, Bottom: 1}, vtfb.AttrAll, vtfb.AttrUnderlined)

	track := vtfb.Rect{Left: size.Width - 1, Top: 1, Right: size.Width, Bottom: size.Height}
	fb.DrawScrollbar(full, track, vtfb.CoordType(frame%50), 200)

	status := fmt.Sprintf(" %dx%d  ctrl-c to quit ", size.Width, size.Height)
	fb.ReplaceText(size.Height-1, 0, size.Width, status)
	fb.BlendBg(vtfb.Rect{Left: 0, Top: size.Height - 1, Right: size.Width, Bottom: size.Height}, fb.Contrasted(fb.Indexed(vtfb.Background)))

	fb.SetCursor(vtfb.Point{X: 0, Y: 0}, false)
}
