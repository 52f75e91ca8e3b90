// Package measure implements the width-measurement oracle that LineBuffer
// uses to translate between byte offsets, grapheme counts, and on-screen
// columns. Cluster boundaries come from github.com/rivo/uniseg; the
// display width of each cluster comes from github.com/mattn/go-runewidth,
// so that ambiguous-width handling follows the runewidth East-Asian-width
// condition rather than uniseg's built-in (and non-configurable) guess.
package measure

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cursor is a position within a measured byte string, expressed three ways
// at once: the byte offset, the grapheme (logical) index, and the on-screen
// (visual) column.
type Cursor struct {
	Offset  int
	Logical int
	Visual  int
}

// Config is a forward-only cursor over a byte string. It never walks
// backwards; GotoVisual and GotoLogical only ever advance.
type Config struct {
	text  []byte
	state int
	cur   Cursor
}

// NewConfig creates an oracle over text, with the cursor at offset 0.
func NewConfig(text []byte) *Config {
	return &Config{text: text, state: -1}
}

// Cursor returns the oracle's current position.
func (c *Config) Cursor() Cursor {
	return c.cur
}

// GotoVisual advances the cursor until its visual column would reach or
// pass target, stopping strictly before a grapheme cluster that would
// cross target. The cursor never overshoots target.
func (c *Config) GotoVisual(target int) Cursor {
	for c.cur.Visual < target {
		cluster, _, _, newState := uniseg.FirstGraphemeCluster(c.text[c.cur.Offset:], c.state)
		if len(cluster) == 0 {
			break
		}
		w := runewidth.StringWidth(string(cluster))
		if c.cur.Visual+w > target {
			break
		}
		c.advance(cluster, w, newState)
	}
	return c.cur
}

// GotoLogical advances the cursor by whole grapheme clusters until its
// logical (grapheme) index reaches target.
func (c *Config) GotoLogical(target int) Cursor {
	for c.cur.Logical < target {
		cluster, _, _, newState := uniseg.FirstGraphemeCluster(c.text[c.cur.Offset:], c.state)
		if len(cluster) == 0 {
			break
		}
		w := runewidth.StringWidth(string(cluster))
		c.advance(cluster, w, newState)
	}
	return c.cur
}

func (c *Config) advance(cluster []byte, width, newState int) {
	c.cur.Offset += len(cluster)
	c.cur.Visual += width
	c.cur.Logical++
	c.state = newState
}
