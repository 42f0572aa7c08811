// Package text draws bitmap-font labels onto a screen.Buffer.
package text

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/32bitkid/citra/screen"
)

// DefaultFont is a small proportional font about five pixels high.
var DefaultFont tinyfont.Fonter = &tinyfont.Org01

// Display adapts a buffer to the drivers.Displayer interface so any
// tinyfont font can render into it. Display coordinates are relative to
// origin, which lets text land anywhere in buffers larger than int16 can
// address. Pixels outside the buffer are dropped.
type Display struct {
	buf    *screen.Buffer
	origin screen.Point
}

var _ drivers.Displayer = (*Display)(nil)

func NewDisplay(buf *screen.Buffer) *Display {
	return &Display{buf: buf}
}

func (d *Display) Size() (x, y int16) {
	return clamp16(d.buf.Width() - d.origin.X), clamp16(d.buf.Height() - d.origin.Y)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	_ = d.buf.Set(d.origin.X+int(x), d.origin.Y+int(y), screen.RGB(c.R, c.G, c.B))
}

func (d *Display) Display() error { return nil }

// Write draws s with DefaultFont. The origin is the left end of the
// baseline and must lie inside buf; glyphs that run past an edge are
// clipped.
func Write(buf *screen.Buffer, at screen.Point, s string, c screen.Color) error {
	return WriteFont(buf, DefaultFont, at, s, c)
}

func WriteFont(buf *screen.Buffer, font tinyfont.Fonter, at screen.Point, s string, c screen.Color) error {
	if !buf.Contains(at.X, at.Y) {
		return &screen.OutOfBoundsError{
			Points: []screen.Point{at},
			Width:  buf.Width(),
			Height: buf.Height(),
		}
	}
	rgba := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	tinyfont.WriteLine(&Display{buf: buf, origin: at}, font, 0, 0, s, rgba)
	return nil
}

// Width is the advance of s in DefaultFont, in pixels.
func Width(s string) int {
	_, outboxWidth := tinyfont.LineWidth(DefaultFont, s)
	return int(outboxWidth)
}

func clamp16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}
