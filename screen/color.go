package screen

import (
	"fmt"
	"image/color"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 24-bit RGB value. The zero value is black.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)<<8 | uint32(c.R)
	g = uint32(c.G)<<8 | uint32(c.G)
	b = uint32(c.B)<<8 | uint32(c.B)
	a = 0xFFFF
	return
}

func (c Color) String() string {
	return c.Hex()
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() clr.Color {
	return clr.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func (c Color) isGray() bool {
	return c.R == c.G && c.G == c.B
}

func fromColorful(c clr.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b}
}

// ColorModel converts any color.Color to a Color. Translucent colors are
// composited onto black.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
})

// Blend mixes c1 towards c2 by t in [0, 1]. Mixing happens in L*a*b*
// space unless either end is a gray, which blends linearly in RGB.
func Blend(c1, c2 Color, t float64) Color {
	switch {
	case t <= 0:
		return c1
	case t >= 1:
		return c2
	case c1.isGray() || c2.isGray():
		return fromColorful(c1.colorful().BlendRgb(c2.colorful(), t))
	}
	return fromColorful(c1.colorful().BlendLab(c2.colorful(), t))
}

// ParseColor accepts a preset name ("white", "Red", ...) or a hex triple
// in "#rrggbb" or "#rgb" form.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if p, ok := ParsePreset(s); ok {
		return p.Color(), nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	c, err := clr.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return fromColorful(c), nil
}
