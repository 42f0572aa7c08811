package screen

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a W×H grid of RGB colors stored in row-major order.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	width, height int
	depth         int
	pix           []Color
}

// New allocates a black buffer. Depth is the maximum channel value reported
// to encoders; it is not enforced on stored colors.
//
// New panics if width or height is less than 1.
func New(width, height, depth int) *Buffer {
	if width < 1 || height < 1 {
		panic(fmt.Errorf("screen: invalid buffer size %dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		depth:  depth,
		pix:    make([]Color, width*height),
	}
}

// FromPix adopts pix as the pixels of a width×height buffer. pix must hold
// exactly width*height colors in row-major order and is not copied.
func FromPix(width, height, depth int, pix []Color) (*Buffer, error) {
	if width < 1 || height < 1 || len(pix) != width*height {
		return nil, fmt.Errorf("screen: %d pixels do not fill a %dx%d buffer", len(pix), width, height)
	}
	return &Buffer{width: width, height: height, depth: depth, pix: pix}, nil
}

// FromImage copies any image into a new buffer. Alpha is discarded.
func FromImage(img image.Image, depth int) *Buffer {
	r := img.Bounds()
	buf := New(r.Dx(), r.Dy(), depth)
	for y, i := r.Min.Y, 0; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+1 {
			buf.pix[i] = ColorModel.Convert(img.At(x, y)).(Color)
		}
	}
	return buf
}

func (buf *Buffer) Width() int { return buf.width }
func (buf *Buffer) Height() int { return buf.height }
func (buf *Buffer) Depth() int { return buf.depth }

// Pix exposes the pixels in row-major order. Callers must treat it as
// read-only.
func (buf *Buffer) Pix() []Color { return buf.pix }

func (buf *Buffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < buf.width && y < buf.height
}

func (buf *Buffer) offset(x, y int) int {
	return x + y*buf.width
}

func (buf *Buffer) Fill(c Color) {
	for i, max := 0, len(buf.pix); i < max; i++ {
		buf.pix[i] = c
	}
}

func (buf *Buffer) Set(x, y int, c Color) error {
	if !buf.Contains(x, y) {
		return buf.outOfBounds(Point{x, y})
	}
	buf.pix[buf.offset(x, y)] = c
	return nil
}

func (buf *Buffer) Get(x, y int) (Color, error) {
	if !buf.Contains(x, y) {
		return Color{}, buf.outOfBounds(Point{x, y})
	}
	return buf.pix[buf.offset(x, y)], nil
}

func (buf *Buffer) outOfBounds(points ...Point) error {
	return &OutOfBoundsError{
		Points: points,
		Width:  buf.width,
		Height: buf.height,
	}
}

// image.Image

func (buf *Buffer) ColorModel() color.Model { return ColorModel }

func (buf *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, buf.width, buf.height)
}

func (buf *Buffer) At(x, y int) color.Color {
	if !buf.Contains(x, y) {
		return Color{}
	}
	return buf.pix[buf.offset(x, y)]
}
