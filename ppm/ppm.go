// Package ppm reads and writes binary portable pixmaps ("P6").
//
// A P6 file is a short text header naming the magic number, the width, the
// height and the maximum sample value, separated by whitespace and ended by
// a single whitespace byte, followed by the raster: one red, green and blue
// sample per pixel in row-major order.
package ppm

import (
	"errors"
	"image"

	"github.com/32bitkid/citra/screen"
)

// Ext is appended to the name given to Save.
const Ext = ".ppm"

const magic = "P6"

var (
	ErrFormat = errors.New("not a P6 pixmap")
	ErrDepth  = errors.New("unsupported depth")
)

// Image is the read-only view of a finished buffer that the encoder
// consumes. *screen.Buffer satisfies it.
type Image interface {
	Width() int
	Height() int
	Depth() int
	Pix() []screen.Color
}

// Header is the text preamble of a P6 file.
type Header struct {
	Width, Height int
	Maxval        int
}

func init() {
	image.RegisterFormat("ppm", magic, decodeImage, DecodeConfig)
}
