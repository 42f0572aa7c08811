// Package export writes finished buffers in common image formats.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/32bitkid/citra/ppm"
	"github.com/32bitkid/citra/screen"
)

type Options struct {
	// Scale enlarges the output by an integer factor with nearest-neighbour
	// sampling. Values below 2 leave the size unchanged.
	Scale int
}

// Encode writes buf to w in format f.
func Encode(w io.Writer, buf *screen.Buffer, f Format, opts *Options) error {
	if opts != nil && opts.Scale > 1 {
		buf = Scale(buf, opts.Scale)
	}

	if f == PPM {
		return ppm.Encode(w, buf)
	}

	img := toNRGBA(buf)
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("export: %w: %v", ErrUnknownFormat, f)
}

// Save encodes buf into base + f.Ext() and returns the path written. A
// file that could not be written completely is removed.
func Save(base string, buf *screen.Buffer, f Format, opts *Options) (string, error) {
	if int(f) >= len(formatNames) {
		return "", fmt.Errorf("export: %w: %v", ErrUnknownFormat, f)
	}
	path := base + f.Ext()

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := Encode(out, buf, f, opts); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("export: close %s: %w", path, err)
	}
	return path, nil
}

// Scale returns a copy of buf enlarged by factor. Every source pixel
// becomes a factor×factor block.
func Scale(buf *screen.Buffer, factor int) *screen.Buffer {
	if factor < 2 {
		return buf
	}
	src := toNRGBA(buf)
	dst := image.NewNRGBA(image.Rect(0, 0, buf.Width()*factor, buf.Height()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return screen.FromImage(dst, buf.Depth())
}

func toNRGBA(buf *screen.Buffer) *image.NRGBA {
	img := image.NewNRGBA(buf.Bounds())
	for i, c := range buf.Pix() {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 0xFF
	}
	return img
}
