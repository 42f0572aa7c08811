package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

func checkDepth(depth int) error {
	if depth < 1 || depth > 255 {
		return fmt.Errorf("%w: %d", ErrDepth, depth)
	}
	return nil
}

func writeHeader(w io.Writer, h Header) error {
	_, err := fmt.Fprintf(w, "%s %d %d %d\n", magic, h.Width, h.Height, h.Maxval)
	return err
}

// Encode writes img as a P6 pixmap with one byte per sample. The depth of
// img becomes the header's maximum value and must lie in 1..255.
func Encode(w io.Writer, img Image) error {
	if err := checkDepth(img.Depth()); err != nil {
		return fmt.Errorf("ppm: %w", err)
	}

	bw := bufio.NewWriter(w)
	header := Header{
		Width:  img.Width(),
		Height: img.Height(),
		Maxval: img.Depth(),
	}
	if err := writeHeader(bw, header); err != nil {
		return err
	}

	var raw [3]uint8
	for _, c := range img.Pix() {
		raw[0], raw[1], raw[2] = c.R, c.G, c.B
		if _, err := bw.Write(raw[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save encodes img into name + ".ppm".
func Save(name string, img Image) error {
	filename := name + Ext
	if err := checkDepth(img.Depth()); err != nil {
		return fmt.Errorf("ppm: save %s: %w", filename, err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", filename, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("ppm: write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ppm: close %s: %w", filename, err)
	}
	return nil
}
