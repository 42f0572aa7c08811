package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/citra/screen"
)

// maxPixels bounds the raster a header may announce.
const maxPixels = 1 << 24

// Decode reads a P6 pixmap. Samples of files with a maximum value below 256
// are stored unchanged and the maximum becomes the buffer's depth; 16-bit
// samples are clamped to the maximum, scaled to 8 bits and the depth is 255.
//
// Pixels are collected as they are read, so a file shorter than its header
// claims fails without allocating the announced raster.
func Decode(r io.Reader) (*screen.Buffer, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	sampleBits := uint(8)
	depth := h.Maxval
	if h.Maxval > 0xFF {
		sampleBits = 16
		depth = 0xFF
	}
	maxval := uint32(h.Maxval)

	bits := bitreader.NewReader(br)
	n := h.Width * h.Height
	pix := make([]screen.Color, 0, h.Width)
	for len(pix) < n {
		var rgb [3]uint8
		for s := range rgb {
			v, err := readSample(bits, sampleBits)
			if err != nil {
				return nil, fmt.Errorf("ppm: read raster: %w", err)
			}
			if sampleBits == 16 {
				v = (min(v, maxval)*0xFF + maxval/2) / maxval
			}
			rgb[s] = uint8(v)
		}
		pix = append(pix, screen.RGB(rgb[0], rgb[1], rgb[2]))
	}
	return screen.FromPix(h.Width, h.Height, depth, pix)
}

func readSample(bits bitreader.BitReader, n uint) (uint32, error) {
	hi, err := bits.Read8(8)
	if err != nil || n == 8 {
		return uint32(hi), err
	}
	lo, err := bits.Read8(8)
	return uint32(hi)<<8 | uint32(lo), err
}

// DecodeConfig reads only the header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: screen.ColorModel,
		Width:      h.Width,
		Height:     h.Height,
	}, nil
}

func decodeImage(r io.Reader) (image.Image, error) {
	return Decode(r)
}

// ReadHeader parses the text preamble and consumes the single whitespace
// byte that separates it from the raster.
func ReadHeader(r io.Reader) (Header, error) {
	return readHeader(bufio.NewReader(r))
}

func readHeader(br *bufio.Reader) (Header, error) {
	var m [2]byte
	if _, err := io.ReadFull(br, m[:]); err != nil {
		return Header{}, fmt.Errorf("ppm: read header: %w", err)
	}
	if string(m[:]) != magic {
		return Header{}, fmt.Errorf("ppm: %w: magic %q", ErrFormat, m[:])
	}
	if c, err := br.ReadByte(); err != nil {
		return Header{}, fmt.Errorf("ppm: read header: %w", err)
	} else if !isSpace(c) {
		return Header{}, fmt.Errorf("ppm: %w: missing whitespace after magic", ErrFormat)
	}

	var fields [3]int
	for i := range fields {
		v, err := readField(br)
		if err != nil {
			return Header{}, err
		}
		fields[i] = v
	}
	h := Header{Width: fields[0], Height: fields[1], Maxval: fields[2]}

	switch {
	case h.Width < 1 || h.Height < 1:
		return Header{}, fmt.Errorf("ppm: %w: size %dx%d", ErrFormat, h.Width, h.Height)
	case h.Width*h.Height > maxPixels:
		return Header{}, fmt.Errorf("ppm: %w: size %dx%d too large", ErrFormat, h.Width, h.Height)
	case h.Maxval < 1 || h.Maxval > 0xFFFF:
		return Header{}, fmt.Errorf("ppm: %w: maxval %d", ErrFormat, h.Maxval)
	}

	sep, err := br.ReadByte()
	if err != nil {
		return Header{}, fmt.Errorf("ppm: read header: %w", err)
	}
	if !isSpace(sep) {
		return Header{}, fmt.Errorf("ppm: %w: missing separator after header", ErrFormat)
	}
	return h, nil
}

// readField skips whitespace and "#" comments, then reads a decimal
// number. The byte that ends the number is left unread.
func readField(br *bufio.Reader) (int, error) {
	var (
		v      int
		digits int
	)
	for {
		c, err := br.ReadByte()
		if err == io.EOF && digits > 0 {
			return v, nil
		}
		if err != nil {
			return 0, fmt.Errorf("ppm: read header: %w", err)
		}

		switch {
		case c >= '0' && c <= '9':
			if digits >= 9 {
				return 0, fmt.Errorf("ppm: %w: header value too long", ErrFormat)
			}
			v = v*10 + int(c-'0')
			digits++
		case digits > 0:
			return v, br.UnreadByte()
		case isSpace(c):
		case c == '#':
			if _, err := br.ReadString('\n'); err != nil {
				return 0, fmt.Errorf("ppm: read header: %w", err)
			}
		default:
			return 0, fmt.Errorf("ppm: %w: unexpected byte %q in header", ErrFormat, c)
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
