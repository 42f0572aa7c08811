package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects an output encoding.
type Format uint8

const (
	PPM Format = iota
	PNG
	BMP
	TIFF
	WebP
	TGA
)

var ErrUnknownFormat = errors.New("unknown image format")

var formatNames = [...]string{
	PPM:  "ppm",
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
	WebP: "webp",
	TGA:  "tga",
}

func (f Format) String() string {
	if int(f) >= len(formatNames) {
		return "Format(UNKNOWN)"
	}
	return formatNames[f]
}

// Ext is the file extension written by Save, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat accepts a format name with or without a leading dot.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	if name == "tif" {
		return TIFF, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
