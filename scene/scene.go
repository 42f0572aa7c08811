// Package scene describes a canvas and the drawing operations applied to
// it as a JSON document.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/32bitkid/citra/export"
	"github.com/32bitkid/citra/screen"
)

const (
	DefaultWidth      = 600
	DefaultHeight     = 800
	DefaultDepth      = 255
	DefaultBackground = "white"
	DefaultOutput     = "test"
	DefaultFormat     = "ppm"
)

var ErrUnknownOp = errors.New("unknown operation")

// Scene holds the canvas settings and the operations to draw, in order.
type Scene struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Depth      int    `json:"depth"`
	Background string `json:"background"`

	// Output is the file name without extension.
	Output string `json:"output"`
	Format string `json:"format"`
	Scale  int    `json:"scale"`

	Ops []Op `json:"ops"`
}

// Op is one drawing operation. Which fields apply depends on Op:
//
//	fill      Color
//	point     At, Color
//	line      From, To, Color, optionally ToColor for a gradient
//	polyline  Points, Color
//	text      At, Text, Color
type Op struct {
	Op      string   `json:"op"`
	At      [2]int   `json:"at"`
	From    [2]int   `json:"from"`
	To      [2]int   `json:"to"`
	Points  [][2]int `json:"points,omitempty"`
	Color   string   `json:"color"`
	ToColor string   `json:"to_color,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// Flags holds command line values that override the scene file.
type Flags struct {
	Output string
	Format string
	Scale  int
	Width  int
	Height int
}

// Default is a white 600×800 canvas crossed by one black diagonal, saved
// as test.ppm.
func Default() *Scene {
	s := &Scene{
		Ops: []Op{
			{Op: "line", From: [2]int{10, 50}, To: [2]int{50, 10}, Color: "black"},
		},
	}
	s.Resolve(Flags{})
	return s
}

// Load reads a JSON scene file. Fields not set in the file keep their
// zero values until Resolve.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Resolve applies flag overrides, then fills empty fields with defaults.
func (s *Scene) Resolve(flags Flags) {
	if flags.Output != "" {
		s.Output = flags.Output
	}
	if flags.Format != "" {
		s.Format = flags.Format
	}
	if flags.Scale > 0 {
		s.Scale = flags.Scale
	}
	if flags.Width > 0 {
		s.Width = flags.Width
	}
	if flags.Height > 0 {
		s.Height = flags.Height
	}

	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.Depth <= 0 {
		s.Depth = DefaultDepth
	}
	if s.Background == "" {
		s.Background = DefaultBackground
	}
	if s.Output == "" {
		s.Output = DefaultOutput
	}
	if s.Format == "" {
		s.Format = DefaultFormat
	}
	if s.Scale <= 0 {
		s.Scale = 1
	}
}

func (s *Scene) OutputFormat() (export.Format, error) {
	return export.ParseFormat(s.Format)
}

// Save renders the scene and writes it to Output in Format, returning the
// path written.
func (s *Scene) Save() (string, error) {
	f, err := s.OutputFormat()
	if err != nil {
		return "", fmt.Errorf("scene: %w", err)
	}
	buf, err := s.Render()
	if err != nil {
		return "", err
	}
	return export.Save(s.Output, buf, f, &export.Options{Scale: s.Scale})
}

func pt(p [2]int) screen.Point {
	return screen.Pt(p[0], p[1])
}
