package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/32bitkid/citra/scene"
)

func main() {
	sceneFile := flag.String("scene", "", "Path to a JSON scene file (default: white canvas with one line)")
	output := flag.String("out", "", "Output file name without extension (default: test)")
	format := flag.String("format", "", "Output format: ppm, png, bmp, tiff, webp, tga (default: ppm)")
	scale := flag.Int("scale", 0, "Enlarge the output by an integer factor")
	width := flag.Int("width", 0, "Canvas width in pixels (default: 600)")
	height := flag.Int("height", 0, "Canvas height in pixels (default: 800)")

	flag.Parse()

	s := scene.Default()
	if *sceneFile != "" {
		var err error
		s, err = scene.Load(*sceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}

	s.Resolve(scene.Flags{
		Output: *output,
		Format: *format,
		Scale:  *scale,
		Width:  *width,
		Height: *height,
	})

	fmt.Printf("Canvas: %dx%d, depth %d, %d ops\n", s.Width, s.Height, s.Depth, len(s.Ops))

	start := time.Now()
	path, err := s.Save()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s in %s\n", path, time.Since(start).Round(time.Millisecond))
}
