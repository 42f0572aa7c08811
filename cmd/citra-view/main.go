package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/32bitkid/citra/scene"
	"github.com/32bitkid/citra/screen"
)

type viewer struct {
	buf *screen.Buffer
	img *ebiten.Image
}

func (v *viewer) Update() error { return nil }

func (v *viewer) Draw(dst *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.buf)
	}
	dst.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.buf.Width(), v.buf.Height()
}

func main() {
	sceneFile := flag.String("scene", "", "Path to a JSON scene file (default: white canvas with one line)")
	zoom := flag.Int("zoom", 1, "Window zoom factor")
	flag.Parse()

	s := scene.Default()
	if *sceneFile != "" {
		var err error
		s, err = scene.Load(*sceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
		s.Resolve(scene.Flags{})
	}

	buf, err := s.Render()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *zoom < 1 {
		*zoom = 1
	}
	ebiten.SetWindowTitle(fmt.Sprintf("citra (%dx%d)", buf.Width(), buf.Height()))
	ebiten.SetWindowSize(buf.Width()**zoom, buf.Height()**zoom)
	if err := ebiten.RunGame(&viewer{buf: buf}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
