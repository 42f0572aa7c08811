package scene

import (
	"fmt"

	"github.com/32bitkid/citra/screen"
	"github.com/32bitkid/citra/text"
)

// Render draws the scene into a new buffer. The first failing operation
// stops rendering.
func (s *Scene) Render() (*screen.Buffer, error) {
	if s.Width < 1 || s.Height < 1 {
		return nil, fmt.Errorf("scene: invalid size %dx%d", s.Width, s.Height)
	}
	bg, err := screen.ParseColor(s.Background)
	if err != nil {
		return nil, fmt.Errorf("scene: background: %w", err)
	}

	buf := screen.New(s.Width, s.Height, s.Depth)
	buf.Fill(bg)
	for i, op := range s.Ops {
		if err := op.apply(buf); err != nil {
			return nil, fmt.Errorf("scene: op %d (%s): %w", i, op.Op, err)
		}
	}
	return buf, nil
}

var ops = map[string]bool{
	"fill":     true,
	"point":    true,
	"line":     true,
	"polyline": true,
	"text":     true,
}

func (op Op) apply(buf *screen.Buffer) error {
	if !ops[op.Op] {
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}
	c, err := screen.ParseColor(op.Color)
	if err != nil {
		return err
	}

	switch op.Op {
	case "fill":
		buf.Fill(c)
		return nil
	case "point":
		return screen.DrawPoint(buf, pt(op.At), c)
	case "line":
		if op.ToColor == "" {
			return screen.DrawLine(buf, pt(op.From), pt(op.To), c)
		}
		c2, err := screen.ParseColor(op.ToColor)
		if err != nil {
			return err
		}
		return screen.DrawGradient(buf, pt(op.From), pt(op.To), c, c2)
	case "polyline":
		points := make([]screen.Point, len(op.Points))
		for i, p := range op.Points {
			points[i] = pt(p)
		}
		return screen.DrawPolyline(buf, points, c)
	case "text":
		return text.Write(buf, pt(op.At), op.Text, c)
	}
	return nil
}
