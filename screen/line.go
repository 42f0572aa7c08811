package screen

import "fmt"

type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{x, y} }

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func DrawPoint(buf *Buffer, p Point, c Color) error {
	return buf.Set(p.X, p.Y, c)
}

// DrawLine paints every pixel of the digital segment between from and to,
// both endpoints included. If either endpoint lies outside buf nothing is
// written.
func DrawLine(buf *Buffer, from, to Point, c Color) error {
	if !buf.Contains(from.X, from.Y) || !buf.Contains(to.X, to.Y) {
		return buf.outOfBounds(from, to)
	}
	walkLine(from, to, func(p Point, _, _ int) {
		buf.pix[buf.offset(p.X, p.Y)] = c
	})
	return nil
}

// DrawGradient is DrawLine with the color blended from c1 at from to c2
// at to.
func DrawGradient(buf *Buffer, from, to Point, c1, c2 Color) error {
	if !buf.Contains(from.X, from.Y) || !buf.Contains(to.X, to.Y) {
		return buf.outOfBounds(from, to)
	}
	walkLine(from, to, func(p Point, i, n int) {
		c := c1
		if n > 0 {
			c = Blend(c1, c2, float64(i)/float64(n))
		}
		buf.pix[buf.offset(p.X, p.Y)] = c
	})
	return nil
}

// DrawPolyline joins consecutive points with lines. Every point is checked
// before anything is drawn.
func DrawPolyline(buf *Buffer, points []Point, c Color) error {
	var bad []Point
	for _, p := range points {
		if !buf.Contains(p.X, p.Y) {
			bad = append(bad, p)
		}
	}
	if len(bad) > 0 {
		return buf.outOfBounds(bad...)
	}

	switch len(points) {
	case 0:
		return nil
	case 1:
		return DrawPoint(buf, points[0], c)
	}
	for i := 1; i < len(points); i++ {
		walkLine(points[i-1], points[i], func(p Point, _, _ int) {
			buf.pix[buf.offset(p.X, p.Y)] = c
		})
	}
	return nil
}

// Line returns the pixels DrawLine would paint, in walk order.
func Line(from, to Point) []Point {
	dx, dy := absInt(to.X-from.X), absInt(to.Y-from.Y)
	points := make([]Point, 0, maxInt(dx, dy)+1)
	walkLine(from, to, func(p Point, _, _ int) {
		points = append(points, p)
	})
	return points
}

// walkLine is an integer Bresenham walk.
//
// The major axis is the one with the larger delta, x on a tie. The walk
// always starts at the endpoint with the smaller major coordinate so that
// swapping the endpoints yields the same pixels. The error term counts
// half-pixels: once it reaches half a pixel the minor axis steps, so an
// exact tie always steps.
//
// fn receives each pixel along with its distance in steps from the
// caller's from point and the total number of steps.
func walkLine(from, to Point, fn func(p Point, i, n int)) {
	dx, dy := to.X-from.X, to.Y-from.Y
	reversed := false
	if absInt(dx) >= absInt(dy) && dx < 0 || absInt(dy) > absInt(dx) && dy < 0 {
		from, to = to, from
		dx, dy = -dx, -dy
		reversed = true
	}

	x, y := from.X, from.Y
	stepX, stepY := signInt(dx), signInt(dy)
	dx, dy = absInt(dx), absInt(dy)

	major, minor := &x, &y
	dMajor, dMinor := dx, dy
	stepMajor, stepMinor := stepX, stepY
	if dy > dx {
		major, minor = &y, &x
		dMajor, dMinor = dy, dx
		stepMajor, stepMinor = stepY, stepX
	}

	index := func(i int) int {
		if reversed {
			return dMajor - i
		}
		return i
	}

	fn(Point{x, y}, index(0), dMajor)
	fraction := 0
	for i := 1; i <= dMajor; i++ {
		*major += stepMajor
		fraction += dMinor << 1
		if fraction >= dMajor {
			*minor += stepMinor
			fraction -= dMajor << 1
		}
		fn(Point{x, y}, index(i), dMajor)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
