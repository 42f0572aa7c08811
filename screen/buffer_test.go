package screen

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"
)

func TestNewIsBlack(t *testing.T) {
	buf := New(4, 3, 255)
	if buf.Width() != 4 || buf.Height() != 3 || buf.Depth() != 255 {
		t.Fatalf("unexpected dimensions %dx%d depth %d", buf.Width(), buf.Height(), buf.Depth())
	}
	if len(buf.Pix()) != 12 {
		t.Fatalf("expected(12) != actual(%d)", len(buf.Pix()))
	}
	for i, c := range buf.Pix() {
		if c != (Color{}) {
			t.Fatalf("%d: expected black, got %v", i, c)
		}
	}
}

func TestNewPanicsOnZeroSize(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {0, 0}, {-1, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%dx%d: expected panic", size[0], size[1])
				}
			}()
			New(size[0], size[1], 255)
		}()
	}
}

func TestSetGet(t *testing.T) {
	buf := New(7, 5, 255)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := RGB(uint8(x), uint8(y), uint8(x*y))
			if err := buf.Set(x, y, c); err != nil {
				t.Fatal(err)
			}
			got, err := buf.Get(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got != c {
				t.Fatalf("(%d, %d): expected(%v) != actual(%v)", x, y, c, got)
			}
		}
	}

	// row-major layout
	if c := buf.Pix()[3+2*7]; c != RGB(3, 2, 6) {
		t.Errorf("unexpected pixel at index 17: %v", c)
	}
}

func TestOutOfBounds(t *testing.T) {
	buf := New(10, 8, 255)
	buf.Fill(White.Color())
	before := slices.Clone(buf.Pix())

	for _, p := range []Point{{10, 0}, {0, 8}, {10, 8}, {11, 3}, {3, 100}, {-1, 0}, {0, -1}} {
		err := buf.Set(p.X, p.Y, Red.Color())
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set%v: expected out of bounds, got %v", p, err)
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("Set%v: expected *OutOfBoundsError, got %T", p, err)
		}
		if oob.Width != 10 || oob.Height != 8 || len(oob.Points) != 1 || oob.Points[0] != p {
			t.Errorf("Set%v: unexpected error context %+v", p, oob)
		}

		if _, err := buf.Get(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get%v: expected out of bounds, got %v", p, err)
		}
	}

	if !slices.Equal(before, buf.Pix()) {
		t.Error("buffer changed by failed writes")
	}
}

func TestLastRowAndColumn(t *testing.T) {
	buf := New(10, 8, 255)
	if err := buf.Set(9, 7, Blue.Color()); err != nil {
		t.Fatal(err)
	}
	if c := buf.Pix()[len(buf.Pix())-1]; c != Blue.Color() {
		t.Errorf("expected last pixel blue, got %v", c)
	}
}

func TestFill(t *testing.T) {
	buf := New(6, 9, 255)
	c := RGB(0x12, 0x34, 0x56)
	buf.Fill(c)

	count := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			got, err := buf.Get(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got != c {
				t.Fatalf("(%d, %d): expected(%v) != actual(%v)", x, y, c, got)
			}
			count++
		}
	}
	if count != 6*9 {
		t.Errorf("expected(%d) != actual(%d)", 6*9, count)
	}
}

func TestImageInterface(t *testing.T) {
	buf := New(3, 2, 255)
	buf.Set(1, 1, Green.Color())

	var img image.Image = buf
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0 || g != 0xFFFF || b != 0 || a != 0xFFFF {
		t.Errorf("unexpected RGBA %x %x %x %x", r, g, b, a)
	}
	if img.At(5, 5) != (Color{}) {
		t.Error("expected black outside bounds")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 6, 5))
	src.Set(3, 4, color.RGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})

	buf := FromImage(src, 255)
	if buf.Width() != 4 || buf.Height() != 2 {
		t.Fatalf("unexpected size %dx%d", buf.Width(), buf.Height())
	}
	c, _ := buf.Get(1, 1)
	if c != RGB(0xAA, 0xBB, 0xCC) {
		t.Errorf("expected(#aabbcc) != actual(%v)", c)
	}
	c, _ = buf.Get(0, 0)
	if c != (Color{}) {
		t.Errorf("expected transparent to become black, got %v", c)
	}
}

func TestFromPix(t *testing.T) {
	pix := make([]Color, 6)
	pix[4] = RGB(1, 2, 3)
	buf, err := FromPix(3, 2, 15, pix)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Depth() != 15 {
		t.Errorf("expected(15) != actual(%d)", buf.Depth())
	}
	if c, _ := buf.Get(1, 1); c != RGB(1, 2, 3) {
		t.Errorf("expected(#010203) != actual(%v)", c)
	}

	for _, size := range [][2]int{{2, 2}, {0, 6}, {6, 0}} {
		if _, err := FromPix(size[0], size[1], 255, pix); err == nil {
			t.Errorf("%dx%d: expected error", size[0], size[1])
		}
	}
}
