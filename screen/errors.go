package screen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfBounds  = errors.New("point out of bounds")
	ErrUnknownColor = errors.New("unknown color")
)

// OutOfBoundsError reports the points that fell outside a buffer, along
// with the buffer's dimensions.
type OutOfBoundsError struct {
	Points        []Point
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "screen: %v: buffer %dx%d, points", ErrOutOfBounds, e.Width, e.Height)
	for _, p := range e.Points {
		fmt.Fprintf(&sb, " %v", p)
	}
	return sb.String()
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
