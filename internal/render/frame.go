package render

import (
	"image"
	"strings"

	"github.com/borkshop/kickball/internal/cops/textile"
)

// CellWidth is how many terminal columns every frame cell occupies; terminal
// cells are about twice as tall as they are wide.
const CellWidth = 2

// Frame is one rendered image of the ball.
type Frame struct {
	*textile.Textile

	// Index is the frame's position in its animation.
	Index int

	// Angle is the rotation the frame was rendered at, in radians.
	Angle float64
}

// NewFrame returns a frame of the given size filled with the background.
func NewFrame(size int, background rune) *Frame {
	f := &Frame{Textile: textile.New(image.Rect(0, 0, size, size))}
	f.Fill(background)
	return f
}

// Lines returns the frame rows, every cell widened to CellWidth columns.
func (f *Frame) Lines() []string {
	return f.WideLines(CellWidth, ' ')
}

// String returns the frame rows joined by newlines.
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}
