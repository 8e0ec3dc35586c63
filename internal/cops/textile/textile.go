// Package textile weaves runes into a text image.
package textile

import (
	"image"
	"strings"
)

// Textile represents every cell in a display as a single rune. Like images
// and slices, the textile is a thin header that can share allocated memory
// with other textiles.
type Textile struct {
	Runes  []rune
	Stride int
	Rect   image.Rectangle
}

// New returns a Textile with the given rectangle.
// As with images, the rectangle need not rest at the origin.
func New(r image.Rectangle) *Textile {
	w, h := r.Dx(), r.Dy()
	return &Textile{
		Runes:  make([]rune, w*h),
		Stride: w,
		Rect:   r,
	}
}

// Bounds returns the bounding box of the textile.
func (t *Textile) Bounds() image.Rectangle {
	return t.Rect
}

// Fill overwrites every cell in the textile with the given rune.
func (t *Textile) Fill(r rune) {
	area := t.Rect
	for y := area.Min.Y; y < area.Max.Y; y++ {
		i := t.RunesOffset(area.Min.X, y)
		row := t.Runes[i : i+area.Dx()]
		for x := range row {
			row[x] = r
		}
	}
}

// At returns the rune at a given point, or 0 outside the textile.
func (t *Textile) At(x, y int) rune {
	if !(image.Point{x, y}.In(t.Rect)) {
		return 0
	}
	return t.Runes[t.RunesOffset(x, y)]
}

// Set overwrites the rune at a point; points outside the textile are ignored.
func (t *Textile) Set(x, y int, r rune) {
	if !(image.Point{x, y}.In(t.Rect)) {
		return
	}
	t.Runes[t.RunesOffset(x, y)] = r
}

// RunesOffset is a utility for seeking a slice of the underlying runes
// starting at the given position within the allocation.
func (t *Textile) RunesOffset(x, y int) int {
	return (y-t.Rect.Min.Y)*t.Stride + (x - t.Rect.Min.X)
}

// Lines returns a slice of row strings from the textile, with zero cells
// rendered as spaces.
func (t *Textile) Lines() []string {
	return t.WideLines(1, ' ')
}

// WideLines returns a slice of row strings from the textile, repeating every
// cell n times and filling in zero cells with the given rune. Terminal cells
// are roughly twice as tall as they are wide, so n = 2 gives square pixels.
func (t *Textile) WideLines(n int, fillZero rune) []string {
	lines := make([]string, 0, t.Rect.Dy())
	var line strings.Builder
	line.Grow(t.Rect.Dx() * n)
	for y := t.Rect.Min.Y; y < t.Rect.Max.Y; y++ {
		line.Reset()
		i := t.RunesOffset(t.Rect.Min.X, y)
		for x := t.Rect.Min.X; x < t.Rect.Max.X; x++ {
			r := t.Runes[i]
			if r == 0 {
				r = fillZero
			}
			for k := 0; k < n; k++ {
				line.WriteRune(r)
			}
			i++
		}
		lines = append(lines, line.String())
	}
	return lines
}
