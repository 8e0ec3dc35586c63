package display

import (
	"fmt"
	"image"
	"unicode/utf8"
)

// Cursor models the known or unknown states of a cursor.
type Cursor struct {
	// Position is the position of the cursor.
	// Negative values indicate that the X or Y position is not known.
	Position image.Point

	// Visibility indicates whether the cursor is visible.
	Visibility Visibility
}

// Visibility represents the visibility of a Cursor.
type Visibility int

const (
	// Hidden represents a hidden cursor.
	Hidden Visibility = iota + 1

	// Visible represents a normal cursor.
	Visible
)

func (v Visibility) String() string {
	switch v {
	case 0:
		return "Unknown"
	case Hidden:
		return "Hidden"
	case Visible:
		return "Visible"
	default:
		return fmt.Sprintf("Invalid<%d>", int(v))
	}
}

var (
	// Lost indicates that the cursor position is unknown.
	Lost = image.Point{-1, -1}

	// Start is a cursor state that makes no assumptions about the cursor's
	// position or visibility.
	Start = Cursor{Position: Lost}
)

// Hide hides the cursor.
func (c Cursor) Hide(buf []byte) ([]byte, Cursor) {
	if c.Visibility != Hidden {
		c.Visibility = Hidden
		buf = append(buf, "\033[?25l"...)
	}
	return buf, c
}

// Show reveals the cursor.
func (c Cursor) Show(buf []byte) ([]byte, Cursor) {
	if c.Visibility != Visible {
		c.Visibility = Visible
		buf = append(buf, "\033[?25h"...)
	}
	return buf, c
}

// Clear erases the whole display; implicitly invalidates the cursor position
// since its behavior is inconsistent across terminal implementations.
func (c Cursor) Clear(buf []byte) ([]byte, Cursor) {
	c.Position = Lost
	return append(buf, "\033[2J"...), c
}

// Home seeks the cursor to the origin, using display absolute coordinates.
func (c Cursor) Home(buf []byte) ([]byte, Cursor) {
	c.Position = image.ZP
	return append(buf, "\033[H"...), c
}

// WriteLine appends a single line of text, advancing the cursor by its rune
// count. The text must not contain control characters.
func (c Cursor) WriteLine(buf []byte, s string) ([]byte, Cursor) {
	buf = append(buf, s...)
	if c.Position.X >= 0 {
		c.Position.X += utf8.RuneCountInString(s)
	}
	return buf, c
}

// NewLine appends a line ending; a lone "\n" only returns to the first
// column if the terminal translates it, so raw terminals need "\r\n".
func (c Cursor) NewLine(buf []byte, eol string) ([]byte, Cursor) {
	buf = append(buf, eol...)
	if c.Position.Y >= 0 {
		c.Position.Y++
	}
	c.Position.X = 0
	if eol == "\n" {
		// Without a carriage return the column depends on the terminal.
		c.Position.X = -1
	}
	return buf, c
}
