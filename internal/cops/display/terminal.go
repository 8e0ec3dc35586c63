// Package display renders text frames to a terminal using ANSI escape
// sequences.
//
// A cursor that tracks the known state of the terminal cursor is included; it
// is useful for appending ANSI escape sequences that incrementally modify the
// terminal cursor state.
package display

import (
	"image"
	"io"
	"os"

	"github.com/borkshop/kickball/internal/cops/terminal"
	"github.com/borkshop/kickball/internal/cops/textile"
	"github.com/borkshop/kickball/internal/logging"
)

// Terminal renders frames to an output stream, redrawing each one from the
// top left corner.
type Terminal struct {
	out   io.Writer
	term  *terminal.Terminal
	widen int
	eol   string
	buf   []byte
	cur   Cursor
}

// NewTerminal takes control of a terminal, readying it for rendering by
// clearing it and hiding the cursor. If raw is true and out is a terminal, it
// is also put in raw mode so that key presses arrive unbuffered.
//
// Every frame cell is repeated widen times horizontally.
func NewTerminal(out *os.File, widen int, raw bool) (*Terminal, error) {
	t := newTerminal(out, widen)
	if terminal.IsTerminal(out.Fd()) {
		t.term = terminal.New(out.Fd())
	}
	return t, t.open(raw)
}

// NewWriterTerminal is like NewTerminal for any stream, without controlling
// a terminal device.
func NewWriterTerminal(out io.Writer, widen int) (*Terminal, error) {
	t := newTerminal(out, widen)
	return t, t.open(false)
}

func newTerminal(out io.Writer, widen int) *Terminal {
	if widen < 1 {
		widen = 1
	}
	return &Terminal{
		out:   out,
		widen: widen,
		eol:   "\n",
		buf:   make([]byte, 0, 65536),
		cur:   Start,
	}
}

func (t *Terminal) open(raw bool) error {
	if t.term != nil && raw {
		if err := t.term.SetRaw(); err != nil {
			return err
		}
		t.eol = "\r\n"
	}
	t.curse(
		Cursor.Home,
		Cursor.Clear,
		Cursor.Hide,
	)
	return t.flush()
}

// Raw returns whether the terminal is in raw mode.
func (t *Terminal) Raw() bool { return t.term != nil && t.term.Raw() }

// Bounds returns the size of the underlying terminal, if there is one.
func (t *Terminal) Bounds() (image.Rectangle, bool) {
	if t.term == nil {
		return image.Rectangle{}, false
	}
	r, err := t.term.Bounds()
	return r, err == nil
}

// Fits warns when the frame size would not fit the underlying terminal.
func (t *Terminal) Fits(size image.Point) bool {
	bounds, ok := t.Bounds()
	if !ok {
		return true
	}
	need := image.Pt(size.X*t.widen, size.Y+1)
	if bounds.Dx() < need.X || bounds.Dy() < need.Y {
		logging.Logger().Warn("terminal smaller than frame",
			"terminal", bounds.Size(),
			"frame", need)
		return false
	}
	return true
}

// Close the terminal, revealing the cursor and restoring the terminal state.
func (t *Terminal) Close() error {
	t.curse(Cursor.Show)
	err := t.flush()
	if t.Raw() {
		if rerr := t.term.Restore(); err == nil {
			err = rerr
		}
	}
	return err
}

func (t *Terminal) curse(words ...func(Cursor, []byte) ([]byte, Cursor)) {
	buf, cur := t.buf, t.cur
	for _, word := range words {
		buf, cur = word(cur, buf)
	}
	t.buf, t.cur = buf, cur
}

func (t *Terminal) flush() error {
	if len(t.buf) == 0 {
		return nil
	}
	attempts := 5
	n, err := t.out.Write(t.buf)
	for attempts > 1 && err == io.ErrShortWrite {
		attempts--
		t.buf = t.buf[:copy(t.buf, t.buf[n:])]
		n, err = t.out.Write(t.buf)
	}
	t.buf = t.buf[:0]
	return err
}

// Draw renders a frame: the cursor returns home, then every row is written
// followed by a line ending.
func (t *Terminal) Draw(tx *textile.Textile) error {
	buf, cur := t.cur.Home(t.buf)
	for _, line := range tx.WideLines(t.widen, ' ') {
		buf, cur = cur.WriteLine(buf, line)
		buf, cur = cur.NewLine(buf, t.eol)
	}
	t.buf, t.cur = buf, cur
	return t.flush()
}
