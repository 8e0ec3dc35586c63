// Package terminal controls the line discipline and geometry of a terminal
// device.
package terminal

import (
	"errors"
	"image"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

var errNotSaved = errors.New("terminal state was never saved")

// Terminal is a handle on a terminal file descriptor that can switch it into
// raw mode and back.
type Terminal struct {
	fd    uintptr
	orig  unix.Termios
	saved bool
}

// New returns a terminal for the given file descriptor.
func New(fd uintptr) *Terminal {
	return &Terminal{fd: fd}
}

// IsTerminal returns whether the file descriptor is a terminal.
func IsTerminal(fd uintptr) bool {
	var attr unix.Termios
	return termios.Tcgetattr(fd, &attr) == nil
}

// SetRaw saves the current terminal attributes and puts the terminal into
// raw mode: no echo, no line buffering, no signal keys, and no output
// post-processing, so a newline no longer implies a carriage return.
func (t *Terminal) SetRaw() error {
	if err := termios.Tcgetattr(t.fd, &t.orig); err != nil {
		return err
	}
	t.saved = true
	attr := t.orig
	termios.Cfmakeraw(&attr)
	return termios.Tcsetattr(t.fd, termios.TCSANOW, &attr)
}

// Raw returns whether SetRaw has been called and not yet restored.
func (t *Terminal) Raw() bool { return t.saved }

// Restore returns the terminal to the attributes saved by SetRaw.
func (t *Terminal) Restore() error {
	if !t.saved {
		return errNotSaved
	}
	t.saved = false
	return termios.Tcsetattr(t.fd, termios.TCSANOW, &t.orig)
}

// Bounds returns the terminal size in cells, as a rectangle at the origin.
func (t *Terminal) Bounds() (image.Rectangle, error) {
	ws, err := unix.IoctlGetWinsize(int(t.fd), unix.TIOCGWINSZ)
	if err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(0, 0, int(ws.Col), int(ws.Row)), nil
}
