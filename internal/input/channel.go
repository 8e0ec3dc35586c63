// Package input reads keystrokes from a raw terminal.
package input

import (
	"bufio"
	"io"
	"sync"
)

// Runes that end the animation when typed.
const (
	CtrlC  = '\x03'
	Escape = '\x1b'
)

// IsQuit reports whether a keystroke asks the program to stop.
func IsQuit(r rune) bool {
	switch r {
	case 'q', 'Q', CtrlC, Escape:
		return true
	}
	return false
}

// Channel returns a read channel of the runes read from reader, and a closer
// to stop the channel's writer. The channel is closed once reader fails or the
// closer is called; a reader blocked in Read is left to finish on its own.
func Channel(reader io.Reader) (<-chan rune, func()) {
	ch := make(chan rune)
	done := make(chan struct{})
	go func() {
		defer close(ch)
		reader := bufio.NewReader(reader)
		for {
			r, _, err := reader.ReadRune()
			if err != nil {
				return
			}
			select {
			case ch <- r:
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return ch, func() { once.Do(func() { close(done) }) }
}

// Quit returns a channel that is closed once a quit key arrives on reader.
func Quit(reader io.Reader) (<-chan struct{}, func()) {
	keys, stop := Channel(reader)
	quit := make(chan struct{})
	go func() {
		for r := range keys {
			if IsQuit(r) {
				close(quit)
				stop()
				return
			}
		}
	}()
	return quit, stop
}
