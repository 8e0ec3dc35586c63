// Package tscreen renders frames to a full screen terminal through tcell.
package tscreen

import (
	"sync"

	"github.com/gdamore/tcell"

	"github.com/borkshop/kickball/internal/cops/textile"
)

// Screen draws frames onto a tcell screen and watches it for quit keys.
type Screen struct {
	scr   tcell.Screen
	style tcell.Style
	widen int

	stopOnce sync.Once
	stop     chan struct{}
	events   sync.WaitGroup
}

// New opens the terminal's screen.
func New(widen int) (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Open(scr, widen)
}

// Open takes over an existing, uninitialized screen.
func Open(scr tcell.Screen, widen int) (*Screen, error) {
	if err := scr.Init(); err != nil {
		return nil, err
	}
	if widen < 1 {
		widen = 1
	}
	s := &Screen{
		scr:   scr,
		style: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		widen: widen,
		stop:  make(chan struct{}),
	}
	scr.SetStyle(s.style)
	scr.HideCursor()
	scr.Clear()
	s.events.Add(1)
	go s.pollEvents()
	return s, nil
}

func (s *Screen) pollEvents() {
	defer s.events.Done()
	for {
		switch ev := s.scr.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if isQuit(ev) {
				s.requestStop()
			}
		case *tcell.EventResize:
			s.scr.Sync()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (s *Screen) requestStop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Done is closed once the user asks to quit.
func (s *Screen) Done() <-chan struct{} { return s.stop }

// Draw renders a frame at the top left corner of the screen.
func (s *Screen) Draw(tx *textile.Textile) error {
	r := tx.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ch := tx.At(x, y)
			if ch == 0 {
				ch = ' '
			}
			sx := (x - r.Min.X) * s.widen
			for k := 0; k < s.widen; k++ {
				s.scr.SetContent(sx+k, y-r.Min.Y, ch, nil, s.style)
			}
		}
	}
	s.scr.Show()
	return nil
}

// Close restores the terminal and waits for event polling to finish.
func (s *Screen) Close() error {
	s.scr.Fini()
	s.events.Wait()
	s.requestStop()
	return nil
}
