// Package terminal draws frames full screen with tcell.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/smasonuk/asciitorus"
)

type Terminal struct {
	screen tcell.Screen
	style  tcell.Style
	done   chan struct{}
	once   sync.Once
}

func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen init failed: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen takes ownership of s and initialises it.
func NewWithScreen(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("screen start failed: %w", err)
	}
	t := &Terminal{
		screen: s,
		style:  tcell.StyleDefault,
		done:   make(chan struct{}),
	}
	go t.poll()
	return t, nil
}

// poll only watches for quit keys and resizes.
func (t *Terminal) poll() {
	defer t.quit()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return
				}
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Terminal) quit() {
	t.once.Do(func() { close(t.done) })
}

// Done is closed once the user asks to quit.
func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

// Show draws the grid centred on screen with status on the last line.
func (t *Terminal) Show(g *asciitorus.Grid, status string) error {
	t.screen.Clear()
	w, h := t.screen.Size()

	offX := max((w-g.Width)/2, 0)
	offY := max((h-1-g.Height)/2, 0)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			t.screen.SetContent(offX+col, offY+row, g.Cell(col, row), nil, t.style)
		}
	}
	if status != "" {
		drawText(t.screen, 0, h-1, t.style.Foreground(tcell.ColorDarkGray), status)
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
