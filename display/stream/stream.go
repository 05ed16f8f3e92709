// Package stream writes frames to a plain text stream such as stdout.
package stream

import (
	"bufio"
	"io"

	"github.com/smasonuk/asciitorus"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// Stream prints each frame followed by an optional status line. With
// ansi set every frame is drawn over the previous one.
type Stream struct {
	w       *bufio.Writer
	ansi    bool
	started bool
}

func New(w io.Writer, ansi bool) *Stream {
	return &Stream{w: bufio.NewWriter(w), ansi: ansi}
}

func (s *Stream) Show(g *asciitorus.Grid, status string) error {
	if s.ansi {
		if !s.started {
			s.w.WriteString(clearScreen)
			s.started = true
		}
		s.w.WriteString(cursorHome)
	}
	if _, err := g.WriteTo(s.w); err != nil {
		return err
	}
	if status != "" {
		s.w.WriteString(status)
		s.w.WriteByte('\n')
	}
	return s.w.Flush()
}

// Done never fires; a stream runs until the driver stops it.
func (s *Stream) Done() <-chan struct{} {
	return nil
}

func (s *Stream) Close() error {
	return s.w.Flush()
}
