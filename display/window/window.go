// Package window shows frames in a desktop window using ebiten's debug
// text renderer.
package window

import (
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/smasonuk/asciitorus"
)

// Size of one glyph of the ebitenutil debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
	padding     = 8
)

// FrameSource produces the next frame and its status line.
type FrameSource func() (*asciitorus.Grid, string)

// Window implements ebiten.Game. The frame source is only called from
// Update, so it runs on ebiten's game loop goroutine.
type Window struct {
	next   FrameSource
	text   string
	width  int
	height int
}

func New(cols, rows int, next FrameSource) *Window {
	return &Window{
		next:   next,
		width:  cols*glyphWidth + 2*padding,
		height: (rows+1)*glyphHeight + 2*padding,
	}
}

func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	w.text = frameText(w.next())
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ebitenutil.DebugPrintAt(screen, w.text, padding, padding)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed. delay sets the
// tick rate.
func Run(w *Window, title string, delay time.Duration) error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ticksPerSecond(delay))
	return ebiten.RunGame(w)
}

func ticksPerSecond(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.DefaultTPS
	}
	return max(int(time.Second/delay), 1)
}

func frameText(g *asciitorus.Grid, status string) string {
	if status == "" {
		return g.String()
	}
	return g.String() + strings.TrimRight(status, "\n")
}
