package asciitorus

import (
	"io"
	"strings"
)

// Grid is one frame of characters, row-major, top row first.
type Grid struct {
	Width  int
	Height int
	cells  []rune
}

func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, cells: make([]rune, width*height)}
	for i := range g.cells {
		g.cells[i] = Blank
	}
	return g
}

// Set writes r at column col, row row. Out-of-range writes are dropped.
func (g *Grid) Set(col, row int, r rune) {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return
	}
	g.cells[row*g.Width+col] = r
}

func (g *Grid) Cell(col, row int) rune {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return Blank
	}
	return g.cells[row*g.Width+col]
}

func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for y := range rows {
		rows[y] = string(g.cells[y*g.Width : (y+1)*g.Width])
	}
	return rows
}

// String renders the grid with every row newline-terminated.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

// NonBlank counts cells holding a symbol.
func (g *Grid) NonBlank() int {
	n := 0
	for _, c := range g.cells {
		if c != Blank {
			n++
		}
	}
	return n
}

func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
