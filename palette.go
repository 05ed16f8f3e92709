package asciitorus

import (
	"fmt"
	"math"
)

const (
	// LuminancePalette runs from darkest to brightest.
	LuminancePalette = ".,-~:;=!*#$@"
	// DepthPalette runs from farthest to closest.
	DepthPalette = "`.:;~*=$%&@#"

	Blank = ' '
)

// Palette is an ordered, immutable set of symbols, dimmest first.
type Palette struct {
	symbols []rune
}

func NewPalette(symbols string) (Palette, error) {
	r := []rune(symbols)
	if len(r) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	return Palette{symbols: r}, nil
}

// MustPalette is NewPalette for compile-time constants.
func MustPalette(symbols string) Palette {
	p, err := NewPalette(symbols)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Palette) Len() int {
	return len(p.symbols)
}

func (p Palette) String() string {
	return string(p.symbols)
}

// Symbol returns the symbol at index i, clamped to the palette.
func (p Palette) Symbol(i int) rune {
	if len(p.symbols) == 0 {
		return Blank
	}
	return p.symbols[clamp(i, 0, len(p.symbols)-1)]
}

// MapLuminance rescales v from [-1, 1] onto the palette. -1 gives the
// first symbol and 1 the last; values outside the range clamp.
func (p Palette) MapLuminance(v float64) rune {
	if math.IsNaN(v) {
		return p.Symbol(0)
	}
	v = math.Max(-1, math.Min(1, v))
	idx := math.Round((v + 1) / 2 * float64(p.Len()-1))
	return p.Symbol(int(idx))
}

// DepthMapper buckets raw depth into palette symbols. Bucket 0 is the
// closest and maps to the last (brightest) symbol. Divisor must be
// positive and finite.
type DepthMapper struct {
	Palette Palette
	Offset  float64
	Divisor float64
}

func NewDepthMapper(p Palette, offset, divisor float64) (DepthMapper, error) {
	if !(divisor > 0) || math.IsInf(divisor, 0) {
		return DepthMapper{}, fmt.Errorf("%w: %v", ErrInvalidDivisor, divisor)
	}
	return DepthMapper{Palette: p, Offset: offset, Divisor: divisor}, nil
}

// Bucket returns the clamped distance bucket for depth z.
func (d DepthMapper) Bucket(z float64) int {
	n := d.Palette.Len()
	b := math.Round((z + d.Offset) / d.Divisor)
	switch {
	case math.IsNaN(b), b < 0:
		return 0
	case b > float64(n-1):
		return n - 1
	}
	return int(b)
}

func (d DepthMapper) Map(z float64) rune {
	return d.Palette.Symbol(d.Palette.Len() - 1 - d.Bucket(z))
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
