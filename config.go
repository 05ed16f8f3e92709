package asciitorus

import (
	"fmt"
	"math"
	"time"
)

// Config gathers every tunable of an animation run.
type Config struct {
	HalfWidth  int
	HalfHeight int

	Torus TorusParams
	Light Vec3

	// Per-frame rotation increments in radians, applied X, then Y, then Z.
	// Zero increments are skipped.
	IncrementX float64
	IncrementY float64
	IncrementZ float64

	Shading string
	// Palette overrides the mode's built-in symbols when non-empty.
	Palette string

	DepthOffset  float64
	DepthDivisor float64

	Delay time.Duration
}

func DefaultConfig() Config {
	return Config{
		HalfWidth:  20,
		HalfHeight: 10,
		Torus: TorusParams{
			InnerCount:  90,
			OuterCount:  40,
			InnerRadius: 6,
			OuterRadius: 3,
		},
		Light:        NewVector3(0, 1, 1),
		IncrementX:   0.07,
		IncrementZ:   0.03,
		Shading:      ShadingLambert,
		DepthOffset:  9,
		DepthDivisor: 1.5,
		Delay:        40 * time.Millisecond,
	}
}

func (c Config) Validate() error {
	if c.HalfWidth <= 0 || c.HalfHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.HalfWidth, c.HalfHeight)
	}
	if err := c.Torus.Validate(); err != nil {
		return err
	}
	if l := c.Light.Len(); l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fmt.Errorf("%w: %v", ErrZeroLight, c.Light)
	}
	if _, err := ShaderByName(c.Shading); err != nil {
		return err
	}
	if c.Delay <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDelay, c.Delay)
	}
	if c.Shading == ShadingDepth {
		if _, err := NewDepthMapper(Palette{}, c.DepthOffset, c.DepthDivisor); err != nil {
			return err
		}
	}
	return nil
}

// Steps returns the non-zero rotation increments in application order.
func (c Config) Steps() []AxisAngle {
	var steps []AxisAngle
	for _, s := range []AxisAngle{{ROTX, c.IncrementX}, {ROTY, c.IncrementY}, {ROTZ, c.IncrementZ}} {
		if s.Angle != 0 {
			steps = append(steps, s)
		}
	}
	return steps
}

// NewRenderer builds the renderer described by c.
func (c Config) NewRenderer() (*Renderer, error) {
	shader, err := ShaderByName(c.Shading)
	if err != nil {
		return nil, err
	}

	symbols := c.Palette
	if symbols == "" {
		symbols = LuminancePalette
		if shader == nil {
			symbols = DepthPalette
		}
	}
	palette, err := NewPalette(symbols)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		Palette:    palette,
		Shader:     shader,
		HalfWidth:  c.HalfWidth,
		HalfHeight: c.HalfHeight,
	}
	if shader == nil {
		r.Depth, err = NewDepthMapper(palette, c.DepthOffset, c.DepthDivisor)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}
