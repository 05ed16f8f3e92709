package asciitorus

import (
	"fmt"
	"strings"
)

// Scene owns one torus and advances it a frame at a time.
type Scene struct {
	mesh     *Mesh
	rotator  *Rotator
	renderer *Renderer
	light    Vec3

	angles [3]float64
	frames int
}

func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	mesh, err := GenerateMesh(cfg.Torus)
	if err != nil {
		return nil, fmt.Errorf("generate mesh: %w", err)
	}
	renderer, err := cfg.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	return &Scene{
		mesh:     mesh,
		rotator:  NewRotator(cfg.Steps()...),
		renderer: renderer,
		light:    cfg.Light,
	}, nil
}

// Step rotates the mesh by one increment and renders it.
func (s *Scene) Step() *Grid {
	s.rotator.Apply(s.mesh)
	for _, st := range s.rotator.Steps() {
		s.angles[st.Axis] += st.Angle
	}
	s.frames++
	return s.Frame()
}

// Frame renders the current orientation without rotating.
func (s *Scene) Frame() *Grid {
	return s.renderer.RenderFrame(s.mesh, s.light)
}

func (s *Scene) Mesh() *Mesh { return s.mesh }

func (s *Scene) Frames() int { return s.frames }

// Angle returns the accumulated rotation about axis.
func (s *Scene) Angle(axis Axis) float64 {
	if axis < ROTX || axis > ROTZ {
		return 0
	}
	return s.angles[axis]
}

// Status is a one-line summary of the animation state.
func (s *Scene) Status() string {
	parts := []string{fmt.Sprintf("frame %d", s.frames)}
	for _, a := range []Axis{ROTX, ROTY, ROTZ} {
		parts = append(parts, fmt.Sprintf("%s=%.2f", a, s.angles[a]))
	}
	return strings.Join(parts, " ")
}
