package asciitorus

import (
	"fmt"
	"math"
)

// TorusParams describes the sampled torus. InnerRadius is the radius of
// the main ring and OuterRadius the radius of the tube swept around it.
// InnerCount samples the ring, OuterCount the tube cross-section.
type TorusParams struct {
	InnerCount  int
	OuterCount  int
	InnerRadius float64
	OuterRadius float64
}

func (p TorusParams) Validate() error {
	if p.InnerCount <= 0 || p.OuterCount <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, p.InnerCount, p.OuterCount)
	}
	for _, r := range []float64{p.InnerRadius, p.OuterRadius} {
		if r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
			return fmt.Errorf("%w: %v", ErrInvalidRadius, r)
		}
	}
	return nil
}

// GenerateMesh samples the outer surface of a torus lying in the XY
// plane. Samples are ordered ring-major: all tube points of ring step 0,
// then ring step 1, and so on.
func GenerateMesh(p TorusParams) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	mesh := NewMesh(p.InnerCount * p.OuterCount)
	center := NewVector3(p.InnerRadius, 0, 0)

	for i := 0; i < p.InnerCount; i++ {
		theta := float64(i) * 2 * math.Pi / float64(p.InnerCount)
		ring := NewRotationMatrix(ROTZ, theta)

		for j := 0; j < p.OuterCount; j++ {
			phi := float64(j) * 2 * math.Pi / float64(p.OuterCount)

			// tube circle in the plane of the radial axis and the ring axis
			local := NewVector3(p.OuterRadius*math.Cos(phi), 0, p.OuterRadius*math.Sin(phi))
			outer := center.Add(local)
			normal := outer.Sub(center)

			mesh.AddPoint(Transform(outer, ring), Transform(normal, ring))
		}
	}

	return mesh, nil
}
