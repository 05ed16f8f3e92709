package asciitorus

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects one of the three fixed rotation axes.
type Axis int

const (
	ROTX Axis = 0
	ROTY Axis = 1
	ROTZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case ROTX:
		return "x"
	case ROTY:
		return "y"
	case ROTZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// NewRotationMatrix returns the right-handed rotation by theta radians
// about the given axis. An unknown axis yields the identity.
func NewRotationMatrix(axis Axis, theta float64) mgl64.Mat3 {
	switch axis {
	case ROTX:
		return mgl64.Rotate3DX(theta)
	case ROTY:
		return mgl64.Rotate3DY(theta)
	case ROTZ:
		return mgl64.Rotate3DZ(theta)
	}
	return mgl64.Ident3()
}

// Transform returns m·p. The result is built in a fresh value so p may
// be overwritten with it afterwards.
func Transform(p Vec3, m mgl64.Mat3) Vec3 {
	return m.Mul3x1(p)
}

// AxisAngle is a single rotation step about one axis.
type AxisAngle struct {
	Axis  Axis
	Angle float64
}

// Rotator holds one cached matrix per step. Steps are applied one after
// another in order; they are never folded into a single matrix.
type Rotator struct {
	steps    []AxisAngle
	matrices []mgl64.Mat3
}

func NewRotator(steps ...AxisAngle) *Rotator {
	r := &Rotator{
		steps:    make([]AxisAngle, len(steps)),
		matrices: make([]mgl64.Mat3, len(steps)),
	}
	copy(r.steps, steps)
	for i, s := range steps {
		r.matrices[i] = NewRotationMatrix(s.Axis, s.Angle)
	}
	return r
}

func (r *Rotator) Steps() []AxisAngle {
	out := make([]AxisAngle, len(r.steps))
	copy(out, r.steps)
	return out
}

// Apply rotates every point and normal of the mesh in place.
func (r *Rotator) Apply(mesh *Mesh) {
	for _, m := range r.matrices {
		mesh.Rotate(m)
	}
}

// RotateMesh rotates the mesh in place by freshly built matrices, one
// per step, in the order given.
func RotateMesh(mesh *Mesh, steps ...AxisAngle) {
	for _, s := range steps {
		mesh.Rotate(NewRotationMatrix(s.Axis, s.Angle))
	}
}
