package asciitorus

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

// Dot returns the sum of the elementwise products of a and b.
// It panics if the two vectors differ in dimension.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Length returns the Euclidean length of v.
func Length(v []float64) float64 {
	return floats.Norm(v, 2)
}

// CosineAngle returns the cosine of the angle between a and b.
// The result is NaN when either vector has zero length.
func CosineAngle(a, b []float64) float64 {
	return Dot(a, b) / (Length(a) * Length(b))
}

// Vec3 is a point or direction in the mesh's 3D space.
type Vec3 = mgl64.Vec3

func NewVector3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func dot3(a, b Vec3) float64 {
	return Dot(a[:], b[:])
}

func cosine3(a, b Vec3) float64 {
	return CosineAngle(a[:], b[:])
}
