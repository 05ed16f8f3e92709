package asciitorus

import "github.com/go-gl/mathgl/mgl64"

// Mesh is a point cloud with one normal per point. Points[i] and
// Normals[i] always describe the same surface sample.
type Mesh struct {
	Points  []Vec3
	Normals []Vec3
}

func NewMesh(capacity int) *Mesh {
	return &Mesh{
		Points:  make([]Vec3, 0, capacity),
		Normals: make([]Vec3, 0, capacity),
	}
}

// AddPoint appends a sample and returns its index.
func (m *Mesh) AddPoint(point, normal Vec3) int {
	m.Points = append(m.Points, point)
	m.Normals = append(m.Normals, normal)
	return len(m.Points) - 1
}

func (m *Mesh) Len() int {
	return len(m.Points)
}

func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Points:  make([]Vec3, len(m.Points)),
		Normals: make([]Vec3, len(m.Normals)),
	}
	copy(c.Points, m.Points)
	copy(c.Normals, m.Normals)
	return c
}

// Rotate applies a rotation to every point and its normal. Normals are
// directions; the matrix carries no translation so the same product
// serves both. Only paired samples are rotated when the slices differ in
// length.
func (m *Mesh) Rotate(rot mgl64.Mat3) {
	for i, count := 0, min(len(m.Points), len(m.Normals)); i < count; i++ {
		p := Transform(m.Points[i], rot)
		n := Transform(m.Normals[i], rot)
		m.Points[i] = p
		m.Normals[i] = n
	}
}
