package asciitorus

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateMeshCounts(t *testing.T) {
	testCases := []struct {
		inner, outer int
	}{
		{1, 1},
		{4, 4},
		{3, 7},
		{90, 40},
	}

	for _, tc := range testCases {
		p := TorusParams{InnerCount: tc.inner, OuterCount: tc.outer, InnerRadius: 10, OuterRadius: 2}
		mesh, err := GenerateMesh(p)
		if err != nil {
			t.Fatalf("GenerateMesh(%+v) error = %v", p, err)
		}
		want := tc.inner * tc.outer
		if len(mesh.Points) != want || len(mesh.Normals) != want {
			t.Errorf("GenerateMesh(%+v): %d points, %d normals, want %d", p, len(mesh.Points), len(mesh.Normals), want)
		}
	}
}

func TestGenerateMeshGeometry(t *testing.T) {
	p := TorusParams{InnerCount: 16, OuterCount: 12, InnerRadius: 10, OuterRadius: 2}
	mesh, err := GenerateMesh(p)
	if err != nil {
		t.Fatalf("GenerateMesh() error = %v", err)
	}

	for i := range mesh.Points {
		n := mesh.Normals[i]
		if !almostEqual(n.Len(), p.OuterRadius) {
			t.Fatalf("normal %d has length %v, want %v", i, n.Len(), p.OuterRadius)
		}

		// removing the normal leaves the ring centre of the tube
		c := mesh.Points[i].Sub(n)
		if !almostEqual(c[2], 0) || !almostEqual(math.Hypot(c[0], c[1]), p.InnerRadius) {
			t.Fatalf("point %d: tube centre %v not on ring of radius %v", i, c, p.InnerRadius)
		}

		// normals lie in the tube cross-section, across the ring
		tangent := Vec3{-c[1], c[0], 0}
		if !almostEqual(dot3(n, tangent), 0) {
			t.Fatalf("normal %d not orthogonal to the ring tangent", i)
		}

		d := math.Hypot(mesh.Points[i][0], mesh.Points[i][1])
		if d < p.InnerRadius-p.OuterRadius-1e-9 || d > p.InnerRadius+p.OuterRadius+1e-9 {
			t.Fatalf("point %d at radius %v outside the torus", i, d)
		}
	}
}

func TestGenerateMeshOrder(t *testing.T) {
	mesh, err := GenerateMesh(TorusParams{InnerCount: 4, OuterCount: 4, InnerRadius: 10, OuterRadius: 2})
	if err != nil {
		t.Fatalf("GenerateMesh() error = %v", err)
	}
	want := []Vec3{
		{12, 0, 0}, {10, 0, 2}, {8, 0, 0}, {10, 0, -2},
		{0, 12, 0}, {0, 10, 2}, {0, 8, 0}, {0, 10, -2},
	}
	for i, w := range want {
		if !vecAlmostEqual(mesh.Points[i], w) {
			t.Errorf("point %d = %v, want %v", i, mesh.Points[i], w)
		}
	}
}

func TestGenerateMeshRejectsBadParams(t *testing.T) {
	testCases := []struct {
		name string
		p    TorusParams
		want error
	}{
		{"zero inner count", TorusParams{0, 4, 10, 2}, ErrInvalidResolution},
		{"negative outer count", TorusParams{4, -1, 10, 2}, ErrInvalidResolution},
		{"zero inner radius", TorusParams{4, 4, 0, 2}, ErrInvalidRadius},
		{"negative outer radius", TorusParams{4, 4, 10, -2}, ErrInvalidRadius},
		{"NaN radius", TorusParams{4, 4, math.NaN(), 2}, ErrInvalidRadius},
		{"infinite radius", TorusParams{4, 4, 10, math.Inf(1)}, ErrInvalidRadius},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mesh, err := GenerateMesh(tc.p)
			if !errors.Is(err, tc.want) {
				t.Errorf("GenerateMesh() error = %v, want %v", err, tc.want)
			}
			if mesh != nil {
				t.Error("GenerateMesh() returned a mesh on error")
			}
		})
	}
}
