package asciitorus

import "math"

// Raster holds, for every cell of a centered grid, the index of the mesh
// point that won the cell, or -1 when no point landed there.
type Raster struct {
	halfWidth  int
	halfHeight int
	winners    []int
	depth      []float64
}

func (r *Raster) Width() int  { return 2 * r.halfWidth }
func (r *Raster) Height() int { return 2 * r.halfHeight }

func (r *Raster) offset(x, y int) (int, bool) {
	if x < -r.halfWidth || x >= r.halfWidth || y < -r.halfHeight || y >= r.halfHeight {
		return 0, false
	}
	return (y+r.halfHeight)*r.Width() + (x + r.halfWidth), true
}

// At returns the winning point index for cell (x, y) in centered
// coordinates.
func (r *Raster) At(x, y int) (int, bool) {
	o, ok := r.offset(x, y)
	if !ok || r.winners[o] < 0 {
		return -1, false
	}
	return r.winners[o], true
}

// Depth returns the depth of the winner of cell (x, y).
func (r *Raster) Depth(x, y int) (float64, bool) {
	o, ok := r.offset(x, y)
	if !ok || r.winners[o] < 0 {
		return 0, false
	}
	return r.depth[o], true
}

// Count returns the number of non-empty cells.
func (r *Raster) Count() int {
	n := 0
	for _, w := range r.winners {
		if w >= 0 {
			n++
		}
	}
	return n
}

// Rasterize projects every mesh point onto the grid
// [-halfWidth, halfWidth) x [-halfHeight, halfHeight) by rounding its x
// and y, and keeps per cell the point with the smallest z. The first
// point to reach a cell holds it until a strictly smaller z arrives.
func Rasterize(mesh *Mesh, halfWidth, halfHeight int) *Raster {
	if halfWidth < 0 {
		halfWidth = 0
	}
	if halfHeight < 0 {
		halfHeight = 0
	}
	r := &Raster{
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		winners:    make([]int, 4*halfWidth*halfHeight),
		depth:      make([]float64, 4*halfWidth*halfHeight),
	}
	for i := range r.winners {
		r.winners[i] = -1
	}

	for i, p := range mesh.Points {
		x, y := math.Round(p[0]), math.Round(p[1])
		if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x) > float64(halfWidth) || math.Abs(y) > float64(halfHeight) {
			continue
		}
		o, ok := r.offset(int(x), int(y))
		if !ok {
			continue
		}
		if r.winners[o] < 0 || p[2] < r.depth[o] {
			r.winners[o] = i
			r.depth[o] = p[2]
		}
	}
	return r
}
