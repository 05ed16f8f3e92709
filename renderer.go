package asciitorus

// Renderer turns a mesh into a character grid. A nil Shader selects
// depth-only output through Depth.
type Renderer struct {
	Palette    Palette
	Shader     Shader
	Depth      DepthMapper
	HalfWidth  int
	HalfHeight int
}

// RenderFrame rasterizes the mesh and shades the winning point of every
// cell. Row 0 of the grid is y = -HalfHeight, column 0 is x = -HalfWidth.
func (r *Renderer) RenderFrame(mesh *Mesh, light Vec3) *Grid {
	raster := Rasterize(mesh, r.HalfWidth, r.HalfHeight)
	grid := NewGrid(raster.Width(), raster.Height())

	for row := 0; row < grid.Height; row++ {
		y := row - r.HalfHeight
		for col := 0; col < grid.Width; col++ {
			x := col - r.HalfWidth
			idx, ok := raster.At(x, y)
			if !ok {
				continue
			}
			grid.Set(col, row, r.symbol(mesh, idx, light))
		}
	}
	return grid
}

func (r *Renderer) symbol(mesh *Mesh, idx int, light Vec3) rune {
	if r.Shader == nil {
		return r.Depth.Map(mesh.Points[idx][2])
	}
	return r.Palette.MapLuminance(r.Shader.Luminance(mesh.Normals[idx], light))
}
