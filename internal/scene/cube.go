package scene

import (
	"softrender/internal/mathutil"
	"softrender/internal/raster"
)

var cubeVertices = []mathutil.Vec3{
	{-1, -1, -1},
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{1, 1, 1},
	{1, -1, 1},
	{-1, 1, 1},
	{-1, -1, 1},
}

// Each side is two clockwise triangles (seen from outside), so face normals
// computed as AB×AC point outward in the left-handed view space.
var cubeFaces = [][3]int{
	{0, 1, 2}, {0, 2, 3}, // front
	{3, 2, 4}, {3, 4, 5}, // right
	{5, 4, 6}, {5, 6, 7}, // back
	{7, 6, 1}, {7, 1, 0}, // left
	{1, 6, 4}, {1, 4, 2}, // top
	{5, 7, 0}, {5, 0, 3}, // bottom
}

// Cube returns a 2×2×2 cube centered on the model origin with 8 vertices
// and 12 white faces, each side mapping the whole texture.
func Cube() *Mesh {
	m := NewMesh()
	m.Vertices = append([]mathutil.Vec3(nil), cubeVertices...)
	m.Faces = make([]Face, 0, len(cubeFaces))
	for i, f := range cubeFaces {
		face := Face{A: f[0], B: f[1], C: f[2], Color: raster.White}
		if i%2 == 0 {
			face.UVs = [3]mathutil.Vec2{{0, 1}, {0, 0}, {1, 0}}
		} else {
			face.UVs = [3]mathutil.Vec2{{0, 1}, {1, 0}, {1, 1}}
		}
		m.Faces = append(m.Faces, face)
	}
	return m
}
