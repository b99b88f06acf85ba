// Package scene holds the data the pipeline renders each frame: a mesh with
// its world placement, a camera and a directional light.
package scene

import (
	"fmt"

	"softrender/internal/mathutil"
	"softrender/internal/raster"
)

// Face references three vertices by 0-based index. UVs are per face corner,
// not shared with neighboring faces.
type Face struct {
	A, B, C int
	UVs     [3]mathutil.Vec2
	Color   raster.Color
}

// Mesh is an indexed triangle mesh plus its world placement. The placement is
// updated by the application between frames; the pipeline only reads it.
type Mesh struct {
	Vertices []mathutil.Vec3
	Faces    []Face

	Translation mathutil.Vec3
	Rotation    mathutil.Vec3 // Euler x/y/z, radians
	Scale       mathutil.Vec3
}

// NewMesh returns an empty mesh with unit scale.
func NewMesh() *Mesh {
	return &Mesh{Scale: mathutil.Vec3{1, 1, 1}}
}

// World returns the model-to-world matrix for the current placement.
func (m *Mesh) World() mathutil.Mat4 {
	return mathutil.World(m.Translation, m.Rotation, m.Scale)
}

// Validate checks that every face index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range [3]int{f.A, f.B, f.C} {
			if idx < 0 || idx >= n {
				return fmt.Errorf("scene: face %d: vertex index %d out of range [0,%d)", i, idx, n)
			}
		}
	}
	return nil
}

// Placed returns a shallow copy of m with a different placement. Vertex and
// face slices are shared, so the copy must be treated as read-only.
func (m *Mesh) Placed(translation, rotation, scale mathutil.Vec3) *Mesh {
	c := *m
	c.Translation = translation
	c.Rotation = rotation
	c.Scale = scale
	return &c
}
