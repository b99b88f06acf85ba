package pipeline

import (
	"softrender/internal/mathutil"
	"softrender/internal/scene"
)

// viewFace is a mesh face transformed into view space.
type viewFace struct {
	Vertices [3]mathutil.Vec3
	Normal   mathutil.Vec3
}

// transformFace moves the three corners of f into view space with mv
// (view · world) and computes the face normal from the transformed corners.
func transformFace(m *scene.Mesh, f scene.Face, mv mathutil.Mat4) viewFace {
	var vf viewFace
	for i, idx := range [3]int{f.A, f.B, f.C} {
		vf.Vertices[i] = mv.MulPoint(m.Vertices[idx])
	}

	a, b, c := vf.Vertices[0], vf.Vertices[1], vf.Vertices[2]
	ab := b.Sub(a).Normalize()
	ac := c.Sub(a).Normalize()
	vf.Normal = ab.Cross(ac).Normalize()
	return vf
}

// culled reports whether the face points away from the camera, which sits at
// the view-space origin. Degenerate faces have a NaN normal and are kept.
func (vf *viewFace) culled(mode CullMode) bool {
	if mode != CullBackface {
		return false
	}
	cameraRay := mathutil.Origin.Sub(vf.Vertices[0])
	return vf.Normal.Dot(cameraRay) < 0
}
