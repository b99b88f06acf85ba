// Package clip implements Sutherland–Hodgman clipping of view-space
// triangles against the six planes of the view frustum.
package clip

import (
	"math"

	"softrender/internal/mathutil"
)

// Plane is a point on the plane and its unit normal, pointing toward the
// inside of the frustum.
type Plane struct {
	Point  mathutil.Vec3
	Normal mathutil.Vec3
}

// Distance returns the signed distance of p; positive is inside.
func (pl Plane) Distance(p mathutil.Vec3) float64 {
	return p.Sub(pl.Point).Dot(pl.Normal)
}

// Frustum plane indices, in clipping order.
const (
	Left = iota
	Right
	Top
	Bottom
	Near
	Far
	NumPlanes
)

// Frustum holds the six clip planes of a view-space frustum with the camera
// at the origin looking along +z.
type Frustum struct {
	Planes [NumPlanes]Plane
}

// NewFrustum builds the planes from horizontal and vertical fields of view
// (radians) and the near/far distances.
func NewFrustum(fovX, fovY, zNear, zFar float64) Frustum {
	cosX, sinX := math.Cos(fovX/2), math.Sin(fovX/2)
	cosY, sinY := math.Cos(fovY/2), math.Sin(fovY/2)

	var f Frustum
	f.Planes[Left] = Plane{Normal: mathutil.Vec3{cosX, 0, sinX}}
	f.Planes[Right] = Plane{Normal: mathutil.Vec3{-cosX, 0, sinX}}
	f.Planes[Top] = Plane{Normal: mathutil.Vec3{0, -cosY, sinY}}
	f.Planes[Bottom] = Plane{Normal: mathutil.Vec3{0, cosY, sinY}}
	f.Planes[Near] = Plane{Point: mathutil.Vec3{0, 0, zNear}, Normal: mathutil.Vec3{0, 0, 1}}
	f.Planes[Far] = Plane{Point: mathutil.Vec3{0, 0, zFar}, Normal: mathutil.Vec3{0, 0, -1}}
	return f
}

// Clip runs the polygon through all six planes in order. A polygon that
// empties stays empty.
func (f *Frustum) Clip(p Polygon) Polygon {
	for i := range f.Planes {
		if p.N == 0 {
			break
		}
		p = ClipAgainstPlane(p, f.Planes[i])
	}
	return p
}

// Contains reports whether p is strictly inside every plane. NaN points are
// outside.
func (f *Frustum) Contains(p mathutil.Vec3) bool {
	for _, pl := range f.Planes {
		if !(pl.Distance(p) > 0) {
			return false
		}
	}
	return true
}
