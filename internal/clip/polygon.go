package clip

import (
	"fmt"

	"softrender/internal/mathutil"
)

// MaxPolygonVertices bounds a clipped triangle. Each plane pass adds at most
// one vertex to a convex polygon, so a triangle ends with at most 3+6 = 9.
const MaxPolygonVertices = 10

// MaxPolygonTriangles is the largest fan a clipped triangle can produce.
const MaxPolygonTriangles = MaxPolygonVertices - 2

// Polygon is a convex polygon with per-vertex texture coordinates, stored in
// fixed arrays so clipping does not allocate.
type Polygon struct {
	Vertices [MaxPolygonVertices]mathutil.Vec3
	UVs      [MaxPolygonVertices]mathutil.Vec2
	N        int
}

// Triangle is a view-space triangle produced by fanning a clipped polygon.
// Points carry w = 1.
type Triangle struct {
	Points [3]mathutil.Vec4
	UVs    [3]mathutil.Vec2
}

// FromTriangle starts a polygon from three view-space vertices and their UVs.
func FromTriangle(v0, v1, v2 mathutil.Vec3, t0, t1, t2 mathutil.Vec2) Polygon {
	return Polygon{
		Vertices: [MaxPolygonVertices]mathutil.Vec3{v0, v1, v2},
		UVs:      [MaxPolygonVertices]mathutil.Vec2{t0, t1, t2},
		N:        3,
	}
}

func (p *Polygon) push(v mathutil.Vec3, uv mathutil.Vec2) {
	if p.N == MaxPolygonVertices {
		panic(fmt.Sprintf("clip: polygon exceeds %d vertices", MaxPolygonVertices))
	}
	p.Vertices[p.N] = v
	p.UVs[p.N] = uv
	p.N++
}

// ClipAgainstPlane returns the part of p on the inside of pl.
//
// Edges are walked as (previous, current) pairs, wrapping from the last
// vertex to the first. An edge whose endpoints have strictly opposite signs
// emits the interpolated crossing; a current vertex with strictly positive
// distance is emitted as is. A vertex exactly on the plane counts as outside.
func ClipAgainstPlane(p Polygon, pl Plane) Polygon {
	var out Polygon
	if p.N == 0 {
		return out
	}

	prev := p.N - 1
	dPrev := pl.Distance(p.Vertices[prev])
	for cur := 0; cur < p.N; cur++ {
		dCurr := pl.Distance(p.Vertices[cur])

		if dPrev*dCurr < 0 {
			t := dPrev / (dPrev - dCurr)
			out.push(
				p.Vertices[prev].Lerp(p.Vertices[cur], t),
				p.UVs[prev].Lerp(p.UVs[cur], t),
			)
		}
		if dCurr > 0 {
			out.push(p.Vertices[cur], p.UVs[cur])
		}

		prev, dPrev = cur, dCurr
	}
	return out
}

// Triangles fans the polygon into N-2 triangles (0, i+1, i+2) and appends
// them to dst. Fewer than three vertices yield nothing.
func (p *Polygon) Triangles(dst []Triangle) []Triangle {
	for i := 0; i < p.N-2; i++ {
		a, b, c := 0, i+1, i+2
		dst = append(dst, Triangle{
			Points: [3]mathutil.Vec4{p.Vertices[a].Vec4(), p.Vertices[b].Vec4(), p.Vertices[c].Vec4()},
			UVs:    [3]mathutil.Vec2{p.UVs[a], p.UVs[b], p.UVs[c]},
		})
	}
	return dst
}
