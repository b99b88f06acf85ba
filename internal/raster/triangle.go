package raster

import "softrender/internal/mathutil"

// Triangle is a screen-space triangle ready for rasterization. Points hold
// screen x, screen y, the view-space z and w. For a perspective projection w
// equals the view-space z; the rasterizer reads only w, for depth and
// perspective correction.
type Triangle struct {
	Points [3]mathutil.Vec4
	UVs    [3]mathutil.Vec2
	Color  Color
}

// vertex is a triangle corner snapped to the pixel grid, carrying its
// attributes through the y-sort.
type vertex struct {
	x, y int
	w    float64
	u, v float64
}

func (v vertex) point() mathutil.Vec2 {
	return mathutil.Vec2{float64(v.x), float64(v.y)}
}

// corners converts the triangle to grid vertices sorted by ascending y.
// The compare-swap sequence is stable.
func corners(t *Triangle) [3]vertex {
	var vs [3]vertex
	for i := range vs {
		p := t.Points[i]
		vs[i] = vertex{
			x: int(p[0]), y: int(p[1]),
			w: p.W(),
			u: t.UVs[i][0], v: t.UVs[i][1],
		}
	}
	if vs[0].y > vs[1].y {
		vs[0], vs[1] = vs[1], vs[0]
	}
	if vs[1].y > vs[2].y {
		vs[1], vs[2] = vs[2], vs[1]
	}
	if vs[0].y > vs[1].y {
		vs[0], vs[1] = vs[1], vs[0]
	}
	return vs
}

// scanline walks the flat-bottom upper half (y0..y1) and the flat-top lower
// half (y1..y2) and calls plot for every x in [xStart, xEnd) of each row.
// A half whose y extent is zero is skipped.
func scanline(vs [3]vertex, plot func(x, y int)) {
	v0, v1, v2 := vs[0], vs[1], vs[2]

	var slope1, slope2 float64
	if v1.y-v0.y != 0 {
		slope1 = float64(v1.x-v0.x) / float64(v1.y-v0.y)
	}
	if v2.y-v0.y != 0 {
		slope2 = float64(v2.x-v0.x) / float64(v2.y-v0.y)
	}
	if v1.y-v0.y != 0 {
		for y := v0.y; y <= v1.y; y++ {
			xStart := int(float64(v1.x) + float64(y-v1.y)*slope1)
			xEnd := int(float64(v0.x) + float64(y-v0.y)*slope2)
			if xStart > xEnd {
				xStart, xEnd = xEnd, xStart
			}
			for x := xStart; x < xEnd; x++ {
				plot(x, y)
			}
		}
	}

	slope1 = 0
	if v2.y-v1.y != 0 {
		slope1 = float64(v2.x-v1.x) / float64(v2.y-v1.y)
	}
	if v2.y-v1.y != 0 {
		for y := v1.y; y <= v2.y; y++ {
			xStart := int(float64(v1.x) + float64(y-v1.y)*slope1)
			xEnd := int(float64(v0.x) + float64(y-v0.y)*slope2)
			if xStart > xEnd {
				xStart, xEnd = xEnd, xStart
			}
			for x := xStart; x < xEnd; x++ {
				plot(x, y)
			}
		}
	}
}

// Barycentric returns the weights of p with respect to triangle abc.
// A zero-area triangle divides by zero; the NaN weights then fail every
// depth test, so nothing is drawn.
func Barycentric(a, b, c, p mathutil.Vec2) (alpha, beta, gamma float64) {
	ac := c.Sub(a)
	ab := b.Sub(a)
	ap := p.Sub(a)
	pc := c.Sub(p)
	pb := b.Sub(p)

	area := ac.Cross(ab)
	alpha = pc.Cross(pb) / area
	beta = ac.Cross(ap) / area
	gamma = 1 - alpha - beta
	return alpha, beta, gamma
}

// pixelCenter is the sample point of pixel (x, y).
func pixelCenter(x, y int) mathutil.Vec2 {
	return mathutil.Vec2{float64(x) + 0.5, float64(y) + 0.5}
}

// FillTriangle rasterizes t in its flat color with per-pixel depth testing.
func FillTriangle(fb *FrameBuffer, t *Triangle) {
	vs := corners(t)
	a, b, c := vs[0].point(), vs[1].point(), vs[2].point()
	color := t.Color

	scanline(vs, func(x, y int) {
		alpha, beta, gamma := Barycentric(a, b, c, pixelCenter(x, y))
		invW := alpha/vs[0].w + beta/vs[1].w + gamma/vs[2].w
		depth := 1 - invW
		if depth < fb.DepthAt(x, y) {
			fb.SetPixel(x, y, color)
			fb.SetDepth(x, y, depth)
		}
	})
}

// TexturedTriangle rasterizes t with perspective-correct texture mapping and
// per-pixel depth testing. It shares the depth buffer with FillTriangle.
func TexturedTriangle(fb *FrameBuffer, t *Triangle, tex *Texture) {
	vs := corners(t)
	a, b, c := vs[0].point(), vs[1].point(), vs[2].point()

	scanline(vs, func(x, y int) {
		alpha, beta, gamma := Barycentric(a, b, c, pixelCenter(x, y))

		invW := alpha/vs[0].w + beta/vs[1].w + gamma/vs[2].w
		depth := 1 - invW
		if !(depth < fb.DepthAt(x, y)) {
			return
		}

		u := (vs[0].u/vs[0].w)*alpha + (vs[1].u/vs[1].w)*beta + (vs[2].u/vs[2].w)*gamma
		v := (vs[0].v/vs[0].w)*alpha + (vs[1].v/vs[1].w)*beta + (vs[2].v/vs[2].w)*gamma
		u /= invW
		v /= invW

		fb.SetPixel(x, y, tex.At(u, v))
		fb.SetDepth(x, y, depth)
	})
}
