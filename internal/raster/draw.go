package raster

import "math"

// DrawLine draws a line with a DDA that steps one pixel along the longer axis
// and rounds the other coordinate. It does not touch the depth buffer.
func DrawLine(fb *FrameBuffer, x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0

	side := abs(dx)
	if abs(dy) > side {
		side = abs(dy)
	}
	if side == 0 {
		fb.SetPixel(x0, y0, c)
		return
	}

	xInc := float64(dx) / float64(side)
	yInc := float64(dy) / float64(side)
	cx, cy := float64(x0), float64(y0)
	for i := 0; i <= side; i++ {
		fb.SetPixel(int(math.Round(cx)), int(math.Round(cy)), c)
		cx += xInc
		cy += yInc
	}
}

// DrawRect fills a w×h rectangle with its top-left corner at (x, y).
func DrawRect(fb *FrameBuffer, x, y, w, h int, c Color) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			fb.SetPixel(x+i, y+j, c)
		}
	}
}

// DrawGrid puts a dot every step pixels in both directions.
func DrawGrid(fb *FrameBuffer, step int, c Color) {
	for y := 0; y < fb.Height; y += step {
		for x := 0; x < fb.Width; x += step {
			fb.Color[y*fb.Width+x] = c
		}
	}
}

// Wireframe draws the three edges of t.
func Wireframe(fb *FrameBuffer, t *Triangle, c Color) {
	p := t.Points
	DrawLine(fb, int(p[0][0]), int(p[0][1]), int(p[1][0]), int(p[1][1]), c)
	DrawLine(fb, int(p[1][0]), int(p[1][1]), int(p[2][0]), int(p[2][1]), c)
	DrawLine(fb, int(p[2][0]), int(p[2][1]), int(p[0][0]), int(p[0][1]), c)
}

// VertexMarkers draws a size×size square centered on each corner of t.
func VertexMarkers(fb *FrameBuffer, t *Triangle, size int, c Color) {
	for _, p := range t.Points {
		DrawRect(fb, int(p[0])-size/2, int(p[1])-size/2, size, size, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
