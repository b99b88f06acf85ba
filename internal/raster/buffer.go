package raster

import (
	"image"
	"math"
)

// ClearDepth is the depth of an empty pixel; smaller values are closer.
const ClearDepth = 1.0

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []Color   // row-major, origin top-left
	Depth  []float64 // 1 - 1/w per pixel, ClearDepth when empty
}

// NewFrameBuffer allocates a black color buffer and a cleared depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	fb.Clear(Black)
	return fb
}

// Resize reallocates the buffers when the size changes. Contents are
// undefined afterwards until the next Clear.
func (fb *FrameBuffer) Resize(w, h int) {
	if w == fb.Width && h == fb.Height && fb.Color != nil {
		return
	}
	n := w * h
	fb.Width = w
	fb.Height = h
	fb.Color = make([]Color, n)
	fb.Depth = make([]float64, n)
}

// Clear fills the color buffer with c and resets every depth to ClearDepth.
func (fb *FrameBuffer) Clear(c Color) {
	for i := range fb.Color {
		fb.Color[i] = c
	}
	for i := range fb.Depth {
		fb.Depth[i] = ClearDepth
	}
}

func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// SetPixel writes c at (x, y). Writes outside the buffer are dropped.
func (fb *FrameBuffer) SetPixel(x, y int, c Color) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Color[y*fb.Width+x] = c
}

// At returns the color at (x, y), or 0 outside the buffer.
func (fb *FrameBuffer) At(x, y int) Color {
	if !fb.InBounds(x, y) {
		return 0
	}
	return fb.Color[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y). Outside the buffer it returns
// -Inf so that no depth test can pass there.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	if !fb.InBounds(x, y) {
		return math.Inf(-1)
	}
	return fb.Depth[y*fb.Width+x]
}

func (fb *FrameBuffer) SetDepth(x, y int, d float64) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Depth[y*fb.Width+x] = d
}

// ToNRGBA copies the color buffer into a new image.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Color {
		r, g, b, a := c.Channels()
		j := i * 4
		img.Pix[j] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = a
	}
	return img
}
