package raster

import "math"

// Texture is an opaque RGBA texture addressed with wrapping UVs.
type Texture struct {
	Width  int
	Height int
	Pixels []Color // row-major
}

// NewTexture allocates a w×h texture filled with zero pixels.
func NewTexture(w, h int) *Texture {
	return &Texture{Width: w, Height: h, Pixels: make([]Color, w*h)}
}

// At returns the nearest texel for (u, v). Coordinates outside [0, 1) wrap,
// so u = 1.5 samples the same texel as u = 0.5.
func (t *Texture) At(u, v float64) Color {
	x := wrap(int(math.Floor(u*float64(t.Width))), t.Width)
	y := wrap(int(math.Floor(v*float64(t.Height))), t.Height)
	return t.Pixels[y*t.Width+x]
}

func (t *Texture) Set(x, y int, c Color) {
	t.Pixels[y*t.Width+x] = c
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
