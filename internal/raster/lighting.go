package raster

// Scale multiplies the red, green and blue channels by f, clamped to [0, 1].
// Alpha is kept.
func (c Color) Scale(f float64) Color {
	f = clamp01(f)
	r, g, b, a := c.Channels()
	return RGBA(
		uint8(float64(r)*f),
		uint8(float64(g)*f),
		uint8(float64(b)*f),
		a,
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
