package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 160, 120))
	fill(src, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	dst := Downsample(src, 80, 60)
	if got := dst.Bounds(); got != image.Rect(0, 0, 80, 60) {
		t.Fatalf("bounds = %v, want 80x60", got)
	}
	c := dst.NRGBAAt(40, 30)
	if c.R < 198 || c.R > 202 || c.A != 255 {
		t.Errorf("center = %+v, want flat color preserved", c)
	}
}

func TestDownsampleNoHalo(t *testing.T) {
	// Left half opaque white, right half fully transparent black.
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fill(src, color.NRGBA{})
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	dst := Downsample(src, 4, 4)
	for x := 0; x < 4; x++ {
		c := dst.NRGBAAt(x, 2)
		if c.A > 8 && c.R < 240 {
			t.Errorf("pixel %d = %+v: partially transparent edge darkened", x, c)
		}
	}
}

func TestDownsampleSmallerIsNoop(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if Downsample(src, 10, 20) != src {
		t.Error("Downsample reallocated an image that already fits")
	}
}
