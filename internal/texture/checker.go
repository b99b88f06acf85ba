package texture

import "softrender/internal/raster"

// Checker returns a size×size texture of alternating cells, cell pixels
// wide, starting with a in the top-left corner.
func Checker(size, cell int, a, b raster.Color) *raster.Texture {
	if cell <= 0 {
		cell = 1
	}
	tex := raster.NewTexture(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			tex.Set(x, y, c)
		}
	}
	return tex
}

// Default is the texture used when none is configured: 64×64 with 8 px
// cells in white and gray.
func Default() *raster.Texture {
	return Checker(64, 8, raster.White, raster.RGBA(0x80, 0x80, 0x80, 0xFF))
}
