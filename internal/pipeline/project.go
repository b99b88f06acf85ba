package pipeline

import (
	"softrender/internal/clip"
	"softrender/internal/mathutil"
	"softrender/internal/raster"
)

// project maps a clipped view-space triangle to screen space. x and y are
// divided by w, y is flipped so it grows downward, and both are scaled and
// moved to the viewport center. z and w keep the view-space z.
func (r *Renderer) project(ct *clip.Triangle, color raster.Color) raster.Triangle {
	halfW := float64(r.width) / 2
	halfH := float64(r.height) / 2

	t := raster.Triangle{UVs: ct.UVs, Color: color}
	for i, p := range ct.Points {
		q := mathutil.ProjectPoint(r.projection, p)
		q[2] = p[2]
		q[1] = -q[1]
		q[0] = q[0]*halfW + halfW
		q[1] = q[1]*halfH + halfH
		t.Points[i] = q
	}
	return t
}
