// Package pipeline turns a scene into pixels: transform and cull, clip to
// the view frustum, project, then rasterize into a frame buffer.
//
// A Renderer is single-threaded. Render runs the whole frame to completion
// and owns the frame buffer while it does; callers that want parallelism use
// one Renderer per goroutine.
package pipeline

import (
	"context"
	"log/slog"
	"math"

	"softrender/internal/clip"
	"softrender/internal/mathutil"
	"softrender/internal/raster"
	"softrender/internal/scene"
)

// Lens describes the camera projection. FOVY is the vertical field of view in
// radians; the horizontal one follows from the viewport aspect ratio.
type Lens struct {
	FOVY  float64
	ZNear float64
	ZFar  float64
}

// DefaultLens is a 60° vertical field of view with zNear 1 and zFar 20.
func DefaultLens() Lens {
	return Lens{FOVY: math.Pi / 3, ZNear: 1, ZFar: 20}
}

// Options is the per-frame configuration.
type Options struct {
	Cull        CullMode
	Render      RenderMode
	ClearColor  raster.Color
	Grid        bool // dotted background every 10 px
	WireColor   raster.Color
	VertexColor raster.Color
}

// DefaultOptions renders textured triangles with back-face culling.
func DefaultOptions() Options {
	return Options{
		Cull:        CullBackface,
		Render:      RenderTextured,
		ClearColor:  raster.Black,
		WireColor:   raster.White,
		VertexColor: raster.Red,
	}
}

// Frame is everything Render reads for one frame. Mesh, Light and Texture
// are read-only; Camera.Direction is updated.
type Frame struct {
	Mesh    *scene.Mesh
	Camera  *scene.Camera
	Light   scene.Light
	Texture *raster.Texture // nil falls back to the face color in textured modes
	Options Options
}

// Stats counts what happened to the faces of one frame.
type Stats struct {
	Faces     int // faces in the mesh
	Culled    int // rejected by back-face culling
	Clipped   int // removed entirely by the frustum
	Triangles int // triangles rasterized after clipping
}

const (
	gridStep   = 10
	markerSize = 6
)

// Renderer owns the frame buffer and the per-frame triangle arena.
type Renderer struct {
	width, height int
	lens          Lens
	frustum       clip.Frustum
	projection    mathutil.Mat4
	fb            *raster.FrameBuffer

	clipped   []clip.Triangle
	triangles []raster.Triangle
}

// New returns a renderer for a width×height viewport.
func New(width, height int, lens Lens) *Renderer {
	r := &Renderer{lens: lens, fb: &raster.FrameBuffer{}}
	r.Resize(width, height)
	return r
}

// Resize changes the viewport and rebuilds the frustum and projection. The
// frame buffer is reallocated only when the size actually changes.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.fb.Resize(width, height)

	aspectX := float64(width) / float64(height)
	aspectY := float64(height) / float64(width)
	fovX := 2 * math.Atan(math.Tan(r.lens.FOVY/2)*aspectX)

	r.frustum = clip.NewFrustum(fovX, r.lens.FOVY, r.lens.ZNear, r.lens.ZFar)
	r.projection = mathutil.Perspective(r.lens.FOVY, aspectY, r.lens.ZNear, r.lens.ZFar)
}

// FrameBuffer returns the buffer the last frame was rendered into. Its
// contents are complete only after Render returns.
func (r *Renderer) FrameBuffer() *raster.FrameBuffer {
	return r.fb
}

// Frustum returns the current view-space clip planes.
func (r *Renderer) Frustum() clip.Frustum {
	return r.frustum
}

// Render draws one frame and returns its statistics.
func (r *Renderer) Render(f Frame) Stats {
	opts := f.Options
	r.fb.Clear(opts.ClearColor)
	if opts.Grid {
		raster.DrawGrid(r.fb, gridStep, raster.Grid)
	}

	stats := r.build(f)
	r.rasterize(opts, f.Texture)
	stats.Triangles = len(r.triangles)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("frame rendered",
			"faces", stats.Faces,
			"culled", stats.Culled,
			"clipped", stats.Clipped,
			"triangles", stats.Triangles,
			"mode", opts.Render.String(),
		)
	}
	return stats
}

// build fills the triangle arena for the frame: transform, cull, clip, shade
// and project every face.
func (r *Renderer) build(f Frame) Stats {
	m := f.Mesh
	stats := Stats{Faces: len(m.Faces)}

	if need := len(m.Faces) * clip.MaxPolygonTriangles; cap(r.triangles) < need {
		r.triangles = make([]raster.Triangle, 0, need)
	}
	r.triangles = r.triangles[:0]
	if cap(r.clipped) < clip.MaxPolygonTriangles {
		r.clipped = make([]clip.Triangle, 0, clip.MaxPolygonTriangles)
	}

	view := f.Camera.ViewMatrix()
	mv := mathutil.Mat4Mul(view, m.World())

	for _, face := range m.Faces {
		vf := transformFace(m, face, mv)
		if vf.culled(f.Options.Cull) {
			stats.Culled++
			continue
		}

		poly := clip.FromTriangle(
			vf.Vertices[0], vf.Vertices[1], vf.Vertices[2],
			face.UVs[0], face.UVs[1], face.UVs[2],
		)
		if !r.inside(&vf) {
			poly = r.frustum.Clip(poly)
		}
		r.clipped = poly.Triangles(r.clipped[:0])
		if len(r.clipped) == 0 {
			stats.Clipped++
			continue
		}

		color := face.Color.Scale(f.Light.Intensity(vf.Normal))
		for i := range r.clipped {
			r.triangles = append(r.triangles, r.project(&r.clipped[i], color))
		}
	}
	return stats
}

// inside reports whether all three corners are strictly inside the frustum,
// in which case clipping would return the triangle unchanged.
func (r *Renderer) inside(vf *viewFace) bool {
	for _, v := range vf.Vertices {
		if !r.frustum.Contains(v) {
			return false
		}
	}
	return true
}

// rasterize draws the arena in order. For each triangle the fill comes
// first, then the wireframe and vertex markers, which ignore depth.
func (r *Renderer) rasterize(opts Options, tex *raster.Texture) {
	mode := opts.Render
	for i := range r.triangles {
		t := &r.triangles[i]
		switch {
		case mode.Textured() && tex != nil:
			raster.TexturedTriangle(r.fb, t, tex)
		case mode.Textured(), mode.Filled():
			raster.FillTriangle(r.fb, t)
		}
		if mode.Wireframe() {
			raster.Wireframe(r.fb, t, opts.WireColor)
		}
		if mode.Vertices() {
			raster.VertexMarkers(r.fb, t, markerSize, opts.VertexColor)
		}
	}
}
