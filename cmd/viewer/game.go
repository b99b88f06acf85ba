package main

import (
	"softrender/internal/config"
	"softrender/internal/mathutil"
	"softrender/internal/pipeline"
	"softrender/internal/raster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	tps       = 60
	moveSpeed = 5.0 // units per second
	turnSpeed = 1.0 // radians per second
)

var modeKeys = [...]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6,
}

// game renders one frame per tick and presents the frame buffer.
type game struct {
	r     *pipeline.Renderer
	frame pipeline.Frame
	spin  mathutil.Vec3 // per tick

	pixels []byte
	img    *ebiten.Image
}

func newGame(cfg *config.Config) (*game, error) {
	mesh, err := cfg.LoadMesh()
	if err != nil {
		return nil, err
	}
	tex, err := cfg.LoadTexture()
	if err != nil {
		return nil, err
	}

	return &game{
		r: pipeline.New(cfg.Width, cfg.Height, cfg.Lens()),
		frame: pipeline.Frame{
			Mesh:    mesh,
			Camera:  cfg.Camera(),
			Light:   cfg.Light(),
			Texture: tex,
			Options: cfg.Options(),
		},
		spin:   cfg.SpinRadians(),
		pixels: make([]byte, cfg.Width*cfg.Height*4),
		img:    ebiten.NewImage(cfg.Width, cfg.Height),
	}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	opts := &g.frame.Options
	for i, k := range modeKeys {
		if inpututil.IsKeyJustPressed(k) {
			opts.Render = pipeline.RenderMode(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		opts.Cull = pipeline.CullBackface
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		opts.Cull = pipeline.CullNone
	}

	const dt = 1.0 / tps
	cam := g.frame.Camera
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.MoveForward(moveSpeed, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.MoveForward(-moveSpeed, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		cam.Turn(-turnSpeed, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		cam.Turn(turnSpeed, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Tilt(-turnSpeed, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Tilt(turnSpeed, dt)
	}

	mesh := g.frame.Mesh
	mesh.Rotation = mesh.Rotation.Add(g.spin)

	g.r.Render(g.frame)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.r.FrameBuffer()
	copyPixels(g.pixels, fb)
	g.img.WritePixels(g.pixels)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.r.FrameBuffer()
	return fb.Width, fb.Height
}

// copyPixels unpacks the color buffer into RGBA bytes.
func copyPixels(dst []byte, fb *raster.FrameBuffer) {
	for i, c := range fb.Color {
		r, gg, b, a := c.Channels()
		j := i * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = a
	}
}
