// Package batch renders turntable sequences: one mesh, many frames, each
// frame rotated a little further and written out as WebP.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"softrender/internal/mathutil"
	"softrender/internal/pipeline"
	"softrender/internal/postprocess"
	"softrender/internal/raster"
	"softrender/internal/scene"

	"github.com/HugoSmits86/nativewebp"
	"github.com/schollz/progressbar/v3"
)

// Config holds the shared settings of a batch run.
type Config struct {
	OutputDir   string
	Width       int
	Height      int
	Lens        pipeline.Lens
	Options     pipeline.Options
	Frames      int
	Spin        mathutil.Vec3 // rotation added per frame, radians
	Supersample int
	Workers     int
	Progress    io.Writer // nil disables the progress bar
}

// Scene is what every frame renders. The mesh placement is the first
// frame's; the scene is shared read-only between workers.
type Scene struct {
	Mesh    *scene.Mesh
	Camera  scene.Camera
	Light   scene.Light
	Texture *raster.Texture
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame    int
	Image    string // path relative to OutputDir
	Rotation mathutil.Vec3
	Stats    pipeline.Stats
	Success  bool
	Error    string
}

// FrameName returns the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.webp", i)
}

// Run renders all frames using a worker pool. Each worker owns a renderer.
func Run(cfg Config, sc Scene) []Result {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Supersample < 1 {
		cfg.Supersample = 1
	}
	results := make([]Result, cfg.Frames)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for i := range results {
			results[i] = Result{Frame: i, Image: FrameName(i), Error: err.Error()}
		}
		return results
	}

	bar := newProgress(cfg)
	defer bar.Close()

	start := time.Now()
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := pipeline.New(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample, cfg.Lens)
			for i := range frameChan {
				results[i] = renderFrame(cfg, sc, r, i)
				if !results[i].Success {
					Logger().Warn("frame failed", "frame", i, "error", results[i].Error)
				}
				bar.Add(1)
			}
		}()
	}

	for i := range results {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()

	Logger().Info("batch finished",
		"frames", cfg.Frames,
		"workers", cfg.Workers,
		"elapsed", time.Since(start),
	)
	return results
}

func newProgress(cfg Config) *progressbar.ProgressBar {
	if cfg.Progress == nil {
		return progressbar.DefaultSilent(int64(cfg.Frames))
	}
	return progressbar.NewOptions(cfg.Frames,
		progressbar.OptionSetWriter(cfg.Progress),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("frames"),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(cfg.Progress) }),
	)
}

func renderFrame(cfg Config, sc Scene, r *pipeline.Renderer, i int) Result {
	base := sc.Mesh
	rotation := base.Rotation.Add(cfg.Spin.Scale(float64(i)))
	res := Result{Frame: i, Image: FrameName(i), Rotation: rotation}

	cam := sc.Camera
	res.Stats = r.Render(pipeline.Frame{
		Mesh:    base.Placed(base.Translation, rotation, base.Scale),
		Camera:  &cam,
		Light:   sc.Light,
		Texture: sc.Texture,
		Options: cfg.Options,
	})

	img := r.FrameBuffer().ToNRGBA()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, res.Image)
	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
