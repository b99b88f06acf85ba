package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"softrender/internal/batch"
	"softrender/internal/config"
	"softrender/internal/pipeline"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a JSON or YAML config file")
	meshPath := flag.String("mesh", "", "OBJ mesh to render (default: built-in cube)")
	texPath := flag.String("texture", "", "PNG/JPEG/TGA/BMP texture (default: checker)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 800)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 600)")
	cull := flag.String("cull", "", "Cull mode: none or backface")
	mode := flag.String("mode", "", "Render mode: wireframe, wireframe+vertices, filled, filled+wireframe, textured, textured+wireframe")
	grid := flag.Bool("grid", false, "Draw the background grid")
	frames := flag.Int("frames", 0, "Number of frames (default: 60)")
	supersample := flag.Int("supersample", 0, "Render at N× size and downsample (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Log per-frame statistics")

	flag.Parse()

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		pipeline.SetLogger(logger)
		batch.SetLogger(logger)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file and environment
	cfg.Resolve(config.Flags{
		MeshPath:    *meshPath,
		TexturePath: *texPath,
		OutputDir:   *outputDir,
		Width:       *width,
		Height:      *height,
		Cull:        *cull,
		Mode:        *mode,
		Grid:        *grid,
		Frames:      *frames,
		Supersample: *supersample,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mesh, err := cfg.LoadMesh()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	tex, err := cfg.LoadTexture()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
		os.Exit(1)
	}

	source := cfg.MeshPath
	if source == "" {
		source = "built-in cube"
	}
	fmt.Println("Software renderer → WebP")
	fmt.Printf("Mesh: %s (%d vertices, %d faces)\n", source, len(mesh.Vertices), len(mesh.Faces))
	fmt.Printf("Frames: %d at %dx%d (%dx supersample), Mode: %s, Cull: %s, Workers: %d\n",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Mode, cfg.Cull, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Lens:        cfg.Lens(),
		Options:     cfg.Options(),
		Frames:      cfg.Frames,
		Spin:        cfg.SpinRadians(),
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    os.Stdout,
	}
	results := batch.Run(batchCfg, batch.Scene{
		Mesh:    mesh,
		Camera:  *cfg.Camera(),
		Light:   cfg.Light(),
		Texture: tex,
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success := 0
	var failed []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, e := range failed[:min(len(failed), 20)] {
			fmt.Printf("  %s: %s\n", e.Image, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
