// Command viewer shows the renderer live in a window.
//
// Keys: 1-6 render mode, C back-face culling, X no culling, W/S move,
// A/D turn, up/down arrows tilt, Esc quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"softrender/internal/config"
	"softrender/internal/pipeline"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON or YAML config file")
	meshPath := flag.String("mesh", "", "OBJ mesh to show (default: built-in cube)")
	texPath := flag.String("texture", "", "PNG/JPEG/TGA/BMP texture (default: checker)")
	width := flag.Int("width", 0, "Viewport width in pixels (default: 800)")
	height := flag.Int("height", 0, "Viewport height in pixels (default: 600)")
	mode := flag.String("mode", "", "Initial render mode")
	grid := flag.Bool("grid", false, "Draw the background grid")
	verbose := flag.Bool("v", false, "Log per-frame statistics")

	flag.Parse()

	if *verbose {
		pipeline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

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
	cfg.Resolve(config.Flags{
		MeshPath:    *meshPath,
		TexturePath: *texPath,
		Width:       *width,
		Height:      *height,
		Mode:        *mode,
		Grid:        *grid,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := newGame(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("softrender")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
