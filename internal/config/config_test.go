package config

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"softrender/internal/pipeline"
	"softrender/internal/raster"
	"softrender/internal/scene"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "render.json", `{
		"mesh": "teapot.obj",
		"width": 320,
		"height": 240,
		"mode": "filled",
		"translation": [0, 1, 8]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MeshPath != "teapot.obj" || cfg.Width != 320 || cfg.Height != 240 || cfg.Mode != "filled" {
		t.Errorf("Load() = %+v", cfg)
	}
	if len(cfg.Translation) != 3 || cfg.Translation[2] != 8 {
		t.Errorf("Translation = %v, want [0 1 8]", cfg.Translation)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"render.yaml", "render.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "width: 640\ncull: none\ngrid: true\nspin: [0, 3, 0]\n")
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Width != 640 || cfg.Cull != "none" || !cfg.Grid {
				t.Errorf("Load() = %+v", cfg)
			}
			if len(cfg.Spin) != 3 || cfg.Spin[1] != 3 {
				t.Errorf("Spin = %v", cfg.Spin)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load(missing) succeeded")
	}
	path := writeFile(t, "bad.json", `{"width": "wide"}`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "config: parse") {
		t.Errorf("Load(bad) error = %v", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("SOFTRENDER_WIDTH", "1024")
	t.Setenv("SOFTRENDER_MODE", "wireframe")
	t.Setenv("SOFTRENDER_LIGHT_DIRECTION", "0,-1,0")

	cfg := Config{Width: 320, Height: 240}
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 240 || cfg.Mode != "wireframe" {
		t.Errorf("after LoadEnv: %+v", cfg)
	}
	if len(cfg.LightDirection) != 3 || cfg.LightDirection[1] != -1 {
		t.Errorf("LightDirection = %v", cfg.LightDirection)
	}
}

func TestLoadEnvBadValue(t *testing.T) {
	t.Setenv("SOFTRENDER_FRAMES", "many")
	var cfg Config
	if err := cfg.LoadEnv(); err == nil {
		t.Error("LoadEnv accepted a non-numeric frame count")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("viewport = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.FOV != 60 || cfg.ZNear != 1 || cfg.ZFar != 20 {
		t.Errorf("lens = %v/%v/%v", cfg.FOV, cfg.ZNear, cfg.ZFar)
	}
	if cfg.Cull != "backface" || cfg.Mode != "textured" {
		t.Errorf("modes = %q, %q", cfg.Cull, cfg.Mode)
	}
	if cfg.Frames != 60 || cfg.Supersample != 1 || cfg.Workers != runtime.NumCPU() {
		t.Errorf("batch = %d frames, %dx, %d workers", cfg.Frames, cfg.Supersample, cfg.Workers)
	}
	if cfg.Spin[1] != 6 {
		t.Errorf("Spin = %v, want one turn over 60 frames", cfg.Spin)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestResolveFlagsWin(t *testing.T) {
	cfg := Config{Width: 320, Mode: "filled", OutputDir: "from-file"}
	cfg.Resolve(Flags{Width: 64, Mode: "wireframe", Grid: true})

	if cfg.Width != 64 || cfg.Mode != "wireframe" || !cfg.Grid {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.OutputDir != "from-file" {
		t.Errorf("OutputDir = %q, want file value kept", cfg.OutputDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "viewport"},
		{"fov", func(c *Config) { c.FOV = 180 }, "fov"},
		{"depth range", func(c *Config) { c.ZFar = c.ZNear }, "znear"},
		{"cull", func(c *Config) { c.Cull = "front" }, "cull mode"},
		{"mode", func(c *Config) { c.Mode = "shaded" }, "render mode"},
		{"color", func(c *Config) { c.ClearColor = "blue" }, "color"},
		{"vector", func(c *Config) { c.Scale = []float64{1, 1} }, "scale"},
		{"zero light", func(c *Config) { c.LightDirection = []float64{0, 0, 0} }, "light_direction"},
		{"nan light", func(c *Config) { c.LightDirection = []float64{math.NaN(), 0, 1} }, "light_direction"},
		{"supersample", func(c *Config) { c.Supersample = 16 }, "supersample"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.Resolve(Flags{})
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tc.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want raster.Color
	}{
		{"#000000", raster.Black},
		{"ffffff", raster.White},
		{"#80FF0000", 0x80FF0000},
		{" #444444 ", raster.Grid},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseColor(%q) = %#x, %v; want %#x", tc.in, got, err, tc.want)
		}
	}
	for _, bad := range []string{"", "#12345", "#gggggg"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestPipelineSettings(t *testing.T) {
	cfg := Config{
		Mode:        "filled+wireframe",
		Cull:        "none",
		ClearColor:  "#102030",
		Rotation:    []float64{90, 0, 0},
		CameraYaw:   180,
		Translation: []float64{1, 2, 3},
	}
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	lens := cfg.Lens()
	if math.Abs(lens.FOVY-math.Pi/3) > 1e-12 {
		t.Errorf("FOVY = %v, want π/3", lens.FOVY)
	}

	opts := cfg.Options()
	if opts.Render != pipeline.RenderFillWire || opts.Cull != pipeline.CullNone || opts.ClearColor != 0xFF102030 {
		t.Errorf("Options() = %+v", opts)
	}

	m := cfg.Place(scene.Cube())
	if m.Translation[0] != 1 || math.Abs(m.Rotation[0]-math.Pi/2) > 1e-12 {
		t.Errorf("placed mesh at %v rotated %v", m.Translation, m.Rotation)
	}

	if cam := cfg.Camera(); math.Abs(cam.Yaw-math.Pi) > 1e-12 {
		t.Errorf("camera yaw = %v, want π", cam.Yaw)
	}
	if l := cfg.Light(); l.Direction[2] != 1 {
		t.Errorf("light = %v", l.Direction)
	}
}

func TestLoadAssetsDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	m, err := cfg.LoadMesh()
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Faces) != 12 || m.Translation[2] != 5 {
		t.Errorf("default mesh: %d faces at %v", len(m.Faces), m.Translation)
	}

	tex, err := cfg.LoadTexture()
	if err != nil || tex.Width != 64 {
		t.Errorf("default texture = %v, %v", tex, err)
	}
}

func TestLoadAssetsMissing(t *testing.T) {
	cfg := Config{MeshPath: filepath.Join(t.TempDir(), "none.obj")}
	if _, err := cfg.LoadMesh(); err == nil {
		t.Error("LoadMesh(missing) succeeded")
	}
	cfg = Config{TexturePath: filepath.Join(t.TempDir(), "none.png")}
	if _, err := cfg.LoadTexture(); err == nil {
		t.Error("LoadTexture(missing) succeeded")
	}
}
