package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"softrender/internal/mathutil"
	"softrender/internal/pipeline"
	"softrender/internal/raster"
	"softrender/internal/scene"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. SOFTRENDER_WIDTH.
const EnvPrefix = "softrender"

// Config holds the scene, camera and output settings of a render run.
// Angles are in degrees; vectors are [x, y, z]. Environment names are the
// field names in upper snake case, e.g. SOFTRENDER_CAMERA_POSITION.
type Config struct {
	// Inputs and outputs
	MeshPath    string `json:"mesh" yaml:"mesh" split_words:"true"`
	TexturePath string `json:"texture" yaml:"texture" split_words:"true"`
	OutputDir   string `json:"output_dir" yaml:"output_dir" split_words:"true"`

	// Viewport and lens
	Width  int     `json:"width" yaml:"width"`
	Height int     `json:"height" yaml:"height"`
	FOV    float64 `json:"fov" yaml:"fov"`
	ZNear  float64 `json:"znear" yaml:"znear" split_words:"true"`
	ZFar   float64 `json:"zfar" yaml:"zfar" split_words:"true"`

	// Drawing
	Cull       string `json:"cull" yaml:"cull"`
	Mode       string `json:"mode" yaml:"mode"`
	ClearColor string `json:"clear_color" yaml:"clear_color" split_words:"true"`
	Grid       bool   `json:"grid" yaml:"grid"`

	// Scene
	Translation    []float64 `json:"translation" yaml:"translation"`
	Rotation       []float64 `json:"rotation" yaml:"rotation"`
	Scale          []float64 `json:"scale" yaml:"scale"`
	Spin           []float64 `json:"spin" yaml:"spin"`
	CameraPosition []float64 `json:"camera_position" yaml:"camera_position" split_words:"true"`
	CameraYaw      float64   `json:"camera_yaw" yaml:"camera_yaw" split_words:"true"`
	CameraPitch    float64   `json:"camera_pitch" yaml:"camera_pitch" split_words:"true"`
	LightDirection []float64 `json:"light_direction" yaml:"light_direction" split_words:"true"`

	// Batch settings
	Frames      int `json:"frames" yaml:"frames"`
	Supersample int `json:"supersample" yaml:"supersample"`
	Workers     int `json:"workers" yaml:"workers"`
}

// Load reads a config file and returns Config. Files ending in .yaml or
// .yml are YAML, anything else is JSON. Fields not set in the file keep
// their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv overlays SOFTRENDER_* environment variables onto c. Unset
// variables leave fields untouched.
func (c *Config) LoadEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}

// Flags holds CLI flag values that override file and environment settings.
type Flags struct {
	MeshPath    string
	TexturePath string
	OutputDir   string
	Width       int
	Height      int
	Cull        string
	Mode        string
	Grid        bool
	Frames      int
	Supersample int
	Workers     int
}

// Resolve applies CLI flags, which take priority when non-zero/non-empty,
// then fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.MeshPath != "" {
		c.MeshPath = flags.MeshPath
	}
	if flags.TexturePath != "" {
		c.TexturePath = flags.TexturePath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Cull != "" {
		c.Cull = flags.Cull
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Grid {
		c.Grid = true
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.FOV <= 0 {
		c.FOV = 60
	}
	if c.ZNear <= 0 {
		c.ZNear = 1
	}
	if c.ZFar <= 0 {
		c.ZFar = 20
	}
	if c.Cull == "" {
		c.Cull = pipeline.CullBackface.String()
	}
	if c.Mode == "" {
		c.Mode = pipeline.RenderTextured.String()
	}
	if c.ClearColor == "" {
		c.ClearColor = "#000000"
	}
	if c.Translation == nil {
		c.Translation = []float64{0, 0, 5}
	}
	if c.Rotation == nil {
		c.Rotation = []float64{0, 0, 0}
	}
	if c.Scale == nil {
		c.Scale = []float64{1, 1, 1}
	}
	if c.CameraPosition == nil {
		c.CameraPosition = []float64{0, 0, 0}
	}
	if c.LightDirection == nil {
		c.LightDirection = []float64{0, 0, 1}
	}
	if c.Frames <= 0 {
		c.Frames = 60
	}
	if c.Spin == nil {
		// One full turn about y over the run.
		c.Spin = []float64{0, 360 / float64(c.Frames), 0}
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports the first setting that cannot be rendered.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: viewport %dx%d must be positive", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("config: fov %v out of range (0,180)", c.FOV)
	}
	if c.ZNear <= 0 || c.ZFar <= c.ZNear {
		return fmt.Errorf("config: need 0 < znear < zfar, got %v, %v", c.ZNear, c.ZFar)
	}
	if _, err := pipeline.ParseCullMode(c.Cull); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := pipeline.ParseRenderMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return err
	}
	vecs := []struct {
		name string
		v    []float64
	}{
		{"translation", c.Translation},
		{"rotation", c.Rotation},
		{"scale", c.Scale},
		{"spin", c.Spin},
		{"camera_position", c.CameraPosition},
		{"light_direction", c.LightDirection},
	}
	for _, vec := range vecs {
		if len(vec.v) != 3 {
			return fmt.Errorf("config: %s needs 3 components, got %d", vec.name, len(vec.v))
		}
	}
	if l := vec(c.LightDirection).Len(); !(l > 0) || math.IsInf(l, 0) {
		return fmt.Errorf("config: light_direction %v has no usable direction", c.LightDirection)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("config: frames %d must be positive", c.Frames)
	}
	if c.Supersample < 1 || c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d out of range [1,8]", c.Supersample)
	}
	return nil
}

// Lens returns the projection settings in radians.
func (c *Config) Lens() pipeline.Lens {
	return pipeline.Lens{
		FOVY:  mathutil.Deg2Rad(c.FOV),
		ZNear: c.ZNear,
		ZFar:  c.ZFar,
	}
}

// Options returns the per-frame pipeline options. Call Validate first.
func (c *Config) Options() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.Cull, _ = pipeline.ParseCullMode(c.Cull)
	opts.Render, _ = pipeline.ParseRenderMode(c.Mode)
	opts.ClearColor, _ = ParseColor(c.ClearColor)
	opts.Grid = c.Grid
	return opts
}

// Place positions m according to the scene settings. Rotation is in degrees.
func (c *Config) Place(m *scene.Mesh) *scene.Mesh {
	return m.Placed(vec(c.Translation), degrees(vec(c.Rotation)), vec(c.Scale))
}

// SpinRadians returns the per-frame rotation increment in radians.
func (c *Config) SpinRadians() mathutil.Vec3 {
	return degrees(vec(c.Spin))
}

// Camera returns a camera at the configured position and orientation.
func (c *Config) Camera() *scene.Camera {
	cam := scene.NewCamera()
	cam.Position = vec(c.CameraPosition)
	cam.Yaw = mathutil.Deg2Rad(c.CameraYaw)
	cam.Pitch = mathutil.Deg2Rad(c.CameraPitch)
	return cam
}

// Light returns the directional light, normalized.
func (c *Config) Light() scene.Light {
	d := vec(c.LightDirection)
	d.NormalizeInPlace()
	return scene.Light{Direction: d}
}

// ParseColor reads "#RRGGBB" or "#AARRGGBB". The leading '#' is optional.
func ParseColor(s string) (raster.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("config: color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("config: color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return raster.Color(v), nil
}

func vec(v []float64) mathutil.Vec3 {
	var out mathutil.Vec3
	copy(out[:], v)
	return out
}

func degrees(v mathutil.Vec3) mathutil.Vec3 {
	return v.Scale(math.Pi / 180)
}
