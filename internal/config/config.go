package config

import (
	"errors"
	"fmt"
	"os"

	"mini-voxel/internal/world"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no config path is given.
const EnvPath = "VOXEL_CONFIG"

var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the YAML configuration file.
type Config struct {
	Window WindowConfig `yaml:"window"`
	World  WorldConfig  `yaml:"world"`
	Camera CameraConfig `yaml:"camera"`
	Render RenderConfig `yaml:"render"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type WorldConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Depth      int    `yaml:"depth"`
	Generator  string `yaml:"generator"`
	Seed       int64  `yaml:"seed"`
	PlaceBlock string `yaml:"place_block"`
}

type CameraConfig struct {
	FOVDegrees    float32    `yaml:"fov_degrees"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Sensitivity   float32    `yaml:"sensitivity"`
	Speed         float32    `yaml:"speed"`
	Start         [3]float32 `yaml:"start"`
	SpawnOnGround bool       `yaml:"spawn_on_ground"`
	EyeHeight     float32    `yaml:"eye_height"`
}

type RenderConfig struct {
	FPSLimit     int        `yaml:"fps_limit"`
	AsyncMeshing bool       `yaml:"async_meshing"`
	SkyColor     [3]float32 `yaml:"sky_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Voxel Prototype",
			VSync:  true,
		},
		World: WorldConfig{
			Width:      32,
			Height:     8,
			Depth:      32,
			Generator:  "flat",
			PlaceBlock: "dirt",
		},
		Camera: CameraConfig{
			FOVDegrees:  70,
			Near:        0.01,
			Far:         1000,
			Sensitivity: 0.1,
			Speed:       5,
			Start:       [3]float32{0, 4, 8},
			EyeHeight:   1.7,
		},
		Render: RenderConfig{
			FPSLimit: 0,
			SkyColor: [3]float32{0.53, 0.81, 0.92},
		},
	}
}

// Load reads a YAML file on top of the defaults.
// If path is empty, the VOXEL_CONFIG environment variable is used; if that is
// empty too, the defaults are returned.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults, clamps soft limits and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.clamp()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// clamp pulls soft settings back into reasonable ranges.
func (c *Config) clamp() {
	if c.Camera.FOVDegrees < 10 {
		c.Camera.FOVDegrees = 10
	}
	if c.Camera.FOVDegrees > 170 {
		c.Camera.FOVDegrees = 170
	}
	if c.Camera.Sensitivity <= 0 {
		c.Camera.Sensitivity = 0.1
	}
	if c.Camera.Speed < 0 {
		c.Camera.Speed = 0
	}
	if c.Render.FPSLimit < 0 {
		c.Render.FPSLimit = 0
	}
	if c.Render.FPSLimit > 1000 {
		c.Render.FPSLimit = 1000
	}
	for i, v := range c.Render.SkyColor {
		c.Render.SkyColor[i] = min(max(v, 0), 1)
	}
}

// Validate rejects values the world and camera cannot work with.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 || c.World.Depth <= 0 {
		return fmt.Errorf("%w: world size %dx%dx%d", ErrInvalid, c.World.Width, c.World.Height, c.World.Depth)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if b, ok := world.ParseBlockType(c.World.PlaceBlock); !ok || !b.IsSolid() {
		return fmt.Errorf("%w: place_block %q", ErrInvalid, c.World.PlaceBlock)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: clip planes near=%g far=%g", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	return nil
}

// Aspect returns the window aspect ratio.
func (w WindowConfig) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}
