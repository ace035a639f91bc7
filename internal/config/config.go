package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	CloudFile   string `json:"cloud_file"`
	PaletteFile string `json:"palette_file"`
	OutputDir   string `json:"output_dir"`

	// Camera
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	FOV            float64 `json:"fov"`
	ScreenDistance float64 `json:"screen_distance"`

	// Generated cloud (used when CloudFile is empty)
	NumPoints int     `json:"num_points"`
	RangeMin  float64 `json:"range_min"`
	RangeMax  float64 `json:"range_max"`

	// Render settings
	// Background is the frame background as [R, G, B, A] components.
	// The zero value leaves frames fully transparent.
	Background  [4]uint8 `json:"background"`
	Frames      int      `json:"frames"`
	Supersample int      `json:"supersample"`
	Workers     int      `json:"workers"`
	DOFAperture float64  `json:"dof_aperture"`
	DOFSamples  int      `json:"dof_samples"`
	SortByDepth bool     `json:"sort_by_depth"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.CloudFile != "" {
		c.CloudFile = flags.CloudFile
	}
	if flags.PaletteFile != "" {
		c.PaletteFile = flags.PaletteFile
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
	if flags.Points > 0 {
		c.NumPoints = flags.Points
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 450
	}
	if c.FOV <= 0 {
		c.FOV = 120
	}
	if c.ScreenDistance <= 0 {
		c.ScreenDistance = 1.0
	}
	if c.NumPoints <= 0 {
		c.NumPoints = 50000
	}
	if c.RangeMin == 0 && c.RangeMax == 0 {
		c.RangeMin = -100
		c.RangeMax = 10
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.DOFSamples <= 0 {
		c.DOFSamples = 10
	}
}

// BackgroundColor returns the background components as a color.NRGBA.
func (c *Config) BackgroundColor() color.NRGBA {
	return color.NRGBA{
		R: c.Background[0],
		G: c.Background[1],
		B: c.Background[2],
		A: c.Background[3],
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	CloudFile   string
	PaletteFile string
	OutputDir   string
	Width       int
	Height      int
	Points      int
	Frames      int
	Workers     int
}
