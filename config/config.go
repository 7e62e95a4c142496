// Package config provides configuration loading and access for the viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Globe       GlobeConfig       `yaml:"globe"`
	Streamlines StreamlinesConfig `yaml:"streamlines"`
	Wind        WindConfig        `yaml:"wind"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GlobeConfig holds the view settings for the rotating globe.
type GlobeConfig struct {
	SpinDegPerSec float64 `yaml:"spin_deg_per_sec"` // auto-rotation speed (0 = static)
	StartLon      float64 `yaml:"start_lon"`
	StartLat      float64 `yaml:"start_lat"`
	Scale         float64 `yaml:"scale"`     // sphere radius in pixels
	MinScale      float64 `yaml:"min_scale"` // zoom-out limit
	MaxScale      float64 `yaml:"max_scale"` // zoom-in limit
	GraticuleDeg  float64 `yaml:"graticule_deg"` // grid line spacing (0 = no graticule)
}

// StreamlinesConfig holds the streamline field parameters.
type StreamlinesConfig struct {
	NumPaths         int     `yaml:"num_paths"`
	PathLength       int     `yaml:"path_length"`
	RegularLocations bool    `yaml:"regular_locations"` // grid seeding instead of random
	StretchFactor    float64 `yaml:"stretch_factor"`
	LineWidth        float64 `yaml:"line_width"`
	AdaptLineWidth   bool    `yaml:"adapt_line_width"`
	ColorBuckets     int     `yaml:"color_buckets"`
	ColorLow         string  `yaml:"color_low"`       // rgba(...) endpoint for slow flow
	ColorHigh        string  `yaml:"color_high"`      // rgba(...) endpoint for fast flow
	UpdateInterval   int     `yaml:"update_interval"` // frames between refresh passes (random mode)
}

// WindConfig holds the synthetic wind field tuning.
type WindConfig struct {
	Seed         int64   `yaml:"seed"`
	JetStrength  float64 `yaml:"jet_strength"`
	EddyScale    float64 `yaml:"eddy_scale"`
	EddyStrength float64 `yaml:"eddy_strength"`
	DriftSpeed   float64 `yaml:"drift_speed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogPasses bool `yaml:"log_passes"` // slog a stats record after each generation pass
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW float64 // Screen.Width as float64
	ScreenH float64 // Screen.Height as float64
	CenterX float64 // canvas center
	CenterY float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Screen.Width <= 0 {
		c.Screen.Width = 1280
	}
	if c.Screen.Height <= 0 {
		c.Screen.Height = 720
	}
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)
	c.Derived.CenterX = c.Derived.ScreenW / 2
	c.Derived.CenterY = c.Derived.ScreenH / 2

	if c.Globe.Scale <= 0 {
		c.Globe.Scale = c.Derived.ScreenH * 0.45
	}
	if c.Globe.MinScale <= 0 {
		c.Globe.MinScale = c.Globe.Scale * 0.4
	}
	if c.Globe.MaxScale <= 0 {
		c.Globe.MaxScale = c.Globe.Scale * 8
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
