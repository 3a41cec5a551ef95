// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Noise     NoiseConfig     `yaml:"noise"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Export    ExportConfig    `yaml:"export"`

	DefaultProfile string          `yaml:"default_profile"`
	Profiles       []ProfileConfig `yaml:"profiles"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. Canvas dimensions also size the
// flow grid, so they are fatal to get wrong.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds flow grid parameters.
type FieldConfig struct {
	CellSize float64 `yaml:"cell_size"` // canvas units per cell
	TimeStep float64 `yaml:"time_step"` // time offset increment per tick
}

// NoiseConfig holds noise backend parameters.
type NoiseConfig struct {
	Algorithm string `yaml:"algorithm"` // perlin | simplex
	Seed      int64  `yaml:"seed"`      // 0 = time-based
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // ticks in the perf rolling window
}

// ExportConfig holds image export settings.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// ProfileConfig is the raw YAML form of a style profile. Colors are
// hex strings; the game layer converts them into runtime profiles.
type ProfileConfig struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Movement string `yaml:"movement"`

	Palette    []string `yaml:"palette"`
	Background string   `yaml:"background"`

	SpeedRange       [2]float64 `yaml:"speed_range"`
	StrokeWidthRange [2]float64 `yaml:"stroke_width_range"`
	Opacity          int        `yaml:"opacity"`
	NoiseScale       float64    `yaml:"noise_scale"`
	AngleMultiplier  float64    `yaml:"angle_multiplier"`
	PoolSize         int        `yaml:"pool_size"`
	LifespanRange    [2]int     `yaml:"lifespan_range"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW      float64        // Screen.Width as float64
	ScreenH      float64        // Screen.Height as float64
	ProfileIndex map[string]int // profile id -> position in Profiles
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate fails fast on configuration errors. Everything past this
// point assumes a well-formed config.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("config: target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Field.CellSize <= 0 {
		return fmt.Errorf("config: field cell_size must be positive, got %g", c.Field.CellSize)
	}
	if c.Field.TimeStep <= 0 {
		return fmt.Errorf("config: field time_step must be positive, got %g", c.Field.TimeStep)
	}
	if c.Noise.Algorithm == "" {
		return fmt.Errorf("config: noise algorithm is required")
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("config: telemetry stats_window must be positive, got %g", c.Telemetry.StatsWindow)
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("config: at least one profile is required")
	}

	seen := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.ID == "" {
			return fmt.Errorf("config: profile %d is missing an id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate profile id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Opacity < 0 || p.Opacity > 255 {
			return fmt.Errorf("config: profile %q opacity %d outside [0, 255]", p.ID, p.Opacity)
		}
	}
	if c.DefaultProfile != "" && !seen[c.DefaultProfile] {
		return fmt.Errorf("config: default_profile %q not found in profiles", c.DefaultProfile)
	}
	return nil
}

// computeDerived calculates values derived from a loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)

	c.Derived.ProfileIndex = make(map[string]int, len(c.Profiles))
	for i, p := range c.Profiles {
		c.Derived.ProfileIndex[p.ID] = i
	}

	if c.DefaultProfile == "" {
		c.DefaultProfile = c.Profiles[0].ID
	}
}

// ProfileByID returns the raw profile config with the given id.
func (c *Config) ProfileByID(id string) (ProfileConfig, error) {
	i, ok := c.Derived.ProfileIndex[id]
	if !ok {
		return ProfileConfig{}, fmt.Errorf("config: unknown profile %q", id)
	}
	return c.Profiles[i], nil
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
