// Package config provides configuration loading and access for the field effect.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/hsluv/hsluv-go"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Link index kinds accepted in links.index.
const (
	IndexBrute    = "brute"
	IndexGrid     = "grid"
	IndexParallel = "parallel"
)

// Config holds all effect configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Links     LinksConfig     `yaml:"links"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	VSync      bool   `yaml:"vsync"`
	Background string `yaml:"background"` // hex, e.g. "#0b0d12"
}

// FieldConfig holds particle population parameters.
type FieldConfig struct {
	Count     int         `yaml:"count"`
	MaxSpeed  float64     `yaml:"max_speed"`  // velocity components drawn from [-max_speed, max_speed)
	RadiusMin float64     `yaml:"radius_min"`
	RadiusMax float64     `yaml:"radius_max"`
	AlphaMin  float64     `yaml:"alpha_min"`
	AlphaMax  float64     `yaml:"alpha_max"`
	Color     ColorConfig `yaml:"color"`
}

// ColorConfig describes the shared particle and link colour.
// Hex wins over the HSLuv components when set.
type ColorConfig struct {
	Hex        string  `yaml:"hex"`
	Hue        float64 `yaml:"hue"`        // 0-360
	Saturation float64 `yaml:"saturation"` // 0-100
	Lightness  float64 `yaml:"lightness"`  // 0-100
}

// LinksConfig holds proximity graph parameters.
type LinksConfig struct {
	Threshold   float64 `yaml:"threshold"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Index       string  `yaml:"index"` // brute | grid
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow    int `yaml:"perf_window"`    // frames averaged by the perf collector
	StatsInterval int `yaml:"stats_interval"` // frames between stats flushes (0 = off)
}

// SnapshotConfig holds headless snapshot parameters.
type SnapshotConfig struct {
	IntervalFrames int `yaml:"interval_frames"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MaxSpeed32    float32
	RadiusMin32   float32
	RadiusMax32   float32
	AlphaMin32    float32
	AlphaMax32    float32
	Threshold32   float32
	StrokeWidth32 float32
	Color         color.NRGBA // opaque; alpha is applied per particle / per link
	Background    color.NRGBA
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if err := cfg.Recompute(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	f := c.Field
	switch {
	case c.Screen.Width < 0 || c.Screen.Height < 0:
		return errors.New("screen size must not be negative")
	case f.Count < 0:
		return errors.New("field.count must not be negative")
	case f.MaxSpeed < 0:
		return errors.New("field.max_speed must not be negative")
	case f.RadiusMin <= 0 || f.RadiusMax < f.RadiusMin:
		return fmt.Errorf("field radius range [%v, %v) is invalid", f.RadiusMin, f.RadiusMax)
	case f.AlphaMin < 0 || f.AlphaMax > 1 || f.AlphaMax < f.AlphaMin:
		return fmt.Errorf("field alpha range [%v, %v) is invalid", f.AlphaMin, f.AlphaMax)
	case c.Links.Threshold < 0:
		return errors.New("links.threshold must not be negative")
	case c.Links.StrokeWidth <= 0:
		return errors.New("links.stroke_width must be positive")
	}
	switch c.Links.Index {
	case "", IndexBrute, IndexGrid, IndexParallel:
	default:
		return fmt.Errorf("links.index %q: want %q, %q or %q", c.Links.Index, IndexBrute, IndexGrid, IndexParallel)
	}
	return nil
}

// Recompute refreshes Derived after fields were changed in place.
func (c *Config) Recompute() error {
	c.Derived.MaxSpeed32 = float32(c.Field.MaxSpeed)
	c.Derived.RadiusMin32 = float32(c.Field.RadiusMin)
	c.Derived.RadiusMax32 = float32(c.Field.RadiusMax)
	c.Derived.AlphaMin32 = float32(c.Field.AlphaMin)
	c.Derived.AlphaMax32 = float32(c.Field.AlphaMax)
	c.Derived.Threshold32 = float32(c.Links.Threshold)
	c.Derived.StrokeWidth32 = float32(c.Links.StrokeWidth)

	col, err := c.Field.Color.Resolve()
	if err != nil {
		return fmt.Errorf("field.color: %w", err)
	}
	c.Derived.Color = col

	bg := color.NRGBA{A: 255}
	if c.Screen.Background != "" {
		bg, err = ParseHex(c.Screen.Background)
		if err != nil {
			return fmt.Errorf("screen.background: %w", err)
		}
	}
	c.Derived.Background = bg
	return nil
}

// Resolve returns the opaque colour described by c.
func (c ColorConfig) Resolve() (color.NRGBA, error) {
	if c.Hex != "" {
		return ParseHex(c.Hex)
	}
	r, g, b := hsluv.HsluvToRGB(c.Hue, c.Saturation, c.Lightness)
	return color.NRGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: 255}, nil
}

// ParseHex parses "#rrggbb" into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 7 || s[0] != '#' || strings.Trim(s[1:], "0123456789abcdef") != "" {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	h, sat, l := hsluv.HsluvFromHex(s)
	r, g, b := hsluv.HsluvToRGB(h, sat, l)
	return color.NRGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: 255}, nil
}

// unit8 maps a [0,1] channel to a byte.
func unit8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
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
