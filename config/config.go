// Package config provides configuration loading and access for the canvas.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/trails/palette"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Population PopulationConfig `yaml:"population"`
	Fade       FadeConfig       `yaml:"fade"`
	Input      InputConfig      `yaml:"input"`
	Settings   SettingsConfig   `yaml:"settings"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`
	SDL        SDLConfig        `yaml:"sdl"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// SimulationConfig holds run-level tuning. Per-style physics constants are
// fixed in code.
type SimulationConfig struct {
	Seed     int64 `yaml:"seed"`     // 0 = seed from the clock
	Capacity int   `yaml:"capacity"` // initial particle slice capacity
}

// PopulationConfig holds the population caps applied after spawning.
// When the live count exceeds a cap, only the most recent keep particles
// survive.
type PopulationConfig struct {
	MoveCap   int `yaml:"move_cap"`
	MoveKeep  int `yaml:"move_keep"`
	TouchCap  int `yaml:"touch_cap"`
	TouchKeep int `yaml:"touch_keep"`
}

// FadeConfig holds the trail-fade fill painted over the surface every tick.
// The fill is emitted as #rrggbbaa, so alpha is rounded to 8 bits: 0.05
// becomes 0d (~0.051) and 0.08 becomes 14 (~0.078). Both surfaces take
// hex colours only, so keep the hex form rather than an rgba() string.
type FadeConfig struct {
	Dark  FadeColor `yaml:"dark"`
	Light FadeColor `yaml:"light"`
}

// FadeColor is a #rrggbb colour with a fill alpha.
type FadeColor struct {
	Color string  `yaml:"color"`
	Alpha float64 `yaml:"alpha"`
}

// InputConfig holds pointer handling options.
type InputConfig struct {
	SpawnOnHover bool `yaml:"spawn_on_hover"` // spawn on move without a pressed button
	Touch        bool `yaml:"touch"`          // poll touch points in addition to the mouse
}

// SettingsConfig holds where user style settings persist.
type SettingsConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// TelemetryConfig holds statistics collection parameters.
type TelemetryConfig struct {
	StatsWindowSec float64 `yaml:"stats_window"` // seconds per stats window
	PerfWindow     int     `yaml:"perf_window"`  // ticks per perf window
	OutputDir      string  `yaml:"output_dir"`   // CSV directory, empty to disable
}

// AutopilotConfig drives the synthetic pointer used in headless runs.
type AutopilotConfig struct {
	Radius     float64 `yaml:"radius"`      // orbit radius as a fraction of the smaller dimension
	Speed      float64 `yaml:"speed"`       // radians per tick
	Wobble     float64 `yaml:"wobble"`      // noise displacement as a fraction of radius
	PressTicks int     `yaml:"press_ticks"` // ticks per press/release phase
}

// SDLConfig holds options for the SDL canvas front end.
type SDLConfig struct {
	Font string `yaml:"font"` // TTF path for glyphs and HUD, empty to skip text
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DarkFade  string // fade colour with alpha suffix
	LightFade string
	ScreenW   float64
	ScreenH   float64
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

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Defaults returns the embedded default configuration.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

// validate rejects settings the core cannot run with.
func (c *Config) validate() error {
	p := c.Population
	if p.MoveKeep < 0 || p.MoveKeep > p.MoveCap {
		return fmt.Errorf("population: move_keep %d must be in [0, move_cap %d]", p.MoveKeep, p.MoveCap)
	}
	if p.TouchKeep < 0 || p.TouchKeep > p.TouchCap {
		return fmt.Errorf("population: touch_keep %d must be in [0, touch_cap %d]", p.TouchKeep, p.TouchCap)
	}
	for name, f := range map[string]FadeColor{"dark": c.Fade.Dark, "light": c.Fade.Light} {
		if _, _, _, _, ok := palette.ParseHex(f.Color); !ok || len(f.Color) != 7 {
			return fmt.Errorf("fade.%s: colour %q is not #rrggbb", name, f.Color)
		}
		if f.Alpha < 0 || f.Alpha > 1 {
			return fmt.Errorf("fade.%s: alpha %v outside [0, 1]", name, f.Alpha)
		}
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen: invalid size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DarkFade = palette.WithAlpha(c.Fade.Dark.Color, c.Fade.Dark.Alpha)
	c.Derived.LightFade = palette.WithAlpha(c.Fade.Light.Color, c.Fade.Light.Alpha)
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)

	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	if c.Simulation.Capacity <= 0 {
		c.Simulation.Capacity = c.Population.MoveCap
	}
	if c.Telemetry.PerfWindow <= 0 {
		c.Telemetry.PerfWindow = 120
	}
	if c.Autopilot.PressTicks <= 0 {
		c.Autopilot.PressTicks = 90
	}
}

// FadeColor returns the trail-fade fill for the given mode.
func (c *Config) FadeColor(dark bool) string {
	if dark {
		return c.Derived.DarkFade
	}
	return c.Derived.LightFade
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
