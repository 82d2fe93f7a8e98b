// Package config provides configuration loading and access for the visualization.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualization configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Particles ParticlesConfig `yaml:"particles"`
	Render    RenderConfig    `yaml:"render"`
	GPU       GPUConfig       `yaml:"gpu"`
	Gallery   GalleryConfig   `yaml:"gallery"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds flow field generation parameters.
type FieldConfig struct {
	CellSize       float64 `yaml:"cell_size"`       // World units per grid cell
	UpdateInterval int     `yaml:"update_interval"` // Recompute every N frames
	Mode           string  `yaml:"mode"`            // "trig" or "noise"

	// Trig mode: angle = sin(x*x_freq + t*x_drift) * cos(y*y_freq + t*y_drift) * 2pi
	XFreq  float64 `yaml:"x_freq"`
	YFreq  float64 `yaml:"y_freq"`
	XDrift float64 `yaml:"x_drift"`
	YDrift float64 `yaml:"y_drift"`

	// Noise mode
	NoiseScale     float64 `yaml:"noise_scale"`      // Grid coordinate frequency
	NoiseTimeScale float64 `yaml:"noise_time_scale"` // Frame counter frequency
}

// ParticlesConfig holds particle simulation parameters.
type ParticlesConfig struct {
	Count        int     `yaml:"count"`
	TrailCap     int     `yaml:"trail_cap"`     // Max trail history length (hard cap 16)
	Damping      float64 `yaml:"damping"`       // Velocity multiplier per frame
	FlowStrength float64 `yaml:"flow_strength"` // Flow vector scale added to velocity
	MaxSpeed     float64 `yaml:"max_speed"`
	Margin       float64 `yaml:"margin"`       // Off-screen distance before reset
	LifespanMin  int     `yaml:"lifespan_min"` // Frames
	LifespanMax  int     `yaml:"lifespan_max"`

	// LowPower selects the reduced profile: "auto", "on", or "off".
	LowPower        string  `yaml:"low_power"`
	LowPowerCount   int     `yaml:"low_power_count"`
	LowPowerDamping float64 `yaml:"low_power_damping"`
}

// RenderConfig holds glow rendering parameters.
type RenderConfig struct {
	FadeAlpha  float64 `yaml:"fade_alpha"` // Per-frame fade rectangle alpha [0,1]
	HueSpeed   float64 `yaml:"hue_speed"`  // Degrees per frame
	HueSpread  float64 `yaml:"hue_spread"` // Degrees per world unit of position
	Saturation float64 `yaml:"saturation"` // [0,1]
	Lightness  float64 `yaml:"lightness"`  // [0,1]

	// Glow layers: core, mid, outer. Radius factors scale particle size,
	// alpha factors scale base opacity.
	GlowRadius []float64 `yaml:"glow_radius"`
	GlowAlpha  []float64 `yaml:"glow_alpha"`
}

// GPUConfig holds GPU flow field parameters.
type GPUConfig struct {
	Enabled        bool   `yaml:"enabled"`
	TextureSize    int    `yaml:"texture_size"`
	UpdateInterval int    `yaml:"update_interval"` // Frames between texture regenerations
	ShaderPath     string `yaml:"shader_path"`
}

// GalleryConfig holds lightbox gallery settings.
type GalleryConfig struct {
	Dir        string   `yaml:"dir"`
	Extensions []string `yaml:"extensions"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
	LowPower  bool // Resolved low-power decision
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

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.LowPower = resolveLowPower(c.Particles.LowPower)
}

// resolveLowPower maps the low_power setting to a concrete decision.
// "auto" uses a coarse platform signal: few cores or a mobile/ARM build.
func resolveLowPower(setting string) bool {
	switch setting {
	case "on":
		return true
	case "off":
		return false
	default:
		if runtime.NumCPU() <= 2 {
			return true
		}
		return runtime.GOARCH == "arm" || runtime.GOOS == "android" || runtime.GOOS == "ios"
	}
}

// ParticleCount returns the effective particle count for this platform.
func (c *Config) ParticleCount() int {
	if c.Derived.LowPower {
		return c.Particles.LowPowerCount
	}
	return c.Particles.Count
}

// ParticleDamping returns the effective damping factor for this platform.
func (c *Config) ParticleDamping() float32 {
	if c.Derived.LowPower {
		return float32(c.Particles.LowPowerDamping)
	}
	return float32(c.Particles.Damping)
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
