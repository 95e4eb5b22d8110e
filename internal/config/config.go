// Package config holds the fixed numeric constants the simulation is
// started with. Values layer the same way the CLI does: defaults, then a
// named preset, then a yaml file, then flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows            = 9
	DefaultCols            = 9
	DefaultHalfMs          = 300.0
	DefaultHoldMs          = 600.0
	DefaultHoldMinMs       = 120.0
	DefaultHoldMaxMs       = 2400.0
	DefaultLongPressMs     = 350.0
	DefaultEmitIntervalMs  = 120.0
	DefaultWaveSpeed       = 0.8
	DefaultActivationBand  = 40.0
	DefaultMaxEmitters     = 64
	DefaultKnobSensitivity = 4.0
	DefaultShapePoints     = 60
	DefaultWindowSize      = 720
)

type Config struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Timing: one transition half plus the knob-tunable dwell.
	HalfMs    float64 `yaml:"half_ms"`
	HoldMs    float64 `yaml:"hold_ms"`
	HoldMinMs float64 `yaml:"hold_min_ms"`
	HoldMaxMs float64 `yaml:"hold_max_ms"`

	// Gestures.
	LongPressMs     float64 `yaml:"longpress_ms"`
	EmitIntervalMs  float64 `yaml:"emit_interval_ms"`
	KnobSensitivity float64 `yaml:"knob_sensitivity"`

	// Wave propagation.
	WaveSpeed      float64 `yaml:"wave_speed"`      // px per logical ms
	ActivationBand float64 `yaml:"activation_band"` // annulus width, px
	MaxEmitters    int     `yaml:"max_emitters"`

	// Presentation.
	ShapePoints int `yaml:"shape_points"`
	WindowW     int `yaml:"window_w"`
	WindowH     int `yaml:"window_h"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:            DefaultRows,
		Cols:            DefaultCols,
		HalfMs:          DefaultHalfMs,
		HoldMs:          DefaultHoldMs,
		HoldMinMs:       DefaultHoldMinMs,
		HoldMaxMs:       DefaultHoldMaxMs,
		LongPressMs:     DefaultLongPressMs,
		EmitIntervalMs:  DefaultEmitIntervalMs,
		KnobSensitivity: DefaultKnobSensitivity,
		WaveSpeed:       DefaultWaveSpeed,
		ActivationBand:  DefaultActivationBand,
		MaxEmitters:     DefaultMaxEmitters,
		ShapePoints:     DefaultShapePoints,
		WindowW:         DefaultWindowSize,
		WindowH:         DefaultWindowSize,
	}
}

// Load reads a yaml config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.HalfMs <= 0 {
		return fmt.Errorf("half_ms must be positive, got %f", c.HalfMs)
	}
	if c.HoldMinMs < 0 || c.HoldMaxMs < c.HoldMinMs {
		return fmt.Errorf("hold bounds inverted: [%f, %f]", c.HoldMinMs, c.HoldMaxMs)
	}
	if c.LongPressMs <= 0 {
		return fmt.Errorf("longpress_ms must be positive, got %f", c.LongPressMs)
	}
	if c.EmitIntervalMs <= 0 {
		return fmt.Errorf("emit_interval_ms must be positive, got %f", c.EmitIntervalMs)
	}
	if c.WaveSpeed <= 0 {
		return fmt.Errorf("wave_speed must be positive, got %f", c.WaveSpeed)
	}
	if c.ActivationBand <= 0 {
		return fmt.Errorf("activation_band must be positive, got %f", c.ActivationBand)
	}
	if c.MaxEmitters <= 0 {
		return fmt.Errorf("max_emitters must be positive, got %d", c.MaxEmitters)
	}
	if c.ShapePoints < 3 {
		return fmt.Errorf("shape_points must be at least 3, got %d", c.ShapePoints)
	}
	return nil
}
