package config

import "sort"

// Presets are named tunings for the whole instrument. Each starts from the
// defaults and overrides what makes it distinct.

var Presets = map[string]func() *Config{
	"default": DefaultConfig,
	"calm": func() *Config {
		c := DefaultConfig()
		c.HoldMs = 1500
		c.HalfMs = 500
		c.WaveSpeed = 0.4
		c.EmitIntervalMs = 250
		return c
	},
	"frenzy": func() *Config {
		c := DefaultConfig()
		c.HoldMs = 150
		c.HalfMs = 150
		c.WaveSpeed = 1.6
		c.EmitIntervalMs = 60
		c.MaxEmitters = 128
		return c
	},
	"sparse": func() *Config {
		c := DefaultConfig()
		c.Rows = 5
		c.Cols = 5
		c.ActivationBand = 60
		return c
	},
	"dense": func() *Config {
		c := DefaultConfig()
		c.Rows = 15
		c.Cols = 15
		c.ActivationBand = 25
		c.ShapePoints = 36
		return c
	},
}

// GetPreset returns a fresh copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	f, ok := Presets[name]
	if !ok {
		return nil
	}
	return f()
}

// ListPresets returns the preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
