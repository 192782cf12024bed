package config

import (
	"sort"

	"github.com/san-kum/orbitlander/internal/control"
)

// Presets are named headless run setups keyed by level then preset name.
var Presets = map[string]map[string]*Config{
	"Level 1": {
		"coast": {Level: "Level 1", Dt: DefaultDt, Duration: 30.0},
		"climb": {
			Level: "Level 1", Dt: DefaultDt, Duration: 30.0,
			Plan: []control.Burn{{At: 0, Duration: 1.5, Orientation: 30}},
		},
	},
	"Level 2": {
		"drift": {Level: "Level 2", Dt: DefaultDt, Duration: 20.0},
		"transfer": {
			Level: "Level 2", Dt: DefaultDt, Duration: 120.0,
			Plan: []control.Burn{
				{At: 0, Duration: 1, Orientation: 64.3},
				{At: 88, Duration: 1, Orientation: 244.3},
			},
		},
	},
	"The Gauntlet": {
		"coast": {Level: "The Gauntlet", Dt: DefaultDt, Duration: 20.0},
	},
	"Binary Stars": {
		"freefall": {Level: "Binary Stars", Dt: DefaultDt, Duration: 15.0},
		"brake": {
			Level: "Binary Stars", Dt: DefaultDt, Duration: 30.0,
			Plan: []control.Burn{{At: 2, Duration: 3, Orientation: 0}},
		},
	},
	"Slingshot": {
		"coast": {Level: "Slingshot", Dt: DefaultDt, Duration: 30.0},
	},
}

// GetPreset returns a copy of the preset merged over DefaultConfig, or nil.
func GetPreset(level, preset string) *Config {
	levelPresets, ok := Presets[level]
	if !ok {
		return nil
	}
	p, ok := levelPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Level = p.Level
	cfg.Dt = p.Dt
	cfg.Duration = p.Duration
	cfg.Plan = append([]control.Burn(nil), p.Plan...)
	return cfg
}

func ListPresets(level string) []string {
	levelPresets, ok := Presets[level]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(levelPresets))
	for name := range levelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetLevels lists the levels that have presets.
func PresetLevels() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
