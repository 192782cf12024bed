package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlander/internal/control"
	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/levels"
	"github.com/san-kum/orbitlander/internal/physics"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 60.0
	DefaultLevel    = "Level 1"
	DefaultLogLevel = "info"
	DefaultTheme    = "default"
)

type Config struct {
	Width      float64          `yaml:"width"`
	Height     float64          `yaml:"height"`
	Dt         float64          `yaml:"dt"`
	Duration   float64          `yaml:"duration"`
	Level      string           `yaml:"level"`
	LevelsFile string           `yaml:"levels_file,omitempty"`
	Projection ProjectionConfig `yaml:"projection"`
	LogLevel   string           `yaml:"log_level"`
	LogFile    string           `yaml:"log_file,omitempty"`
	Theme      string           `yaml:"theme"`
	Plan       []control.Burn   `yaml:"plan,omitempty"`
}

type ProjectionConfig struct {
	Horizon float64 `yaml:"horizon"`
	Steps   int     `yaml:"steps"`
	Stride  int     `yaml:"stride"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    levels.DefaultWidth,
		Height:   levels.DefaultHeight,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Level:    DefaultLevel,
		Projection: ProjectionConfig{
			Horizon: physics.ProjectHorizon,
			Steps:   physics.ProjectSteps,
			Stride:  physics.ProjectStride,
		},
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
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

// Validate reports the first out-of-range field wrapped in
// dynamo.ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", dynamo.ErrInvalidConfig, c.Width, c.Height)
	case c.Dt <= 0:
		return fmt.Errorf("%w: dt must be > 0, got %v", dynamo.ErrInvalidConfig, c.Dt)
	case c.Duration <= 0:
		return fmt.Errorf("%w: duration must be > 0, got %v", dynamo.ErrInvalidConfig, c.Duration)
	case c.Projection.Horizon < 0:
		return fmt.Errorf("%w: projection.horizon must be >= 0, got %v", dynamo.ErrInvalidConfig, c.Projection.Horizon)
	case c.Projection.Steps < 0:
		return fmt.Errorf("%w: projection.steps must be >= 0, got %d", dynamo.ErrInvalidConfig, c.Projection.Steps)
	case c.Projection.Stride <= 0:
		return fmt.Errorf("%w: projection.stride must be > 0, got %d", dynamo.ErrInvalidConfig, c.Projection.Stride)
	}
	if err := control.NewFlightPlan(c.Plan).Validate(); err != nil {
		return fmt.Errorf("%w: plan: %v", dynamo.ErrInvalidConfig, err)
	}
	return nil
}

// Registry returns the built-in levels for the configured playfield plus
// any levels from LevelsFile.
func (c *Config) Registry() (*levels.Registry, error) {
	reg := levels.Builtin(c.Width, c.Height)
	if c.LevelsFile == "" {
		return reg, nil
	}
	extra, err := LoadLevels(c.LevelsFile)
	if err != nil {
		return nil, err
	}
	for _, l := range extra {
		if err := reg.Register(l); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
