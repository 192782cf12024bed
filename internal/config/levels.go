package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

// LevelFile is the on-disk layout of a level pack.
type LevelFile struct {
	Levels []LevelSpec `yaml:"levels"`
}

type LevelSpec struct {
	Name   string           `yaml:"name"`
	Bodies []dynamo.BodyDef `yaml:"bodies"`
	Craft  dynamo.Craft     `yaml:"craft"`
	Win    dynamo.WinSpec   `yaml:"win"`
}

func (s LevelSpec) Level() (dynamo.Level, error) {
	win, err := s.Win.Build()
	if err != nil {
		return dynamo.Level{}, &dynamo.LevelError{Level: s.Name, Field: fmt.Sprintf("win.kind %q", s.Win.Kind), Wrapped: dynamo.ErrInvalidWinCondition}
	}
	l := dynamo.Level{
		Name:         s.Name,
		Bodies:       s.Bodies,
		InitialCraft: s.Craft,
		Win:          win,
	}
	if err := l.Validate(); err != nil {
		return dynamo.Level{}, err
	}
	return l, nil
}

func SpecFromLevel(l dynamo.Level) LevelSpec {
	return LevelSpec{
		Name:   l.Name,
		Bodies: l.Bodies,
		Craft:  l.InitialCraft,
		Win:    dynamo.SpecOf(l.Win),
	}
}

// LoadLevels reads and validates a level pack.
func LoadLevels(path string) ([]dynamo.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file LevelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out := make([]dynamo.Level, 0, len(file.Levels))
	for i, spec := range file.Levels {
		if spec.Name == "" {
			return nil, &dynamo.LevelError{Field: fmt.Sprintf("levels[%d].name must not be empty", i), Wrapped: dynamo.ErrInvalidLevel}
		}
		l, err := spec.Level()
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// SaveLevels writes levels in the format LoadLevels reads.
func SaveLevels(path string, lvls []dynamo.Level) error {
	file := LevelFile{Levels: make([]LevelSpec, 0, len(lvls))}
	for _, l := range lvls {
		file.Levels = append(file.Levels, SpecFromLevel(l))
	}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
