package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/levels"
)

const pack = `levels:
  - name: Moonshot
    bodies:
      - x: 400
        y: 300
        radius: 40
      - x: 400
        y: 300
        radius: 10
        orbit:
          radius: 90
          speed: 1.5
          phase: 0.5
    craft:
      x: 50
      y: 50
      vx: 20
      orientation: 90
      fuel: 6
    win:
      kind: circle
      x: 700
      y: 500
      radius: 40
      max_speed: 10
  - name: Drift
    craft:
      fuel: 1
    win:
      kind: circle_any_speed
      x: 100
      y: 100
      radius: 30
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLevels(t *testing.T) {
	lvls, err := LoadLevels(writeFile(t, pack))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}

	moon := lvls[0]
	if moon.Name != "Moonshot" || len(moon.Bodies) != 2 {
		t.Errorf("unexpected level %+v", moon)
	}
	if moon.Bodies[0].Orbit != nil {
		t.Error("first body should be static")
	}
	if o := moon.Bodies[1].Orbit; o == nil || o.Speed != 1.5 || o.Phase != 0.5 {
		t.Errorf("unexpected orbit %+v", o)
	}
	if moon.InitialCraft.Fuel != 6 || moon.InitialCraft.Orientation != 90 {
		t.Errorf("unexpected craft %+v", moon.InitialCraft)
	}
	if w, ok := moon.Win.(dynamo.CircleUnderSpeed); !ok || w.MaxSpeed != 10 {
		t.Errorf("unexpected win %+v", moon.Win)
	}
	if _, ok := lvls[1].Win.(dynamo.CircleAnySpeed); !ok {
		t.Errorf("expected CircleAnySpeed, got %T", lvls[1].Win)
	}
}

func TestLoadLevels_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown win kind", "levels:\n  - name: A\n    win: {kind: square, radius: 1}\n", dynamo.ErrInvalidWinCondition},
		{"missing name", "levels:\n  - win: {kind: circle_any_speed, radius: 1}\n", dynamo.ErrInvalidLevel},
		{"bad body", "levels:\n  - name: A\n    bodies: [{x: 0, y: 0, radius: 0}]\n    win: {kind: circle_any_speed, radius: 1}\n", dynamo.ErrInvalidLevel},
		{"no max speed", "levels:\n  - name: A\n    win: {kind: circle, radius: 1}\n", dynamo.ErrInvalidWinCondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLevels(writeFile(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveLevels_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	builtin := levels.All(levels.DefaultWidth, levels.DefaultHeight)

	if err := SaveLevels(path, builtin); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadLevels(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != len(builtin) {
		t.Fatalf("expected %d levels, got %d", len(builtin), len(loaded))
	}
	for i := range builtin {
		if loaded[i].Name != builtin[i].Name || loaded[i].Win != builtin[i].Win {
			t.Errorf("level %d differs: %+v vs %+v", i, loaded[i], builtin[i])
		}
		if loaded[i].InitialCraft != builtin[i].InitialCraft {
			t.Errorf("level %d craft differs", i)
		}
	}
}

func TestConfigRegistry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LevelsFile = writeFile(t, pack)

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}
	if reg.Len() != 7 {
		t.Errorf("expected 7 levels, got %d", reg.Len())
	}
	if _, err := reg.Get("moonshot"); err != nil {
		t.Error(err)
	}
}
