package levels

import (
	"errors"
	"testing"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

func TestAll_Valid(t *testing.T) {
	all := All(DefaultWidth, DefaultHeight)
	if len(all) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(all))
	}
	for _, l := range all {
		if err := l.Validate(); err != nil {
			t.Errorf("%s: %v", l.Name, err)
		}
	}
}

func TestAll_Layout(t *testing.T) {
	all := All(1000, 500)

	l1 := all[0]
	if l1.Bodies[0].CenterX != 500 || l1.Bodies[0].CenterY != 250 {
		t.Errorf("expected center body at (500, 250), got %+v", l1.Bodies[0])
	}
	if l1.InitialCraft.Y != 400 {
		t.Errorf("expected craft y 400, got %v", l1.InitialCraft.Y)
	}
	if w, ok := l1.Win.(dynamo.CircleAnySpeed); !ok || w.X != 850 {
		t.Errorf("unexpected win condition %+v", l1.Win)
	}

	l2 := all[1]
	if len(l2.Bodies) != 0 {
		t.Errorf("Level 2 should have no bodies, got %d", len(l2.Bodies))
	}
	if w, ok := l2.Win.(dynamo.CircleUnderSpeed); !ok || w.MaxSpeed != 2 {
		t.Errorf("unexpected win condition %+v", l2.Win)
	}

	sling := all[4]
	if sling.InitialCraft.Fuel != 4 || sling.Bodies[1].Orbit.Speed != -1.2 {
		t.Errorf("unexpected slingshot setup %+v", sling)
	}
}

func TestAll_Fresh(t *testing.T) {
	a := All(DefaultWidth, DefaultHeight)
	a[0].Bodies[1].Orbit.Radius = 1
	b := All(DefaultWidth, DefaultHeight)
	if b[0].Bodies[1].Orbit.Radius != 150 {
		t.Error("catalog shares orbit data between calls")
	}
}

func TestRegistry_Get(t *testing.T) {
	r := Builtin(DefaultWidth, DefaultHeight)

	tests := []string{"Binary Stars", "binary stars", "binary-stars", "BINARY_STARS", " Binary Stars "}
	for _, name := range tests {
		l, err := r.Get(name)
		if err != nil {
			t.Errorf("%q: unexpected error %v", name, err)
			continue
		}
		if l.Name != "Binary Stars" {
			t.Errorf("%q: got level %s", name, l.Name)
		}
	}

	_, err := r.Get("Level 99")
	if !errors.Is(err, dynamo.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	names := Builtin(DefaultWidth, DefaultHeight).Names()
	want := []string{"Level 1", "Level 2", "The Gauntlet", "Binary Stars", "Slingshot"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestRegistry_Register(t *testing.T) {
	r := Builtin(DefaultWidth, DefaultHeight)

	custom := dynamo.Level{
		Name:         "Custom",
		InitialCraft: dynamo.Craft{Fuel: 1},
		Win:          dynamo.CircleAnySpeed{Radius: 10},
	}
	if err := r.Register(custom); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 6 {
		t.Errorf("expected 6 levels, got %d", r.Len())
	}

	custom.InitialCraft.Fuel = 2
	if err := r.Register(custom); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 6 {
		t.Errorf("replacement should not grow the registry, got %d", r.Len())
	}
	got, _ := r.Get("custom")
	if got.InitialCraft.Fuel != 2 {
		t.Errorf("expected replaced level, got fuel %v", got.InitialCraft.Fuel)
	}

	bad := custom
	bad.Win = nil
	if err := r.Register(bad); !errors.Is(err, dynamo.ErrInvalidWinCondition) {
		t.Errorf("expected ErrInvalidWinCondition, got %v", err)
	}

	if err := r.Register(dynamo.Level{}); !errors.Is(err, dynamo.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel for unnamed level, got %v", err)
	}
}
