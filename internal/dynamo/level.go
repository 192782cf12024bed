package dynamo

import (
	"fmt"
	"math"
)

// Level is immutable round data. InitialCraft is copied at round start and
// on every collision reset.
type Level struct {
	Name         string
	Bodies       []BodyDef
	InitialCraft Craft
	Win          WinCondition
}

// Validate checks the level invariants and returns a *LevelError wrapping
// ErrInvalidLevel or ErrInvalidWinCondition on the first violation.
func (l Level) Validate() error {
	fail := func(field string) error {
		return &LevelError{Level: l.Name, Field: field, Wrapped: ErrInvalidLevel}
	}
	for i, b := range l.Bodies {
		if !finite(b.CenterX, b.CenterY, b.Radius) || b.Radius <= 0 {
			return fail(fmt.Sprintf("bodies[%d].radius must be > 0", i))
		}
		if b.Orbit != nil {
			if !finite(b.Orbit.Radius, b.Orbit.Speed, b.Orbit.Phase) || b.Orbit.Radius < 0 {
				return fail(fmt.Sprintf("bodies[%d].orbit.radius must be >= 0", i))
			}
		}
	}
	if !l.InitialCraft.IsValid() {
		return fail("craft has non-finite values")
	}
	if l.InitialCraft.Fuel < 0 {
		return fail("craft.fuel must be >= 0")
	}
	switch w := l.Win.(type) {
	case CircleUnderSpeed:
		if !finite(w.X, w.Y, w.Radius, w.MaxSpeed) || w.Radius <= 0 || w.MaxSpeed <= 0 {
			return &LevelError{Level: l.Name, Field: "win radius and max_speed must be > 0", Wrapped: ErrInvalidWinCondition}
		}
	case CircleAnySpeed:
		if !finite(w.X, w.Y, w.Radius) || w.Radius <= 0 {
			return &LevelError{Level: l.Name, Field: "win radius must be > 0", Wrapped: ErrInvalidWinCondition}
		}
	default:
		return &LevelError{Level: l.Name, Field: "win condition missing", Wrapped: ErrInvalidWinCondition}
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
