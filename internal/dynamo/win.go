package dynamo

import "fmt"

// WinCondition is the per-level arrival predicate. The concrete variants are
// CircleUnderSpeed and CircleAnySpeed; physics.CheckWin evaluates them.
type WinCondition interface {
	// Target returns the goal circle.
	Target() (x, y, radius float64)
	// Description is the one-line goal shown to the player.
	Description() string
	isWinCondition()
}

// CircleUnderSpeed requires the craft inside the circle, slower than MaxSpeed,
// with the engine off.
type CircleUnderSpeed struct {
	X, Y     float64
	Radius   float64
	MaxSpeed float64
}

func (c CircleUnderSpeed) Target() (float64, float64, float64) { return c.X, c.Y, c.Radius }

func (c CircleUnderSpeed) Description() string {
	return fmt.Sprintf("Reach the green circle at under %.0f px/s with engine off", c.MaxSpeed)
}

func (CircleUnderSpeed) isWinCondition() {}

// CircleAnySpeed requires the craft inside the circle with the engine off.
type CircleAnySpeed struct {
	X, Y   float64
	Radius float64
}

func (c CircleAnySpeed) Target() (float64, float64, float64) { return c.X, c.Y, c.Radius }

func (c CircleAnySpeed) Description() string {
	return "Reach the green circle with engine off"
}

func (CircleAnySpeed) isWinCondition() {}

// Win condition kinds used in level files.
const (
	WinKindCircle         = "circle"
	WinKindCircleAnySpeed = "circle_any_speed"
)

// WinSpec is the flat, serialisable form of a WinCondition.
type WinSpec struct {
	Kind     string  `yaml:"kind" json:"kind"`
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Radius   float64 `yaml:"radius" json:"radius"`
	MaxSpeed float64 `yaml:"max_speed,omitempty" json:"max_speed,omitempty"`
}

// Build converts the spec into its WinCondition variant.
func (s WinSpec) Build() (WinCondition, error) {
	switch s.Kind {
	case WinKindCircle:
		return CircleUnderSpeed{X: s.X, Y: s.Y, Radius: s.Radius, MaxSpeed: s.MaxSpeed}, nil
	case WinKindCircleAnySpeed:
		return CircleAnySpeed{X: s.X, Y: s.Y, Radius: s.Radius}, nil
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidWinCondition, s.Kind)
	}
}

// SpecOf flattens a WinCondition for serialisation.
func SpecOf(w WinCondition) WinSpec {
	switch c := w.(type) {
	case CircleUnderSpeed:
		return WinSpec{Kind: WinKindCircle, X: c.X, Y: c.Y, Radius: c.Radius, MaxSpeed: c.MaxSpeed}
	case CircleAnySpeed:
		return WinSpec{Kind: WinKindCircleAnySpeed, X: c.X, Y: c.Y, Radius: c.Radius}
	default:
		return WinSpec{}
	}
}
