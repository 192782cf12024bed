package dynamo

import "math"

// Body is a gravitating, collidable circle at a resolved instant.
type Body struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Orbit attaches circular motion around a body definition's center.
// Speed is in radians per second; its sign selects the direction.
type Orbit struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Phase  float64 `yaml:"phase"`
}

// BodyDef is immutable level data for one body. A nil Orbit means the body
// sits at its center for the whole round.
type BodyDef struct {
	CenterX float64 `yaml:"x"`
	CenterY float64 `yaml:"y"`
	Radius  float64 `yaml:"radius"`
	Orbit   *Orbit  `yaml:"orbit,omitempty"`
}

// PositionAt resolves the body at simulated time t (seconds since round start).
// It is pure and periodic in t with period 2π/Speed when orbiting.
func (d BodyDef) PositionAt(t float64) Body {
	if d.Orbit == nil {
		return Body{X: d.CenterX, Y: d.CenterY, Radius: d.Radius}
	}
	angle := d.Orbit.Phase + d.Orbit.Speed*t
	return Body{
		X:      d.CenterX + d.Orbit.Radius*math.Cos(angle),
		Y:      d.CenterY + d.Orbit.Radius*math.Sin(angle),
		Radius: d.Radius,
	}
}

// IsOrbiting reports whether the body moves over time.
func (d BodyDef) IsOrbiting() bool {
	return d.Orbit != nil
}

// BodiesAt resolves every definition at time t, preserving order.
func BodiesAt(defs []BodyDef, t float64) []Body {
	bodies := make([]Body, len(defs))
	for i, d := range defs {
		bodies[i] = d.PositionAt(t)
	}
	return bodies
}
