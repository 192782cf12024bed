package dynamo

import "math"

// Craft is the controllable vehicle. Orientation is in degrees, 0 pointing
// up in screen space and increasing clockwise. Fuel is seconds of burn left.
type Craft struct {
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	VX          float64 `yaml:"vx" json:"vx"`
	VY          float64 `yaml:"vy" json:"vy"`
	Orientation float64 `yaml:"orientation" json:"orientation"`
	Landed      bool    `yaml:"landed" json:"landed"`
	EngineOn    bool    `yaml:"engine_on" json:"engine_on"`
	Fuel        float64 `yaml:"fuel" json:"fuel"`
}

// Clone returns an independent copy.
func (c Craft) Clone() Craft {
	return c
}

// Speed is the magnitude of the velocity vector.
func (c Craft) Speed() float64 {
	return math.Sqrt(c.VX*c.VX + c.VY*c.VY)
}

// Position returns the craft center.
func (c Craft) Position() (float64, float64) {
	return c.X, c.Y
}

// Velocity returns the velocity components.
func (c Craft) Velocity() (float64, float64) {
	return c.VX, c.VY
}

// IsValid reports whether every numeric field is finite.
func (c Craft) IsValid() bool {
	for _, v := range []float64{c.X, c.Y, c.VX, c.VY, c.Orientation, c.Fuel} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
