package physics

import (
	"math"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

// CraftMass maps remaining fuel to mass: 0.5 when empty, 1.0 at FuelRefBand.
func CraftMass(fuel float64) float64 {
	return EmptyMass + (1-EmptyMass)*(fuel/FuelRefBand)
}

// EngineAccel is the acceleration the engine would produce at the craft's
// current fuel level. A lighter craft accelerates faster.
func EngineAccel(c dynamo.Craft) float64 {
	return ThrustForce / CraftMass(c.Fuel)
}

// ApplyThrust pushes the craft along its orientation for dt. It does not
// check the engine flag or burn fuel; see ApplyEngine.
func ApplyThrust(c *dynamo.Craft, dt float64) {
	accel := EngineAccel(*c)
	angle := c.Orientation * math.Pi / 180
	c.VX += math.Sin(angle) * accel * dt
	c.VY -= math.Cos(angle) * accel * dt
}

// ApplyEngine thrusts and burns fuel when the engine is on and fuel remains.
// The engine shuts off when the tank reaches exactly zero.
func ApplyEngine(c *dynamo.Craft, dt float64) {
	if !c.EngineOn || c.Fuel <= 0 {
		return
	}
	ApplyThrust(c, dt)
	c.Fuel = math.Max(c.Fuel-dt, 0)
	if c.Fuel == 0 {
		c.EngineOn = false
	}
}
