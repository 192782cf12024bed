package control

import (
	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/physics"
)

// Engine is a requested engine state change.
type Engine int

const (
	EngineKeep Engine = iota
	EngineOn
	EngineOff
)

// Command is one tick of pilot input.
type Command struct {
	RotateLeft  bool
	RotateRight bool
	Engine      Engine

	// Aim snaps the craft to Orientation instead of rotating at the
	// fixed rate.
	Aim         bool
	Orientation float64
}

type Controller interface {
	Command(c dynamo.Craft, t float64) Command
}

// Rotate turns the craft at RotationSpeed degrees per second. Holding both
// directions cancels out.
func Rotate(c *dynamo.Craft, dt float64, left, right bool) {
	if right {
		c.Orientation += physics.RotationSpeed * dt
	}
	if left {
		c.Orientation -= physics.RotationSpeed * dt
	}
	c.Orientation = dynamo.NormalizeDegrees(c.Orientation)
}

func SetEngine(c *dynamo.Craft, on bool) {
	c.EngineOn = on
}

// Apply performs cmd on the craft.
func Apply(c *dynamo.Craft, cmd Command, dt float64) {
	if cmd.Aim {
		c.Orientation = dynamo.NormalizeDegrees(cmd.Orientation)
	} else {
		Rotate(c, dt, cmd.RotateLeft, cmd.RotateRight)
	}
	switch cmd.Engine {
	case EngineOn:
		SetEngine(c, true)
	case EngineOff:
		SetEngine(c, false)
	}
}
