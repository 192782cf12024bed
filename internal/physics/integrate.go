package physics

import "github.com/san-kum/orbitlander/internal/dynamo"

// Move advances the craft position with its current velocity.
func Move(c *dynamo.Craft, dt float64) {
	c.X += c.VX * dt
	c.Y += c.VY * dt
}

// Step runs one full tick: gravity from every body, engine, then position.
func Step(c *dynamo.Craft, bodies []dynamo.Body, dt float64) {
	ApplyGravityAll(c, bodies, dt)
	ApplyEngine(c, dt)
	Move(c, dt)
}
