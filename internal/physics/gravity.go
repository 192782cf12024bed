package physics

import (
	"math"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

// BodyGravity returns the scaled gravitational constant of a body:
// GravityRef·(radius/RefRadius)³.
func BodyGravity(radius float64) float64 {
	r := radius / RefRadius
	return GravityRef * r * r * r
}

// GravityAccel returns the acceleration magnitude a body exerts at the given
// squared distance.
func GravityAccel(body dynamo.Body, distSq float64) float64 {
	return BodyGravity(body.Radius) / distSq
}

// ApplyGravity adds one body's pull to the craft velocity over dt.
// A craft exactly at the body center has no defined direction and is left
// untouched; collision detection removes such states before they persist.
func ApplyGravity(c *dynamo.Craft, body dynamo.Body, dt float64) {
	dx := body.X - c.X
	dy := body.Y - c.Y
	distSq := dx*dx + dy*dy
	if distSq == 0 {
		return
	}
	dist := math.Sqrt(distSq)
	accel := GravityAccel(body, distSq)
	c.VX += (dx / dist) * accel * dt
	c.VY += (dy / dist) * accel * dt
}

// ApplyGravityAll accumulates the pull of every body.
func ApplyGravityAll(c *dynamo.Craft, bodies []dynamo.Body, dt float64) {
	for _, b := range bodies {
		ApplyGravity(c, b, dt)
	}
}
