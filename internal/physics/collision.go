package physics

import (
	"math"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

// CheckCollision reports whether the craft center is strictly inside the body.
func CheckCollision(c dynamo.Craft, body dynamo.Body) bool {
	dx := c.X - body.X
	dy := c.Y - body.Y
	return dx*dx+dy*dy < body.Radius*body.Radius
}

// FirstCollision returns the index of the first body the craft is inside,
// or -1.
func FirstCollision(c dynamo.Craft, bodies []dynamo.Body) int {
	for i, b := range bodies {
		if CheckCollision(c, b) {
			return i
		}
	}
	return -1
}

// CheckWin evaluates the level's win condition. A running engine always
// disqualifies the craft.
func CheckWin(c dynamo.Craft, cond dynamo.WinCondition) bool {
	if c.EngineOn {
		return false
	}
	switch w := cond.(type) {
	case dynamo.CircleUnderSpeed:
		return insideCircle(c, w.X, w.Y, w.Radius) && c.Speed() < w.MaxSpeed
	case dynamo.CircleAnySpeed:
		return insideCircle(c, w.X, w.Y, w.Radius)
	default:
		return false
	}
}

func insideCircle(c dynamo.Craft, x, y, radius float64) bool {
	dx := c.X - x
	dy := c.Y - y
	return dx*dx+dy*dy < radius*radius
}

// ClosestSurfaceDistance returns the distance from the craft to the nearest
// body surface. ok is false when there are no bodies.
func ClosestSurfaceDistance(c dynamo.Craft, bodies []dynamo.Body) (dist float64, ok bool) {
	dist = math.Inf(1)
	for _, b := range bodies {
		dx := c.X - b.X
		dy := c.Y - b.Y
		d := math.Sqrt(dx*dx+dy*dy) - b.Radius
		if d < dist {
			dist = d
		}
	}
	return dist, len(bodies) > 0
}
