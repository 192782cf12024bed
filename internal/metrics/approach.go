package metrics

import (
	"math"

	"github.com/san-kum/orbitlander/internal/physics"
	"github.com/san-kum/orbitlander/internal/sim"
)

// ClosestApproach is the smallest distance from the craft to any body
// surface. It reports -1 when no body was ever present.
type ClosestApproach struct {
	name    string
	closest float64
}

func NewClosestApproach() *ClosestApproach {
	return &ClosestApproach{name: "closest_approach", closest: math.Inf(1)}
}

func (c *ClosestApproach) Name() string { return c.name }

func (c *ClosestApproach) Observe(s sim.Sample) {
	if d, ok := physics.ClosestSurfaceDistance(s.Craft, s.Bodies); ok {
		c.closest = math.Min(c.closest, d)
	}
}

func (c *ClosestApproach) Value() float64 {
	if math.IsInf(c.closest, 1) {
		return -1
	}
	return c.closest
}

func (c *ClosestApproach) Reset() { c.closest = math.Inf(1) }
