package metrics

import (
	"github.com/san-kum/orbitlander/internal/round"
	"github.com/san-kum/orbitlander/internal/sim"
)

type Collisions struct {
	name  string
	count int
}

func NewCollisions() *Collisions {
	return &Collisions{name: "collisions"}
}

func (c *Collisions) Name() string { return c.name }

func (c *Collisions) Observe(s sim.Sample) {
	if s.Outcome == round.Collision {
		c.count++
	}
}

func (c *Collisions) Value() float64 { return float64(c.count) }

func (c *Collisions) Reset() { c.count = 0 }

// Default returns one fresh instance of every metric.
func Default() []sim.Metric {
	return []sim.Metric{
		NewMaxSpeed(),
		NewMeanSpeed(),
		NewFuelUsed(),
		NewBurnTime(),
		NewClosestApproach(),
		NewCollisions(),
	}
}
