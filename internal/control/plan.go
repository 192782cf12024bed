package control

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

// Burn fires the engine for Duration seconds starting at At, pointing the
// craft at Orientation degrees.
type Burn struct {
	At          float64 `yaml:"at" json:"at"`
	Duration    float64 `yaml:"duration" json:"duration"`
	Orientation float64 `yaml:"orientation" json:"orientation"`
}

func (b Burn) End() float64 { return b.At + b.Duration }

// FlightPlan is a schedule of burns ordered by start time. Outside a burn
// the engine is switched off.
type FlightPlan struct {
	burns []Burn
}

func NewFlightPlan(burns []Burn) *FlightPlan {
	sorted := make([]Burn, len(burns))
	copy(sorted, burns)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return &FlightPlan{burns: sorted}
}

func (p *FlightPlan) Burns() []Burn {
	out := make([]Burn, len(p.burns))
	copy(out, p.burns)
	return out
}

// Validate rejects negative or non-finite timings and overlapping burns.
func (p *FlightPlan) Validate() error {
	for i, b := range p.burns {
		if math.IsNaN(b.At) || math.IsInf(b.At, 0) || b.At < 0 {
			return fmt.Errorf("burn %d: start must be >= 0, got %v", i, b.At)
		}
		if math.IsNaN(b.Duration) || math.IsInf(b.Duration, 0) || b.Duration <= 0 {
			return fmt.Errorf("burn %d: duration must be > 0, got %v", i, b.Duration)
		}
		if i > 0 && b.At < p.burns[i-1].End() {
			return fmt.Errorf("burn %d overlaps burn %d", i, i-1)
		}
	}
	return nil
}

// Active returns the burn covering t.
func (p *FlightPlan) Active(t float64) (Burn, bool) {
	for _, b := range p.burns {
		if t >= b.At && t < b.End() {
			return b, true
		}
		if b.At > t {
			break
		}
	}
	return Burn{}, false
}

// Command aims and fires for the active burn. An empty tank is never
// re-ignited, so the engine stays off once the fuel runs out mid-burn.
func (p *FlightPlan) Command(c dynamo.Craft, t float64) Command {
	b, ok := p.Active(t)
	if !ok {
		return Command{Engine: EngineOff}
	}
	cmd := Command{Aim: true, Orientation: b.Orientation, Engine: EngineOn}
	if c.Fuel <= 0 {
		cmd.Engine = EngineKeep
	}
	return cmd
}
