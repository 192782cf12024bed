package metrics

import (
	"math"

	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/round"
	"github.com/san-kum/orbitlander/internal/sim"
)

// TargetMiss is the smallest distance from the craft to the edge of the
// win circle, zero once the craft is inside or has won. It reports -1 for
// a level without a win condition or before any sample.
type TargetMiss struct {
	name string
	win  dynamo.WinCondition
	miss float64
}

func NewTargetMiss(win dynamo.WinCondition) *TargetMiss {
	return &TargetMiss{name: "target_miss", win: win, miss: math.Inf(1)}
}

func (m *TargetMiss) Name() string { return m.name }

func (m *TargetMiss) Observe(s sim.Sample) {
	if m.win == nil {
		return
	}
	if s.Outcome == round.Win {
		m.miss = 0
		return
	}
	x, y, r := m.win.Target()
	d := math.Max(math.Hypot(s.Craft.X-x, s.Craft.Y-y)-r, 0)
	m.miss = math.Min(m.miss, d)
}

func (m *TargetMiss) Value() float64 {
	if math.IsInf(m.miss, 1) {
		return -1
	}
	return m.miss
}

func (m *TargetMiss) Reset() { m.miss = math.Inf(1) }
