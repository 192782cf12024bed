package metrics

import "github.com/san-kum/orbitlander/internal/sim"

// FuelUsed sums every drop in fuel between samples. Refills from collision
// resets are not subtracted.
type FuelUsed struct {
	name string
	prev float64
	used float64
	seen bool
}

func NewFuelUsed() *FuelUsed {
	return &FuelUsed{name: "fuel_used"}
}

func (f *FuelUsed) Name() string { return f.name }

func (f *FuelUsed) Observe(s sim.Sample) {
	if f.seen && s.Craft.Fuel < f.prev {
		f.used += f.prev - s.Craft.Fuel
	}
	f.prev = s.Craft.Fuel
	f.seen = true
}

func (f *FuelUsed) Value() float64 { return f.used }

func (f *FuelUsed) Reset() {
	f.prev = 0
	f.used = 0
	f.seen = false
}

// BurnTime is the number of seconds the engine was on at a sample.
type BurnTime struct {
	name  string
	prevT float64
	total float64
}

func NewBurnTime() *BurnTime {
	return &BurnTime{name: "burn_time"}
}

func (b *BurnTime) Name() string { return b.name }

func (b *BurnTime) Observe(s sim.Sample) {
	if s.Craft.EngineOn {
		b.total += s.T - b.prevT
	}
	b.prevT = s.T
}

func (b *BurnTime) Value() float64 { return b.total }

func (b *BurnTime) Reset() {
	b.prevT = 0
	b.total = 0
}
