package round

import (
	"sync"
	"time"
)

// Clock supplies the instants a Round measures elapsed time against.
type Clock interface {
	Now() time.Time
}

// WallClock reads the monotonic system clock.
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Headless runs and tests use it to
// keep elapsed time in lockstep with the integration step.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(0, 0)}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// AdvanceSeconds moves the clock forward by a fractional number of seconds.
func (c *ManualClock) AdvanceSeconds(s float64) {
	c.Advance(Seconds(s))
}

func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Seconds converts fractional seconds to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
