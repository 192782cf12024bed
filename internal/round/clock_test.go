package round

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	c := NewManualClock()
	start := c.Now()

	c.Advance(2 * time.Second)
	c.AdvanceSeconds(0.5)

	if got := c.Now().Sub(start); got != 2500*time.Millisecond {
		t.Errorf("expected 2.5s, got %v", got)
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Error("Set did not move clock back")
	}
}

func TestWallClockMonotonic(t *testing.T) {
	var c WallClock
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Errorf("wall clock went backwards: %v then %v", a, b)
	}
}

func TestSeconds(t *testing.T) {
	if Seconds(1.25) != 1250*time.Millisecond {
		t.Errorf("expected 1.25s, got %v", Seconds(1.25))
	}
}
