package sim

import (
	"fmt"

	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/round"
)

// Sample is the round state after one tick.
type Sample struct {
	T       float64       `json:"t"`
	Craft   dynamo.Craft  `json:"craft"`
	Bodies  []dynamo.Body `json:"bodies,omitempty"`
	Outcome round.Outcome `json:"outcome"`
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Sample)
}

type ObserverFunc func(s Sample)

func (f ObserverFunc) OnStep(s Sample) { f(s) }

type Config struct {
	Dt       float64
	Duration float64

	// StopOnWin ends the run on the first Win outcome.
	StopOnWin bool
	// RecordEvery keeps every nth sample in Result.Samples. Zero keeps all.
	RecordEvery   int
	ValidateState bool
}

// Event is a non-None tick outcome.
type Event struct {
	T       float64       `json:"t"`
	Outcome round.Outcome `json:"outcome"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
}

type Result struct {
	Level      string             `json:"level"`
	RoundID    string             `json:"round_id"`
	Samples    []Sample           `json:"samples"`
	Events     []Event            `json:"events"`
	Won        bool               `json:"won"`
	WinTime    float64            `json:"win_time,omitempty"`
	Collisions int                `json:"collisions"`
	StepsTaken int                `json:"steps_taken"`
	Final      dynamo.Craft       `json:"final"`
	Metrics    map[string]float64 `json:"metrics"`
	Errors     []error            `json:"-"`
}

// Outcome summarises the run: Win if the craft won, otherwise Collision if
// it ever crashed, otherwise None.
func (r *Result) Outcome() round.Outcome {
	switch {
	case r.Won:
		return round.Win
	case r.Collisions > 0:
		return round.Collision
	default:
		return round.None
	}
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("sim error at t=%.4f (step %d): %s", e.Time, e.Step, e.Message)
}
