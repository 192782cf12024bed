package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbitlander/internal/control"
	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/levels"
	"github.com/san-kum/orbitlander/internal/round"
)

var farWin = dynamo.CircleAnySpeed{X: 1e6, Y: 1e6, Radius: 1}

func emptyLevel(craft dynamo.Craft) dynamo.Level {
	return dynamo.Level{Name: "empty", InitialCraft: craft, Win: farWin}
}

type countingMetric struct {
	n int
}

func (c *countingMetric) Name() string     { return "count" }
func (c *countingMetric) Observe(s Sample) { c.n++ }
func (c *countingMetric) Value() float64   { return float64(c.n) }
func (c *countingMetric) Reset()           { c.n = 0 }

func TestRunnerRun(t *testing.T) {
	sim := New(nil)

	cfg := Config{
		Dt:       0.1,
		Duration: 1.0,
	}

	result, err := sim.Run(context.Background(), emptyLevel(dynamo.Craft{VX: 100, Fuel: 20}), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Samples) != 11 {
		t.Errorf("expected 11 samples, got %d", len(result.Samples))
	}
	if result.StepsTaken != 10 {
		t.Errorf("expected 10 steps, got %d", result.StepsTaken)
	}
	if math.Abs(result.Final.X-100) > 1e-9 {
		t.Errorf("expected final x 100, got %.4f", result.Final.X)
	}
	last := result.Samples[len(result.Samples)-1]
	if math.Abs(last.T-1.0) > 1e-6 {
		t.Errorf("expected last sample at t=1, got %f", last.T)
	}
	if result.Outcome() != round.None {
		t.Errorf("expected no outcome, got %v", result.Outcome())
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	sim := New(nil)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
		{"negative record interval", Config{Dt: 0.1, Duration: 1.0, RecordEvery: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(context.Background(), emptyLevel(dynamo.Craft{}), tt.cfg)
			if !errors.Is(err, dynamo.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRunnerInvalidLevel(t *testing.T) {
	_, err := New(nil).Run(context.Background(), dynamo.Level{Name: "broken"}, Config{Dt: 0.1, Duration: 1})
	if !errors.Is(err, dynamo.ErrInvalidWinCondition) {
		t.Errorf("expected ErrInvalidWinCondition, got %v", err)
	}
}

func TestRunnerCollisions(t *testing.T) {
	level := dynamo.Level{
		Name:         "trap",
		Bodies:       []dynamo.BodyDef{{CenterX: 0, CenterY: 0, Radius: 20}},
		InitialCraft: dynamo.Craft{},
		Win:          farWin,
	}

	result, err := New(nil).Run(context.Background(), level, Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Collisions != 10 {
		t.Errorf("expected 10 collisions, got %d", result.Collisions)
	}
	if len(result.Events) != 10 {
		t.Errorf("expected 10 events, got %d", len(result.Events))
	}
	if result.Outcome() != round.Collision {
		t.Errorf("expected collision outcome, got %v", result.Outcome())
	}
}

func TestRunnerStopOnWin(t *testing.T) {
	level := dynamo.Level{
		Name:         "home",
		InitialCraft: dynamo.Craft{Fuel: 1},
		Win:          dynamo.CircleAnySpeed{Radius: 10},
	}

	result, err := New(nil).Run(context.Background(), level, Config{Dt: 0.1, Duration: 5.0, StopOnWin: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !result.Won || result.StepsTaken != 1 {
		t.Errorf("expected win after one step, got won=%v steps=%d", result.Won, result.StepsTaken)
	}
	if math.Abs(result.WinTime-0.1) > 1e-6 {
		t.Errorf("expected win at 0.1, got %f", result.WinTime)
	}

	result, err = New(nil).Run(context.Background(), level, Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.StepsTaken != 10 || len(result.Events) != 1 {
		t.Errorf("expected full run with one win event, got steps=%d events=%d", result.StepsTaken, len(result.Events))
	}
}

func TestRunnerFlightPlan(t *testing.T) {
	plan := control.NewFlightPlan([]control.Burn{{At: 0, Duration: 1, Orientation: 90}})
	sim := New(plan)

	result, err := sim.Run(context.Background(), emptyLevel(dynamo.Craft{Fuel: 20}), Config{Dt: 0.1, Duration: 2.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	final := result.Final
	if final.EngineOn {
		t.Error("engine should be off after the burn")
	}
	if math.Abs(final.Fuel-19) > 1e-9 {
		t.Errorf("expected 19 fuel left, got %f", final.Fuel)
	}
	if final.VX <= 9 || math.Abs(final.VY) > 1e-9 {
		t.Errorf("expected rightward velocity around 10, got (%f, %f)", final.VX, final.VY)
	}
	if final.Orientation != 90 {
		t.Errorf("expected orientation 90, got %f", final.Orientation)
	}
}

func TestRunnerBurnOutlastsFuel(t *testing.T) {
	level := dynamo.Level{
		Name:         "dry",
		InitialCraft: dynamo.Craft{Fuel: 0.5},
		Win:          dynamo.CircleAnySpeed{Radius: 1000},
	}
	plan := control.NewFlightPlan([]control.Burn{{At: 0, Duration: 3, Orientation: 0}})

	result, err := New(plan).Run(context.Background(), level, Config{Dt: 0.1, Duration: 3.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, s := range result.Samples {
		if s.Craft.Fuel <= 0 && s.Craft.EngineOn {
			t.Fatalf("t=%.1f: engine on with an empty tank", s.T)
		}
	}
	if !result.Won || result.WinTime > 0.7+1e-9 {
		t.Errorf("expected a win once the tank ran dry, got won=%v at %f", result.Won, result.WinTime)
	}
	last := result.Samples[len(result.Samples)-1]
	if last.Outcome != round.Win {
		t.Errorf("craft should still be winning at the end of the burn window, got %v", last.Outcome)
	}
	if result.Final.Fuel != 0 || result.Final.EngineOn {
		t.Errorf("expected empty tank with engine off, got %+v", result.Final)
	}
}

func TestRunnerBodiesFollowClock(t *testing.T) {
	def := dynamo.BodyDef{CenterX: 0, CenterY: 0, Radius: 5, Orbit: &dynamo.Orbit{Radius: 100, Speed: 1}}
	level := dynamo.Level{
		Name:         "moon",
		Bodies:       []dynamo.BodyDef{def},
		InitialCraft: dynamo.Craft{X: 1000, Y: 1000},
		Win:          farWin,
	}

	result, err := New(nil).Run(context.Background(), level, Config{Dt: 0.25, Duration: 2.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, s := range result.Samples {
		want := def.PositionAt(s.T)
		got := s.Bodies[0]
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("t=%.2f: body at (%f, %f), want (%f, %f)", s.T, got.X, got.Y, want.X, want.Y)
		}
	}
}

func TestRunnerRecordEvery(t *testing.T) {
	result, err := New(nil).Run(context.Background(), emptyLevel(dynamo.Craft{}), Config{Dt: 0.1, Duration: 1.0, RecordEvery: 5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Samples) != 3 {
		t.Errorf("expected 3 samples, got %d", len(result.Samples))
	}
}

func TestRunnerMetricsAndObservers(t *testing.T) {
	sim := New(nil)
	m := &countingMetric{}
	sim.AddMetric(m)

	seen := 0
	sim.AddObserver(ObserverFunc(func(s Sample) { seen++ }))

	result, err := sim.Run(context.Background(), emptyLevel(dynamo.Craft{}), Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Metrics["count"] != 10 {
		t.Errorf("expected metric 10, got %f", result.Metrics["count"])
	}
	if seen != 10 {
		t.Errorf("expected 10 observer calls, got %d", seen)
	}

	if _, err := sim.Run(context.Background(), emptyLevel(dynamo.Craft{}), Config{Dt: 0.1, Duration: 0.5}); err != nil {
		t.Fatal(err)
	}
	if m.n != 5 {
		t.Errorf("metric not reset between runs, got %d", m.n)
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(nil).Run(ctx, emptyLevel(dynamo.Craft{}), Config{Dt: 0.1, Duration: 1.0})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.StepsTaken != 0 {
		t.Errorf("expected partial result with no steps, got %+v", result)
	}
}

func TestRunWithCallback(t *testing.T) {
	calls := 0
	err := New(nil).RunWithCallback(context.Background(), emptyLevel(dynamo.Craft{VX: 1}), Config{Dt: 0.1, Duration: 10}, func(s Sample) bool {
		calls++
		return s.T < 0.45
	})
	if err != nil {
		t.Fatalf("callback run failed: %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 callbacks, got %d", calls)
	}
}

func TestBatch(t *testing.T) {
	all := levels.All(levels.DefaultWidth, levels.DefaultHeight)
	batch := NewBatch(func() *Runner {
		r := New(nil)
		r.AddMetric(&countingMetric{})
		return r
	}, 2)

	results, err := batch.Run(context.Background(), all, Config{Dt: 0.05, Duration: 1.0})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if len(results) != len(all) {
		t.Fatalf("expected %d results, got %d", len(all), len(results))
	}
	for i, res := range results {
		if res.Level != all[i].Name {
			t.Errorf("result %d is for %s, want %s", i, res.Level, all[i].Name)
		}
		if res.Metrics["count"] != 20 {
			t.Errorf("%s: expected 20 observations, got %f", res.Level, res.Metrics["count"])
		}
	}
}

func TestBatch_Error(t *testing.T) {
	batch := NewBatch(func() *Runner { return New(nil) }, 0)
	_, err := batch.Run(context.Background(), []dynamo.Level{emptyLevel(dynamo.Craft{})}, Config{Dt: 0, Duration: 1})
	if !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
