package sim

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/san-kum/orbitlander/internal/control"
	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/round"
)

// Runner plays a level headlessly at a fixed dt. Elapsed time is driven by
// a ManualClock so body positions depend only on the step count.
type Runner struct {
	controller control.Controller
	metrics    []Metric
	observers  []Observer
	logger     zerolog.Logger
}

func New(controller control.Controller) *Runner {
	if controller == nil {
		controller = control.NewNone()
	}
	return &Runner{
		controller: controller,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
		logger:     zerolog.Nop(),
	}
}

func (s *Runner) AddMetric(m Metric)         { s.metrics = append(s.metrics, m) }
func (s *Runner) AddObserver(o Observer)     { s.observers = append(s.observers, o) }
func (s *Runner) SetLogger(l zerolog.Logger) { s.logger = l }

func (s *Runner) Run(ctx context.Context, level dynamo.Level, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	clock := round.NewManualClock()
	origin := clock.Now()
	rd := round.New(level, round.WithClock(clock), round.WithLogger(s.logger))

	steps := int(cfg.Duration/cfg.Dt + 1e-9)
	every := cfg.RecordEvery
	if every <= 0 {
		every = 1
	}

	result := &Result{
		Level:   level.Name,
		RoundID: rd.ID(),
		Samples: make([]Sample, 0, steps/every+1),
		Events:  make([]Event, 0),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result.Samples = append(result.Samples, Sample{
		Craft:  rd.Craft(),
		Bodies: rd.CurrentBodies(),
	})

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.Final = rd.Craft()
			return result, ctx.Err()
		default:
		}

		cmd := s.controller.Command(rd.Craft(), rd.Elapsed())
		control.Apply(rd.Controls(), cmd, cfg.Dt)
		outcome := rd.Tick(cfg.Dt)

		clock.Set(origin.Add(round.Seconds(float64(i+1) * cfg.Dt)))
		result.StepsTaken++

		sample := Sample{
			T:       rd.Elapsed(),
			Craft:   rd.Craft(),
			Bodies:  rd.CurrentBodies(),
			Outcome: outcome,
		}

		for _, m := range s.metrics {
			m.Observe(sample)
		}
		for _, obs := range s.observers {
			obs.OnStep(sample)
		}

		if (i+1)%every == 0 || outcome != round.None {
			result.Samples = append(result.Samples, sample)
		}

		if cfg.ValidateState && !sample.Craft.IsValid() {
			result.Errors = append(result.Errors, SimError{Time: sample.T, Step: i, Message: "invalid craft state (NaN/Inf)"})
			break
		}

		switch outcome {
		case round.Collision:
			result.Collisions++
			result.Events = append(result.Events, Event{T: sample.T, Outcome: outcome, X: sample.Craft.X, Y: sample.Craft.Y})
		case round.Win:
			if !result.Won {
				result.Won = true
				result.WinTime = sample.T
				result.Events = append(result.Events, Event{T: sample.T, Outcome: outcome, X: sample.Craft.X, Y: sample.Craft.Y})
			}
		}

		if result.Won && cfg.StopOnWin {
			break
		}
	}

	result.Final = rd.Craft()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Debug().
		Str("level", level.Name).
		Int("steps", result.StepsTaken).
		Bool("won", result.Won).
		Int("collisions", result.Collisions).
		Msg("run finished")

	return result, nil
}

func (s *Runner) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Duration)
	}
	if cfg.RecordEvery < 0 {
		return fmt.Errorf("%w: record interval must be >= 0, got %d", dynamo.ErrInvalidConfig, cfg.RecordEvery)
	}
	return nil
}

// RunWithCallback steps the level until the callback returns false, the
// duration elapses or ctx is cancelled. Nothing is recorded.
func (s *Runner) RunWithCallback(ctx context.Context, level dynamo.Level, cfg Config, callback func(Sample) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}
	if err := level.Validate(); err != nil {
		return err
	}

	clock := round.NewManualClock()
	origin := clock.Now()
	rd := round.New(level, round.WithClock(clock), round.WithLogger(s.logger))
	steps := int(cfg.Duration/cfg.Dt + 1e-9)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		control.Apply(rd.Controls(), s.controller.Command(rd.Craft(), rd.Elapsed()), cfg.Dt)
		outcome := rd.Tick(cfg.Dt)
		clock.Set(origin.Add(round.Seconds(float64(i+1) * cfg.Dt)))

		sample := Sample{T: rd.Elapsed(), Craft: rd.Craft(), Outcome: outcome}
		if !callback(sample) {
			return nil
		}
		if cfg.ValidateState && !sample.Craft.IsValid() {
			return fmt.Errorf("invalid craft state at t=%.4f", sample.T)
		}
	}

	return nil
}
