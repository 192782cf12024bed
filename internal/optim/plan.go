package optim

import (
	"context"
	"math"

	"github.com/san-kum/orbitlander/internal/control"
	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/metrics"
	"github.com/san-kum/orbitlander/internal/sim"
)

// Parameter names understood by SingleBurn.
const (
	ParamAt          = "at"
	ParamDuration    = "duration"
	ParamOrientation = "orientation"
)

// crashPenalty is added to a plan's score for every collision.
const crashPenalty = 1000.0

func SingleBurn(params map[string]float64) control.Burn {
	return control.Burn{
		At:          params[ParamAt],
		Duration:    params[ParamDuration],
		Orientation: params[ParamOrientation],
	}
}

// PlanObjective flies a one-burn plan on level. A winning plan scores
// its win time minus the run duration minus one, so every win is negative
// and earlier wins rank lower; other plans score their closest miss of the
// target plus a crash penalty.
func PlanObjective(level dynamo.Level, cfg sim.Config) Objective {
	cfg.StopOnWin = true
	if cfg.Dt > 0 {
		cfg.RecordEvery = int(cfg.Duration/cfg.Dt) + 1
	}

	return func(ctx context.Context, params map[string]float64) (float64, error) {
		plan := control.NewFlightPlan([]control.Burn{SingleBurn(params)})
		if err := plan.Validate(); err != nil {
			return 0, err
		}

		runner := sim.New(plan)
		miss := metrics.NewTargetMiss(level.Win)
		runner.AddMetric(miss)

		result, err := runner.Run(ctx, level, cfg)
		if err != nil {
			return 0, err
		}
		if result.Won {
			return result.WinTime - cfg.Duration - 1, nil
		}

		score := miss.Value()
		if score < 0 {
			score = math.Inf(1)
		}
		return score + crashPenalty*float64(result.Collisions), nil
	}
}

// Solution is the best single-burn plan found for a level.
type Solution struct {
	Burn        control.Burn
	Score       float64
	Won         bool
	Evaluations int
}

// SolveSingleBurn grid-searches burn start, duration and heading for the
// plan that best reaches the level's target.
func SolveSingleBurn(ctx context.Context, level dynamo.Level, cfg sim.Config, at, duration, orientation []float64) (Solution, error) {
	g := NewGridSearch(
		[]string{ParamAt, ParamDuration, ParamOrientation},
		[][]float64{at, duration, orientation},
	)
	params, score, err := g.Search(ctx, PlanObjective(level, cfg))
	if err != nil {
		return Solution{}, err
	}
	return Solution{
		Burn:        SingleBurn(params),
		Score:       score,
		Won:         score < 0,
		Evaluations: g.Evaluations(),
	}, nil
}
