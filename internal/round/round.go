package round

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/physics"
)

type Round struct {
	id     string
	level  dynamo.Level
	craft  dynamo.Craft
	clock  Clock
	start  time.Time
	base   zerolog.Logger
	logger zerolog.Logger

	collisions int
	won        bool
}

type Option func(*Round)

// WithClock replaces the wall clock. The start instant is read from the
// new clock after all options are applied.
func WithClock(c Clock) Option {
	return func(r *Round) { r.clock = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Round) { r.base = l }
}

// New starts a round of level. The craft is a fresh copy of the level's
// initial craft and elapsed time starts at zero.
func New(level dynamo.Level, opts ...Option) *Round {
	r := &Round{
		id:    uuid.NewString(),
		level: level,
		clock: WallClock{},
		base:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.begin()
	r.logger.Debug().Msg("round started")
	return r
}

func (r *Round) begin() {
	r.logger = r.base.With().Str("round_id", r.id).Str("level", r.level.Name).Logger()
	r.craft = r.level.InitialCraft.Clone()
	r.start = r.clock.Now()
	r.collisions = 0
	r.won = false
}

func (r *Round) ID() string          { return r.id }
func (r *Round) Level() dynamo.Level { return r.level }

// Collisions counts collision resets since the round started.
func (r *Round) Collisions() int { return r.collisions }

// Won reports whether any tick so far returned Win.
func (r *Round) Won() bool { return r.won }

// Elapsed returns seconds since the round started.
func (r *Round) Elapsed() float64 {
	return r.clock.Now().Sub(r.start).Seconds()
}

// CurrentBodies evaluates every body definition at the current elapsed time.
func (r *Round) CurrentBodies() []dynamo.Body {
	return dynamo.BodiesAt(r.level.Bodies, r.Elapsed())
}

// Craft returns a copy of the craft state.
func (r *Round) Craft() dynamo.Craft { return r.craft }

// Controls exposes the craft for input collaborators that change
// orientation or engine state between ticks. Position and velocity belong
// to Tick.
func (r *Round) Controls() *dynamo.Craft { return &r.craft }

// Tick advances the craft by dt seconds against the bodies at the current
// elapsed time, then evaluates collision and win in that order.
func (r *Round) Tick(dt float64) Outcome {
	bodies := r.CurrentBodies()
	physics.Step(&r.craft, bodies, dt)

	if i := physics.FirstCollision(r.craft, bodies); i >= 0 {
		r.collisions++
		r.logger.Info().
			Float64("elapsed", r.Elapsed()).
			Int("body", i).
			Float64("x", r.craft.X).
			Float64("y", r.craft.Y).
			Msg("collision")
		r.Reset()
		return Collision
	}

	if physics.CheckWin(r.craft, r.level.Win) {
		if !r.won {
			r.logger.Info().
				Float64("elapsed", r.Elapsed()).
				Float64("speed", r.craft.Speed()).
				Float64("fuel", r.craft.Fuel).
				Msg("win")
		}
		r.won = true
		return Win
	}
	return None
}

// Reset restores the craft to the level's initial state. Elapsed time is
// not affected.
func (r *Round) Reset() {
	r.craft = r.level.InitialCraft.Clone()
	r.logger.Debug().Float64("elapsed", r.Elapsed()).Msg("craft reset")
}

// Restart begins a new attempt at the same level under a new round ID,
// restarting elapsed time.
func (r *Round) Restart() {
	r.id = uuid.NewString()
	r.begin()
	r.logger.Debug().Msg("round restarted")
}
