// Package physics implements the per-tick craft dynamics and the predicates
// evaluated after each tick.
//
// A tick is a semi-implicit Euler step:
//
//   - [ApplyGravity] for every resolved body (velocity only)
//   - [ApplyEngine] once, if the engine is on and fuel remains
//   - [Move] once, using the finalised velocity
//
// [Step] runs the three in order. [CheckCollision] and [CheckWin] are pure
// predicates; [Project] replays the gravity-only step on a detached copy of
// the craft to produce a predicted path.
//
// # Tuning
//
// Gravity scales with the cube of body radius relative to [RefRadius]; engine
// acceleration scales inversely with a fuel-dependent mass. The constants in
// tuning.go are fixed game values, not derived quantities.
//
// Nothing in this package allocates per tick except [Project], and no
// function touches shared state.
package physics
