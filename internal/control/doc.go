// Package control turns pilot intent into changes to a craft's
// orientation and engine state.
//
// Controllers implement [Controller] and return a [Command] for each tick.
// [Apply] performs the command on the craft before the physics step:
//
//   - [Manual]: held keys from an interactive host
//   - [FlightPlan]: timed burns for headless runs
//   - [None]: coast with the engine untouched
//
// # Usage
//
//	plan := control.NewFlightPlan([]control.Burn{{At: 1, Duration: 0.5, Orientation: 90}})
//	cmd := plan.Command(r.Craft(), r.Elapsed())
//	control.Apply(r.Controls(), cmd, dt)
//	r.Tick(dt)
//
// Position and velocity are never touched here.
package control
