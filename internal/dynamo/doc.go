// Package dynamo provides the data model for the gravity lander simulation.
//
// The package defines the immutable level data and the mutable craft state
// consumed by the physics and round packages:
//
//   - [Body]: a resolved gravitating obstacle (position + radius)
//   - [BodyDef]: level data for a body, static or orbiting a fixed center
//   - [Craft]: the controllable vehicle
//   - [WinCondition]: per-level arrival predicate ([CircleUnderSpeed], [CircleAnySpeed])
//   - [Level]: bodies, initial craft and win condition
//
// # Example
//
//	def := dynamo.BodyDef{CenterX: 960, CenterY: 540, Radius: 15,
//		Orbit: &dynamo.Orbit{Radius: 150, Speed: 0.5}}
//	body := def.PositionAt(elapsed)
//
// # Thread Safety
//
// BodyDef and Level values are read-only once built and may be shared.
// A Craft is owned by exactly one round; use [Craft.Clone] for snapshots.
package dynamo
