// Package round drives a single attempt at a level.
//
// A Round owns the mutable craft and a reference instant taken from its
// Clock when the round starts. Body positions are never stored: every
// query re-evaluates the level's body definitions at the current elapsed
// time, so orbiting bodies stay consistent no matter how the host paces
// its ticks.
//
// Tick is the only mutating entry point for physics. It reports one of
// three outcomes:
//
//	None       nothing happened
//	Collision  the craft hit a body and was reset to the level's start
//	Win        the level's win condition holds
//
// A Win leaves the craft untouched. What happens next is up to the host.
//
// Rounds are not safe for concurrent use.
package round
