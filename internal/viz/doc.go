// Package viz is the interactive terminal host for the lander.
//
// It owns no physics. Each Bubble Tea frame measures dt, feeds held keys
// to a [control.Manual] and calls [round.Round.Tick]; the view re-reads
// body positions and the projected path from the round every frame.
//
//   - [App]: level select menu and controls screen
//   - [Model]: one level in play
//   - [Canvas]: Braille-based pixel canvas with per-cell ink colors
//
// # Key Bindings
//
//	A/D   - Rotate left / right
//	Z/X   - Engine on / off
//	H     - Toggle HUD
//	P     - Toggle projected path
//	R     - Restart level
//	T     - Cycle color themes
//	Esc   - Back to menu
//	?     - Show help overlay
package viz
