// Package sequence drives the boss-defeat cutscene: a fixed, ordered series of
// timed side effects across collaborators the package does not own (player
// actor, camera, door, world freeze, scene loading).
//
// The sequence is an explicit state machine. Each suspension point is a
// [Step] plus a wake condition (a real-time deadline or the walk sub-step
// arriving), and [Controller.Update] advances it once per scheduling tick.
// Waits are measured on a wall clock so they elapse while gameplay time is
// frozen.
//
// Missing collaborators never abort a run: the dependent step degrades to a
// no-op and a warning is logged, and the controller always reaches the scene
// transition once started.
package sequence
