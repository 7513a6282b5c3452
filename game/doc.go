// Package game holds the falling-block rules: the board grid, tetromino
// rotation states, the piece generator, collision and placement, line
// clearing, and the Session that ties them together with scoring and level
// progression.
//
// The package performs no I/O. Audible and visible side effects are reported
// as events.GameEvent values pushed into an events.Sink supplied by the caller.
package game
