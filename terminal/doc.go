// Package terminal is the tcell frontend: a render.Surface over a terminal screen
// with a non-blocking key pump.
//
// Terminals do not report key release, so each key press is delivered as a
// press immediately followed by a release. Holding a key relies on the
// terminal's own auto-repeat.
package terminal
