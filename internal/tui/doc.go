// Package tui implements the interactive session for picking and
// running puzzle days.
//
// It is a Bubble Tea program with two screens: a day list built from
// the registry scan, and a part selector for the chosen day. Running a
// part resolves input, dispatches to the solver and shows the answer
// (or the failure) inline on the part-select screen; a failed run
// never leaves the session.
//
// The model is a pure state machine over key events, so all screen
// transitions are testable without a terminal.
package tui
