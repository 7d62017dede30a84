// Package puzzleinput resolves the input text for a puzzle day.
//
// Sources are tried in priority order: an explicit file path (whose
// absence is an error - explicit means required), the conventional
// day<N>.txt file in the input directory, and finally stdin when the
// process has input piped into it. When none apply the resolution
// fails with ErrInputNotFound.
package puzzleinput
