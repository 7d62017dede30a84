// Package registry discovers puzzle solution modules on disk.
//
// Solution modules are files named day<N>.go for N in 1..25. Each is
// scanned for a header comment of the form:
//
//	// DAY <N>: <TITLE>
//
// The scan produces one Day descriptor per module (day number, title,
// default-input availability) without loading or executing anything.
// Discovery is metadata only: the static dispatch table in the puzzle
// package decides what can actually run, while this package decides
// what the UI shows.
package registry
