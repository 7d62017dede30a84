// Package puzzle holds the per-day solution modules and the dispatch
// table that maps day numbers to them.
//
// Each day lives in its own day<N>.go file, implements the Solver
// capability and carries a header comment in the form the registry
// scanner extracts titles from:
//
//	// DAY <N>: <TITLE>
//
// Adding a day means adding its file and one entry in the solvers
// table; nothing else in the repository changes.
package puzzle
