package puzzle

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"adventcode/internal/logging"
)

// Solver is the capability each day's solution implements.
type Solver interface {
	Solve(input string, part2 bool) (string, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(input string, part2 bool) (string, error)

// Solve calls f.
func (f SolverFunc) Solve(input string, part2 bool) (string, error) {
	return f(input, part2)
}

// Request is one solve invocation: which day, which part, and the
// already-resolved puzzle input.
type Request struct {
	Day   int
	Part2 bool
	Input string
}

// ErrUnregisteredDay reports a day with no solver in the dispatch
// table. It is a normal, reportable condition, not a crash: callers
// print it and move on.
var ErrUnregisteredDay = errors.New("not implemented yet")

// solvers is the static dispatch table. Days are registered at build
// time; discovery metadata (titles, input availability) stays dynamic
// in the registry package.
var solvers = map[int]Solver{
	1: SolverFunc(solveDay1),
	2: SolverFunc(solveDay2),
	3: SolverFunc(solveDay3),
	4: SolverFunc(solveDay4),
	5: SolverFunc(solveDay5),
}

// Registered reports whether a solver exists for the given day.
func Registered(day int) bool {
	_, ok := solvers[day]
	return ok
}

// Dispatch looks up the solver for req.Day and invokes it. An
// unregistered day returns an error wrapping ErrUnregisteredDay.
func Dispatch(req Request) (string, error) {
	solver, ok := solvers[req.Day]
	if !ok {
		return "", fmt.Errorf("Day %d %w", req.Day, ErrUnregisteredDay)
	}

	logging.Debug("Dispatching solver",
		zap.Int("day", req.Day),
		zap.Bool("part2", req.Part2),
		zap.Int("input_bytes", len(req.Input)),
	)

	return solver.Solve(req.Input, req.Part2)
}
