// Package search defines the problem description, configuration options
// and sentinel errors of the best-first search engine.
//
// A Problem describes an implicit graph: the engine only ever sees the start
// state, the goal predicate, the neighbour generator and, optionally, a
// heuristic. No adjacency structure is built up front.
//
// Options:
//
//	– Mode:     SinglePath (first predecessor wins) or AllPaths (tie-tracking).
//	– SizeHint: expected number of visited states, used to pre-size the index.
//
// Errors (sentinel):
//
//	– ErrNoPath          if the frontier is exhausted before any goal is reached
//	                     (as a *NoPathError carrying the run's Stats).
//	– ErrNilGoal         if Problem.IsGoal is nil.
//	– ErrNilNeighbors    if Problem.Neighbors is nil.
//	– ErrOptionViolation if an Option received an invalid value.
//	– ErrStateNotFound   if a path is requested to a state that was never reached.
package search

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNoPath indicates the frontier ran empty before the goal predicate held.
	// It is the "no result" outcome, not a fault.
	ErrNoPath = errors.New("search: no path to a goal state")

	// ErrNilGoal indicates the problem has no goal predicate.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNilNeighbors indicates the problem has no neighbour generator.
	ErrNilNeighbors = errors.New("search: neighbor function is nil")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStateNotFound indicates a state is absent from the predecessor index.
	ErrStateNotFound = errors.New("search: state not found in index")
)

// NoPathError is returned by Search when the frontier runs empty. It
// matches ErrNoPath under errors.Is and carries the work done before giving up.
type NoPathError struct {
	Stats Stats
}

// Error returns the ErrNoPath message.
func (e *NoPathError) Error() string { return ErrNoPath.Error() }

// Is reports whether target is ErrNoPath.
func (e *NoPathError) Is(target error) bool { return target == ErrNoPath }

// Cost is the numeric type of edge weights and accumulated path costs.
// Weights must be non-negative; the engine does not check this.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge is a transient (successor, cost) pair yielded by a neighbour generator.
type Edge[S comparable, C Cost] struct {
	To   S
	Cost C
}

// Problem is an implicit graph plus a goal test.
//
// Start     – initial state.
// IsGoal    – goal predicate; required.
// Neighbors – successor generator; required. Called once per expanded state.
// Heuristic – optional estimate of the remaining cost. It must never
//
//	overestimate (admissible), and should be consistent for AllPaths mode
//	to report every optimal branch. A nil Heuristic gives plain Dijkstra.
type Problem[S comparable, C Cost] struct {
	Start     S
	IsGoal    func(S) bool
	Neighbors func(S) []Edge[S, C]
	Heuristic func(S) C
}

// Mode selects how equal-cost predecessors are retained.
type Mode int

const (
	// SinglePath keeps the first predecessor discovered for each state and stops
	// at the first goal popped from the frontier.
	SinglePath Mode = iota

	// AllPaths keeps every predecessor that achieves a state's best cost and
	// drains the frontier at the goal cost, so every optimal path is recoverable.
	AllPaths
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case SinglePath:
		return "single-path"
	case AllPaths:
		return "all-paths"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options configures a Search call.
type Options struct {
	Mode     Mode // SinglePath (default) or AllPaths
	SizeHint int  // expected number of visited states; 0 means unknown

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns SinglePath mode with no size hint.
func DefaultOptions() Options {
	return Options{
		Mode:     SinglePath,
		SizeHint: 0,
	}
}

// WithMode selects the predecessor retention mode.
// Unknown modes are recorded as ErrOptionViolation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != SinglePath && m != AllPaths {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithAllPaths is shorthand for WithMode(AllPaths).
func WithAllPaths() Option {
	return WithMode(AllPaths)
}

// WithSizeHint pre-sizes the cost ledger for about n states.
//
//	n > 0: pre-allocate
//	n == 0: no hint
//	n < 0: invalid option → ErrOptionViolation
func WithSizeHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: SizeHint cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SizeHint = n
	}
}

// Stats counts the work done by one Search call.
type Stats struct {
	Expanded int // states whose neighbours were generated
	Stale    int // frontier pops skipped because a cheaper cost was already known
	Relaxed  int // edges examined
	Pushed   int // frontier insertions, including the start state
	Ties     int // equal-cost predecessors appended in AllPaths mode
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Expanded += o.Expanded
	s.Stale += o.Stale
	s.Relaxed += o.Relaxed
	s.Pushed += o.Pushed
	s.Ties += o.Ties
}
