package search

// Result is the outcome of a successful Search.
//
//   - Cost:  optimal cost from the start to the nearest goal.
//   - Goal:  the first goal state popped from the frontier.
//   - Goals: every goal state reached at Cost. In SinglePath mode this is
//     just Goal; in AllPaths mode it holds all tied goal states.
//   - Index: the predecessor index of every visited state.
//   - Stats: work counters for this run.
type Result[S comparable, C Cost] struct {
	Cost  C
	Goal  S
	Goals []S
	Index Index[S, C]
	Stats Stats
}

// Path returns one optimal path from the start to Goal. Which one is
// returned among equal-cost paths is unspecified.
func (r *Result[S, C]) Path() []S {
	path, _ := r.Index.PathTo(r.Goal)
	return path
}

// OptimalStates returns every state on some optimal path to one of Goals.
// Complete only for a Result produced in AllPaths mode; in SinglePath mode it
// degrades to the states of one predecessor tree branch per state.
func (r *Result[S, C]) OptimalStates() map[S]struct{} {
	return r.Index.Ancestors(r.Goals...)
}
