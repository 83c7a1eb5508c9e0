// Package search provides a generic best-first search engine over implicit,
// lazily generated graphs. Plain weighted shortest-path search (Dijkstra) and
// heuristic-guided search (A*) are two configurations of the same engine.
//
// Overview:
//
//   - The caller describes the graph as a Problem: a start state, a goal
//     predicate, a neighbour generator returning (successor, cost) edges and
//     an optional heuristic. States are any comparable Go value.
//   - Search pops the frontier entry with the smallest priority (cost, or
//     cost + heuristic), stops when it pops a goal, and otherwise relaxes
//     the generated edges into the predecessor index.
//   - The Result carries the optimal cost and the full predecessor index, so
//     callers can rebuild one path (Result.Path, Index.PathTo) or the union of
//     all optimal paths (Result.OptimalStates, Index.Ancestors).
//
// Modes:
//
//   - SinglePath (default): the first predecessor that reaches a state at its
//     best cost is kept; the search stops at the first goal popped.
//   - AllPaths (WithAllPaths): every predecessor achieving the best cost is
//     kept, and the frontier is drained while the popped priority equals the
//     goal cost, so all tied goal states and branches are captured.
//
// Heuristics:
//
//	A heuristic must be admissible (never exceed the true remaining cost) for
//	the result to be optimal, and consistent for AllPaths mode to record every
//	optimal branch. Neither property is checked; a bad heuristic silently
//	yields a suboptimal answer.
//
// Complexity (V = visited states, E = generated edges):
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Errors:
//
//   - ErrNoPath:          no goal state is reachable (the "no result" outcome).
//     Returned as a *NoPathError carrying the Stats of the failed run.
//   - ErrNilGoal:         Problem.IsGoal is nil.
//   - ErrNilNeighbors:    Problem.Neighbors is nil.
//   - ErrOptionViolation: invalid Option value.
//   - ErrStateNotFound:   Index.PathTo asked for an unreached state.
//
// Thread safety:
//
//	Search is synchronous and keeps all state local to the call. It has no
//	cancellation; bound the input instead. The neighbour generator is called
//	from the calling goroutine only.
//
// Example:
//
//	res, err := search.Search(search.Problem[grid.Point, int]{
//	    Start:     start,
//	    IsGoal:    func(p grid.Point) bool { return p == end },
//	    Neighbors: next,
//	    Heuristic: func(p grid.Point) int { return p.Manhattan(end) },
//	})
//	if errors.Is(err, search.ErrNoPath) {
//	    // unreachable
//	}
package search
