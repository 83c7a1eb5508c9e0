// Package search implements a generic best-first search over implicit graphs.
//
// One engine covers Dijkstra (no heuristic) and A* (with heuristic). It
// processes states in order of increasing priority using a min-heap,
// relaxing the edges produced by the caller's neighbour generator.
//
// Complexity (V = visited states, E = generated edges):
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E); the heap may hold one stale entry per improvement.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improvements push a new heap entry and stale entries
//     are skipped when popped.
//   - Ledger cost and predecessor set live in one Index entry.
//   - In AllPaths mode the frontier is drained at the goal cost before stopping.
package search

// Search runs best-first search on p and returns the optimal cost to the
// nearest goal state together with the predecessor index.
//
// Returns ErrNilGoal or ErrNilNeighbors for an incomplete problem,
// ErrOptionViolation for bad options, and a *NoPathError (matching ErrNoPath)
// when no goal state is reachable.
//
// Preconditions not checked: edge costs are non-negative and the heuristic,
// if any, never overestimates the remaining cost.
func Search[S comparable, C Cost](p Problem[S, C], opts ...Option) (*Result[S, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if p.IsGoal == nil {
		return nil, ErrNilGoal
	}
	if p.Neighbors == nil {
		return nil, ErrNilNeighbors
	}

	r := &runner[S, C]{
		problem:  p,
		options:  cfg,
		index:    make(Index[S, C], cfg.SizeHint),
		frontier: newFrontier[S, C](cfg.SizeHint),
	}
	r.init()
	r.process()

	if !r.found {
		return nil, &NoPathError{Stats: r.stats}
	}

	return &Result[S, C]{
		Cost:  r.goalCost,
		Goal:  r.goals[0],
		Goals: r.goals,
		Index: r.index,
		Stats: r.stats,
	}, nil
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable, C Cost] struct {
	problem  Problem[S, C]
	options  Options
	index    Index[S, C]
	frontier *frontier[S, C]
	stats    Stats

	found    bool
	goalCost C
	goals    []S
}

// init records the start state at cost zero and pushes it.
func (r *runner[S, C]) init() {
	var zero C
	r.index[r.problem.Start] = &Entry[S, C]{Cost: zero}
	r.push(r.problem.Start, zero)
}

// push queues s with priority cost + heuristic(s).
func (r *runner[S, C]) push(s S, cost C) {
	priority := cost
	if r.problem.Heuristic != nil {
		priority += r.problem.Heuristic(s)
	}
	r.frontier.push(s, cost, priority)
	r.stats.Pushed++
}

// process is the driver loop. It ends when the frontier is empty, when a goal
// is popped in SinglePath mode, or when, after a goal was found in AllPaths
// mode, the popped priority exceeds the goal cost.
func (r *runner[S, C]) process() {
	keepTies := r.options.Mode == AllPaths

	for r.frontier.Len() > 0 {
		item := r.frontier.popMin()

		// 1) Stale entry: a cheaper cost was recorded after this push.
		if item.cost > r.index[item.state].Cost {
			r.stats.Stale++
			continue
		}

		// 2) Past the goal cost: nothing left can tie.
		if r.found && item.priority > r.goalCost {
			return
		}

		// 3) Goal test. Goal states are terminal and never expanded.
		if r.problem.IsGoal(item.state) {
			if !r.found {
				r.found = true
				r.goalCost = item.cost
			}
			if item.cost == r.goalCost {
				r.goals = append(r.goals, item.state)
			}
			if !keepTies {
				return
			}
			continue
		}

		// 4) Expand.
		r.expand(item.state, item.cost, keepTies)
	}
}

// expand relaxes every edge produced for s, whose final cost is cost.
func (r *runner[S, C]) expand(s S, cost C, keepTies bool) {
	r.stats.Expanded++
	for _, e := range r.problem.Neighbors(s) {
		r.stats.Relaxed++
		candidate, outcome := r.index.relax(s, e.To, e.Cost, cost, keepTies)
		switch outcome {
		case relaxImproved:
			r.push(e.To, candidate)
		case relaxTied:
			r.stats.Ties++
		}
	}
}
