package search

import "fmt"

// Entry is the ledger record of one visited state: the best accumulated cost
// found so far and the predecessors through which that cost is achieved.
// Preds is empty for the start state.
type Entry[S comparable, C Cost] struct {
	Cost  C
	Preds []S
}

// Index maps every visited state to its Entry. Cost and predecessors are kept
// in one record so a relaxation updates both at once.
type Index[S comparable, C Cost] map[S]*Entry[S, C]

// relaxOutcome reports what relax did with a candidate edge.
type relaxOutcome int

const (
	relaxIgnored  relaxOutcome = iota // candidate not better, or tie in SinglePath mode
	relaxImproved                     // new state or strictly cheaper cost; caller must push
	relaxTied                         // equal cost, predecessor appended
)

// relax applies the edge from→to with the given cost, where costAtFrom is the
// ledger cost of from. A strictly cheaper candidate replaces the predecessor
// set; an equal one extends it only when keepTies is set.
func (ix Index[S, C]) relax(from, to S, edgeCost, costAtFrom C, keepTies bool) (C, relaxOutcome) {
	candidate := costAtFrom + edgeCost

	e, ok := ix[to]
	switch {
	case !ok:
		ix[to] = &Entry[S, C]{Cost: candidate, Preds: []S{from}}
		return candidate, relaxImproved
	case candidate < e.Cost:
		e.Cost = candidate
		e.Preds = append(e.Preds[:0], from)
		return candidate, relaxImproved
	case candidate == e.Cost && keepTies:
		for _, p := range e.Preds {
			if p == from {
				return candidate, relaxIgnored
			}
		}
		e.Preds = append(e.Preds, from)
		return candidate, relaxTied
	default:
		return candidate, relaxIgnored
	}
}

// CostTo returns the best known cost of s and whether s was reached.
func (ix Index[S, C]) CostTo(s S) (C, bool) {
	e, ok := ix[s]
	if !ok {
		var zero C
		return zero, false
	}
	return e.Cost, true
}

// PathTo reconstructs one path from the start state to dest by following the
// first recorded predecessor of each state. Returns ErrStateNotFound if dest
// was never reached.
func (ix Index[S, C]) PathTo(dest S) ([]S, error) {
	if _, ok := ix[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrStateNotFound, dest)
	}
	// build reversed path; seen guards against zero-cost predecessor cycles
	path := []S{}
	seen := make(map[S]struct{})
	for cur := dest; ; {
		path = append(path, cur)
		seen[cur] = struct{}{}
		e := ix[cur]
		if e == nil || len(e.Preds) == 0 {
			break
		}
		next := e.Preds[0]
		if _, loop := seen[next]; loop {
			break
		}
		cur = next
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Ancestors returns the given states and every state reachable from them by
// walking predecessor links backward. With an AllPaths index and the goals
// of a Result, this is the set of states lying on some optimal path.
// States absent from the index are ignored.
func (ix Index[S, C]) Ancestors(states ...S) map[S]struct{} {
	out := make(map[S]struct{})
	stack := make([]S, 0, len(states))
	for _, s := range states {
		if _, ok := ix[s]; !ok {
			continue
		}
		if _, dup := out[s]; dup {
			continue
		}
		out[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range ix[cur].Preds {
			if _, ok := out[p]; ok {
				continue
			}
			out[p] = struct{}{}
			stack = append(stack, p)
		}
	}

	return out
}
