package search

import "container/heap"

// frontierItem is one candidate in the frontier: a state, the accumulated
// cost it was pushed with, and its priority (cost plus heuristic estimate).
type frontierItem[S comparable, C Cost] struct {
	state    S
	cost     C
	priority C
	seq      uint64 // insertion order
}

// frontierHeap is a min-heap of frontierItem ordered by priority; equal
// priorities prefer the larger accumulated cost (deeper entry), then
// insertion order.
// We use the “lazy-decrease-key” approach: when a cheaper cost to a state is
// found we push another item. The outdated one stays in the heap and is
// recognised as stale by the driver when popped.
type frontierHeap[S comparable, C Cost] []frontierItem[S, C]

// Len returns the number of items in the heap.
func (h frontierHeap[S, C]) Len() int { return len(h) }

// Less orders by priority, then deeper first, then insertion order.
func (h frontierHeap[S, C]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	if h[i].cost != h[j].cost {
		return h[i].cost > h[j].cost
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h frontierHeap[S, C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be a frontierItem.
func (h *frontierHeap[S, C]) Push(x any) { *h = append(*h, x.(frontierItem[S, C])) }

// Pop is called by heap.Pop and removes the last element.
func (h *frontierHeap[S, C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier wraps frontierHeap with typed push/popMin.
type frontier[S comparable, C Cost] struct {
	items frontierHeap[S, C]
	seq   uint64
}

func newFrontier[S comparable, C Cost](capacity int) *frontier[S, C] {
	return &frontier[S, C]{items: make(frontierHeap[S, C], 0, capacity)}
}

// push inserts state with accumulated cost and the given priority.
func (f *frontier[S, C]) push(state S, cost, priority C) {
	heap.Push(&f.items, frontierItem[S, C]{state: state, cost: cost, priority: priority, seq: f.seq})
	f.seq++
}

// popMin removes and returns the item with the smallest priority.
// The caller must check Len first.
func (f *frontier[S, C]) popMin() frontierItem[S, C] {
	return heap.Pop(&f.items).(frontierItem[S, C])
}

// Len returns the number of queued items, stale ones included.
func (f *frontier[S, C]) Len() int { return f.items.Len() }
