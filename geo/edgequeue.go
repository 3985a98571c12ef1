package geo

import "container/heap"

// Edge is a candidate connection between two sites, such as a road
// between two settlements.
type Edge struct {
	From, To uint32
	Cost     float64
}

// EdgeQueue yields the cheapest edge first. Edges of equal cost come out
// in ascending (From, To) order, so a spanning tree grown from the queue
// does not depend on the order the edges were pushed in.
// The zero value is an empty queue.
type EdgeQueue struct {
	h edgeHeap
}

// Len returns the number of queued edges.
func (q *EdgeQueue) Len() int { return len(q.h) }

// Push queues the edge.
func (q *EdgeQueue) Push(e Edge) { heap.Push(&q.h, e) }

// Pop removes and returns the cheapest edge. The queue must not be empty.
func (q *EdgeQueue) Pop() Edge { return heap.Pop(&q.h).(Edge) }

type edgeHeap []Edge

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}

func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x any) { *h = append(*h, x.(Edge)) }

func (h *edgeHeap) Pop() any {
	old := *h
	e := old[len(old)-1]
	*h = old[:len(old)-1]
	return e
}
