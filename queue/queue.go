// Package queue provides the result heap backing top-k similarity search.
package queue

import "container/heap"

// Compile time check to ensure ResultQueue satisfies the heap interface.
var _ heap.Interface = (*ResultQueue)(nil)

// ResultItem is one scored candidate in the queue.
type ResultItem struct {
	ID    uint32  // ID of the stored vector.
	Score float64 // Score is the item's similarity, the queue priority.
	Index int     // Index is maintained by the heap.Interface methods.
}

// ResultQueue implements heap.Interface over scored candidates.
//
// With Descending false the lowest score sits on top, which is the shape a
// bounded top-k collector wants: once the queue holds k items, every better
// candidate replaces the current minimum.
type ResultQueue struct {
	Descending bool          // Descending puts the highest score on top instead.
	Items      []*ResultItem // Items contains the elements of the queue.
}

// Len returns the number of elements in the queue.
func (q *ResultQueue) Len() int { return len(q.Items) }

// Less reports whether the element with index i should sort before the element with index j.
func (q *ResultQueue) Less(i, j int) bool {
	if q.Descending {
		return q.Items[i].Score > q.Items[j].Score
	}

	return q.Items[i].Score < q.Items[j].Score
}

// Swap swaps the elements with indexes i and j.
func (q *ResultQueue) Swap(i, j int) {
	q.Items[i], q.Items[j] = q.Items[j], q.Items[i]
	q.Items[i].Index, q.Items[j].Index = i, j
}

// Push adds x to the queue.
func (q *ResultQueue) Push(x any) {
	item, _ := x.(*ResultItem)
	item.Index = len(q.Items)
	q.Items = append(q.Items, item)
}

// Pop removes and returns the top element from the queue.
func (q *ResultQueue) Pop() any {
	if len(q.Items) == 0 {
		return nil
	}

	old := q.Items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // Avoid memory leak
	item.Index = -1
	q.Items = old[:n-1]

	return item
}

// Top returns the top element of the queue without removing it.
func (q *ResultQueue) Top() *ResultItem {
	return q.Items[0]
}
