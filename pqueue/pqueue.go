// Package pqueue implements a min-priority queue with mutable priorities.
//
// Queue keeps a position index for every element, so membership tests are
// O(1) and priority updates restore heap order with heap.Fix in O(log n)
// instead of pushing duplicates (“lazy decrease-key”).
//
// Ordering among equal priorities is deterministic: an optional caller
// tie-breaker is consulted first, then insertion order (FIFO).
//
// Complexity:
//
//   - Enqueue, Dequeue, EnqueueOrUpdate: O(log n)
//   - Contains, Len, Peek, Priority:     O(1)
//   - Items:                             O(n)
//
// A Queue is not safe for concurrent use.
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned by Dequeue and Peek on an empty queue.
var ErrEmpty = errors.New("pqueue: queue is empty")

// TieBreak reports whether a should be dequeued before b when both carry the
// same priority. It must be a strict weak ordering.
type TieBreak[T comparable] func(a, b T) bool

// Option configures a Queue.
type Option[T comparable] func(*Queue[T])

// WithTieBreak sets the secondary ordering used between equal priorities.
func WithTieBreak[T comparable](less TieBreak[T]) Option[T] {
	return func(q *Queue[T]) {
		q.h.tie = less
	}
}

// WithCapacity preallocates room for n elements.
func WithCapacity[T comparable](n int) Option[T] {
	return func(q *Queue[T]) {
		if n > 0 {
			q.h.items = make([]*entry[T], 0, n)
			q.index = make(map[T]*entry[T], n)
		}
	}
}

// Queue is a min-heap of elements keyed by a float64 priority.
type Queue[T comparable] struct {
	h     entryHeap[T]
	index map[T]*entry[T]
	seq   uint64
}

// New returns an empty Queue.
func New[T comparable](opts ...Option[T]) *Queue[T] {
	q := &Queue[T]{index: make(map[T]*entry[T])}
	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// Contains reports whether item is queued.
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.index[item]
	return ok
}

// Priority returns the current priority of item.
func (q *Queue[T]) Priority(item T) (float64, bool) {
	e, ok := q.index[item]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Enqueue inserts item with the given priority.
// Enqueueing an item that is already queued updates its priority instead,
// since the position index holds one entry per item.
func (q *Queue[T]) Enqueue(item T, priority float64) {
	if e, ok := q.index[item]; ok {
		e.priority = priority
		heap.Fix(&q.h, e.pos)
		return
	}
	e := &entry[T]{item: item, priority: priority, seq: q.seq}
	q.seq++
	heap.Push(&q.h, e)
	q.index[item] = e
}

// EnqueueOrUpdate sets the priority of item, inserting it if absent.
// It reports whether item was already queued.
func (q *Queue[T]) EnqueueOrUpdate(item T, priority float64) bool {
	_, existed := q.index[item]
	q.Enqueue(item, priority)

	return existed
}

// Fix restores heap order for item after an external change that affects
// the tie-breaker. It is a no-op when item is not queued.
func (q *Queue[T]) Fix(item T) {
	if e, ok := q.index[item]; ok {
		heap.Fix(&q.h, e.pos)
	}
}

// Dequeue removes and returns the minimum-priority element.
func (q *Queue[T]) Dequeue() (T, error) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	e := heap.Pop(&q.h).(*entry[T])
	delete(q.index, e.item)

	return e.item, nil
}

// Peek returns the minimum-priority element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.h.items[0].item, nil
}

// Items returns the queued elements in dequeue order. The queue is not
// modified.
func (q *Queue[T]) Items() []T {
	tmp := entryHeap[T]{
		items: make([]*entry[T], len(q.h.items)),
		tie:   q.h.tie,
	}
	for i, e := range q.h.items {
		c := *e
		tmp.items[i] = &c
	}
	out := make([]T, 0, len(tmp.items))
	for len(tmp.items) > 0 {
		out = append(out, heap.Pop(&tmp).(*entry[T]).item)
	}

	return out
}

// Clear removes every element.
func (q *Queue[T]) Clear() {
	q.h.items = q.h.items[:0]
	clear(q.index)
}

// entry is a queued element together with its heap bookkeeping.
type entry[T comparable] struct {
	item     T
	priority float64
	seq      uint64 // insertion order, the last tie-breaker
	pos      int    // index in entryHeap.items
}

// entryHeap implements heap.Interface over *entry, ordered by priority,
// then tie, then seq.
type entryHeap[T comparable] struct {
	items []*entry[T]
	tie   TieBreak[T]
}

func (h entryHeap[T]) Len() int { return len(h.items) }

func (h entryHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if h.tie != nil {
		if h.tie(a.item, b.item) {
			return true
		}
		if h.tie(b.item, a.item) {
			return false
		}
	}

	return a.seq < b.seq
}

func (h entryHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].pos = i
	h.items[j].pos = j
}

func (h *entryHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.pos = len(h.items)
	h.items = append(h.items, e)
}

func (h *entryHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.pos = -1
	h.items = old[:n-1]

	return e
}
