package pqueue

import (
	"sort"
)

func WithCap[T any](size uint) Option[T] {
	return func(q *Queue[T]) {
		q.cap = int(size)
	}
}

type Option[T any] func(*Queue[T])

type item[T any] struct {
	value T
	prior float64
}

func New[T any](opts ...Option[T]) *Queue[T] {
	p := &Queue[T]{cap: -1}
	for _, opt := range opts {
		opt(p)
	}
	if p.cap > 0 {
		p.items = make([]item[T], 0, p.cap)
	}
	return p
}

// Queue keeps its items in ascending priority. Items of equal priority stay in push order,
// and once the capacity is reached the item at the tail is dropped.
type Queue[T any] struct {
	cap   int
	items []item[T]
}

func (q *Queue[T]) PopAll() []T {
	pulled := make([]T, len(q.items))
	for i := range q.items {
		pulled[i] = q.items[i].value
	}
	q.items = q.items[:0]
	return pulled
}

func (q *Queue[T]) Push(val T, priority float64) {
	if q.cap == 0 {
		return
	}
	// first position holding an item that ranks strictly after the new one
	idx := sort.Search(len(q.items), func(i int) bool {
		return priority < q.items[i].prior
	})
	if q.cap > 0 && idx >= q.cap {
		return
	}
	q.items = append(q.items, item[T]{})
	copy(q.items[idx+1:], q.items[idx:])
	q.items[idx] = item[T]{value: val, prior: priority}
	if q.cap > 0 && len(q.items) > q.cap {
		q.items = q.items[:q.cap]
	}
}

func (q *Queue[T]) Len() int { return len(q.items) }
