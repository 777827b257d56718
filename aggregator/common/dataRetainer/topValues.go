package dataretainer

import (
	"cmp"
	"container/heap"
	"sort"

	a "github.com/Uthara1292/small-business-analysis/aggregator/common/aggFunctions"
)

// Entry holds a group key, its aggregations and the value it is ranked by
type Entry[V any] struct {
	Key   string
	Aggs  []a.Aggregation
	Value V
}

type entryHeap[V any] struct {
	items   []Entry[V]
	compare func(x, y V) int
	largest bool // true => keep the N largest
}

func (h entryHeap[V]) Len() int      { return len(h.items) }
func (h entryHeap[V]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Less orders the root as the entry to evict first.
func (h entryHeap[V]) Less(i, j int) bool {
	return h.better(h.items[j], h.items[i])
}

// better reports whether x ranks ahead of y. Equal values rank by key so
// the retained set does not depend on map iteration order.
func (h entryHeap[V]) better(x, y Entry[V]) bool {
	c := h.compare(x.Value, y.Value)
	if c == 0 {
		return x.Key < y.Key
	}
	if h.largest {
		return c > 0
	}
	return c < 0
}

func (h *entryHeap[V]) Push(x interface{}) { h.items = append(h.items, x.(Entry[V])) }
func (h *entryHeap[V]) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

type TopN[V any] struct {
	h        *entryHeap[V]
	capacity int
}

// NewTopN keeps the capacity best entries according to compare, which
// returns a negative number when x < y, zero when equal and positive otherwise.
func NewTopN[V any](capacity int, largest bool, compare func(x, y V) int) *TopN[V] {
	if capacity <= 0 {
		capacity = 1
	}
	h := &entryHeap[V]{items: make([]Entry[V], 0, capacity), compare: compare, largest: largest}
	heap.Init(h)
	return &TopN[V]{h: h, capacity: capacity}
}

func NewOrderedTopN[V cmp.Ordered](capacity int, largest bool) *TopN[V] {
	return NewTopN[V](capacity, largest, cmp.Compare[V])
}

func (t *TopN[V]) Insert(e Entry[V]) {
	if t.h.Len() < t.capacity {
		heap.Push(t.h, e)
		return
	}
	if t.h.better(e, t.h.items[0]) {
		t.h.items[0] = e
		heap.Fix(t.h, 0)
	}
}

// Values returns the retained entries, best first.
func (t *TopN[V]) Values() []Entry[V] {
	out := make([]Entry[V], len(t.h.items))
	copy(out, t.h.items)
	sort.Slice(out, func(i, j int) bool { return t.h.better(out[i], out[j]) })
	return out
}
