// Package openset implements the indexed open set with decrease-key
// semantics shared by the Dijkstra and A* engines: an
// insertion-ordered node->entry map joined with a binary heap of
// (priority, insertion-index) pairs.
//
// The heap may carry stale items after an improvement; PopMin discards
// them lazily by comparing a popped item's sequence number against the
// authoritative sequence stored in the entry map. This trades wasted heap
// slots for a plain container/heap instead of a real decrease-key heap,
// per the design this package is modelled on.
package openset

import (
	"container/heap"

	"github.com/samber/lo"
)

// Entry is the authoritative record for a node discovered during a
// search: the best known cost-so-far, the index of the node that
// produced it, and the sequence number that was current when this
// entry was last written.
type Entry[C any] struct {
	G         C
	ParentIdx int
	Seq       int
}

// Result reports what PushOrDecrease did to the open set.
type Result int

const (
	Unchanged Result = iota
	Inserted
	Decreased
)

// heapItem is one slot in the priority heap. Priority is the search's
// ordering key (g for Dijkstra, f=g+h for A*). Once a cheaper path to the
// same node is found, the item's seq no longer matches the authoritative
// Entry.Seq held in the Set, which is how staleness is detected.
type heapItem[C any] struct {
	priority C
	seq      int
	idx      int
}

type heapSlice[C any] struct {
	items []heapItem[C]
	less  func(a, b C) bool
}

func (h heapSlice[C]) Len() int { return len(h.items) }

func (h heapSlice[C]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.priority, b.priority) {
		return true
	}
	if h.less(b.priority, a.priority) {
		return false
	}
	// Equal priority: prefer the more recently inserted entry (LIFO),
	// producing the depth-first-ish tie-break the reference search
	// engines exhibit on equal-cost ties.
	return a.seq > b.seq
}

func (h heapSlice[C]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *heapSlice[C]) Push(x any) { h.items = append(h.items, x.(heapItem[C])) }

func (h *heapSlice[C]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// Set is the indexed open set + parent store. N is the node type
// (comparable, used as the map key); C is the priority/cost type.
type Set[N comparable, C any] struct {
	less    func(a, b C) bool
	nodes   []N
	byNode  map[N]int
	entries []Entry[C]
	settled []bool
	h       *heapSlice[C]
	seq     int
}

// New creates an empty open set ordered by less.
func New[N comparable, C any](less func(a, b C) bool) *Set[N, C] {
	h := &heapSlice[C]{less: less}
	heap.Init(h)
	return &Set[N, C]{
		less:   less,
		byNode: make(map[N]int),
		h:      h,
	}
}

// Len returns the number of distinct nodes ever discovered (including
// already-settled ones).
func (s *Set[N, C]) Len() int { return len(s.nodes) }

// PushOrDecrease inserts node at g/priority with the given parent index
// if it is unknown, improves it if g is strictly less than the best
// known cost, or does nothing otherwise. It returns the result and the
// node's (possibly newly assigned) index.
func (s *Set[N, C]) PushOrDecrease(node N, g C, priority C, parentIdx int) (Result, int) {
	if idx, ok := s.byNode[node]; ok {
		if s.less(g, s.entries[idx].G) {
			s.seq++
			s.entries[idx] = Entry[C]{G: g, ParentIdx: parentIdx, Seq: s.seq}
			heap.Push(s.h, heapItem[C]{priority: priority, seq: s.seq, idx: idx})
			return Decreased, idx
		}
		return Unchanged, idx
	}
	idx := len(s.nodes)
	s.nodes = append(s.nodes, node)
	s.settled = append(s.settled, false)
	s.seq++
	s.entries = append(s.entries, Entry[C]{G: g, ParentIdx: parentIdx, Seq: s.seq})
	s.byNode[node] = idx
	heap.Push(s.h, heapItem[C]{priority: priority, seq: s.seq, idx: idx})
	return Inserted, idx
}

// PopMin repeatedly discards stale heap items (ones whose sequence
// number no longer matches the authoritative entry) and returns the
// first live one, marking it settled. ok is false once the open set is
// exhausted.
func (s *Set[N, C]) PopMin() (idx int, node N, g C, ok bool) {
	for s.h.Len() > 0 {
		item := heap.Pop(s.h).(heapItem[C])
		if item.seq != s.entries[item.idx].Seq {
			continue // stale: superseded by a cheaper push
		}
		if s.settled[item.idx] {
			continue
		}
		s.settled[item.idx] = true
		return item.idx, s.nodes[item.idx], s.entries[item.idx].G, true
	}
	var zero N
	var zeroC C
	return -1, zero, zeroC, false
}

// Get returns the current entry for node, if discovered.
func (s *Set[N, C]) Get(node N) (Entry[C], bool) {
	idx, ok := s.byNode[node]
	if !ok {
		return Entry[C]{}, false
	}
	return s.entries[idx], true
}

// GetByIndex returns the node and entry stored at idx.
func (s *Set[N, C]) GetByIndex(idx int) (N, Entry[C]) {
	return s.nodes[idx], s.entries[idx]
}

// IndexOf returns the index assigned to node, if it has been discovered.
func (s *Set[N, C]) IndexOf(node N) (int, bool) {
	idx, ok := s.byNode[node]
	return idx, ok
}

// IsSettled reports whether idx has already been popped by PopMin.
func (s *Set[N, C]) IsSettled(idx int) bool { return s.settled[idx] }

// PeekMinPriority returns the priority of the next item PopMin would
// yield, without settling it, discarding any stale heap items it
// encounters along the way (they are genuinely dead weight, so removing
// them is not observable). ok is false once no live item remains.
func (s *Set[N, C]) PeekMinPriority() (C, bool) {
	for s.h.Len() > 0 {
		item := s.h.items[0]
		if item.seq != s.entries[item.idx].Seq || s.settled[item.idx] {
			heap.Pop(s.h)
			continue
		}
		return item.priority, true
	}
	var zero C
	return zero, false
}

// PathTo walks parent indices from idx back to the root (the index whose
// ParentIdx equals itself) and returns the node sequence from start to
// idx, both endpoints included.
func (s *Set[N, C]) PathTo(idx int) []N {
	var rev []N
	for {
		rev = append(rev, s.nodes[idx])
		parent := s.entries[idx].ParentIdx
		if parent == idx {
			break
		}
		idx = parent
	}
	return lo.Reverse(rev)
}
