// Package interval provides ordered sets and maps of intervals which support
// efficiently scanning the intervals overlapping a query interval.
//
// Intervals are half-open, [key, end). An interval for which hasEnd returns
// false is the point [key, key].
package interval

import (
	"iter"

	"github.com/ajwerner/avl/internal/abstract"
)

// Map is an ordered map keyed by intervals of type I with bounds of type K.
type Map[I, K, V any] struct {
	t abstract.Map[I, V, *updater[I, K], aug[I, K], *aug[I, K]]
}

// MakeMap constructs a new Map. The ordering cmpI must order intervals by
// their start key first; cmpK orders the bounds. If hasEnd is nil every
// interval has an end.
func MakeMap[I, K, V any](
	cmpK func(K, K) int,
	cmpI func(I, I) int,
	key, end func(I) K,
	hasEnd func(I) bool,
	opts ...abstract.Option,
) *Map[I, K, V] {
	u := &updater[I, K]{key: key, end: end, cmp: cmpK, hasEnd: hasEnd}
	return &Map[I, K, V]{
		t: abstract.MakeMap[I, V, *updater[I, K], aug[I, K]](u, cmpI, opts...),
	}
}

// Insert adds the interval with its value if it is absent and reports
// whether it was inserted. It panics if the map is full.
func (m *Map[I, K, V]) Insert(i I, v V) bool {
	_, inserted, err := m.t.Insert(i, v)
	if err != nil {
		panic(err)
	}
	return inserted
}

// InsertOrAssign is like Insert but overwrites the value of an existing
// interval.
func (m *Map[I, K, V]) InsertOrAssign(i I, v V) bool {
	_, inserted, err := m.t.InsertOrAssign(i, v)
	if err != nil {
		panic(err)
	}
	return inserted
}

func (m *Map[I, K, V]) Get(i I) (V, bool) { return m.t.Get(i) }

func (m *Map[I, K, V]) Contains(i I) bool { return m.t.Contains(i) }

func (m *Map[I, K, V]) Delete(i I) (V, bool) {
	_, v, found := m.t.Delete(i)
	return v, found
}

func (m *Map[I, K, V]) Len() int { return m.t.Len() }

func (m *Map[I, K, V]) Clear() { m.t.Reset() }

// Iterator returns a new, unpositioned Iterator.
func (m *Map[I, K, V]) Iterator() Iterator[I, K, V] {
	return Iterator[I, K, V]{it: m.t.MakeIter()}
}

// Overlapping returns an iterator over the entries whose intervals overlap
// q, in order.
func (m *Map[I, K, V]) Overlapping(q I) iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		it := m.Iterator()
		for it.FirstOverlap(q); it.Valid(); it.NextOverlap() {
			if !yield(it.Cur(), it.Value()) {
				return
			}
		}
	}
}

// Set is an ordered set of intervals of type I with bounds of type K.
type Set[I, K any] struct {
	m Map[I, K, struct{}]
}

// MakeSet constructs a new Set. See MakeMap.
func MakeSet[I, K any](
	cmpK func(K, K) int,
	cmpI func(I, I) int,
	key, end func(I) K,
	hasEnd func(I) bool,
	opts ...abstract.Option,
) *Set[I, K] {
	return &Set[I, K]{m: *MakeMap[I, K, struct{}](cmpK, cmpI, key, end, hasEnd, opts...)}
}

// Upsert adds the interval to the set if it is absent.
func (s *Set[I, K]) Upsert(i I) { s.m.Insert(i, struct{}{}) }

// Insert adds the interval to the set and reports whether it was absent.
func (s *Set[I, K]) Insert(i I) bool { return s.m.Insert(i, struct{}{}) }

func (s *Set[I, K]) Delete(i I) bool {
	_, found := s.m.Delete(i)
	return found
}

func (s *Set[I, K]) Contains(i I) bool { return s.m.Contains(i) }

func (s *Set[I, K]) Len() int { return s.m.Len() }

func (s *Set[I, K]) Clear() { s.m.Clear() }

func (s *Set[I, K]) Iterator() Iterator[I, K, struct{}] { return s.m.Iterator() }

// Overlapping returns an iterator over the intervals overlapping q, in
// order.
func (s *Set[I, K]) Overlapping(q I) iter.Seq[I] {
	return func(yield func(I) bool) {
		for i := range s.m.Overlapping(q) {
			if !yield(i) {
				return
			}
		}
	}
}
