// Package orderstat provides an ordered set which supports selecting the
// i-th smallest key and computing the rank of a key in logarithmic time.
package orderstat

import (
	"cmp"

	"github.com/ajwerner/avl/internal/abstract"
	"golang.org/x/exp/constraints"
)

// Set is an ordered set augmented with subtree sizes.
type Set[K any] struct {
	t abstract.Map[K, struct{}, struct{}, aug[K], *aug[K]]
}

func MakeSet[K constraints.Ordered](opts ...abstract.Option) *Set[K] {
	return MakeSetFunc(cmp.Compare[K], opts...)
}

func MakeSetFunc[K any](cmp func(K, K) int, opts ...abstract.Option) *Set[K] {
	return &Set[K]{
		t: abstract.MakeMap[K, struct{}, struct{}, aug[K]](struct{}{}, cmp, opts...),
	}
}

// Insert adds k to the set and reports whether it was absent. It panics
// if the set is full.
func (s *Set[K]) Insert(k K) (inserted bool) {
	_, inserted, err := s.t.Insert(k, struct{}{})
	if err != nil {
		panic(err)
	}
	return inserted
}

func (s *Set[K]) Delete(k K) (removed bool) {
	_, _, removed = s.t.Delete(k)
	return removed
}

func (s *Set[K]) Contains(k K) bool { return s.t.Contains(k) }

func (s *Set[K]) Len() int { return s.t.Len() }

// Nth returns the i-th smallest key, counting from zero.
func (s *Set[K]) Nth(i int) (k K, ok bool) {
	it := s.MakeIter()
	it.Nth(i)
	if !it.Valid() {
		return k, false
	}
	return it.Cur(), true
}

// Rank returns the number of keys in the set less than k.
func (s *Set[K]) Rank(k K) int {
	it := s.t.MakeIter()
	ll := abstract.LowLevel(&it)
	compare := ll.Config().Compare
	var rank int
	for ll.SeekRoot(); it.Valid(); {
		if compare(k, ll.Node().GetKey()) <= 0 {
			ll.DescendLeft()
		} else {
			rank += subtreeSize(ll.Node().GetLeft()) + 1
			ll.DescendRight()
		}
	}
	return rank
}

// Iterator iterates a Set and can seek by position.
type Iterator[K any] struct {
	it abstract.Iterator[K, struct{}, struct{}, aug[K], *aug[K]]
}

func (s *Set[K]) MakeIter() Iterator[K] {
	return Iterator[K]{it: s.t.MakeIter()}
}

// Nth positions the iterator at the i-th smallest key. If i is out of
// range the iterator becomes invalid.
func (it *Iterator[K]) Nth(i int) {
	ll := abstract.LowLevel(&it.it)
	ll.SeekRoot()
	if !it.it.Valid() || i < 0 || i >= ll.Aug().size {
		it.it.Reset()
		return
	}
	for {
		left := subtreeSize(ll.Node().GetLeft())
		switch {
		case i < left:
			ll.DescendLeft()
		case i == left:
			return
		default:
			i -= left + 1
			ll.DescendRight()
		}
	}
}

// Rank returns the position of the current key, or the length of the set
// if the iterator is not valid.
func (it *Iterator[K]) Rank() int {
	c := it.it
	ll := abstract.LowLevel(&c)
	if !c.Valid() {
		ll.SeekRoot()
		if !c.Valid() {
			return 0
		}
		return ll.Aug().size
	}
	rank := subtreeSize(ll.Node().GetLeft())
	for !ll.IsRoot() {
		fromRight := !ll.IsLeftChild()
		ll.Ascend()
		if fromRight {
			rank += subtreeSize(ll.Node().GetLeft()) + 1
		}
	}
	return rank
}

func (it *Iterator[K]) First()      { it.it.First() }
func (it *Iterator[K]) Last()       { it.it.Last() }
func (it *Iterator[K]) Next()       { it.it.Next() }
func (it *Iterator[K]) Prev()       { it.it.Prev() }
func (it *Iterator[K]) SeekGE(k K)  { it.it.SeekGE(k) }
func (it *Iterator[K]) Valid() bool { return it.it.Valid() }
func (it *Iterator[K]) Cur() K      { return it.it.Key() }
