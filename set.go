// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package avl

import (
	"cmp"
	"iter"

	"github.com/ajwerner/avl/internal/abstract"
	"golang.org/x/exp/constraints"
)

// Set is an ordered set of unique keys.
type Set[K any] struct {
	t abstract.Map[K, struct{}, struct{}, noopAug[K], *noopAug[K]]
}

// MakeSet returns an empty set ordered by the natural order of K.
func MakeSet[K constraints.Ordered](opts ...Option) *Set[K] {
	return MakeSetFunc(cmp.Compare[K], opts...)
}

// MakeSetFunc returns an empty set ordered by cmp, which must define a
// strict total order.
func MakeSetFunc[K any](cmp func(K, K) int, opts ...Option) *Set[K] {
	return &Set[K]{
		t: abstract.MakeMap[K, struct{}, struct{}, noopAug[K]](struct{}{}, cmp, opts...),
	}
}

// SetOf returns a set holding the given keys.
func SetOf[K constraints.Ordered](keys ...K) *Set[K] {
	s := MakeSet[K]()
	s.InsertMany(keys...)
	return s
}

// Insert adds k to the set. If k is already present the set is unchanged.
// The returned iterator is positioned at k either way, and the bool reports
// whether k was inserted. Insert panics with ErrCapacityExceeded if the set
// already holds MaxSize keys.
func (s *Set[K]) Insert(k K) (SetIterator[K], bool) {
	it, inserted, err := s.t.Insert(k, struct{}{})
	mustNotExceed(err)
	return SetIterator[K]{it}, inserted
}

// InsertMany adds each of the keys to the set in order and reports, per key,
// whether it was inserted. If the new keys would not fit, InsertMany panics
// with ErrCapacityExceeded before inserting any of them.
func (s *Set[K]) InsertMany(keys ...K) []bool {
	mustNotExceed(s.t.CheckCapacity(countFresh(s.t.Compare, s.t.Contains, keys)))
	inserted := make([]bool, len(keys))
	for i, k := range keys {
		_, inserted[i] = s.Insert(k)
	}
	return inserted
}

// Contains returns whether k is in the set.
func (s *Set[K]) Contains(k K) bool {
	return s.t.Contains(k)
}

// Find returns an iterator positioned at k, or the End iterator if k is not
// in the set.
func (s *Set[K]) Find(k K) SetIterator[K] {
	return SetIterator[K]{s.t.Find(k)}
}

// Erase removes the key the iterator is positioned at and returns an
// iterator positioned at the following key. Erasing the End iterator is a
// no-op. Iterators positioned at other keys remain valid; iterators
// positioned at the erased key must not be used. Erase panics if the
// iterator was obtained from a different set, or from s before a Swap.
func (s *Set[K]) Erase(it SetIterator[K]) SetIterator[K] {
	return SetIterator[K]{s.t.Erase(it.it)}
}

// Delete removes k from the set and reports whether it was present.
func (s *Set[K]) Delete(k K) bool {
	_, _, found := s.t.Delete(k)
	return found
}

// Begin returns an iterator positioned at the smallest key, or the End
// iterator if the set is empty.
func (s *Set[K]) Begin() SetIterator[K] {
	it := s.Iterator()
	it.First()
	return it
}

// End returns the past-the-end iterator. Calling Prev on it positions it at
// the largest key.
func (s *Set[K]) End() SetIterator[K] {
	return s.Iterator()
}

// Iterator returns an unpositioned iterator over the set.
func (s *Set[K]) Iterator() SetIterator[K] {
	return SetIterator[K]{s.t.MakeIter()}
}

// All returns an iterator over the keys in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := s.Begin(); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the keys in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := s.Iterator()
		for it.Last(); it.Valid(); it.Prev() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int { return s.t.Len() }

// Empty returns whether the set holds no keys.
func (s *Set[K]) Empty() bool { return s.t.Len() == 0 }

// MaxSize returns the maximum number of keys the set can hold.
func (s *Set[K]) MaxSize() int { return s.t.MaxSize() }

// Height returns the height of the underlying tree.
func (s *Set[K]) Height() int { return s.t.Height() }

// Merge moves every key of o which is not in s into s. Keys s already holds
// remain in o. If the moved keys would not fit, Merge panics with
// ErrCapacityExceeded before modifying either set.
func (s *Set[K]) Merge(o *Set[K]) {
	mustNotExceed(s.t.Merge(&o.t))
}

// Swap exchanges the contents of s and o in constant time.
func (s *Set[K]) Swap(o *Set[K]) {
	s.t.Swap(&o.t)
}

// Clear removes every key from the set.
func (s *Set[K]) Clear() {
	s.t.Reset()
}

// Clone returns a copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: s.t.Clone()}
}

// String returns a description of the tree structure.
func (s *Set[K]) String() string {
	return s.t.String()
}

// SetIterator is a position within a Set. The zero position, returned by
// End, is past the last key.
type SetIterator[K any] struct {
	it abstract.Iterator[K, struct{}, struct{}, noopAug[K], *noopAug[K]]
}

func (it *SetIterator[K]) First() { it.it.First() }

func (it *SetIterator[K]) Last() { it.it.Last() }

func (it *SetIterator[K]) Next() { it.it.Next() }

func (it *SetIterator[K]) Prev() { it.it.Prev() }

// SeekGE positions the iterator at the first key greater than or equal to
// k.
func (it *SetIterator[K]) SeekGE(k K) { it.it.SeekGE(k) }

// SeekLT positions the iterator at the last key less than k.
func (it *SetIterator[K]) SeekLT(k K) { it.it.SeekLT(k) }

func (it *SetIterator[K]) Valid() bool { return it.it.Valid() }

// Cur returns the key at the current position. It is illegal to call Cur
// on an invalid iterator.
func (it *SetIterator[K]) Cur() K { return it.it.Key() }

// Equal returns whether the two iterators are at the same position.
func (it *SetIterator[K]) Equal(o SetIterator[K]) bool { return it.it.Equal(o.it) }
