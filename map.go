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
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Map is an ordered map from unique keys to values.
type Map[K, V any] struct {
	t abstract.Map[K, V, struct{}, noopAug[K], *noopAug[K]]
}

// MakeMap returns an empty map ordered by the natural order of K.
func MakeMap[K constraints.Ordered, V any](opts ...Option) *Map[K, V] {
	return MakeMapFunc[K, V](cmp.Compare[K], opts...)
}

// MakeMapFunc returns an empty map ordered by cmp, which must define a
// strict total order.
func MakeMapFunc[K, V any](cmp func(K, K) int, opts ...Option) *Map[K, V] {
	return &Map[K, V]{
		t: abstract.MakeMap[K, V, struct{}, noopAug[K]](struct{}{}, cmp, opts...),
	}
}

// Insert adds the entry if k is not already present. An existing entry is
// left untouched. The returned iterator is positioned at the entry for k and
// the bool reports whether it was inserted. Insert panics with
// ErrCapacityExceeded if the map already holds MaxSize entries.
func (m *Map[K, V]) Insert(k K, v V) (MapIterator[K, V], bool) {
	it, inserted, err := m.t.Insert(k, v)
	mustNotExceed(err)
	return MapIterator[K, V]{it}, inserted
}

// InsertOrAssign adds the entry, overwriting the value of an existing entry
// for k. The bool reports whether a new entry was inserted rather than
// assigned.
func (m *Map[K, V]) InsertOrAssign(k K, v V) (MapIterator[K, V], bool) {
	it, inserted, err := m.t.InsertOrAssign(k, v)
	mustNotExceed(err)
	return MapIterator[K, V]{it}, inserted
}

// InsertMany inserts each entry in order, leaving existing entries
// untouched, and reports per entry whether it was inserted. If the new
// entries would not fit, InsertMany panics with ErrCapacityExceeded before
// inserting any of them.
func (m *Map[K, V]) InsertMany(entries ...Entry[K, V]) []bool {
	keys := make([]K, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	mustNotExceed(m.t.CheckCapacity(countFresh(m.t.Compare, m.t.Contains, keys)))
	inserted := make([]bool, len(entries))
	for i, e := range entries {
		_, inserted[i] = m.Insert(e.Key, e.Value)
	}
	return inserted
}

// GetOrInsert returns a pointer to the value for k, inserting the zero value
// if k is absent. The pointer remains valid until the entry is erased.
func (m *Map[K, V]) GetOrInsert(k K) *V {
	var zero V
	it, _ := m.Insert(k, zero)
	return it.it.ValuePtr()
}

// At returns the value for k, or an error satisfying
// errors.Is(err, ErrKeyNotFound) if k is absent.
func (m *Map[K, V]) At(k K) (V, error) {
	v, ok := m.t.Get(k)
	if !ok {
		return v, errors.Wrapf(ErrKeyNotFound, "key %v", k)
	}
	return v, nil
}

// Get returns the value for k and whether it was found.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.t.Get(k)
}

// Contains returns whether k is in the map.
func (m *Map[K, V]) Contains(k K) bool {
	return m.t.Contains(k)
}

// Find returns an iterator positioned at the entry for k, or the End
// iterator if k is absent.
func (m *Map[K, V]) Find(k K) MapIterator[K, V] {
	return MapIterator[K, V]{m.t.Find(k)}
}

// Erase removes the entry the iterator is positioned at and returns an
// iterator positioned at the following entry. Erasing the End iterator is a
// no-op. Iterators positioned at other entries remain valid; iterators
// positioned at the erased entry must not be used. Erase panics if the
// iterator was obtained from a different map, or from m before a Swap.
func (m *Map[K, V]) Erase(it MapIterator[K, V]) MapIterator[K, V] {
	return MapIterator[K, V]{m.t.Erase(it.it)}
}

// Delete removes the entry for k, returning its value and whether it was
// present.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	_, v, found := m.t.Delete(k)
	return v, found
}

// Begin returns an iterator positioned at the entry with the smallest key,
// or the End iterator if the map is empty.
func (m *Map[K, V]) Begin() MapIterator[K, V] {
	it := m.Iterator()
	it.First()
	return it
}

// End returns the past-the-end iterator. Calling Prev on it positions it at
// the entry with the largest key.
func (m *Map[K, V]) End() MapIterator[K, V] {
	return m.Iterator()
}

// Iterator returns an unpositioned iterator over the map.
func (m *Map[K, V]) Iterator() MapIterator[K, V] {
	return MapIterator[K, V]{m.t.MakeIter()}
}

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); it.Valid(); it.Next() {
			if !yield(it.Cur(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iterator()
		for it.Last(); it.Valid(); it.Prev() {
			if !yield(it.Cur(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Empty returns whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Len() == 0 }

// MaxSize returns the maximum number of entries the map can hold.
func (m *Map[K, V]) MaxSize() int { return m.t.MaxSize() }

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// Merge moves every entry of o whose key is not in m into m. Entries whose
// keys m already holds remain in o with their values. If the moved entries
// would not fit, Merge panics with ErrCapacityExceeded before modifying
// either map.
func (m *Map[K, V]) Merge(o *Map[K, V]) {
	mustNotExceed(m.t.Merge(&o.t))
}

// Swap exchanges the contents of m and o in constant time.
func (m *Map[K, V]) Swap(o *Map[K, V]) {
	m.t.Swap(&o.t)
}

// Clear removes every entry from the map.
func (m *Map[K, V]) Clear() {
	m.t.Reset()
}

// Clone returns a copy of the map. Values are copied, not deep-copied.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.t.Clone()}
}

// String returns a description of the tree structure.
func (m *Map[K, V]) String() string {
	return m.t.String()
}

// Entry is a key-value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// MapIterator is a position within a Map. The zero position, returned by
// End, is past the last entry.
type MapIterator[K, V any] struct {
	it abstract.Iterator[K, V, struct{}, noopAug[K], *noopAug[K]]
}

func (it *MapIterator[K, V]) First() { it.it.First() }

func (it *MapIterator[K, V]) Last() { it.it.Last() }

func (it *MapIterator[K, V]) Next() { it.it.Next() }

func (it *MapIterator[K, V]) Prev() { it.it.Prev() }

// SeekGE positions the iterator at the first entry with a key greater than
// or equal to k.
func (it *MapIterator[K, V]) SeekGE(k K) { it.it.SeekGE(k) }

// SeekLT positions the iterator at the last entry with a key less than k.
func (it *MapIterator[K, V]) SeekLT(k K) { it.it.SeekLT(k) }

func (it *MapIterator[K, V]) Valid() bool { return it.it.Valid() }

// Cur returns the key at the current position.
func (it *MapIterator[K, V]) Cur() K { return it.it.Key() }

// Value returns the value at the current position.
func (it *MapIterator[K, V]) Value() V { return it.it.Value() }

// SetValue replaces the value at the current position. The key, and thus
// the ordering, is unaffected.
func (it *MapIterator[K, V]) SetValue(v V) { it.it.SetValue(v) }

// Equal returns whether the two iterators are at the same position.
func (it *MapIterator[K, V]) Equal(o MapIterator[K, V]) bool { return it.it.Equal(o.it) }
