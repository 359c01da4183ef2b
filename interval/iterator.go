// Copyright 2018 The Cockroach Authors.
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

package interval

import "github.com/ajwerner/avl/internal/abstract"

// Iterator iterates a Map or Set either in order or over the intervals
// overlapping a search interval.
type Iterator[I, K, V any] struct {
	it abstract.Iterator[I, V, *updater[I, K], aug[I, K], *aug[I, K]]

	o overlapScan[I]
}

// An overlap scan visits the intervals overlapping the search interval in
// order of their start keys. It relies on two properties of the tree:
//  1. intervals are ordered by their start key.
//  2. every node holds the upper bound of the end keys in its subtree.
//
// A subtree is skipped when its upper bound does not contain the search
// interval's start key. The scan terminates at the first node whose start
// key is not contained in the search interval's upper bound; every interval
// after it starts too late to overlap.
type overlapScan[I any] struct {
	bounds I
	set    bool
}

func (o *overlapScan[I]) reset() {
	*o = overlapScan[I]{}
}

func (o *overlapScan[I]) empty() bool {
	return !o.set
}

func lowLevel[I, K, V any](
	it *Iterator[I, K, V],
) *abstract.LowLevelIterator[I, V, *updater[I, K], aug[I, K], *aug[I, K]] {
	return abstract.LowLevel(&it.it)
}

func (i *Iterator[I, K, V]) cfg() *updater[I, K] {
	return lowLevel(i).Config().Config
}

// Reset invalidates the iterator and abandons any overlap scan.
func (i *Iterator[I, K, V]) Reset() {
	i.o.reset()
	i.it.Reset()
}

// FirstOverlap seeks to the first interval in the tree that overlaps with
// the provided search interval.
func (i *Iterator[I, K, V]) FirstOverlap(bounds I) {
	i.Reset()
	ll := lowLevel(i)
	ll.SeekRoot()
	if !i.Valid() {
		return
	}
	i.o = overlapScan[I]{bounds: bounds, set: true}
	if !i.seekSubtree() {
		i.Reset()
	}
}

// NextOverlap positions the iterator at the interval immediately following
// its current position that overlaps with the search interval.
func (i *Iterator[I, K, V]) NextOverlap() {
	if !i.Valid() {
		return
	}
	if i.o.empty() {
		// Invalid. Mixed overlap scan with non-overlap scan.
		i.Reset()
		return
	}
	ll := lowLevel(i)
	if i.seekRight() {
		return
	}
	for !ll.IsRoot() {
		fromLeft := ll.IsLeftChild()
		ll.Ascend()
		if !fromLeft {
			continue
		}
		if i.pastBounds() {
			break
		}
		if i.cfg().overlaps(i.Cur(), i.o.bounds) || i.seekRight() {
			return
		}
	}
	i.Reset()
}

// seekSubtree moves to the first overlapping interval in the subtree rooted
// at the current node. If there is none it returns false and leaves the
// iterator at the subtree's root.
func (i *Iterator[I, K, V]) seekSubtree() bool {
	ll := lowLevel(i)
	u := i.cfg()
	if !ll.Aug().contains(u.cmp, u.key(i.o.bounds)) {
		return false
	}
	if ll.HasLeft() {
		ll.DescendLeft()
		if i.seekSubtree() {
			return true
		}
		ll.Ascend()
	}
	if i.pastBounds() {
		return false
	}
	if u.overlaps(i.Cur(), i.o.bounds) {
		return true
	}
	return i.seekRight()
}

func (i *Iterator[I, K, V]) seekRight() bool {
	ll := lowLevel(i)
	if !ll.HasRight() {
		return false
	}
	ll.DescendRight()
	if i.seekSubtree() {
		return true
	}
	ll.Ascend()
	return false
}

// pastBounds returns whether the current interval, and thus every later
// one, starts after the search interval ends.
func (i *Iterator[I, K, V]) pastBounds() bool {
	u := i.cfg()
	return !u.upperBound(i.o.bounds).contains(u.cmp, u.key(i.Cur()))
}

// First seeks to the first interval, abandoning any overlap scan.
func (i *Iterator[I, K, V]) First() {
	i.o.reset()
	i.it.First()
}

// Last seeks to the last interval, abandoning any overlap scan.
func (i *Iterator[I, K, V]) Last() {
	i.o.reset()
	i.it.Last()
}

func (i *Iterator[I, K, V]) Next() { i.it.Next() }

func (i *Iterator[I, K, V]) Prev() { i.it.Prev() }

// SeekGE seeks to the first interval greater than or equal to the provided
// interval under the Map's ordering.
func (i *Iterator[I, K, V]) SeekGE(q I) {
	i.o.reset()
	i.it.SeekGE(q)
}

func (i *Iterator[I, K, V]) Valid() bool { return i.it.Valid() }

// Cur returns the interval at the current position.
func (i *Iterator[I, K, V]) Cur() I { return i.it.Key() }

// Value returns the value at the current position.
func (i *Iterator[I, K, V]) Value() V { return i.it.Value() }
