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

package abstract

// Iterator is responsible for search and traversal within a Map. An
// iterator which is not positioned at a node is invalid; it plays the role
// of the past-the-end position.
type Iterator[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	r *Map[K, V, Aux, A, AP]
	n *node[K, V, Aux, A, AP]
}

func (i *Iterator[K, V, Aux, A, AP]) lowLevel() *LowLevelIterator[K, V, Aux, A, AP] {
	return (*LowLevelIterator[K, V, Aux, A, AP])(i)
}

// Reset invalidates the iterator.
func (i *Iterator[K, V, Aux, A, AP]) Reset() {
	i.n = nil
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V, Aux, A, AP]) SeekGE(key K) {
	i.Reset()
	for n := i.r.root; n != nil; {
		c := i.r.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			i.n = n
			n = n.left
		case c > 0:
			n = n.right
		default:
			i.n = n
			return
		}
	}
}

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V, Aux, A, AP]) SeekLT(key K) {
	i.Reset()
	for n := i.r.root; n != nil; {
		if i.r.cfg.Compare(key, n.key) > 0 {
			i.n = n
			n = n.right
		} else {
			n = n.left
		}
	}
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V, Aux, A, AP]) First() {
	i.Reset()
	if i.r.root != nil {
		i.n = i.r.root.min()
	}
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V, Aux, A, AP]) Last() {
	i.Reset()
	if i.r.root != nil {
		i.n = i.r.root.max()
	}
}

// Next positions the Iterator to the key immediately following
// its current position. Advancing past the last key invalidates the
// iterator; advancing an invalid iterator is a no-op.
func (i *Iterator[K, V, Aux, A, AP]) Next() {
	if i.n == nil {
		return
	}
	i.n = i.n.next()
}

// Prev positions the Iterator to the key immediately preceding
// its current position. Retreating from the invalid (end) position
// positions the iterator at the last key.
func (i *Iterator[K, V, Aux, A, AP]) Prev() {
	if i.n == nil {
		i.Last()
		return
	}
	i.n = i.n.prev()
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V, Aux, A, AP]) Valid() bool {
	return i.n != nil
}

// Equal returns whether the two iterators are at the same position.
func (i *Iterator[K, V, Aux, A, AP]) Equal(o Iterator[K, V, Aux, A, AP]) bool {
	return i.n == o.n
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V, Aux, A, AP]) Key() K {
	return i.n.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V, Aux, A, AP]) Value() V {
	return i.n.value
}

// ValuePtr returns a pointer to the value at the Iterator's current
// position. The pointer remains valid until the entry is erased.
func (i *Iterator[K, V, Aux, A, AP]) ValuePtr() *V {
	return &i.n.value
}

// SetValue overwrites the value at the Iterator's current position. Keys
// cannot be modified.
func (i *Iterator[K, V, Aux, A, AP]) SetValue(v V) {
	i.n.value = v
}
