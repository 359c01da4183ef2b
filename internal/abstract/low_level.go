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

// LowLevelIterator is exposed to developers within this module for use
// implemented augmented search functionality.
type LowLevelIterator[K, V, Aux, A any, AP Aug[K, Aux, A]] Iterator[K, V, Aux, A, AP]

// LowLevel converts an iterator to a LowLevelIterator. Given this package
// is internal, callers outside of this module cannot construct a
// LowLevelIterator.
func LowLevel[K, V, Aux, A any, AP Aug[K, Aux, A]](
	it *Iterator[K, V, Aux, A, AP],
) *LowLevelIterator[K, V, Aux, A, AP] {
	return it.lowLevel()
}

// Config returns the Map's config.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Config() *Config[K, Aux] {
	return &i.r.cfg.Config
}

// SeekRoot positions the iterator at the root of the tree. The iterator is
// invalid if the tree is empty.
func (i *LowLevelIterator[K, V, Aux, A, AP]) SeekRoot() {
	i.n = i.r.root
}

// Node returns the current node. It is illegal to call if the iterator is
// not valid.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Node() Node[K, *A] {
	return i.n
}

// Aug returns the augmentation of the current node.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Aug() AP {
	return &i.n.aug
}

// HasLeft returns true if the current node has a left child.
func (i *LowLevelIterator[K, V, Aux, A, AP]) HasLeft() bool {
	return i.n.left != nil
}

// HasRight returns true if the current node has a right child.
func (i *LowLevelIterator[K, V, Aux, A, AP]) HasRight() bool {
	return i.n.right != nil
}

// DescendLeft moves to the left child of the current node. Descending into
// a missing child invalidates the iterator.
func (i *LowLevelIterator[K, V, Aux, A, AP]) DescendLeft() {
	i.n = i.n.left
}

// DescendRight moves to the right child of the current node. Descending
// into a missing child invalidates the iterator.
func (i *LowLevelIterator[K, V, Aux, A, AP]) DescendRight() {
	i.n = i.n.right
}

// IsRoot returns true if the current node is the root of the tree.
func (i *LowLevelIterator[K, V, Aux, A, AP]) IsRoot() bool {
	return i.n.parent == nil
}

// IsLeftChild returns true if the current node is the left child of its
// parent.
func (i *LowLevelIterator[K, V, Aux, A, AP]) IsLeftChild() bool {
	return i.n.parent != nil && i.n.parent.left == i.n
}

// Ascend moves to the parent of the current node. Ascending from the root
// invalidates the iterator.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Ascend() {
	i.n = i.n.parent
}
