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

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrCapacityExceeded is returned when a mutation would grow a tree past its
// maximum size. It is detected before the tree is modified.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// Map is an implementation of an augmented AVL tree.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Map[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	root   *node[K, V, Aux, A, AP]
	length int
	cfg    config[K, V, Aux, A, AP]
}

// MakeMap constructs a new Map with the provided comparison function, aux
// configuration and options.
func MakeMap[K, V, Aux, A any, AP Aug[K, Aux, A]](
	aux Aux, cmp func(K, K) int, opts ...Option,
) Map[K, V, Aux, A, AP] {
	return Map[K, V, Aux, A, AP]{
		cfg: makeConfig[K, V, Aux, A, AP](aux, cmp, opts),
	}
}

// Reset removes all items from the tree. Every node is returned to the node
// pool exactly once. The teardown walks the parent pointers instead of
// recursing.
func (t *Map[K, V, Aux, A, AP]) Reset() {
	n := t.root
	for n != nil {
		if n.left != nil {
			n = n.left
			continue
		}
		if n.right != nil {
			n = n.right
			continue
		}
		p := n.parent
		if p != nil {
			if p.left == n {
				p.left = nil
			} else {
				p.right = nil
			}
		}
		t.cfg.np.putNode(n)
		n = p
	}
	t.root = nil
	t.length = 0
}

// Clone returns a deep copy of the tree with the same shape, configuration
// and augmentations.
func (t *Map[K, V, Aux, A, AP]) Clone() Map[K, V, Aux, A, AP] {
	c := *t
	c.root = t.root.clone(t.cfg.np, nil)
	return c
}

// Swap exchanges the contents of the two trees in constant time.
func (t *Map[K, V, Aux, A, AP]) Swap(o *Map[K, V, Aux, A, AP]) {
	*t, *o = *o, *t
}

// Get returns the value associated with the key, if it exists.
func (t *Map[K, V, Aux, A, AP]) Get(k K) (v V, ok bool) {
	if n := t.find(k); n != nil {
		return n.value, true
	}
	return v, false
}

// Contains returns whether the key is in the tree.
func (t *Map[K, V, Aux, A, AP]) Contains(k K) bool {
	return t.find(k) != nil
}

// Find returns an iterator positioned at the key, or an invalid iterator if
// the key is not in the tree.
func (t *Map[K, V, Aux, A, AP]) Find(k K) Iterator[K, V, Aux, A, AP] {
	return Iterator[K, V, Aux, A, AP]{r: t, n: t.find(k)}
}

func (t *Map[K, V, Aux, A, AP]) find(k K) *node[K, V, Aux, A, AP] {
	n := t.root
	for n != nil {
		c := t.cfg.Compare(k, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// slot descends to the position of k. If k is present the node holding it
// is returned; otherwise link is the empty child slot k belongs in and
// parent is the node owning that slot.
func (t *Map[K, V, Aux, A, AP]) slot(k K) (
	parent *node[K, V, Aux, A, AP], link **node[K, V, Aux, A, AP], existing *node[K, V, Aux, A, AP],
) {
	link = &t.root
	for *link != nil {
		parent = *link
		c := t.cfg.Compare(k, parent.key)
		switch {
		case c < 0:
			link = &parent.left
		case c > 0:
			link = &parent.right
		default:
			return parent, nil, parent
		}
	}
	return parent, link, nil
}

// Insert adds the key and value to the tree if the key is not already
// present. If it is, the existing entry is left untouched and the returned
// iterator is positioned at it.
func (t *Map[K, V, Aux, A, AP]) Insert(k K, v V) (Iterator[K, V, Aux, A, AP], bool, error) {
	return t.upsert(k, v, false /* assign */)
}

// InsertOrAssign adds the key and value to the tree, overwriting the value of
// an existing entry with the same key. The returned bool is true if a new
// entry was inserted.
func (t *Map[K, V, Aux, A, AP]) InsertOrAssign(k K, v V) (Iterator[K, V, Aux, A, AP], bool, error) {
	return t.upsert(k, v, true /* assign */)
}

func (t *Map[K, V, Aux, A, AP]) upsert(
	k K, v V, assign bool,
) (Iterator[K, V, Aux, A, AP], bool, error) {
	parent, link, existing := t.slot(k)
	if existing != nil {
		if assign {
			existing.value = v
		}
		return Iterator[K, V, Aux, A, AP]{r: t, n: existing}, false, nil
	}
	if err := t.CheckCapacity(1); err != nil {
		return Iterator[K, V, Aux, A, AP]{r: t}, false, err
	}
	n := t.cfg.np.getNode(k, v)
	t.link(parent, link, n)
	return Iterator[K, V, Aux, A, AP]{r: t, n: n}, true, nil
}

// CheckCapacity returns ErrCapacityExceeded if additional more entries would
// not fit in the tree.
func (t *Map[K, V, Aux, A, AP]) CheckCapacity(additional int) error {
	if additional > t.cfg.maxSize-t.length {
		return errors.Wrapf(ErrCapacityExceeded,
			"cannot add %d to %d elements (max %d)", additional, t.length, t.cfg.maxSize)
	}
	return nil
}

// link attaches the detached node n into the empty slot found by slot and
// rebalances the path to the root.
func (t *Map[K, V, Aux, A, AP]) link(
	parent *node[K, V, Aux, A, AP], link **node[K, V, Aux, A, AP], n *node[K, V, Aux, A, AP],
) {
	n.parent = parent
	n.left, n.right = nil, nil
	*link = n
	t.length++
	n.update(&t.cfg.Config, UpdateMeta[K, A]{})
	t.retrace(parent, UpdateMeta[K, A]{Action: Insertion, RelevantKey: n.key})
}

// Delete removes the entry with the given key from the tree.
func (t *Map[K, V, Aux, A, AP]) Delete(k K) (removedK K, v V, found bool) {
	n := t.find(k)
	if n == nil {
		return removedK, v, false
	}
	removedK, v = n.key, n.value
	t.unlink(n)
	t.cfg.np.putNode(n)
	return removedK, v, true
}

// Erase removes the entry the iterator is positioned at and returns an
// iterator positioned at the following entry. Erasing an invalid iterator is
// a no-op. Iterators positioned at other entries remain valid. Erase panics
// if the iterator is positioned in a different tree, including one whose
// contents were exchanged with Swap.
func (t *Map[K, V, Aux, A, AP]) Erase(it Iterator[K, V, Aux, A, AP]) Iterator[K, V, Aux, A, AP] {
	if it.n == nil {
		return Iterator[K, V, Aux, A, AP]{r: t}
	}
	n := it.n
	if !t.owns(n) {
		panic(errors.AssertionFailedf("iterator at %v belongs to a different tree", n.key))
	}
	next := n.next()
	t.unlink(n)
	t.cfg.np.putNode(n)
	return Iterator[K, V, Aux, A, AP]{r: t, n: next}
}

// owns returns whether n is linked into t.
func (t *Map[K, V, Aux, A, AP]) owns(n *node[K, V, Aux, A, AP]) bool {
	for n.parent != nil {
		n = n.parent
	}
	return n == t.root
}

// unlink detaches n from the tree without releasing it. A node with two
// children is replaced by its in-order successor node; no entry moves
// between nodes.
func (t *Map[K, V, Aux, A, AP]) unlink(n *node[K, V, Aux, A, AP]) {
	var from *node[K, V, Aux, A, AP]
	if n.left == nil || n.right == nil {
		child := n.left
		if child == nil {
			child = n.right
		}
		from = n.parent
		t.replace(n.parent, n, child)
	} else {
		s := n.right.min()
		if s.parent == n {
			from = s
		} else {
			// s is the left child of its parent and has no left child.
			from = s.parent
			t.replace(s.parent, s, s.right)
			s.right = n.right
			s.right.parent = s
		}
		s.left = n.left
		s.left.parent = s
		t.replace(n.parent, n, s)
	}
	n.left, n.right, n.parent = nil, nil, nil
	t.length--
	t.retrace(from, UpdateMeta[K, A]{Action: Removal, RelevantKey: n.key})
}

// replace puts c into the slot of parent which currently holds old. A nil
// parent denotes the root.
func (t *Map[K, V, Aux, A, AP]) replace(parent, old, c *node[K, V, Aux, A, AP]) {
	if c != nil {
		c.parent = parent
	}
	switch {
	case parent == nil:
		t.root = c
	case parent.left == old:
		parent.left = c
	default:
		parent.right = c
	}
}

// retrace walks from n to the root recomputing heights and augmentations
// and rotating wherever the balance factor leaves {-1, 0, 1}. It always runs
// to the root so that augmentations above a rotation are refreshed.
func (t *Map[K, V, Aux, A, AP]) retrace(n *node[K, V, Aux, A, AP], md UpdateMeta[K, A]) {
	for n != nil {
		n.update(&t.cfg.Config, md)
		n = t.rebalance(n)
		n = n.parent
	}
}

// rebalance restores the balance invariant at n, whose children are
// balanced, and returns the root of the resulting subtree.
func (t *Map[K, V, Aux, A, AP]) rebalance(n *node[K, V, Aux, A, AP]) *node[K, V, Aux, A, AP] {
	switch bf := n.balance(); {
	case bf > 1:
		if n.left.balance() < 0 {
			t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	case bf < -1:
		if n.right.balance() > 0 {
			t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	default:
		return n
	}
}

// rotateLeft rotates the subtree rooted at n to the left.
//
// Before:
//
//	  n
//	 / \
//	a   p
//	   / \
//	  b   c
//
// After:
//
//	    p
//	   / \
//	  n   c
//	 / \
//	a   b
func (t *Map[K, V, Aux, A, AP]) rotateLeft(n *node[K, V, Aux, A, AP]) *node[K, V, Aux, A, AP] {
	p := n.right
	n.right = p.left
	if p.left != nil {
		p.left.parent = n
	}
	t.replace(n.parent, n, p)
	p.left = n
	n.parent = p
	n.update(&t.cfg.Config, UpdateMeta[K, A]{})
	p.update(&t.cfg.Config, UpdateMeta[K, A]{})
	return p
}

// rotateRight is the mirror image of rotateLeft.
func (t *Map[K, V, Aux, A, AP]) rotateRight(n *node[K, V, Aux, A, AP]) *node[K, V, Aux, A, AP] {
	p := n.left
	n.left = p.right
	if p.right != nil {
		p.right.parent = n
	}
	t.replace(n.parent, n, p)
	p.right = n
	n.parent = p
	n.update(&t.cfg.Config, UpdateMeta[K, A]{})
	p.update(&t.cfg.Config, UpdateMeta[K, A]{})
	return p
}

// Merge moves every entry of o whose key is not present in t into t. Entries
// whose keys t already holds stay in o. Nodes are relinked, not copied. If
// the moved entries would not fit, ErrCapacityExceeded is returned and
// neither tree is modified.
func (t *Map[K, V, Aux, A, AP]) Merge(o *Map[K, V, Aux, A, AP]) error {
	if t == o || o.root == nil {
		return nil
	}
	var moving int
	for n := o.root.min(); n != nil; n = n.next() {
		if t.find(n.key) == nil {
			moving++
		}
	}
	if err := t.CheckCapacity(moving); err != nil {
		return err
	}
	for n := o.root.min(); n != nil; {
		// The successor keeps its identity when n is unlinked.
		next := n.next()
		if parent, link, existing := t.slot(n.key); existing == nil {
			o.unlink(n)
			t.link(parent, link, n)
		}
		n = next
	}
	return nil
}

// MakeIter returns a new Iterator object. The iterator is initially
// invalid; position it with First, Last or one of the Seek methods.
func (t *Map[K, V, Aux, A, AP]) MakeIter() Iterator[K, V, Aux, A, AP] {
	return Iterator[K, V, Aux, A, AP]{r: t}
}

// Height returns the height of the tree. An empty tree has height 0.
func (t *Map[K, V, Aux, A, AP]) Height() int {
	return int(height(t.root))
}

// Len returns the number of items currently in the tree.
func (t *Map[K, V, Aux, A, AP]) Len() int {
	return t.length
}

// MaxSize returns the maximum number of items the tree may hold.
func (t *Map[K, V, Aux, A, AP]) MaxSize() int {
	return t.cfg.maxSize
}

// Compare compares two keys using the tree's comparison function.
func (t *Map[K, V, Aux, A, AP]) Compare(a, b K) int {
	return t.cfg.Compare(a, b)
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V, Aux, A, AP]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
