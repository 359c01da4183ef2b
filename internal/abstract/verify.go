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

import "github.com/cockroachdb/errors"

// Verify checks the structural invariants of the tree: strict key ordering,
// consistent parent pointers, exact cached heights, the AVL balance bound
// and the element count. It is intended for tests.
func (t *Map[K, V, Aux, A, AP]) Verify() error {
	if t.root != nil && t.root.parent != nil {
		return errors.AssertionFailedf("root %v has parent %v", t.root.key, t.root.parent.key)
	}
	count, err := t.verify(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.length {
		return errors.AssertionFailedf("tree reaches %d nodes but records %d", count, t.length)
	}
	return nil
}

// verify checks the subtree rooted at n, whose keys must lie strictly
// between the keys of lo and hi when those are set, and returns its size.
func (t *Map[K, V, Aux, A, AP]) verify(n, lo, hi *node[K, V, Aux, A, AP]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.cfg.Compare(lo.key, n.key) >= 0 {
		return 0, errors.AssertionFailedf("key %v is not greater than %v", n.key, lo.key)
	}
	if hi != nil && t.cfg.Compare(n.key, hi.key) >= 0 {
		return 0, errors.AssertionFailedf("key %v is not less than %v", n.key, hi.key)
	}
	for _, c := range []*node[K, V, Aux, A, AP]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, errors.AssertionFailedf("child %v of %v has wrong parent", c.key, n.key)
		}
	}
	if want := 1 + max(height(n.left), height(n.right)); n.height != want {
		return 0, errors.AssertionFailedf("node %v has height %d, expected %d", n.key, n.height, want)
	}
	if bf := n.balance(); bf < -1 || bf > 1 {
		return 0, errors.AssertionFailedf("node %v has balance factor %d", n.key, bf)
	}
	left, err := t.verify(n.left, lo, n)
	if err != nil {
		return 0, err
	}
	right, err := t.verify(n.right, n, hi)
	if err != nil {
		return 0, err
	}
	return 1 + left + right, nil
}
