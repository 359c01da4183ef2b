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
	"fmt"
	"strings"
)

// node is a single entry of the tree. Children are owned by their parent;
// the parent pointer is a back-reference used for iteration and for
// retracing after a mutation.
type node[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	key    K
	value  V
	aug    A
	height int8
	left   *node[K, V, Aux, A, AP]
	right  *node[K, V, Aux, A, AP]
	parent *node[K, V, Aux, A, AP]
}

func (n *node[K, V, Aux, A, AP]) GetKey() K {
	return n.key
}

func (n *node[K, V, Aux, A, AP]) GetLeft() *A {
	if n.left == nil {
		return nil
	}
	return &n.left.aug
}

func (n *node[K, V, Aux, A, AP]) GetRight() *A {
	if n.right == nil {
		return nil
	}
	return &n.right.aug
}

func height[K, V, Aux, A any, AP Aug[K, Aux, A]](n *node[K, V, Aux, A, AP]) int8 {
	if n == nil {
		return 0
	}
	return n.height
}

// balance returns height(left) - height(right).
func (n *node[K, V, Aux, A, AP]) balance() int8 {
	return height(n.left) - height(n.right)
}

// update recomputes the cached height and the augmentation from the
// children, which must already be up to date.
func (n *node[K, V, Aux, A, AP]) update(cfg *Config[K, Aux], md UpdateMeta[K, A]) {
	n.height = 1 + max(height(n.left), height(n.right))
	AP(&n.aug).Update(cfg, n, md)
}

func (n *node[K, V, Aux, A, AP]) min() *node[K, V, Aux, A, AP] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V, Aux, A, AP]) max() *node[K, V, Aux, A, AP] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n or nil.
func (n *node[K, V, Aux, A, AP]) next() *node[K, V, Aux, A, AP] {
	if n.right != nil {
		return n.right.min()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// prev returns the in-order predecessor of n or nil.
func (n *node[K, V, Aux, A, AP]) prev() *node[K, V, Aux, A, AP] {
	if n.left != nil {
		return n.left.max()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// clone deep copies the subtree rooted at n, preserving its shape. The
// recursion depth is bounded by the height of the tree.
func (n *node[K, V, Aux, A, AP]) clone(
	np *nodePool[K, V, Aux, A, AP], parent *node[K, V, Aux, A, AP],
) *node[K, V, Aux, A, AP] {
	if n == nil {
		return nil
	}
	c := np.getNode(n.key, n.value)
	c.aug = n.aug
	c.height = n.height
	c.parent = parent
	c.left = n.left.clone(np, c)
	c.right = n.right.clone(np, c)
	return c
}

func (n *node[K, V, Aux, A, AP]) writeString(b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		n.left.writeString(b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.value)
	if n.right != nil {
		b.WriteString("(")
		n.right.writeString(b)
		b.WriteString(")")
	}
}
