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

// aug holds the upper bound of all intervals in the subtree.
type aug[I, K any] struct {
	keyBound[K]
}

// Update recomputes the bound from the node's own interval and the bounds
// of its children. A node has at most two children so this is constant
// time.
func (a *aug[I, K]) Update(
	c *abstract.Config[I, *updater[I, K]],
	n abstract.Node[I, *aug[I, K]],
	_ abstract.UpdateMeta[I, aug[I, K]],
) (updated bool) {
	u := c.Config
	prev := a.keyBound
	a.keyBound = u.findUpperBound(n)
	return a.compare(u.cmp, prev) != 0
}

// updater carries the functions which project intervals onto their bounds.
type updater[I, K any] struct {
	key, end func(I) K
	cmp      func(K, K) int
	hasEnd   func(I) bool
}

type keyBound[K any] struct {
	k         K
	inclusive bool
}

// upperBound returns the exclusive end of the interval, or its start,
// inclusive, if the interval is a point.
func (u *updater[I, K]) upperBound(interval I) keyBound[K] {
	if u.hasEnd != nil && !u.hasEnd(interval) {
		return keyBound[K]{k: u.key(interval), inclusive: true}
	}
	return keyBound[K]{k: u.end(interval)}
}

func (u *updater[I, K]) findUpperBound(n abstract.Node[I, *aug[I, K]]) keyBound[K] {
	max := u.upperBound(n.GetKey())
	for _, child := range [2]*aug[I, K]{n.GetLeft(), n.GetRight()} {
		if child != nil && max.compare(u.cmp, child.keyBound) < 0 {
			max = child.keyBound
		}
	}
	return max
}

// overlaps returns whether the two intervals share at least one key.
func (u *updater[I, K]) overlaps(a, b I) bool {
	return u.upperBound(a).contains(u.cmp, u.key(b)) &&
		u.upperBound(b).contains(u.cmp, u.key(a))
}

func (b keyBound[K]) compare(cmp func(K, K) int, o keyBound[K]) int {
	c := cmp(b.k, o.k)
	if c != 0 {
		return c
	}
	if b.inclusive == o.inclusive {
		return 0
	}
	if b.inclusive {
		return 1
	}
	return -1
}

func (b keyBound[K]) contains(cmp func(K, K) int, o K) bool {
	c := cmp(o, b.k)
	if c == 0 {
		return b.inclusive
	}
	return c < 0
}
