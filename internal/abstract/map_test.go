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
	"cmp"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// sizeAug counts the entries of a subtree.
type sizeAug struct {
	size int
}

func (a *sizeAug) Update(
	_ *Config[int, struct{}], n Node[int, *sizeAug], _ UpdateMeta[int, sizeAug],
) (changed bool) {
	orig := a.size
	a.size = 1
	if l := n.GetLeft(); l != nil {
		a.size += l.size
	}
	if r := n.GetRight(); r != nil {
		a.size += r.size
	}
	return a.size != orig
}

type intMap = Map[int, int, struct{}, sizeAug, *sizeAug]

func makeIntMap(opts ...Option) intMap {
	return MakeMap[int, int, struct{}, sizeAug](struct{}{}, cmp.Compare[int], opts...)
}

func makeIntMapOf(t *testing.T, keys ...int) intMap {
	t.Helper()
	m := makeIntMap()
	for _, k := range keys {
		_, _, err := m.Insert(k, k*10)
		require.NoError(t, err)
	}
	return m
}

// checkTree verifies the structural invariants and the size augmentation.
func checkTree(t *testing.T, m *intMap) {
	t.Helper()
	require.NoError(t, m.Verify())
	var checkAug func(n *node[int, int, struct{}, sizeAug, *sizeAug]) int
	checkAug = func(n *node[int, int, struct{}, sizeAug, *sizeAug]) int {
		if n == nil {
			return 0
		}
		size := 1 + checkAug(n.left) + checkAug(n.right)
		require.Equalf(t, size, n.aug.size, "augmentation of %d", n.key)
		return size
	}
	require.Equal(t, m.Len(), checkAug(m.root))
}

func keys(m *intMap) []int {
	var out []int
	it := m.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}

func TestInsertAscendingStaysBalanced(t *testing.T) {
	m := makeIntMap()
	for i, k := range []int{10, 20, 30, 40, 50} {
		_, inserted, err := m.Insert(k, k)
		require.NoError(t, err)
		require.True(t, inserted)
		checkTree(t, &m)
		bound := int(math.Ceil(1.44 * math.Log2(float64(i+2))))
		require.LessOrEqualf(t, m.Height(), bound, "after inserting %d", k)
	}
	require.Equal(t, 3, m.Height())
	require.Equal(t, []int{10, 20, 30, 40, 50}, keys(&m))
}

func TestRotationCases(t *testing.T) {
	for _, tc := range []struct {
		name string
		keys []int
	}{
		{"left-left", []int{3, 2, 1}},
		{"left-right", []int{3, 1, 2}},
		{"right-right", []int{1, 2, 3}},
		{"right-left", []int{1, 3, 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := makeIntMapOf(t, tc.keys...)
			checkTree(t, &m)
			require.Equal(t, 2, m.root.key)
			require.Equal(t, 2, m.Height())
			require.Equal(t, "(1:10)2:20(3:30)", m.String())
		})
	}
}

func TestInsertExisting(t *testing.T) {
	m := makeIntMapOf(t, 1, 2, 3)
	it, inserted, err := m.Insert(2, 99)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 2, it.Key())
	require.Equal(t, 20, it.Value())
	require.Equal(t, 3, m.Len())

	it, inserted, err = m.InsertOrAssign(2, 99)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 99, it.Value())
	v, ok := m.Get(2)
	require.True(t, ok)
	require.Equal(t, 99, v)
	require.Equal(t, 3, m.Len())
}

func TestDeleteTwoChildren(t *testing.T) {
	m := makeIntMapOf(t, 5, 3, 7, 2, 4, 6, 8)
	k, v, found := m.Delete(5)
	require.True(t, found)
	require.Equal(t, 5, k)
	require.Equal(t, 50, v)
	checkTree(t, &m)
	require.Equal(t, []int{2, 3, 4, 6, 7, 8}, keys(&m))
	require.Equal(t, 6, m.Len())

	_, _, found = m.Delete(5)
	require.False(t, found)
	require.Equal(t, 6, m.Len())
}

func TestEraseKeepsOtherIteratorsValid(t *testing.T) {
	m := makeIntMapOf(t, 5, 3, 7, 2, 4, 6, 8)
	root := m.Find(5)
	succ := m.Find(6)
	pred := m.Find(4)
	require.True(t, root.Valid())

	next := m.Erase(root)
	require.True(t, next.Equal(succ))
	checkTree(t, &m)

	// The successor node was relinked into the erased position, not copied.
	require.Equal(t, 6, succ.Key())
	require.Equal(t, 60, succ.Value())
	require.Equal(t, 4, pred.Key())
	succ.Prev()
	require.True(t, succ.Equal(pred))
}

func TestEraseInvalidIterator(t *testing.T) {
	m := makeIntMapOf(t, 1, 2)
	it := m.Erase(m.Find(3))
	require.False(t, it.Valid())
	require.Equal(t, 2, m.Len())

	it = m.Find(2)
	it = m.Erase(it)
	require.False(t, it.Valid())
	require.Equal(t, []int{1}, keys(&m))
}

func TestEraseForeignIterator(t *testing.T) {
	a := makeIntMapOf(t, 1, 2, 3)
	b := makeIntMapOf(t, 10, 20, 30)
	require.Panics(t, func() { a.Erase(b.Find(20)) })
	require.Equal(t, []int{1, 2, 3}, keys(&a))
	require.Equal(t, []int{10, 20, 30}, keys(&b))
	checkTree(t, &a)
	checkTree(t, &b)

	// After a swap the node lives in b even though the iterator was made
	// from a.
	it := a.Find(2)
	a.Swap(&b)
	require.Panics(t, func() { a.Erase(it) })
	b.Erase(it)
	require.Equal(t, []int{1, 3}, keys(&b))
	require.Equal(t, []int{10, 20, 30}, keys(&a))
	checkTree(t, &a)
	checkTree(t, &b)
}

func TestFindEmpty(t *testing.T) {
	m := makeIntMap()
	it := m.Find(42)
	require.False(t, it.Valid())
	end := m.MakeIter()
	require.True(t, it.Equal(end))
	require.False(t, m.Contains(42))
	require.Equal(t, ";", m.String())
	require.Equal(t, 0, m.Height())
}

func TestIteration(t *testing.T) {
	m := makeIntMapOf(t, 5, 1, 9, 3, 7)
	it := m.MakeIter()

	it.Prev()
	require.True(t, it.Valid())
	require.Equal(t, 9, it.Key())

	var backward []int
	for it.Last(); it.Valid(); it.Prev() {
		backward = append(backward, it.Key())
	}
	require.Equal(t, []int{9, 7, 5, 3, 1}, backward)

	it.First()
	it.SetValue(-1)
	require.Equal(t, -1, it.Value())
	*it.ValuePtr() = -2
	v, _ := m.Get(1)
	require.Equal(t, -2, v)

	it.Last()
	it.Next()
	require.False(t, it.Valid())
	it.Next()
	require.False(t, it.Valid())
}

func TestSeek(t *testing.T) {
	m := makeIntMapOf(t, 10, 20, 30, 40)
	it := m.MakeIter()
	for _, tc := range []struct {
		key    int
		ge, lt int // -1 for invalid
	}{
		{5, 10, -1},
		{10, 10, -1},
		{15, 20, 10},
		{30, 30, 20},
		{40, 40, 30},
		{45, -1, 40},
	} {
		it.SeekGE(tc.key)
		if tc.ge < 0 {
			require.Falsef(t, it.Valid(), "SeekGE(%d)", tc.key)
		} else {
			require.Equalf(t, tc.ge, it.Key(), "SeekGE(%d)", tc.key)
		}
		it.SeekLT(tc.key)
		if tc.lt < 0 {
			require.Falsef(t, it.Valid(), "SeekLT(%d)", tc.key)
		} else {
			require.Equalf(t, tc.lt, it.Key(), "SeekLT(%d)", tc.key)
		}
	}
}

func TestMerge(t *testing.T) {
	t.Run("disjoint", func(t *testing.T) {
		a := makeIntMapOf(t, 1, 2, 3)
		b := makeIntMapOf(t, 4, 5)
		require.NoError(t, a.Merge(&b))
		checkTree(t, &a)
		checkTree(t, &b)
		require.Equal(t, []int{1, 2, 3, 4, 5}, keys(&a))
		require.Equal(t, 5, a.Len())
		require.Equal(t, 0, b.Len())
		require.Nil(t, b.root)
	})
	t.Run("overlapping", func(t *testing.T) {
		a := makeIntMapOf(t, 1, 2, 3)
		b := makeIntMapOf(t, 3, 4, 5)
		b.InsertOrAssign(3, -3)
		require.NoError(t, a.Merge(&b))
		checkTree(t, &a)
		checkTree(t, &b)
		require.Equal(t, []int{1, 2, 3, 4, 5}, keys(&a))
		require.Equal(t, []int{3}, keys(&b))
		v, _ := a.Get(3)
		require.Equal(t, 30, v)
		v, _ = b.Get(3)
		require.Equal(t, -3, v)
	})
	t.Run("self", func(t *testing.T) {
		a := makeIntMapOf(t, 1, 2, 3)
		require.NoError(t, a.Merge(&a))
		require.Equal(t, []int{1, 2, 3}, keys(&a))
	})
	t.Run("large", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		a, b := makeIntMap(), makeIntMap()
		want := map[int]bool{}
		for i := 0; i < 500; i++ {
			k := rng.Intn(1000)
			a.Insert(k, k)
			want[k] = true
			k = rng.Intn(1000)
			b.Insert(k, k)
			want[k] = true
		}
		sizeB := b.Len()
		overlap := 0
		for _, k := range keys(&b) {
			if a.Contains(k) {
				overlap++
			}
		}
		require.NoError(t, a.Merge(&b))
		checkTree(t, &a)
		checkTree(t, &b)
		require.Equal(t, len(want), a.Len())
		require.Equal(t, overlap, b.Len())
		for _, k := range keys(&b) {
			require.True(t, a.Contains(k))
		}
		require.Less(t, overlap, sizeB)
	})
}

func TestCapacityExceeded(t *testing.T) {
	m := makeIntMap(WithMaxSize(2))
	require.Equal(t, 2, m.MaxSize())
	_, _, err := m.Insert(1, 1)
	require.NoError(t, err)
	_, _, err = m.Insert(2, 2)
	require.NoError(t, err)

	before := m.String()
	it, inserted, err := m.Insert(3, 3)
	require.True(t, errors.Is(err, ErrCapacityExceeded), "%v", err)
	require.False(t, inserted)
	require.False(t, it.Valid())
	require.Equal(t, before, m.String())

	// Existing keys can still be found and assigned.
	_, inserted, err = m.InsertOrAssign(2, 20)
	require.NoError(t, err)
	require.False(t, inserted)

	o := makeIntMapOf(t, 2, 3)
	err = m.Merge(&o)
	require.True(t, errors.Is(err, ErrCapacityExceeded), "%v", err)
	require.Equal(t, 2, m.Len())
	require.Equal(t, 2, o.Len())
	checkTree(t, &m)
	checkTree(t, &o)

	fresh := makeIntMap()
	require.Greater(t, fresh.MaxSize(), 1<<40)
}

func TestCloneIsIndependent(t *testing.T) {
	m := makeIntMapOf(t, 4, 2, 6, 1, 3, 5, 7)
	c := m.Clone()
	checkTree(t, &c)
	require.Equal(t, m.String(), c.String())

	c.Delete(4)
	c.InsertOrAssign(1, 100)
	checkTree(t, &m)
	checkTree(t, &c)
	require.Equal(t, 7, m.Len())
	v, _ := m.Get(1)
	require.Equal(t, 10, v)
	require.True(t, m.Contains(4))
}

func TestSwap(t *testing.T) {
	a := makeIntMapOf(t, 1, 2, 3)
	b := makeIntMap(WithMaxSize(10))
	b.Insert(9, 9)
	a.Swap(&b)
	require.Equal(t, []int{9}, keys(&a))
	require.Equal(t, 10, a.MaxSize())
	require.Equal(t, []int{1, 2, 3}, keys(&b))
}

func TestReset(t *testing.T) {
	m := makeIntMapOf(t, rand.New(rand.NewSource(2)).Perm(200)...)
	m.Reset()
	checkTree(t, &m)
	require.Equal(t, 0, m.Len())
	require.Nil(t, m.root)
	it := m.MakeIter()
	it.First()
	require.False(t, it.Valid())

	// The tree is reusable after a reset.
	m.Insert(1, 1)
	require.Equal(t, []int{1}, keys(&m))
}

// TestRandomOperations exercises random interleavings of inserts and
// deletes against a Go map, checking every invariant after each mutation.
func TestRandomOperations(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	m := makeIntMap()
	ref := map[int]int{}
	const keySpace = 256
	for i := 0; i < 5000; i++ {
		k := rng.Intn(keySpace)
		switch rng.Intn(3) {
		case 0, 1:
			_, inserted, err := m.Insert(k, i)
			require.NoError(t, err)
			_, had := ref[k]
			require.Equal(t, !had, inserted)
			if !had {
				ref[k] = i
			}
		default:
			_, v, found := m.Delete(k)
			want, had := ref[k]
			require.Equal(t, had, found)
			if had {
				require.Equal(t, want, v)
			}
			delete(ref, k)
		}
		if i%17 == 0 {
			checkTree(t, &m)
		}
		require.Equal(t, len(ref), m.Len())
	}
	checkTree(t, &m)

	want := make([]int, 0, len(ref))
	for k := range ref {
		want = append(want, k)
	}
	sort.Ints(want)
	require.Equal(t, want, keys(&m))
	t.Logf("final size %d height %d", m.Len(), m.Height())
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 300
	m := makeIntMap()
	for _, k := range rng.Perm(n) {
		m.Insert(k, k)
	}
	checkTree(t, &m)
	for _, k := range rng.Perm(n) {
		_, _, found := m.Delete(k)
		require.True(t, found)
		checkTree(t, &m)
	}
	require.Equal(t, 0, m.Len())
	require.Nil(t, m.root)
}
