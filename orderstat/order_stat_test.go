package orderstat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatTree(t *testing.T) {
	tree := MakeSet[int]()
	for _, k := range []int{2, 3, 5, 4} {
		require.True(t, tree.Insert(k))
	}
	assert.False(t, tree.Insert(3))
	iter := tree.MakeIter()
	iter.First()
	for _, exp := range []int{2, 3, 4, 5} {
		assert.Equal(t, exp, iter.Cur())
		iter.Next()
	}
	assert.False(t, iter.Valid())

	iter.Nth(2)
	assert.Equal(t, 4, iter.Cur())
	assert.Equal(t, 2, iter.Rank())
	iter.Nth(4)
	assert.False(t, iter.Valid())
	assert.Equal(t, 4, iter.Rank())
	iter.Nth(-1)
	assert.False(t, iter.Valid())

	k, ok := tree.Nth(0)
	assert.True(t, ok)
	assert.Equal(t, 2, k)
	assert.Equal(t, 0, tree.Rank(1))
	assert.Equal(t, 2, tree.Rank(4))
	assert.Equal(t, 4, tree.Rank(10))
}

func TestOrderStatEmpty(t *testing.T) {
	tree := MakeSet[string]()
	_, ok := tree.Nth(0)
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Rank("a"))
	iter := tree.MakeIter()
	assert.Equal(t, 0, iter.Rank())
}

func TestOrderStatNth(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	tree := MakeSet[int]()
	const maxN = 1000
	N := rng.Intn(maxN) + 1
	items := make([]int, 0, N)
	for i := 0; i < N; i++ {
		items = append(items, 2*i)
	}
	for _, idx := range rng.Perm(N) {
		tree.Insert(items[idx])
	}
	retainAll := rng.Float64() < .25
	var removed []int
	for _, idx := range rng.Perm(N) {
		if !retainAll && rng.Float64() < .05 {
			continue
		}
		require.True(t, tree.Delete(items[idx]))
		removed = append(removed, items[idx])
	}
	t.Logf("removed %d/%d", len(removed), N)
	require.NoError(t, tree.t.Verify())
	for _, i := range removed {
		tree.Insert(i)
	}
	require.NoError(t, tree.t.Verify())
	require.Equal(t, N, tree.Len())

	iter := tree.MakeIter()
	for _, idx := range rng.Perm(N) {
		iter.Nth(idx)
		require.Equal(t, items[idx], iter.Cur())
		require.Equal(t, idx, iter.Rank())
		require.Equal(t, idx, tree.Rank(items[idx]))
		require.Equal(t, idx+1, tree.Rank(items[idx]+1))
		for i := idx + 1; i < N && i < idx+10; i++ {
			iter.Next()
			require.Equal(t, items[i], iter.Cur())
		}
	}
	iter.Nth(N - 1)
	iter.Next()
	assert.False(t, iter.Valid())
}

func TestOrderStatRandomMutations(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	tree := MakeSet[int]()
	present := map[int]bool{}
	for i := 0; i < 2000; i++ {
		k := rng.Intn(200)
		if rng.Intn(3) == 0 {
			assert.Equal(t, present[k], tree.Delete(k))
			delete(present, k)
		} else {
			assert.Equal(t, !present[k], tree.Insert(k))
			present[k] = true
		}
	}
	require.NoError(t, tree.t.Verify())
	var rank int
	for k := 0; k < 200; k++ {
		assert.Equal(t, rank, tree.Rank(k))
		assert.Equal(t, present[k], tree.Contains(k))
		if present[k] {
			got, ok := tree.Nth(rank)
			require.True(t, ok)
			assert.Equal(t, k, got)
			rank++
		}
	}
	assert.Equal(t, rank, tree.Len())
}
