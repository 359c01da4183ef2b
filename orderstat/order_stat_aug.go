package orderstat

import "github.com/ajwerner/avl/internal/abstract"

type aug[K any] struct {
	// size is the number of keys in the subtree rooted at the current node.
	size int
}

// Update will update the count for the current node.
func (a *aug[K]) Update(
	_ *abstract.Config[K, struct{}], n abstract.Node[K, *aug[K]], _ abstract.UpdateMeta[K, aug[K]],
) (updated bool) {
	orig := a.size
	a.size = 1 + subtreeSize(n.GetLeft()) + subtreeSize(n.GetRight())
	return a.size != orig
}

func subtreeSize[K any](a *aug[K]) int {
	if a == nil {
		return 0
	}
	return a.size
}
