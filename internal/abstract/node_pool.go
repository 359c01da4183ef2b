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

import "sync"

// nodePool recycles the nodes of every tree instantiated with the same type
// parameters.
type nodePool[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	pool sync.Pool
}

var syncPoolMap sync.Map

func getNodePool[K, V, Aux, A any, AP Aug[K, Aux, A]]() *nodePool[K, V, Aux, A, AP] {
	var nilNode *node[K, V, Aux, A, AP]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[K, V, Aux, A, AP]())
	}
	return v.(*nodePool[K, V, Aux, A, AP])
}

func newNodePool[K, V, Aux, A any, AP Aug[K, Aux, A]]() *nodePool[K, V, Aux, A, AP] {
	np := nodePool[K, V, Aux, A, AP]{}
	np.pool = sync.Pool{
		New: func() interface{} {
			return new(node[K, V, Aux, A, AP])
		},
	}
	return &np
}

// getNode returns a detached node of height 1 holding the given entry.
func (np *nodePool[K, V, Aux, A, AP]) getNode(k K, v V) *node[K, V, Aux, A, AP] {
	n := np.pool.Get().(*node[K, V, Aux, A, AP])
	n.key = k
	n.value = v
	n.height = 1
	return n
}

// putNode clears the node so that it retains no references to keys, values
// or other nodes and returns it to the pool.
func (np *nodePool[K, V, Aux, A, AP]) putNode(n *node[K, V, Aux, A, AP]) {
	*n = node[K, V, Aux, A, AP]{}
	np.pool.Put(n)
}
