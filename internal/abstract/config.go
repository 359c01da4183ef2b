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
	"math"
	"unsafe"
)

// Config is used to configure the tree. It consists of a comparison function
// for keys and any auxiliary data provided by the instantiator. It is provided
// on the iterator and passed to the augmentation's Update method.
type Config[K, Aux any] struct {
	Config  Aux
	Compare func(K, K) int
}

// Options holds the tunables accepted when making a Map.
type Options struct {

	// MaxSize bounds the number of elements the tree will hold. Zero means
	// the theoretical bound derived from the node size.
	MaxSize int
}

// Option configures a Map.
type Option func(*Options)

// WithMaxSize caps the number of elements a tree may hold. Inserts beyond
// the cap fail with ErrCapacityExceeded.
func WithMaxSize(n int) Option {
	return func(o *Options) { o.MaxSize = n }
}

type config[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	Config[K, Aux]
	maxSize int
	np      *nodePool[K, V, Aux, A, AP]
}

func makeConfig[K, V, Aux, A any, AP Aug[K, Aux, A]](
	aux Aux, cmp func(K, K) int, opts []Option,
) (c config[K, V, Aux, A, AP]) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	c.Config = Config[K, Aux]{Config: aux, Compare: cmp}
	c.maxSize = o.MaxSize
	if c.maxSize <= 0 {
		c.maxSize = theoreticalMaxSize[K, V, Aux, A, AP]()
	}
	c.np = getNodePool[K, V, Aux, A, AP]()
	return c
}

// theoreticalMaxSize is the number of nodes that would fit in an address
// space of math.MaxInt bytes.
func theoreticalMaxSize[K, V, Aux, A any, AP Aug[K, Aux, A]]() int {
	var n node[K, V, Aux, A, AP]
	return math.MaxInt / int(unsafe.Sizeof(n))
}
