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

// Package avl provides ordered sets and maps backed by an AVL tree.
//
// Both containers keep their keys in ascending order, guarantee O(log n)
// lookup, insertion and removal, and iterate in key order. They are not safe
// for concurrent mutation.
package avl

import (
	"slices"

	"github.com/ajwerner/avl/internal/abstract"
	"github.com/cockroachdb/errors"
)

var (
	// ErrKeyNotFound is returned by strict accessors such as Map.At when the
	// requested key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCapacityExceeded is the panic value, possibly wrapped, of mutations
	// which would grow a container past its MaxSize. Such mutations fail
	// before the container is modified.
	ErrCapacityExceeded = abstract.ErrCapacityExceeded
)

// Option configures a Set or a Map.
type Option = abstract.Option

// WithMaxSize caps the number of elements a container may hold.
func WithMaxSize(n int) Option {
	return abstract.WithMaxSize(n)
}

type noopAug[K any] struct{}

func (a *noopAug[K]) Update(
	*abstract.Config[K, struct{}], abstract.Node[K, *noopAug[K]], abstract.UpdateMeta[K, noopAug[K]],
) (changed bool) {
	return false
}

func mustNotExceed(err error) {
	if err != nil {
		panic(err)
	}
}

// countFresh returns the number of distinct keys which contains reports as
// absent.
func countFresh[K any](cmp func(K, K) int, contains func(K) bool, keys []K) int {
	fresh := make([]K, 0, len(keys))
	for _, k := range keys {
		if !contains(k) {
			fresh = append(fresh, k)
		}
	}
	slices.SortFunc(fresh, cmp)
	return len(slices.CompactFunc(fresh, func(a, b K) bool { return cmp(a, b) == 0 }))
}
