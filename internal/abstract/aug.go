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

// Node represents an abstraction of a node exposed to the
// augmentation and low-level iteration primitives.
type Node[K, A any] interface {

	// GetKey returns the key stored in this node.
	GetKey() K

	// GetLeft returns the augmentation of the left child, or nil if the
	// node has no left child.
	GetLeft() A

	// GetRight returns the augmentation of the right child, or nil if the
	// node has no right child.
	GetRight() A
}

// Aug is a data structure which augments a node of the tree. It is updated
// when the structure or contents of the subtree rooted at the current node
// changes.
type Aug[K, Aux, A any] interface {
	*A

	// Update is used to update the state of the node augmentation in response
	// to a mutation to the tree. See Action and UpdateMeta for the semantics.
	// The children of the node are always up to date when Update is called.
	// The method must return true if the augmentation's value changed.
	Update(*Config[K, Aux], Node[K, *A], UpdateMeta[K, A]) (changed bool)
}

// Action is used to classify the type of Update in order to permit various
// optimizations when updated the augmented state.
type Action int

const (

	// Default implies that no assumptions may be made with regards to the
	// change in state of the node and thus the augmented state should be
	// recalculated in full. Freshly linked nodes and both nodes taking part
	// in a rotation are updated with Default.
	Default Action = iota

	// Removal indicates that a node holding RelevantKey was unlinked from the
	// subtree rooted at this node.
	Removal

	// Insertion indicates that a node holding RelevantKey was linked into the
	// subtree rooted at this node.
	Insertion
)

// UpdateMeta is used to describe the update operation.
type UpdateMeta[K, A any] struct {

	// Action indicates the semantics of the below fields. If Default, no
	// fields will be populated.
	Action Action

	// RelevantKey will be populated in all non-Default events.
	RelevantKey K
}
