// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

// Tree holds the root of an AVL tree and the number of nodes below it.
// The zero value is an empty tree ready to use.
type Tree struct {
	root  *Node
	count int
	stats Stats
}

// Stats counts the rotations a tree has performed since it was created.
// A double rotation counts once in each direction.
type Stats struct {
	LeftRotations  int
	RightRotations int
}

// Rotations returns the total number of single rotations.
func (s Stats) Rotations() int {
	return s.LeftRotations + s.RightRotations
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Len returns the number of keys in the tree.
func (tree *Tree) Len() int {
	return tree.count
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the whole tree, 0 when empty.
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Stats returns the rotation counters.
func (tree *Tree) Stats() Stats {
	return tree.stats
}
