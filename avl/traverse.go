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

import "iter"

// InOrder returns an iterator over the tree in ascending key order.
// The tree must not be modified while the iterator is running.
func (tree *Tree) InOrder() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		inOrder(tree.root, yield)
	}
}

// PreOrder returns an iterator visiting each node before its subtrees,
// left subtree first.
func (tree *Tree) PreOrder() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		preOrder(tree.root, yield)
	}
}

// PostOrder returns an iterator visiting both subtrees before the node.
func (tree *Tree) PostOrder() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		postOrder(tree.root, yield)
	}
}

// the walkers return false once yield has asked to stop

func inOrder(node *Node, yield func(int, string) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.left, yield) && yield(node.key, node.payload) && inOrder(node.right, yield)
}

func preOrder(node *Node, yield func(int, string) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.key, node.payload) && preOrder(node.left, yield) && preOrder(node.right, yield)
}

func postOrder(node *Node, yield func(int, string) bool) bool {
	if node == nil {
		return true
	}
	return postOrder(node.left, yield) && postOrder(node.right, yield) && yield(node.key, node.payload)
}

// Collect drains seq into a slice of entries.
func Collect(seq iter.Seq2[int, string]) []Entry {
	var entries []Entry
	for key, payload := range seq {
		entries = append(entries, Entry{Key: key, Payload: payload})
	}
	return entries
}
