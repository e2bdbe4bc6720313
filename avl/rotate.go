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

// rotateRight lifts node.Left into node's place. node.Left must be present.
//
//	      y            x
//	     / \          / \
//	    x   C  -->   A   y
//	   / \              / \
//	  A   B            B   C
func (tree *Tree) rotateRight(node *Node) *Node {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	// node is now below pivot, so its height must be settled first
	updateHeight(node)
	updateHeight(pivot)

	tree.stats.RightRotations++
	return pivot
}

// rotateLeft is the mirror of rotateRight. node.Right must be present.
func (tree *Tree) rotateLeft(node *Node) *Node {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	updateHeight(node)
	updateHeight(pivot)

	tree.stats.LeftRotations++
	return pivot
}
