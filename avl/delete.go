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

// Delete removes key and its payload. It returns false when key was not
// in the tree.
func (tree *Tree) Delete(key int) bool {
	removed := false
	tree.root = tree.deleteRecursive(tree.root, key, &removed)
	if removed {
		tree.count--
	}
	return removed
}

func (tree *Tree) deleteRecursive(node *Node, key int, removed *bool) *Node {
	if node == nil {
		return nil // key not found
	}

	if key < node.key {
		node.left = tree.deleteRecursive(node.left, key, removed)
	} else if key > node.key {
		node.right = tree.deleteRecursive(node.right, key, removed)
	} else {
		if node.left == nil || node.right == nil {
			*removed = true
			if node.left != nil {
				return node.left
			}
			// either the right child or nil for a leaf
			return node.right
		}

		// Two children: take over the in-order successor's entry, then
		// remove the successor, which has no left child.
		successor := minValueNode(node.right)
		node.key = successor.key
		node.payload = successor.payload
		node.right = tree.deleteRecursive(node.right, successor.key, removed)
	}

	updateHeight(node)
	return tree.rebalance(node)
}

// minValueNode follows left links down from node, which must not be nil.
func minValueNode(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

// rebalance restores the AVL condition at node after a deletion below it.
// Unlike insertion, a deletion may need a rotation at every level on the
// way back up, so the choice is driven by the child's balance factor.
func (tree *Tree) rebalance(node *Node) *Node {
	balance := balanceFactor(node)

	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return tree.rotateRight(node)
		}
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}

	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return tree.rotateLeft(node)
		}
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}
