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

// Insert adds key with its payload. If key is already present nothing
// changes, not even the payload, and Insert returns false.
func (tree *Tree) Insert(key int, payload string) bool {
	added := false
	tree.root = tree.insertRecursive(tree.root, key, payload, &added)
	if added {
		tree.count++
	}
	return added
}

// insertRecursive returns the new root of the subtree; callers must store it.
func (tree *Tree) insertRecursive(node *Node, key int, payload string, added *bool) *Node {
	if node == nil {
		*added = true
		return newNode(key, payload)
	}

	if key < node.key {
		node.left = tree.insertRecursive(node.left, key, payload, added)
	} else if key > node.key {
		node.right = tree.insertRecursive(node.right, key, payload, added)
	} else {
		return node
	}

	updateHeight(node)

	balance := balanceFactor(node)

	// Left-Left
	if balance > 1 && key < node.left.key {
		return tree.rotateRight(node)
	}

	// Right-Right
	if balance < -1 && key > node.right.key {
		return tree.rotateLeft(node)
	}

	// Left-Right
	if balance > 1 && key > node.left.key {
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}

	// Right-Left
	if balance < -1 && key < node.right.key {
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}
