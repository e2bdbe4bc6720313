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

// Search looks for key and returns its payload and whether it was found.
func (tree *Tree) Search(key int) (string, bool) {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node.payload, true
		}
	}
	return "", false
}

// Min returns the smallest key and its payload; ok is false for an empty
// tree.
func (tree *Tree) Min() (key int, payload string, ok bool) {
	if tree.root == nil {
		return 0, "", false
	}
	node := minValueNode(tree.root)
	return node.key, node.payload, true
}

// Max returns the largest key and its payload.
func (tree *Tree) Max() (key int, payload string, ok bool) {
	node := tree.root
	if node == nil {
		return 0, "", false
	}
	for node.right != nil {
		node = node.right
	}
	return node.key, node.payload, true
}
