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

// Node is a single element of the tree. The tree owns every node; nodes
// are never shared between trees.
type Node struct {
	key     int
	payload string
	height  int // height of the subtree rooted here, a leaf is 1
	left    *Node
	right   *Node
}

func newNode(key int, payload string) *Node {
	return &Node{key: key, payload: payload, height: 1}
}

// Key returns the node's key.
func (n *Node) Key() int {
	return n.key
}

// Payload returns the data stored with the key.
func (n *Node) Payload() string {
	return n.payload
}

// Height returns the height of the subtree rooted at n.
func (n *Node) Height() int {
	return height(n)
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Entry is a key and its payload as produced by the traversals.
type Entry struct {
	Key     int
	Payload string
}
