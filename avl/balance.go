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

// height reads the stored height; an absent subtree has height 0.
func height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight(node *Node) {
	node.height = max(height(node.left), height(node.right)) + 1
}

// balanceFactor is positive when node is left-heavy and negative when it
// is right-heavy.
func balanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}
