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

import (
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("avl: keys out of order")
	ErrHeight  = errors.New("avl: stored height is wrong")
	ErrBalance = errors.New("avl: node out of balance")
	ErrCount   = errors.New("avl: node count mismatch")
)

// Check walks the whole tree and verifies key order, stored heights, the
// balance condition and the node count. It reports the first problem
// found; a nil result means the tree is a valid AVL tree.
func (tree *Tree) Check() error {
	nodes := 0
	if _, err := check(tree.root, nil, nil, &nodes); err != nil {
		return err
	}
	if nodes != tree.count {
		return fmt.Errorf("%w: counted %d, recorded %d", ErrCount, nodes, tree.count)
	}
	return nil
}

// check returns the true height of node's subtree. lo and hi are exclusive
// key bounds inherited from the ancestors, nil meaning unbounded.
func check(node *Node, lo, hi *int, nodes *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	*nodes++

	if (lo != nil && node.key <= *lo) || (hi != nil && node.key >= *hi) {
		return 0, fmt.Errorf("%w: key %d", ErrOrder, node.key)
	}

	lh, err := check(node.left, lo, &node.key, nodes)
	if err != nil {
		return 0, err
	}
	rh, err := check(node.right, &node.key, hi, nodes)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("%w: key %d has %d, expected %d", ErrHeight, node.key, node.height, h)
	}
	if diff := lh - rh; diff > 1 || diff < -1 {
		return 0, fmt.Errorf("%w: key %d has balance %+d", ErrBalance, node.key, diff)
	}
	return h, nil
}
