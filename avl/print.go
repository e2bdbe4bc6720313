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
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes an ASCII drawing of the tree to w, rotated a quarter turn
// anticlockwise: the right subtree is above a node and the left one below.
// With showPayload each line also carries the payload, height and balance.
func (tree *Tree) Fprint(w io.Writer, showPayload bool) error {
	return fprintNode(w, tree.root, "", rootBranch, showPayload)
}

func fprintNode(w io.Writer, node *Node, prefix string, br branch, showPayload bool) error {
	if node == nil {
		return nil
	}
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		if err := fprintNode(w, node.right, prefix+t, rightBranch, showPayload); err != nil {
			return err
		}
	}

	var lead string
	switch br {
	case rootBranch:
		lead = "|------+ "
	case leftBranch:
		lead = "\\------+ "
	case rightBranch:
		lead = "/------+ "
	}

	var err error
	if showPayload {
		_, err = fmt.Fprintf(w, "%s%s%d → %q h=%d %+d\n", prefix, lead, node.key, node.payload, node.height, balanceFactor(node))
	} else {
		_, err = fmt.Fprintf(w, "%s%s%d\n", prefix, lead, node.key)
	}
	if err != nil {
		return err
	}

	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		return fprintNode(w, node.left, prefix+t, leftBranch, showPayload)
	}
	return nil
}
