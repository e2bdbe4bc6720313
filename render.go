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

package main

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/cybrota/regiontree/avl"
)

type TraversalOrder string

const (
	OrderIn   TraversalOrder = "in"
	OrderPre  TraversalOrder = "pre"
	OrderPost TraversalOrder = "post"
)

var traversalOrders = []TraversalOrder{OrderIn, OrderPre, OrderPost}

// ParseOrder accepts "in", "pre", "post" and their "-order" spellings.
func ParseOrder(s string) (TraversalOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inorder", "in-order":
		return OrderIn, nil
	case "pre", "preorder", "pre-order":
		return OrderPre, nil
	case "post", "postorder", "post-order":
		return OrderPost, nil
	}
	return "", fmt.Errorf("unknown traversal order %q (want in, pre or post)", s)
}

// Title is the heading printed above a listing.
func (o TraversalOrder) Title() string {
	switch o {
	case OrderPre:
		return "Pre-order Traversal:"
	case OrderPost:
		return "Post-order Traversal:"
	default:
		return "In-order Traversal:"
	}
}

// Next cycles in -> pre -> post -> in.
func (o TraversalOrder) Next() TraversalOrder {
	for i, order := range traversalOrders {
		if order == o {
			return traversalOrders[(i+1)%len(traversalOrders)]
		}
	}
	return OrderIn
}

func (o TraversalOrder) walk(tree *avl.Tree) iter.Seq2[int, string] {
	switch o {
	case OrderPre:
		return tree.PreOrder()
	case OrderPost:
		return tree.PostOrder()
	default:
		return tree.InOrder()
	}
}

func formatEntry(key int, payload string) string {
	return fmt.Sprintf("Key: %d, Data: %s", key, payload)
}

// formatListing renders every entry of seq on its own line.
func formatListing(seq iter.Seq2[int, string]) []string {
	var lines []string
	for key, payload := range seq {
		lines = append(lines, formatEntry(key, payload))
	}
	return lines
}

// printer writes traversal listings to the console.
type printer struct {
	w     io.Writer
	color bool
}

func (p printer) heading(title string) {
	if p.color {
		title = headingStyle().Render(title)
	}
	fmt.Fprintln(p.w, title)
}

func (p printer) listing(title string, lines []string) {
	p.heading(title)
	for _, line := range lines {
		fmt.Fprintln(p.w, line)
	}
}

func (p printer) stats(s avl.Stats) {
	fmt.Fprintf(p.w, "rotations: left=%d right=%d total=%d\n", s.LeftRotations, s.RightRotations, s.Rotations())
}
