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

import "fmt"

// demoRegions is the fixed data set used by the demo command.
var demoRegions = []RegionEntry{
	{Key: 10, Payload: "Region A"},
	{Key: 20, Payload: "Region B"},
	{Key: 5, Payload: "Region C"},
	{Key: 15, Payload: "Region D"},
	{Key: 30, Payload: "Region E"},
}

const demoDeleteKey = 20

// runDemo inserts the demo regions, prints all three traversals, removes
// one region and prints the in-order traversal again.
func runDemo(p printer, index *RegionIndex) {
	for _, region := range demoRegions {
		index.Insert(region.Key, region.Payload)
	}

	for i, order := range traversalOrders {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.listing(order.Title(), index.Listing(order))
	}

	index.Delete(demoDeleteKey)

	fmt.Fprintln(p.w)
	p.listing("In-order Traversal After Deletion:", index.Listing(OrderIn))
}
