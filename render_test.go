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
	"strings"
	"testing"
)

func TestParseOrder(t *testing.T) {
	cases := map[string]TraversalOrder{
		"in":        OrderIn,
		"InOrder":   OrderIn,
		"pre":       OrderPre,
		"pre-order": OrderPre,
		" post ":    OrderPost,
		"postorder": OrderPost,
	}
	for input, want := range cases {
		got, err := ParseOrder(input)
		if err != nil {
			t.Errorf("ParseOrder(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseOrder(%q) = %q; want %q", input, got, want)
		}
	}

	if _, err := ParseOrder("level"); err == nil {
		t.Errorf("ParseOrder(%q) should fail", "level")
	}
}

func TestOrderNextCycles(t *testing.T) {
	order := OrderIn
	var seen []TraversalOrder
	for i := 0; i < 4; i++ {
		seen = append(seen, order)
		order = order.Next()
	}
	want := []TraversalOrder{OrderIn, OrderPre, OrderPost, OrderIn}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("step %d: got %q; want %q", i, seen[i], want[i])
		}
	}
}

func TestRunDemo(t *testing.T) {
	var out strings.Builder
	runDemo(printer{w: &out}, NewRegionIndex(newDefaultConfig()))

	want := `In-order Traversal:
Key: 5, Data: Region C
Key: 10, Data: Region A
Key: 15, Data: Region D
Key: 20, Data: Region B
Key: 30, Data: Region E

Pre-order Traversal:
Key: 10, Data: Region A
Key: 5, Data: Region C
Key: 20, Data: Region B
Key: 15, Data: Region D
Key: 30, Data: Region E

Post-order Traversal:
Key: 5, Data: Region C
Key: 15, Data: Region D
Key: 30, Data: Region E
Key: 20, Data: Region B
Key: 10, Data: Region A

In-order Traversal After Deletion:
Key: 5, Data: Region C
Key: 10, Data: Region A
Key: 15, Data: Region D
Key: 30, Data: Region E
`
	if out.String() != want {
		t.Errorf("demo output mismatch.\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}
