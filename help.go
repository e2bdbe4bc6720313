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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// scriptHelpMarkdown documents the command grammar shared by the script
// command and the interactive browser.
func scriptHelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	for _, usage := range scriptUsage {
		fmt.Fprintf(&b, "* `%s`\n", usage)
	}
	b.WriteString("\nPayloads may be quoted: `insert 7 \"North Ridge\"`.\n")
	return b.String()
}

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **regiontree %s**

An AVL tree of regions keyed by integer ID. Every insert and delete keeps the
tree height-balanced, so lookups stay O(log n).

Built with Go %s

# 1. Commands
* **demo**: insert five sample regions, print all traversals, delete one
* **load FILE**: load a YAML or "key;payload" text dataset and print it
* **script [FILE]**: run commands from FILE or stdin
* **interactive**: browse and edit a tree in the terminal
* **settings**: show or create ~/.regiontree.yaml

# 2. Output format
Each entry prints as `+"`Key: <key>, Data: <payload>`"+`.

%s
# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), scriptHelpMarkdown())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
