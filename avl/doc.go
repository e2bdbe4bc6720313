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

// Package avl implements a height-balanced binary search tree mapping
// integer keys to string payloads.
//
// Every node stores the height of the subtree below it, and after each
// Insert or Delete the heights of a node's two subtrees differ by at most
// one. Lookups, insertions and deletions are therefore O(log n).
//
// Inserting a key that is already present leaves the tree untouched: the
// stored payload is not replaced. Deleting a key that is not present is
// also a no-op.
//
// Note: a Tree is not safe for concurrent use. Insert and Delete need
// exclusive access. Traversals may run side by side only while no
// mutation is in flight, so callers sharing a tree across goroutines
// should guard it with a sync.RWMutex.
package avl
