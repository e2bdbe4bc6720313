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
	"encoding/binary"
	"strings"
	"sync"

	"github.com/cybrota/regiontree/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// RegionIndex guards an avl.Tree for shared use. Mutations take the write
// lock; lookups and listings share the read lock.
//
// A bloom filter over every key ever inserted lets lookups and deletes of
// unknown keys return without walking the tree. Deleted keys stay in the
// filter, which only costs a tree walk on a later miss.
type RegionIndex struct {
	mu       sync.RWMutex
	tree     *avl.Tree
	filter   *bloom.BloomFilter
	listings *cache.Cache
}

func NewRegionIndex(cfg *Config) *RegionIndex {
	return &RegionIndex{
		tree:     avl.New(),
		filter:   bloom.NewWithEstimates(cfg.Load.ExpectedRegions, cfg.Load.FalsePositiveRate),
		listings: NewListingCache(cfg.Cache),
	}
}

func bloomKey(key int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(int64(key)))
	return buf[:]
}

// Insert adds a region. An existing key keeps its payload and Insert
// returns false.
func (ri *RegionIndex) Insert(key int, payload string) bool {
	ri.mu.Lock()
	defer ri.mu.Unlock()

	added := ri.tree.Insert(key, payload)
	if added {
		ri.filter.Add(bloomKey(key))
		ri.listings.Flush()
	}
	return added
}

// Delete removes a region and reports whether it was present.
func (ri *RegionIndex) Delete(key int) bool {
	ri.mu.Lock()
	defer ri.mu.Unlock()

	if !ri.filter.Test(bloomKey(key)) {
		return false
	}
	removed := ri.tree.Delete(key)
	if removed {
		ri.listings.Flush()
	}
	return removed
}

// Lookup returns the payload stored for key.
func (ri *RegionIndex) Lookup(key int) (string, bool) {
	ri.mu.RLock()
	defer ri.mu.RUnlock()

	if !ri.filter.Test(bloomKey(key)) {
		return "", false
	}
	return ri.tree.Search(key)
}

// Entries materialises a traversal.
func (ri *RegionIndex) Entries(order TraversalOrder) []avl.Entry {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	return avl.Collect(order.walk(ri.tree))
}

// Listing returns the formatted traversal, served from the cache until the
// next mutation.
func (ri *RegionIndex) Listing(order TraversalOrder) []string {
	ri.mu.RLock()
	defer ri.mu.RUnlock()

	if lines, ok := GetListing(ri.listings, order); ok {
		return lines
	}
	lines := formatListing(order.walk(ri.tree))
	CacheListing(ri.listings, order, lines)
	return lines
}

// Shape draws the tree with avl.Tree.Fprint.
func (ri *RegionIndex) Shape(showPayload bool) string {
	ri.mu.RLock()
	defer ri.mu.RUnlock()

	var b strings.Builder
	_ = ri.tree.Fprint(&b, showPayload) // strings.Builder never fails
	return b.String()
}

func (ri *RegionIndex) Len() int {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	return ri.tree.Len()
}

func (ri *RegionIndex) Height() int {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	return ri.tree.Height()
}

func (ri *RegionIndex) Stats() avl.Stats {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	return ri.tree.Stats()
}

func (ri *RegionIndex) Check() error {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	return ri.tree.Check()
}
