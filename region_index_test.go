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
	"sync"
	"testing"

	"github.com/cybrota/regiontree/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionIndexLookup(t *testing.T) {
	index := NewRegionIndex(newDefaultConfig())
	require.True(t, index.Insert(7, "Region G"))
	require.False(t, index.Insert(7, "other"))

	payload, ok := index.Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, "Region G", payload)

	_, ok = index.Lookup(8)
	assert.False(t, ok)

	require.True(t, index.Delete(7))
	_, ok = index.Lookup(7)
	assert.False(t, ok, "deleted key is still in the bloom filter but not in the tree")
	assert.False(t, index.Delete(7))
	assert.False(t, index.Delete(1000))
}

func TestRegionIndexListingFollowsMutations(t *testing.T) {
	index := NewRegionIndex(newDefaultConfig())
	for _, region := range demoRegions {
		index.Insert(region.Key, region.Payload)
	}

	assert.Equal(t, []string{
		"Key: 10, Data: Region A",
		"Key: 5, Data: Region C",
		"Key: 20, Data: Region B",
		"Key: 15, Data: Region D",
		"Key: 30, Data: Region E",
	}, index.Listing(OrderPre))

	// served from the cache
	assert.Equal(t, index.Listing(OrderPre), index.Listing(OrderPre))

	index.Delete(20)
	assert.Equal(t, []string{
		"Key: 10, Data: Region A",
		"Key: 5, Data: Region C",
		"Key: 30, Data: Region E",
		"Key: 15, Data: Region D",
	}, index.Listing(OrderPre))

	assert.Equal(t, []avl.Entry{
		{Key: 5, Payload: "Region C"},
		{Key: 15, Payload: "Region D"},
		{Key: 30, Payload: "Region E"},
		{Key: 10, Payload: "Region A"},
	}, index.Entries(OrderPost))
}

func TestRegionIndexShapeAndStats(t *testing.T) {
	index := NewRegionIndex(newDefaultConfig())
	for _, key := range []int{30, 10, 20} {
		index.Insert(key, fmt.Sprint(key))
	}

	assert.Equal(t, "       /------+ 30\n|------+ 20\n       \\------+ 10\n", index.Shape(false))
	assert.Equal(t, avl.Stats{LeftRotations: 1, RightRotations: 1}, index.Stats())
	assert.Equal(t, 2, index.Height())
	assert.NoError(t, index.Check())
}

func TestRegionIndexConcurrentReaders(t *testing.T) {
	index := NewRegionIndex(newDefaultConfig())

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				key := w*1000 + i
				index.Insert(key, fmt.Sprint(key))
				index.Lookup(key)
				index.Listing(OrderIn)
				if i%3 == 0 {
					index.Delete(key)
				}
			}
		}(w)
	}
	wg.Wait()

	require.NoError(t, index.Check())
	assert.Equal(t, 4*(250-84), index.Len())
}
