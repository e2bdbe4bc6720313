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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheListingAndGetListing(t *testing.T) {
	c := NewListingCache(defaultConfig.Cache)
	lines := []string{"Key: 1, Data: one", "Key: 2, Data: two"}

	// Initially, nothing is cached.
	if _, ok := GetListing(c, OrderIn); ok {
		t.Errorf("GetListing(%q) found an entry in an empty cache", OrderIn)
	}

	CacheListing(c, OrderIn, lines)

	got, ok := GetListing(c, OrderIn)
	if !ok {
		t.Fatalf("GetListing(%q) missed a cached listing", OrderIn)
	}
	if len(got) != 2 || got[0] != lines[0] || got[1] != lines[1] {
		t.Errorf("GetListing(%q) = %q; want %q", OrderIn, got, lines)
	}

	// other orders are cached separately
	if _, ok := GetListing(c, OrderPre); ok {
		t.Errorf("GetListing(%q) should miss", OrderPre)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	CacheListing(c, OrderPost, []string{"Key: 1, Data: one"})

	if _, ok := GetListing(c, OrderPost); !ok {
		t.Errorf("GetListing(%q) missed immediately after caching", OrderPost)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, ok := GetListing(c, OrderPost); ok {
		t.Errorf("After expiration, GetListing(%q) still found the listing", OrderPost)
	}
}
