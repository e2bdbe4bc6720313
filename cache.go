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
	"time"

	"github.com/patrickmn/go-cache"
)

// NewListingCache creates the cache holding rendered traversal listings.
func NewListingCache(cfg CacheConfig) *cache.Cache {
	expiration := time.Duration(cfg.ExpirationMinutes) * time.Minute
	cleanup := time.Duration(cfg.CleanupMinutes) * time.Minute
	return cache.New(expiration, cleanup)
}

func CacheListing(c *cache.Cache, order TraversalOrder, lines []string) {
	c.Set(string(order), lines, cache.DefaultExpiration)
}

func GetListing(c *cache.Cache, order TraversalOrder) ([]string, bool) {
	val, ok := c.Get(string(order))
	if !ok {
		return nil, false
	}
	return val.([]string), true
}
