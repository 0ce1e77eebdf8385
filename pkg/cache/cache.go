// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

// Package cache wraps an in-memory TTL cache used for process-wide caches
// such as the on-behalf-of token cache and the join-URL resolution cache.
// Entries are idempotent re-derivations, so concurrent writers may race;
// a write is always a last-write-wins replacement with a fresh expiry.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired entries are purged.
const DefaultCleanupInterval = 10 * time.Minute

// Cache is an in-memory key-value cache with per-entry expiry.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache with the given default TTL for entries stored
// without an explicit expiry.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		store: gocache.New(defaultTTL, DefaultCleanupInterval),
	}
}

// Get returns the value stored under key, or false when the key is absent
// or expired.
func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Put stores value under key with the given TTL. A non-positive TTL uses
// the cache's default.
func (c *Cache) Put(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
}
