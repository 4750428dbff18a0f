// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemacache is a simple in-process cache for schemas
// that have been parsed.
package schemacache

import (
	"sync"

	"github.com/altshiftab/eventschema/pkg/types"
)

// Cache is a cache that holds schemas.
type Cache struct {
	m map[cacheKey]*types.Schema
}

// cacheKey is the key type of the cache.
// A name may be loaded under more than one vocabulary,
// so both are part of the key.
type cacheKey struct {
	schemaID string
	name     string
}

// Load checks the cache for a schema.
// It returns nil if the name is not cached.
func (c *Cache) Load(schemaID, name string) *types.Schema {
	return c.m[cacheKey{schemaID, name}]
}

// Store stores a schema in the cache.
// It returns the schema to use, which may differ
// if it has already been cached.
func (c *Cache) Store(schemaID, name string, s *types.Schema) *types.Schema {
	key := cacheKey{schemaID, name}
	if sc := c.m[key]; sc != nil {
		return sc
	}

	if c.m == nil {
		c.m = make(map[cacheKey]*types.Schema)
	}

	c.m[key] = s
	return s
}

// Len returns the number of cached schemas.
func (c *Cache) Len() int {
	return len(c.m)
}

// ConcurrentCache is a cache that permits concurrent access.
type ConcurrentCache struct {
	cache Cache
	mu    sync.Mutex
}

// Load checks the cache for a schema.
// It returns nil if the name is not cached.
func (cc *ConcurrentCache) Load(schemaID, name string) *types.Schema {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cache.Load(schemaID, name)
}

// Store stores a schema in the cache.
// It returns the schema to use, which may differ
// if some other goroutine already cached it.
func (cc *ConcurrentCache) Store(schemaID, name string, s *types.Schema) *types.Schema {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cache.Store(schemaID, name, s)
}

// LoadOrParse returns the cached schema, calling parse
// to build and cache it if it is not present.
// parse is called without holding the lock,
// so concurrent callers may each parse; only one result is kept.
func (cc *ConcurrentCache) LoadOrParse(schemaID, name string, parse func() (*types.Schema, error)) (*types.Schema, error) {
	if s := cc.Load(schemaID, name); s != nil {
		return s, nil
	}
	s, err := parse()
	if err != nil {
		return nil, err
	}
	return cc.Store(schemaID, name, s), nil
}

// Len returns the number of cached schemas.
func (cc *ConcurrentCache) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cache.Len()
}
