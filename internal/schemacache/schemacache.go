// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemacache holds in-process caches for schema documents
// and compiled schemas.
package schemacache

import (
	"time"

	"github.com/karlseguin/ccache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

// Document is the outcome of retrieving a schema document:
// the document, or the error retrieving it.
type Document struct {
	Value jsonvalue.Value
	Err   error
}

// Cache is a cache that holds retrieved documents by URI.
// A Cache may not be used concurrently.
type Cache struct {
	m map[string]Document
}

// Load checks the cache for a document.
// The bool result reports whether uri is cached.
func (c *Cache) Load(uri string) (Document, bool) {
	d, ok := c.m[uri]
	return d, ok
}

// Store stores a document in the cache.
// It returns the document to use, which may differ
// if it has already been cached.
func (c *Cache) Store(uri string, d Document) Document {
	if old, ok := c.m[uri]; ok {
		return old
	}
	if c.m == nil {
		c.m = make(map[string]Document)
	}
	c.m[uri] = d
	return d
}

// Retrieve returns the cached document for uri,
// calling fetch to retrieve it if it is not cached.
// fetch is called at most once per uri, whether or not it fails.
func (c *Cache) Retrieve(uri string, fetch func(string) (jsonvalue.Value, error)) (jsonvalue.Value, error) {
	if d, ok := c.Load(uri); ok {
		return d.Value, d.Err
	}
	v, err := fetch(uri)
	d := c.Store(uri, Document{Value: v, Err: err})
	return d.Value, d.Err
}

// ConcurrentCache is a bounded cache that permits concurrent access.
// Concurrent misses on the same key are collapsed into one call.
type ConcurrentCache[T any] struct {
	cache *ccache.Cache[T]
	ttl   time.Duration
	group singleflight.Group
}

// NewConcurrent returns a ConcurrentCache holding at most size entries.
// Entries expire after ttl; a zero ttl means they never expire.
func NewConcurrent[T any](size int64, ttl time.Duration) *ConcurrentCache[T] {
	if ttl <= 0 {
		ttl = 100 * 365 * 24 * time.Hour
	}
	return &ConcurrentCache[T]{
		cache: ccache.New(ccache.Configure[T]().
			MaxSize(size).
			ItemsToPrune(uint32(max(1, size/10)))),
		ttl: ttl,
	}
}

// Load checks the cache for key.
// The bool result reports whether a live entry was found.
func (cc *ConcurrentCache[T]) Load(key string) (T, bool) {
	item := cc.cache.Get(key)
	if item == nil || item.Expired() {
		var zero T
		return zero, false
	}
	return item.Value(), true
}

// Store stores v under key.
func (cc *ConcurrentCache[T]) Store(key string, v T) {
	cc.cache.Set(key, v, cc.ttl)
}

// Fetch returns the cached value for key, calling fn to produce it
// on a miss. Concurrent callers that miss on the same key share
// one call of fn. Results for which fn returns an error are not cached.
// The bool result reports whether the value came from the cache.
func (cc *ConcurrentCache[T]) Fetch(key string, fn func() (T, error)) (T, bool, error) {
	if v, ok := cc.Load(key); ok {
		return v, true, nil
	}
	v, err, _ := cc.group.Do(key, func() (any, error) {
		if v, ok := cc.Load(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		cc.Store(key, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v.(T), false, nil
}

// Delete discards the entry for key, if any.
func (cc *ConcurrentCache[T]) Delete(key string) {
	cc.cache.Delete(key)
}

// Len returns the number of cached entries.
func (cc *ConcurrentCache[T]) Len() int {
	return cc.cache.ItemCount()
}

// Clear discards every entry.
func (cc *ConcurrentCache[T]) Clear() {
	cc.cache.Clear()
}

// Stop releases the cache's background worker.
func (cc *ConcurrentCache[T]) Stop() {
	cc.cache.Stop()
}
