// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"errors"
	"strconv"
	"time"

	"github.com/altshiftab/jsonvalidate/internal/schemacache"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

// DefaultCacheSize is the number of compiled schemas
// a [Validator] keeps by default.
const DefaultCacheSize = 256

// ValidatorOptions are the options of a [Validator].
type ValidatorOptions struct {
	Options

	// CacheSize bounds the number of compiled schemas and of
	// fetched documents kept. Zero means [DefaultCacheSize].
	CacheSize int64

	// TTL is how long a fetched document is kept.
	// Zero means until evicted.
	TTL time.Duration
}

// A Validator validates instances against schemas, keeping
// compiled schemas and fetched documents between calls.
// A Validator may be used by concurrent goroutines.
type Validator struct {
	opts     Options
	compiled *schemacache.ConcurrentCache[*Schema]
	docs     *schemacache.ConcurrentCache[jsonvalue.Value]
}

// NewValidator returns a new Validator.
// Call Close to release it.
func NewValidator(opts *ValidatorOptions) *Validator {
	if opts == nil {
		opts = &ValidatorOptions{}
	}
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Validator{
		opts:     opts.Options,
		compiled: schemacache.NewConcurrent[*Schema](size, 0),
		docs:     schemacache.NewConcurrent[jsonvalue.Value](size, opts.TTL),
	}
}

// Compile returns the compiled form of schema,
// compiling it only if it is not cached.
func (v *Validator) Compile(schema jsonvalue.Value) (*Schema, error) {
	s, _, err := v.lookup(schema)
	return s, err
}

// lookup is like Compile but also returns the cache key.
func (v *Validator) lookup(schema jsonvalue.Value) (*Schema, string, error) {
	key := strconv.FormatUint(schema.Hash(), 16)
	s, hit, err := v.compiled.Fetch(key, func() (*Schema, error) {
		return v.compile(schema)
	})
	if err != nil {
		return nil, key, err
	}
	if !jsonvalue.Equal(s.doc, schema) {
		// Hash collision: compile without caching.
		v.opts.logger().Debug("compiled schema cache collision", "key", key)
		s, err = v.compile(schema)
		return s, "", err
	}
	v.opts.logger().Debug("compiled schema", "key", key, "cached", hit)
	return s, key, nil
}

// compile compiles schema, retrieving documents through
// the document cache.
func (v *Validator) compile(schema jsonvalue.Value) (*Schema, error) {
	docs := new(schemacache.Cache)
	return compile(schema, &v.opts, func(u string) (jsonvalue.Value, error) {
		return docs.Retrieve(u, func(u string) (jsonvalue.Value, error) {
			doc, _, err := v.docs.Fetch(u, func() (jsonvalue.Value, error) {
				return v.opts.fetch(u)
			})
			return doc, err
		})
	})
}

// Validate reports whether instance satisfies schema.
// A compiled schema that meets an unresolved reference is
// dropped from the cache, so a later call fetches again.
func (v *Validator) Validate(instance, schema jsonvalue.Value) (bool, error) {
	s, key, err := v.lookup(schema)
	if err != nil {
		return false, err
	}
	ok, err := s.Validate(instance)
	var ur *UnresolvedReference
	if key != "" && errors.As(err, &ur) {
		v.opts.logger().Debug("dropping compiled schema with unresolved reference", "key", key, "ref", ur.Ref)
		v.compiled.Delete(key)
	}
	return ok, err
}

// Len returns the number of cached compiled schemas.
func (v *Validator) Len() int {
	return v.compiled.Len()
}

// Reset discards all cached schemas and documents.
func (v *Validator) Reset() {
	v.compiled.Clear()
	v.docs.Clear()
}

// Close releases the resources of v.
func (v *Validator) Close() {
	v.compiled.Stop()
	v.docs.Stop()
}
