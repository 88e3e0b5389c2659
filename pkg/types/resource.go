// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"iter"

	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

// Resource is a schema resource: the root schema of a document,
// or a subschema that declares its own "$id".
// Anchors and JSON pointers are relative to a resource.
type Resource struct {
	// URI is the absolute URI of the resource, without fragment.
	URI string

	// Root is the schema at the root of the resource.
	Root *Schema

	// Value is the raw JSON of the resource root.
	// References that point at locations the loader did not
	// walk are compiled from it on demand.
	Value jsonvalue.Value

	// Anchors maps "$anchor" and "$dynamicAnchor" names
	// to the schema that declares them.
	Anchors map[string]*Schema

	// DynamicAnchors maps "$dynamicAnchor" names
	// to the schema that declares them.
	DynamicAnchors map[string]*Schema

	// Schemas maps a JSON pointer from the resource root
	// to the compiled schema at that location.
	Schemas map[string]*Schema
}

// NewResource returns an empty resource with the given URI.
func NewResource(uri string, value jsonvalue.Value) *Resource {
	return &Resource{
		URI:            uri,
		Value:          value,
		Anchors:        make(map[string]*Schema),
		DynamicAnchors: make(map[string]*Schema),
		Schemas:        make(map[string]*Schema),
	}
}

// SchemaAt returns the schema compiled at the JSON pointer ptr,
// if there is one.
func (r *Resource) SchemaAt(ptr string) (*Schema, bool) {
	s, ok := r.Schemas[ptr]
	return s, ok
}

// AddSchema records the schema compiled at the JSON pointer ptr.
// If a schema is already recorded there, that one is returned.
// Resources are only modified while loading.
func (r *Resource) AddSchema(ptr string, s *Schema) *Schema {
	if old, ok := r.Schemas[ptr]; ok {
		return old
	}
	r.Schemas[ptr] = s
	return s
}

// Scope is the dynamic scope: the chain of schema resources
// entered during evaluation, newest first.
type Scope struct {
	Resource *Resource
	Outer    *Scope
}

// Push returns the scope with r entered.
// Entering the resource already on top does not grow the scope.
func (sc *Scope) Push(r *Resource) *Scope {
	if r == nil || (sc != nil && sc.Resource == r) {
		return sc
	}
	return &Scope{Resource: r, Outer: sc}
}

// OldestFirst returns an iterator over the resources in the scope,
// starting with the outermost one.
func (sc *Scope) OldestFirst() iter.Seq[*Resource] {
	return func(yield func(*Resource) bool) {
		var chain []*Resource
		for s := sc; s != nil; s = s.Outer {
			chain = append(chain, s.Resource)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if !yield(chain[i]) {
				return
			}
		}
	}
}
