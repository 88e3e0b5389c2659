// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "sync"

// RefTarget is the target of a reference, looked up the first
// time it is needed. The outcome of the lookup, schema or error,
// is kept for every later use.
// A RefTarget may be used by concurrent goroutines.
type RefTarget struct {
	once    sync.Once
	resolve func() (*Schema, error)
	schema  *Schema
	err     error
}

// NewRefTarget returns a RefTarget that calls resolve
// on first use.
func NewRefTarget(resolve func() (*Schema, error)) *RefTarget {
	return &RefTarget{resolve: resolve}
}

// Schema returns the target schema, looking it up if needed.
func (t *RefTarget) Schema() (*Schema, error) {
	t.once.Do(func() {
		t.schema, t.err = t.resolve()
		t.resolve = nil
	})
	return t.schema, t.err
}
