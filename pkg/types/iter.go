// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"iter"
	"maps"
	"slices"
	"strconv"

	"github.com/altshiftab/jsonvalidate/pkg/jsonpointer"
)

// Children returns an iterator over the immediate subschemas.
// The first iterator value is the location of the schema relative
// to s, as used in a JSON pointer; the second is the schema itself.
// Reference targets are not children.
func (s *Schema) Children() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		for _, part := range s.Parts {
			name := jsonpointer.Escape(part.Keyword.Name)
			switch v := part.Value.(type) {
			case PartSchema:
				if !yield(name, v.S) {
					return
				}

			case PartSchemas:
				for i, sub := range v {
					if !yield(name+"/"+strconv.Itoa(i), sub) {
						return
					}
				}

			case PartMapSchema:
				// Sort for determinism.
				for _, k := range slices.Sorted(maps.Keys(v)) {
					if !yield(name+"/"+jsonpointer.Escape(k), v[k]) {
						return
					}
				}

			case PartPatternSchemas:
				for _, ps := range v {
					if !yield(name+"/"+jsonpointer.Escape(ps.Pattern), ps.Schema) {
						return
					}
				}
			}
		}
	}
}

// All returns an iterator over s and every schema beneath it,
// in depth-first order. Each schema is visited once, even if
// it is reachable along more than one path.
func (s *Schema) All() iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		seen := make(map[*Schema]bool)
		var walk func(*Schema) bool
		walk = func(s *Schema) bool {
			if seen[s] {
				return true
			}
			seen[s] = true
			if !yield(s) {
				return false
			}
			for _, child := range s.Children() {
				if !walk(child) {
					return false
				}
			}
			return true
		}
		walk(s)
	}
}
