// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"slices"
)

// Vocabulary is a vocabulary type: a list of known keywords.
// Each schema version defines an instance of this type.
type Vocabulary struct {
	// The name of this schema version, for messages.
	// Something like draft-2020-12.
	Name string
	// The URI that describes this schema version.
	// The value of the $schema keyword.
	// Something like "https://json-schema.org/draft/2020-12/schema".
	Schema string
	// The keywords of this schema version.
	Keywords map[string]*Keyword
	// The sorting function of this schema.
	// Used to sort the keywords of an instance of the schema.
	Cmp func(string, string) int
}

// Lookup returns the keyword with the given name,
// or nil if the vocabulary does not define it.
func (v *Vocabulary) Lookup(name string) *Keyword {
	return v.Keywords[name]
}

// Finalize sorts the schema keywords into the order required for validation.
// Normally there is no need to call this explicitly.
// It will be called automatically by the loader.
func (s *Schema) Finalize(v *Vocabulary) {
	slices.SortStableFunc(s.Parts, func(a, b Part) int {
		return v.Cmp(a.Keyword.Name, b.Keyword.Name)
	})
}
