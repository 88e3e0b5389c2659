// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/altshiftab/jsonvalidate/internal/validerr"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
	"github.com/altshiftab/jsonvalidate/pkg/notes"
)

// maxDepth bounds the number of nested schema evaluations.
// Loops that never leave the instance location are caught
// well before it, so it only limits very deep instances.
const maxDepth = 100000

// Validate reports whether instance satisfies schema.
// A non-nil error reports a fatal problem during validation,
// such as a reference loop that never consumes the instance;
// it is never returned for an instance that is merely invalid.
// A schema reached again at the same instance location without
// any keyword descending into the instance is such a loop.
func (s *Schema) Validate(instance jsonvalue.Value) (bool, error) {
	return s.ValidateWithOpts(instance, nil)
}

// ValidateOpts describes validation options.
// These are uncommon so we use a separate method for them.
type ValidateOpts struct {
	// Whether to validate the format keyword.
	// By default the format keyword always matches.
	FormatAssertion bool

	// Formats maps format names to checkers.
	// A checker returns a non-nil error for a string that
	// is not in the format. Formats missing from the map
	// always match.
	Formats map[string]func(string) error
}

// ValidateWithOpts is like Validate but supports options.
func (s *Schema) ValidateWithOpts(instance jsonvalue.Value, opts *ValidateOpts) (bool, error) {
	state := &ValidationState{
		Root:  s,
		Notes: new(notes.Notes),
		Opts:  opts,
	}
	return s.ValidateSubSchema(instance, state)
}

// ValidateInPlaceSchema reports whether instance satisfies schema,
// where schema is a subschema that is evaluated in the same context
// as the parent schema: the same instance location.
// If the instance matches, the annotations collected by the
// subschema are added to the parent.
func (s *Schema) ValidateInPlaceSchema(instance jsonvalue.Value, state *ValidationState) (bool, error) {
	ok, ns, err := s.evaluate(instance, state, false)
	if err != nil || !ok {
		return false, err
	}
	state.Notes.AddNotes(ns)
	return true, nil
}

// ValidateSubSchema reports whether instance satisfies schema,
// where schema is a sub-schema of some larger validation request
// evaluated at the same instance location, as by "not".
// The annotations collected by the subschema are discarded.
func (s *Schema) ValidateSubSchema(instance jsonvalue.Value, state *ValidationState) (bool, error) {
	ok, _, err := s.evaluate(instance, state, false)
	return ok, err
}

// ValidateChild reports whether instance, an element, member value
// or property name of the instance being validated, satisfies schema.
// The annotations collected by the subschema are discarded.
func (s *Schema) ValidateChild(instance jsonvalue.Value, state *ValidationState) (bool, error) {
	ok, _, err := s.evaluate(instance, state, true)
	return ok, err
}

// evaluate runs the keywords of s in order against instance,
// stopping at the first that does not match.
// descend reports whether instance is below the instance of state.
// It returns the annotations of the evaluation.
func (s *Schema) evaluate(instance jsonvalue.Value, state *ValidationState, descend bool) (bool, *notes.Notes, error) {
	subState, err := state.Child()
	if err != nil {
		return false, nil, err
	}
	if descend {
		subState.inPlace = nil
	}
	for f := subState.inPlace; f != nil; f = f.next {
		if f.schema == s {
			return false, nil, validerr.ErrRecursionTooDeep
		}
	}
	subState.inPlace = &inPlaceFrame{schema: s, next: subState.inPlace}
	subState.Schema = s
	subState.Scope = state.Scope.Push(s.Resource)

	for i, p := range s.Parts {
		if p.Keyword.Validate == nil {
			continue
		}
		subState.Index = i
		ok, err := p.Keyword.Validate(p.Value, instance, subState)
		if err != nil {
			return false, nil, err
		}
		if !ok {
			return false, nil, nil
		}
	}
	return true, subState.Notes, nil
}

// ValidationState is state we maintain while validating a schema.
// This does not apply to subschemas or parent schemas.
// This is exported for use by additional schema implementations.
// It is not expected to be used by code that just wants to validate a schema.
type ValidationState struct {
	// The root of the Schema being validated.
	Root *Schema
	// The Schema being validated.
	Schema *Schema
	// The index in schema.Parts of the keyword currently being validated.
	Index int
	// Notes created during validation of Schema.
	Notes *notes.Notes
	// Scope is the dynamic scope, for "$dynamicRef".
	Scope *Scope
	// Depth of tree when validating. Used to avoid infinite recursion.
	Depth int
	// Validation options. Nil for the defaults.
	Opts *ValidateOpts

	// inPlace lists the schemas being evaluated at the
	// current instance location, innermost first.
	inPlace *inPlaceFrame
}

type inPlaceFrame struct {
	schema *Schema
	next   *inPlaceFrame
}

// Child returns a new ValidationState that is a child of vs.
// This can be used to validate a subschema without changing
// the notes stored in vs.
func (vs *ValidationState) Child() (*ValidationState, error) {
	if vs.Depth >= maxDepth {
		return nil, validerr.ErrRecursionTooDeep
	}

	ret := &ValidationState{
		Root:   vs.Root,
		Schema: vs.Schema,
		Index:  vs.Index,
		Notes:  new(notes.Notes),
		Scope:  vs.Scope,
		Depth:  vs.Depth + 1,
		Opts:   vs.Opts,

		inPlace: vs.inPlace,
	}
	return ret, nil
}

// Sibling returns the value of keyword in the schema being
// validated, if the schema has that keyword.
func (vs *ValidationState) Sibling(keyword string) (PartValue, bool) {
	return vs.Schema.LookupKeyword(keyword)
}
