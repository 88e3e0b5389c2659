// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altshiftab/jsonvalidate/internal/validerr"
	"github.com/altshiftab/jsonvalidate/pkg/draft202012"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
	"github.com/altshiftab/jsonvalidate/pkg/notes"
	"github.com/altshiftab/jsonvalidate/pkg/types"
)

func load(t *testing.T, schema string) *types.Schema {
	t.Helper()
	s, err := draft202012.Load(jsonvalue.MustParse(schema), nil)
	require.NoError(t, err)
	return s
}

func TestBoolSchema(t *testing.T) {
	res := types.NewResource("urn:test", jsonvalue.Bool(true))
	for _, b := range []bool{true, false} {
		s := types.NewBoolSchema(b, res, "")
		isBool, v := s.IsBool()
		assert.True(t, isBool)
		assert.Equal(t, b, v)
		ok, err := s.Validate(jsonvalue.MustParse(`{"a":[1]}`))
		require.NoError(t, err)
		assert.Equal(t, b, ok)
	}
	isBool, _ := load(t, `{}`).IsBool()
	assert.False(t, isBool)
}

func TestRecursionLimit(t *testing.T) {
	for _, schema := range []string{
		`{"$ref":"#"}`,
		`{"$defs":{"a":{"$ref":"#/$defs/b"},"b":{"$ref":"#/$defs/a"}},"$ref":"#/$defs/a"}`,
		`{"anyOf":[{"type":"string"},{"not":{"$ref":"#"}}]}`,
		`{"$defs":{"a":{"items":{"$ref":"#/$defs/b"}},"b":{"allOf":[{"$ref":"#/$defs/a"},{"$ref":"#/$defs/b"}]}},"$ref":"#/$defs/a"}`,
	} {
		_, err := load(t, schema).Validate(jsonvalue.MustParse(`[[1]]`))
		assert.ErrorIs(t, err, validerr.ErrRecursionTooDeep, schema)
	}
}

func TestDeepInstance(t *testing.T) {
	// Recursion that descends into the instance is bounded by the
	// instance, however deep it is.
	for _, schema := range []string{
		`{"items":{"$ref":"#"}}`,
		`{"type":["array","integer"],"items":{"$ref":"#"}}`,
		`{"$defs":{"a":{"allOf":[{"$ref":"#/$defs/b"}]},"b":{"items":{"$ref":"#/$defs/a"}}},"$ref":"#/$defs/a"}`,
	} {
		s := load(t, schema)
		inst := jsonvalue.Int(0)
		for range 2000 {
			inst = jsonvalue.Array(inst)
		}
		ok, err := s.Validate(inst)
		require.NoError(t, err, schema)
		assert.True(t, ok, schema)
	}

	// The same schema at the same location is fine when the
	// evaluations are siblings rather than nested.
	s := load(t, `{"$defs":{"x":{"type":"integer"}},"allOf":[{"$ref":"#/$defs/x"},{"$ref":"#/$defs/x"}]}`)
	ok, err := s.Validate(jsonvalue.Int(3))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKeywordOrder(t *testing.T) {
	// Keywords run in vocabulary order whatever the document order,
	// so annotations reach the keywords that read them.
	s := load(t, `{"unevaluatedProperties":false,"x-unknown":1,"properties":{"a":true},"$id":"urn:x","type":"object"}`)
	var names []string
	for _, p := range s.Parts {
		names = append(names, p.Keyword.Name)
	}
	assert.Equal(t, []string{"x-unknown", "$id", "type", "properties", "unevaluatedProperties"}, names)

	v, ok := s.LookupKeyword("type")
	require.True(t, ok)
	assert.Equal(t, types.PartStringOrStrings{String: "object"}, v)
	_, ok = s.LookupKeyword("items")
	assert.False(t, ok)
}

func TestLocations(t *testing.T) {
	s := load(t, `{"$id":"http://example.com/root","properties":{"a/b":{"items":true},"c":{"$id":"c","not":{}}}}`)
	var locs []string
	for sub := range s.All() {
		locs = append(locs, sub.Location())
	}
	assert.ElementsMatch(t, []string{
		"http://example.com/root",
		"http://example.com/root#/properties/a~1b",
		"http://example.com/root#/properties/a~1b/items",
		"http://example.com/c",
		"http://example.com/c#/not",
	}, locs)

	var children []string
	for name := range s.Children() {
		children = append(children, name)
	}
	assert.Equal(t, []string{"properties/a~1b", "properties/c"}, children)
}

func TestAllVisitsSharedOnce(t *testing.T) {
	s := load(t, `{"allOf":[{"$ref":"#/$defs/x"},{"$ref":"#/$defs/x"}],"$defs":{"x":{}}}`)
	n := 0
	for range s.All() {
		n++
	}
	// Root, the two allOf branches and $defs/x. Reference targets
	// are not children, so x is only reached through $defs.
	assert.Equal(t, 4, n)
}

func TestScope(t *testing.T) {
	a := types.NewResource("urn:a", jsonvalue.Null())
	b := types.NewResource("urn:b", jsonvalue.Null())
	c := types.NewResource("urn:c", jsonvalue.Null())

	var sc *types.Scope
	sc = sc.Push(a)
	sc = sc.Push(a)
	sc = sc.Push(b)
	sc = sc.Push(nil)
	sc = sc.Push(c)
	sc = sc.Push(a)

	var uris []string
	for r := range sc.OldestFirst() {
		uris = append(uris, r.URI)
	}
	assert.Equal(t, []string{"urn:a", "urn:b", "urn:c", "urn:a"}, uris)

	var first []string
	for r := range sc.OldestFirst() {
		first = append(first, r.URI)
		break
	}
	assert.Equal(t, []string{"urn:a"}, first)

	var empty *types.Scope
	assert.Empty(t, slices.Collect(empty.OldestFirst()))
}

func TestResourceAddSchema(t *testing.T) {
	r := types.NewResource("urn:r", jsonvalue.Null())
	s1 := types.NewBoolSchema(true, r, "/a")
	s2 := types.NewBoolSchema(false, r, "/a")
	assert.Same(t, s1, r.AddSchema("/a", s1))
	assert.Same(t, s1, r.AddSchema("/a", s2))
	got, ok := r.SchemaAt("/a")
	require.True(t, ok)
	assert.Same(t, s1, got)
	_, ok = r.SchemaAt("/b")
	assert.False(t, ok)
}

func TestInPlaceAndSubSchemaNotes(t *testing.T) {
	sub := load(t, `{"properties":{"a":true}}`)
	inst := jsonvalue.MustParse(`{"a":1,"b":2}`)
	state := &types.ValidationState{Root: sub, Notes: new(notes.Notes)}

	ok, err := sub.ValidateSubSchema(inst, state)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, state.Notes.IsEmpty())

	ok, err = sub.ValidateInPlaceSchema(inst, state)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, state.Notes.PropertyEvaluated("a"))
	assert.False(t, state.Notes.PropertyEvaluated("b"))

	// A failing in-place schema contributes nothing.
	state.Notes.Clear()
	fail := load(t, `{"properties":{"b":true},"required":["c"]}`)
	ok, err = fail.ValidateInPlaceSchema(inst, state)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, state.Notes.IsEmpty())
}

func TestValidateWithOptsFormats(t *testing.T) {
	s := load(t, `{"format":"upper"}`)
	opts := &types.ValidateOpts{
		FormatAssertion: true,
		Formats: map[string]func(string) error{
			"upper": func(s string) error {
				if s != "" && (s[0] < 'A' || s[0] > 'Z') {
					return assert.AnError
				}
				return nil
			},
		},
	}
	for _, tt := range []struct {
		inst string
		opts *types.ValidateOpts
		want bool
	}{
		{`"Abc"`, opts, true},
		{`"abc"`, opts, false},
		{`"abc"`, nil, true},
		{`"abc"`, &types.ValidateOpts{Formats: opts.Formats}, true},
		{`5`, opts, true},
	} {
		ok, err := s.ValidateWithOpts(jsonvalue.MustParse(tt.inst), tt.opts)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, tt.inst)
	}
}
