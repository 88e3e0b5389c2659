// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altshiftab/jsonvalidate/internal/validator"
	"github.com/altshiftab/jsonvalidate/pkg/draft202012"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
	"github.com/altshiftab/jsonvalidate/pkg/notes"
	"github.com/altshiftab/jsonvalidate/pkg/types"
)

type keywordTest struct {
	schema  string
	valid   []string
	invalid []string
}

func runKeywordTests(t *testing.T, tests map[string]keywordTest) {
	t.Helper()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := draft202012.Load(jsonvalue.MustParse(tt.schema), nil)
			require.NoError(t, err)
			for _, inst := range tt.valid {
				ok, err := s.Validate(jsonvalue.MustParse(inst))
				require.NoError(t, err)
				assert.True(t, ok, "%s should be valid", inst)
			}
			for _, inst := range tt.invalid {
				ok, err := s.Validate(jsonvalue.MustParse(inst))
				require.NoError(t, err)
				assert.False(t, ok, "%s should be invalid", inst)
			}
		})
	}
}

func TestTypeKeywords(t *testing.T) {
	runKeywordTests(t, map[string]keywordTest{
		"type null":    {`{"type":"null"}`, []string{`null`}, []string{`0`, `false`, `""`}},
		"type boolean": {`{"type":"boolean"}`, []string{`true`, `false`}, []string{`0`, `null`}},
		"type number":  {`{"type":"number"}`, []string{`1`, `1.5`, `-1e10`}, []string{`"1"`, `null`}},
		"type integer": {`{"type":"integer"}`, []string{`1`, `1.0`, `-0`, `1e3`}, []string{`1.1`, `"1"`}},
		"type string":  {`{"type":"string"}`, []string{`""`, `"x"`}, []string{`1`, `[]`}},
		"type array":   {`{"type":"array"}`, []string{`[]`, `[1]`}, []string{`{}`, `"[]"`}},
		"type object":  {`{"type":"object"}`, []string{`{}`}, []string{`[]`, `null`}},
		"type list":    {`{"type":["integer","string"]}`, []string{`1`, `"a"`}, []string{`1.5`, `null`}},
		"enum": {
			`{"enum":[1,"a",[1,2],{"k":null},null]}`,
			[]string{`1`, `1.0`, `"a"`, `[1,2]`, `{"k":null}`, `null`},
			[]string{`2`, `"b"`, `[2,1]`, `{"k":1}`, `true`, `{}`},
		},
		"enum bools": {`{"enum":[false]}`, []string{`false`}, []string{`0`, `null`}},
		"const": {`{"const":{"a":[1.0]}}`, []string{`{"a":[1]}`}, []string{`{"a":[1,1]}`, `{"a":[true]}`}},
	})
}

func TestNumericKeywords(t *testing.T) {
	runKeywordTests(t, map[string]keywordTest{
		"maximum":          {`{"maximum":3}`, []string{`3`, `2.9`, `"x"`}, []string{`3.0001`, `4`}},
		"exclusiveMaximum": {`{"exclusiveMaximum":3}`, []string{`2.9`}, []string{`3`, `3.0`}},
		"minimum":          {`{"minimum":-2}`, []string{`-2`, `0`}, []string{`-2.0001`}},
		"exclusiveMinimum": {`{"exclusiveMinimum":1.1}`, []string{`1.2`}, []string{`1.1`, `1`}},
		"multipleOf":       {`{"multipleOf":2}`, []string{`4`, `0`, `-6`, `4.0`, `"x"`}, []string{`7`, `4.5`}},
		"multipleOf decimal": {
			`{"multipleOf":0.01}`,
			[]string{`19.99`, `0.07`, `1`},
			[]string{`0.075`, `19.995`},
		},
		"multipleOf tiny": {`{"multipleOf":0.0001}`, []string{`0.0075`, `12391239123`}, []string{`0.00751`}},
		"big integers": {
			`{"maximum":18446744073709551615}`,
			[]string{`18446744073709551615`, `-18446744073709551616`},
			[]string{`18446744073709551616`},
		},
	})
}

func TestStringKeywords(t *testing.T) {
	runKeywordTests(t, map[string]keywordTest{
		"maxLength": {`{"maxLength":2}`, []string{`"ab"`, `"💩💩"`, `1`}, []string{`"abc"`}},
		"minLength": {`{"minLength":2}`, []string{`"ab"`, `"💩💩"`}, []string{`"a"`, `"💩"`}},
		"pattern":   {`{"pattern":"b+"}`, []string{`"abbc"`, `1`}, []string{`"ac"`}},
		"pattern anchored": {
			`{"pattern":"^[a-z]+$"}`,
			[]string{`"abc"`},
			[]string{`"abc1"`, `"Abc"`},
		},
		"pattern ascii digits": {`{"pattern":"^\\d$"}`, []string{`"5"`}, []string{`"৪"`}},
		"format annotation":    {`{"format":"ipv4"}`, []string{`"1.2.3.4"`, `"nope"`}, nil},
	})
}

func TestArrayKeywords(t *testing.T) {
	runKeywordTests(t, map[string]keywordTest{
		"prefixItems": {
			`{"prefixItems":[{"type":"integer"},{"type":"string"}]}`,
			[]string{`[]`, `[1]`, `[1,"a"]`, `[1,"a",null]`, `{}`},
			[]string{`["a"]`, `[1,2]`},
		},
		"items after prefixItems": {
			`{"prefixItems":[{"type":"integer"}],"items":{"type":"string"}}`,
			[]string{`[1]`, `[1,"a","b"]`},
			[]string{`[1,2]`, `["a"]`},
		},
		"items false": {`{"prefixItems":[true],"items":false}`, []string{`[1]`, `[]`}, []string{`[1,2]`}},
		"contains": {
			`{"contains":{"const":1}}`,
			[]string{`[1]`, `[2,1]`, `"x"`},
			[]string{`[]`, `[2]`},
		},
		"min and max contains": {
			`{"contains":{"const":1},"minContains":2,"maxContains":3}`,
			[]string{`[1,1]`, `[1,2,1,1]`},
			[]string{`[1]`, `[1,1,1,1]`, `[]`},
		},
		"maxContains zero": {
			`{"contains":{"const":1},"maxContains":0}`,
			nil,
			[]string{`[]`, `[1]`, `[2]`},
		},
		"minContains zero": {
			`{"contains":{"const":1},"minContains":0,"maxContains":1}`,
			[]string{`[]`, `[2]`, `[1,2]`},
			[]string{`[1,1]`},
		},
		"maxItems": {`{"maxItems":2}`, []string{`[]`, `[1,2]`, `"ab"`}, []string{`[1,2,3]`}},
		"minItems": {`{"minItems":1}`, []string{`[1]`}, []string{`[]`}},
		"uniqueItems": {
			`{"uniqueItems":true}`,
			[]string{`[]`, `[1,"1"]`, `[0,false]`, `[[1],[true]]`, `[{"a":1},{"a":2}]`},
			[]string{`[1,1.0]`, `[{"a":1,"b":2},{"b":2,"a":1}]`, `[[1],[1]]`, `[null,null]`},
		},
		"uniqueItems false": {`{"uniqueItems":false}`, []string{`[1,1]`}, nil},
		"unevaluatedItems": {
			`{"prefixItems":[true],"unevaluatedItems":{"type":"string"}}`,
			[]string{`[1]`, `[1,"a"]`, `{}`},
			[]string{`[1,2]`},
		},
		"unevaluatedItems after items": {
			`{"items":true,"unevaluatedItems":false}`,
			[]string{`[1,2,3]`},
			nil,
		},
	})
}

func TestObjectKeywords(t *testing.T) {
	runKeywordTests(t, map[string]keywordTest{
		"properties": {
			`{"properties":{"a":{"type":"integer"},"b":false}}`,
			[]string{`{}`, `{"a":1}`, `{"c":false}`, `[]`},
			[]string{`{"a":"x"}`, `{"b":1}`},
		},
		"patternProperties": {
			`{"patternProperties":{"^x-":{"type":"string"},"y":{"minLength":2}}}`,
			[]string{`{"x-a":"s"}`, `{"x-y":"ab"}`, `{"z":1}`},
			[]string{`{"x-a":1}`, `{"x-y":"a"}`},
		},
		"additionalProperties": {
			`{"properties":{"a":true},"patternProperties":{"^p":true},"additionalProperties":{"type":"integer"}}`,
			[]string{`{"a":"s","p1":"s","z":1}`},
			[]string{`{"z":"s"}`},
		},
		"propertyNames": {
			`{"propertyNames":{"maxLength":3}}`,
			[]string{`{}`, `{"abc":1}`, `[1]`},
			[]string{`{"abcd":1}`},
		},
		"maxProperties": {`{"maxProperties":1}`, []string{`{}`, `{"a":1}`}, []string{`{"a":1,"b":2}`}},
		"minProperties": {`{"minProperties":1}`, []string{`{"a":1}`}, []string{`{}`}},
		"required": {
			`{"required":["a","b"]}`,
			[]string{`{"a":1,"b":null}`, `[]`},
			[]string{`{"a":1}`, `{}`},
		},
		"dependentRequired": {
			`{"dependentRequired":{"a":["b","c"]}}`,
			[]string{`{}`, `{"b":1}`, `{"a":1,"b":1,"c":1}`},
			[]string{`{"a":1,"b":1}`},
		},
		"dependentSchemas": {
			`{"dependentSchemas":{"a":{"required":["b"]}}}`,
			[]string{`{}`, `{"a":1,"b":2}`},
			[]string{`{"a":1}`},
		},
	})
}

func TestApplicatorKeywords(t *testing.T) {
	runKeywordTests(t, map[string]keywordTest{
		"allOf": {`{"allOf":[{"type":"integer"},{"minimum":2}]}`, []string{`2`}, []string{`1`, `2.5`}},
		"anyOf": {`{"anyOf":[{"type":"integer"},{"minimum":2}]}`, []string{`1`, `2.5`}, []string{`1.5`}},
		"oneOf": {`{"oneOf":[{"type":"integer"},{"minimum":2}]}`, []string{`1`, `2.5`}, []string{`3`, `1.5`}},
		"oneOf three matches": {`{"oneOf":[true,true,true]}`, nil, []string{`1`}},
		"not": {`{"not":{"type":"integer"}}`, []string{`"a"`}, []string{`1`}},
		"if then else": {
			`{"if":{"type":"integer"},"then":{"minimum":0},"else":{"type":"string"}}`,
			[]string{`1`, `"a"`},
			[]string{`-1`, `1.5`},
		},
		"if without then": {`{"if":{"type":"integer"},"else":{"type":"string"}}`, []string{`-1`, `"a"`}, []string{`null`}},
		"then without if": {`{"then":false,"else":false}`, []string{`1`}, nil},
	})
}

func TestWrapArgumentMismatch(t *testing.T) {
	f := validator.Wrap(validator.ValidateMinimum)
	s := &types.Schema{Parts: []types.Part{types.MakePart(&types.Keyword{Name: "minimum"}, types.PartString("x"))}}
	state := &types.ValidationState{Schema: s, Notes: new(notes.Notes)}
	_, err := f(types.PartString("x"), jsonvalue.Int(1), state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum")
}

func TestContainsNotes(t *testing.T) {
	s, err := draft202012.Load(jsonvalue.MustParse(`{"contains":{"type":"string"}}`), nil)
	require.NoError(t, err)
	state := &types.ValidationState{Root: s, Notes: new(notes.Notes)}
	ok, err := s.ValidateInPlaceSchema(jsonvalue.MustParse(`["a",1,"b"]`), state)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, state.Notes.ItemEvaluated(0))
	assert.False(t, state.Notes.ItemEvaluated(1))
	assert.True(t, state.Notes.ItemEvaluated(2))
	// Contains matches stay with the schema that computed them.
	_, ran := state.Notes.Contains()
	assert.False(t, ran)
}
