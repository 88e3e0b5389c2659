// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validator contains functions to handle different schema arguments.
//
// Each function reports whether an instance satisfies one keyword.
// A false result is an ordinary verdict; a non-nil error is fatal
// and is passed up unchanged.
package validator

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
	"github.com/altshiftab/jsonvalidate/pkg/types"
)

// Func is the signature of [types.Keyword.Validate].
type Func = func(types.PartValue, jsonvalue.Value, *types.ValidationState) (bool, error)

// Wrap adapts a function taking a specific argument type
// to the signature used by [types.Keyword].
func Wrap[T types.PartValue](fn func(T, jsonvalue.Value, *types.ValidationState) (bool, error)) Func {
	return func(arg types.PartValue, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
		v, ok := arg.(T)
		if !ok {
			return false, fmt.Errorf("keyword %s: argument has type %T, want %T", keywordName(state), arg, v)
		}
		return fn(v, instance, state)
	}
}

// keywordName returns the name of the keyword being validated.
func keywordName(state *types.ValidationState) string {
	if state.Schema == nil || state.Index >= len(state.Schema.Parts) {
		return "?"
	}
	return state.Schema.Parts[state.Index].Keyword.Name
}

// ValidateAllOf implements the allOf keyword.
func ValidateAllOf(arg types.PartSchemas, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	for _, s := range arg {
		ok, err := s.ValidateInPlaceSchema(instance, state)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// ValidateAnyOf implements the anyOf keyword.
// Every subschema is evaluated, so that the annotations of
// each one that matches are kept.
func ValidateAnyOf(arg types.PartSchemas, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	matched := false
	for _, s := range arg {
		ok, err := s.ValidateInPlaceSchema(instance, state)
		if err != nil {
			return false, err
		}
		matched = matched || ok
	}
	return matched, nil
}

// ValidateOneOf implements the oneOf keyword.
func ValidateOneOf(arg types.PartSchemas, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	c := 0
	for _, s := range arg {
		ok, err := s.ValidateInPlaceSchema(instance, state)
		if err != nil {
			return false, err
		}
		if ok {
			c++
			// With two matches the verdict is fixed,
			// and the notes gathered so far are dropped with it.
			if c > 1 {
				return false, nil
			}
		}
	}
	return c == 1, nil
}

// ValidateNot implements the not keyword.
// The annotations of the subschema never reach the parent.
func ValidateNot(arg types.PartSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	ok, err := arg.S.ValidateSubSchema(instance, state)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// ValidateIf implements the if keyword, along with the sibling
// "then" and "else" keywords, which do nothing on their own.
func ValidateIf(arg types.PartSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	ok, err := arg.S.ValidateInPlaceSchema(instance, state)
	if err != nil {
		return false, err
	}
	branch := "else"
	if ok {
		branch = "then"
	}
	pv, found := state.Sibling(branch)
	if !found {
		return true, nil
	}
	return pv.(types.PartSchema).S.ValidateInPlaceSchema(instance, state)
}

// ValidateDependentSchemas implements the dependentSchemas keyword.
func ValidateDependentSchemas(arg types.PartMapSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	for name, s := range arg {
		if !obj.Has(name) {
			continue
		}
		ok, err := s.ValidateInPlaceSchema(instance, state)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// ValidateType implements the type keyword.
func ValidateType(arg types.PartStringOrStrings, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if arg.Strings == nil {
		return typeMatches(arg.String, instance), nil
	}
	for _, t := range arg.Strings {
		if typeMatches(t, instance) {
			return true, nil
		}
	}
	return false, nil
}

// typeMatches reports whether instance has the JSON schema type t.
func typeMatches(t string, instance jsonvalue.Value) bool {
	switch t {
	case "integer":
		return instance.IsInteger()
	case "number":
		return instance.IsNumber()
	default:
		return instance.Kind().String() == t
	}
}

// ValidateEnum implements the enum keyword.
func ValidateEnum(arg types.PartValues, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	for _, v := range arg {
		if jsonvalue.Equal(v, instance) {
			return true, nil
		}
	}
	return false, nil
}

// ValidateConst implements the const keyword.
func ValidateConst(arg types.PartAny, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	return jsonvalue.Equal(arg.V, instance), nil
}

// ValidateMultipleOf implements the multipleOf keyword.
func ValidateMultipleOf(arg types.PartNumber, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if !instance.IsNumber() {
		return true, nil
	}
	return jsonvalue.IsMultipleOf(instance, arg.V), nil
}

// ValidateMaximum implements the maximum keyword.
func ValidateMaximum(arg types.PartNumber, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if !instance.IsNumber() {
		return true, nil
	}
	return jsonvalue.CompareNumbers(instance, arg.V) <= 0, nil
}

// ValidateExclusiveMaximum implements the exclusiveMaximum keyword.
func ValidateExclusiveMaximum(arg types.PartNumber, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if !instance.IsNumber() {
		return true, nil
	}
	return jsonvalue.CompareNumbers(instance, arg.V) < 0, nil
}

// ValidateMinimum implements the minimum keyword.
func ValidateMinimum(arg types.PartNumber, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if !instance.IsNumber() {
		return true, nil
	}
	return jsonvalue.CompareNumbers(instance, arg.V) >= 0, nil
}

// ValidateExclusiveMinimum implements the exclusiveMinimum keyword.
func ValidateExclusiveMinimum(arg types.PartNumber, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if !instance.IsNumber() {
		return true, nil
	}
	return jsonvalue.CompareNumbers(instance, arg.V) > 0, nil
}

// ValidateMaxLength implements the maxLength keyword.
// Lengths are counted in code points.
func ValidateMaxLength(arg types.PartInt, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	s, ok := instance.AsString()
	if !ok {
		return true, nil
	}
	return int64(utf8.RuneCountInString(s)) <= int64(arg), nil
}

// ValidateMinLength implements the minLength keyword.
func ValidateMinLength(arg types.PartInt, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	s, ok := instance.AsString()
	if !ok {
		return true, nil
	}
	return int64(utf8.RuneCountInString(s)) >= int64(arg), nil
}

// ValidatePattern implements the pattern keyword.
// The expression is not anchored.
func ValidatePattern(arg types.PartRegexp, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	s, ok := instance.AsString()
	if !ok {
		return true, nil
	}
	return arg.Re.MatchString(s)
}

// ValidateFormat implements the format keyword.
// Unless format assertion is enabled this is an annotation only.
func ValidateFormat(arg types.PartString, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	opts := state.Opts
	if opts == nil || !opts.FormatAssertion {
		return true, nil
	}
	s, ok := instance.AsString()
	if !ok {
		return true, nil
	}
	check, ok := opts.Formats[string(arg)]
	if !ok {
		return true, nil
	}
	return check(s) == nil, nil
}

// ValidatePrefixItems implements the prefixItems keyword.
func ValidatePrefixItems(arg types.PartSchemas, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	items := instance.Items()
	n := min(len(arg), len(items))
	for i := range n {
		ok, err := arg[i].ValidateChild(items[i], state)
		if err != nil || !ok {
			return false, err
		}
	}
	state.Notes.EvaluateItems(0, n)
	return true, nil
}

// ValidateItems implements the items keyword.
// It applies to the elements after those covered by a
// sibling "prefixItems".
func ValidateItems(arg types.PartSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	items := instance.Items()
	start := 0
	if pv, ok := state.Sibling("prefixItems"); ok {
		start = len(pv.(types.PartSchemas))
	}
	for i := start; i < len(items); i++ {
		ok, err := arg.S.ValidateChild(items[i], state)
		if err != nil || !ok {
			return false, err
		}
	}
	if start < len(items) {
		state.Notes.EvaluateItems(start, len(items))
	}
	return true, nil
}

// ValidateContains implements the contains keyword.
// The matching indexes are recorded for "minContains" and
// "maxContains", which are evaluated after this keyword.
// When there is a "minContains" it decides the minimum.
func ValidateContains(arg types.PartSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if instance.Kind() != jsonvalue.KindArray {
		return true, nil
	}

	var matched []int
	for i, e := range instance.Items() {
		ok, err := arg.S.ValidateChild(e, state)
		if err != nil {
			return false, err
		}
		if ok {
			matched = append(matched, i)
			state.Notes.EvaluateItem(i)
		}
	}
	state.Notes.SetContains(matched)

	if _, ok := state.Sibling("minContains"); ok {
		return true, nil
	}
	return len(matched) > 0, nil
}

// ValidateMaxContains implements the maxContains keyword.
func ValidateMaxContains(arg types.PartInt, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	matched, ok := state.Notes.Contains()
	if !ok {
		return true, nil
	}
	return int64(len(matched)) <= int64(arg), nil
}

// ValidateMinContains implements the minContains keyword.
func ValidateMinContains(arg types.PartInt, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	matched, ok := state.Notes.Contains()
	if !ok {
		return true, nil
	}
	return int64(len(matched)) >= int64(arg), nil
}

// ValidateMaxItems implements the maxItems keyword.
func ValidateMaxItems(arg types.PartInt, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if instance.Kind() != jsonvalue.KindArray {
		return true, nil
	}
	return int64(len(instance.Items())) <= int64(arg), nil
}

// ValidateMinItems implements the minItems keyword.
func ValidateMinItems(arg types.PartInt, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if instance.Kind() != jsonvalue.KindArray {
		return true, nil
	}
	return int64(len(instance.Items())) >= int64(arg), nil
}

// ValidateUniqueItems implements the uniqueItems keyword.
func ValidateUniqueItems(arg types.PartBool, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	if !arg || instance.Kind() != jsonvalue.KindArray {
		return true, nil
	}

	// Bucket by hash; equal values always hash alike.
	seen := make(map[uint64][]jsonvalue.Value)
	for _, e := range instance.Items() {
		h := e.Hash()
		if slices.ContainsFunc(seen[h], func(v jsonvalue.Value) bool {
			return jsonvalue.Equal(v, e)
		}) {
			return false, nil
		}
		seen[h] = append(seen[h], e)
	}
	return true, nil
}

// ValidateUnevaluatedItems implements the unevaluatedItems keyword.
// It runs after every other keyword of the schema, and sees
// the items they evaluated.
func ValidateUnevaluatedItems(arg types.PartSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	for i, e := range instance.Items() {
		if state.Notes.ItemEvaluated(i) {
			continue
		}
		ok, err := arg.S.ValidateChild(e, state)
		if err != nil || !ok {
			return false, err
		}
		state.Notes.EvaluateItem(i)
	}
	return true, nil
}

// ValidateProperties implements the properties keyword.
func ValidateProperties(arg types.PartMapSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	for name, v := range obj.All() {
		s, ok := arg[name]
		if !ok {
			continue
		}
		ok, err := s.ValidateChild(v, state)
		if err != nil || !ok {
			return false, err
		}
		state.Notes.EvaluateProperty(name)
	}
	return true, nil
}

// ValidatePatternProperties implements the patternProperties keyword.
// A property is checked against every pattern it matches.
func ValidatePatternProperties(arg types.PartPatternSchemas, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	for name, v := range obj.All() {
		for _, ps := range arg {
			match, err := ps.Re.MatchString(name)
			if err != nil {
				return false, err
			}
			if !match {
				continue
			}
			ok, err := ps.Schema.ValidateChild(v, state)
			if err != nil || !ok {
				return false, err
			}
			state.Notes.EvaluateProperty(name)
		}
	}
	return true, nil
}

// ValidateAdditionalProperties implements the additionalProperties keyword.
// It applies to the properties not named by a sibling "properties"
// and not matched by a sibling "patternProperties".
//
// The true schema admits those properties without marking them
// as evaluated, unlike the equivalent empty schema.
func ValidateAdditionalProperties(arg types.PartSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}

	var props types.PartMapSchema
	if pv, ok := state.Sibling("properties"); ok {
		props = pv.(types.PartMapSchema)
	}
	var patterns types.PartPatternSchemas
	if pv, ok := state.Sibling("patternProperties"); ok {
		patterns = pv.(types.PartPatternSchemas)
	}
	isBool, allow := arg.S.IsBool()

	for name, v := range obj.All() {
		if _, ok := props[name]; ok {
			continue
		}
		matched, err := matchesAny(patterns, name)
		if err != nil {
			return false, err
		}
		if matched {
			continue
		}

		if isBool {
			if !allow {
				return false, nil
			}
			continue
		}
		ok, err := arg.S.ValidateChild(v, state)
		if err != nil || !ok {
			return false, err
		}
		state.Notes.EvaluateProperty(name)
	}
	return true, nil
}

// matchesAny reports whether name matches any of the patterns.
func matchesAny(patterns types.PartPatternSchemas, name string) (bool, error) {
	for _, ps := range patterns {
		match, err := ps.Re.MatchString(name)
		if err != nil || match {
			return match, err
		}
	}
	return false, nil
}

// ValidatePropertyNames implements the propertyNames keyword.
func ValidatePropertyNames(arg types.PartSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	for name := range obj.All() {
		ok, err := arg.S.ValidateChild(jsonvalue.String(name), state)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// ValidateUnevaluatedProperties implements the unevaluatedProperties keyword.
// It runs after every other keyword of the schema, and sees
// the properties they evaluated.
func ValidateUnevaluatedProperties(arg types.PartSchema, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	for name, v := range obj.All() {
		if state.Notes.PropertyEvaluated(name) {
			continue
		}
		ok, err := arg.S.ValidateChild(v, state)
		if err != nil || !ok {
			return false, err
		}
		state.Notes.EvaluateProperty(name)
	}
	return true, nil
}

// ValidateMaxProperties implements the maxProperties keyword.
func ValidateMaxProperties(arg types.PartInt, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	return int64(obj.Len()) <= int64(arg), nil
}

// ValidateMinProperties implements the minProperties keyword.
func ValidateMinProperties(arg types.PartInt, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	return int64(obj.Len()) >= int64(arg), nil
}

// ValidateRequired implements the required keyword.
func ValidateRequired(arg types.PartStrings, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	for _, name := range arg {
		if !obj.Has(name) {
			return false, nil
		}
	}
	return true, nil
}

// ValidateDependentRequired implements the dependentRequired keyword.
func ValidateDependentRequired(arg types.PartMapStrings, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	obj := instance.Object()
	if obj == nil {
		return true, nil
	}
	for name, required := range arg {
		if !obj.Has(name) {
			continue
		}
		for _, r := range required {
			if !obj.Has(r) {
				return false, nil
			}
		}
	}
	return true, nil
}
