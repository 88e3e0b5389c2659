// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types defines the compiled form of a JSON schema.
// Most programs do not need to use this package.
//
// A Schema is produced by a draft-specific loader, such as the one in
// the draft202012 package, and evaluated with [Schema.Validate].
package types

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/altshiftab/jsonvalidate/internal/uri"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

// Schema is a compiled JSON schema node.
// A Schema is either a boolean schema, holding the single
// [BoolKeyword] part, or a schema object holding one part
// per keyword, sorted into evaluation order.
//
// Do not create values of this type directly.
// A Schema is immutable once its loader has returned it,
// and may be used by concurrent validations.
type Schema struct {
	// The different elements of this Schema.
	Parts []Part

	// Resource is the schema resource that holds this schema.
	Resource *Resource

	// Pointer is the JSON pointer to this schema from the
	// root of its resource, in ~-escaped form without percent-encoding.
	Pointer string
}

// Location returns the canonical absolute URI of the schema:
// its resource URI with the JSON pointer as fragment.
func (s *Schema) Location() string {
	if s.Resource == nil {
		return "#" + s.Pointer
	}
	return uri.Join(s.Resource.URI, s.Pointer)
}

// String returns a somewhat readable representation of a Schema.
// Subschemas are shown by location, so cycles print safely.
func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteString("Schema{")
	for i, part := range s.Parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "{%s %v}", part.Keyword.Name, part.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// IsBool reports whether s is a boolean schema,
// and if so whether it is the true schema.
func (s *Schema) IsBool() (isBool, value bool) {
	if len(s.Parts) == 1 && s.Parts[0].Keyword == &BoolKeyword {
		return true, bool(s.Parts[0].Value.(PartBool))
	}
	return false, false
}

// Part is one part of a JSON schema.
// This is a keyword, such as "$id" or "properties",
// along with the value associated with that keyword in the schema.
type Part struct {
	Keyword *Keyword
	Value   PartValue
}

// MakePart builds a Part.
func MakePart(keyword *Keyword, value PartValue) Part {
	return Part{
		Keyword: keyword,
		Value:   value,
	}
}

// Keyword is a schema keyword.
type Keyword struct {
	// Name is the keyword, such as allOf, anyOf, and so forth.
	Name string

	// ArgType is the type of argument expected.
	ArgType ArgType

	// Validate is a function that checks whether the instance
	// satisfies the keyword. arg is the value from the schema,
	// which is [Part.Value].
	//
	// The bool result is the verdict. A non-nil error is fatal
	// and aborts the whole validation; it never means the
	// instance is merely invalid.
	//
	// Validate is nil for keywords that never affect the verdict,
	// such as "$comment" or unrecognized keywords.
	Validate func(arg PartValue, instance jsonvalue.Value, state *ValidationState) (bool, error)
}

// PartValue is the value of a JSON schema element.
// This is accessed via a type switch.
// The possible types are
//   - [PartBool]
//   - [PartString]
//   - [PartStrings]
//   - [PartStringOrStrings]
//   - [PartInt]
//   - [PartNumber]
//   - [PartSchema]
//   - [PartSchemas]
//   - [PartMapSchema]
//   - [PartMapStrings]
//   - [PartPatternSchemas]
//   - [PartRegexp]
//   - [PartRef]
//   - [PartDynamicRef]
//   - [PartValues]
//   - [PartAny]
type PartValue interface {
	partValue() // restrict to types defined in this package
}

// PartBool is a schema part value that is a bool.
// As the value of [BoolKeyword] it is a boolean schema:
// true matches every value, false matches none.
type PartBool bool

// PartString is a schema part value that is a string.
// For example, the schema keyword "format" has a string value.
type PartString string

// PartStrings is a schema part value that is a list of strings.
// For example, the schema keyword "required" takes a list of strings
// where each string is a property that the instance is required to have.
type PartStrings []string

// PartStringOrStrings is a schema part that is either a single string
// or a list of strings. This is basically just for the "type" keyword,
// which takes either a single type string or an array of type strings.
// If the Strings is not nil, the String field must be the empty string.
type PartStringOrStrings struct {
	String  string
	Strings []string
}

// PartInt is a schema part value that is a non-negative integer.
// For example, the schema keyword "minLength" specifies
// the minimum length of a string.
type PartInt int64

// PartNumber is a schema part value that is an exact number.
// For example, the schema keyword "maximum" specifies the maximum
// value of a number.
type PartNumber struct {
	V jsonvalue.Value
}

// PartSchema is a schema part value that is a reference to a schema.
// For example, the schema keyword "not" refers to a schema;
// the instance matches if it does not match that schema.
type PartSchema struct {
	S *Schema
}

// PartSchemas is a schema part value that is a list of schemas.
// For example, the schema keyword "allOf" matches an instance
// if the instance matches each schema in the list.
type PartSchemas []*Schema

// PartMapSchema is a schema part value that is a map from strings to schemas.
// For example, the schema keyword "properties" has a mapping
// from field names to schemas, and matches an instance if the
// corresponding instance fields match the schemas.
type PartMapSchema map[string]*Schema

// PartMapStrings is a map from strings to lists of strings.
// This is used for the "dependentRequired" keyword.
type PartMapStrings map[string][]string

// PatternSchema is one entry of a [PartPatternSchemas].
type PatternSchema struct {
	Pattern string
	Re      *regexp2.Regexp
	Schema  *Schema
}

// PartPatternSchemas is a list of compiled regular expressions,
// each with a schema. This is used for "patternProperties".
type PartPatternSchemas []PatternSchema

// PartRegexp is a compiled regular expression.
// This is used for "pattern".
type PartRegexp struct {
	Pattern string
	Re      *regexp2.Regexp
}

// PartRef is a "$ref".
type PartRef struct {
	// Ref is the absolute reference.
	Ref string
	// Target is the schema the reference resolves to.
	// It is looked up when the reference is first evaluated.
	Target *RefTarget
}

// PartDynamicRef is a "$dynamicRef".
type PartDynamicRef struct {
	// Ref is the absolute reference.
	Ref string
	// Target is the schema the reference initially resolves to.
	Target *RefTarget
	// Anchor is the anchor named by the fragment of Ref,
	// or "" if the fragment is a JSON pointer. The reference is
	// redirected through the dynamic scope only when the resource
	// of Target declares a dynamic anchor of this name.
	Anchor string
}

// PartValues is a list of JSON values, as for "enum".
type PartValues []jsonvalue.Value

// PartAny is a schema part value that is an arbitrary JSON value.
// For example, the schema keyword "const" matches an instance
// if the instance is equal to the value.
type PartAny struct {
	V jsonvalue.Value
}

// Define a partValue method for each permitted Part type.
// This implements the [PartValue] interface.

func (PartBool) partValue()            {}
func (PartString) partValue()          {}
func (PartStrings) partValue()         {}
func (PartStringOrStrings) partValue() {}
func (PartInt) partValue()             {}
func (PartNumber) partValue()          {}
func (PartSchema) partValue()          {}
func (PartSchemas) partValue()         {}
func (PartMapSchema) partValue()       {}
func (PartMapStrings) partValue()      {}
func (PartPatternSchemas) partValue()  {}
func (PartRegexp) partValue()          {}
func (PartRef) partValue()             {}
func (PartDynamicRef) partValue()      {}
func (PartValues) partValue()          {}
func (PartAny) partValue()             {}

// String methods for the parts that hold schemas print locations,
// as schemas may be cyclic.

func (p PartSchema) String() string { return p.S.Location() }

func (p PartSchemas) String() string {
	locs := make([]string, len(p))
	for i, s := range p {
		locs[i] = s.Location()
	}
	return fmt.Sprint(locs)
}

func (p PartMapSchema) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, s := range p {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%s:%s", k, s.Location())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (p PartPatternSchemas) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, ps := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%q:%s", ps.Pattern, ps.Schema.Location())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (p PartRegexp) String() string { return fmt.Sprintf("%q", p.Pattern) }

func (p PartRef) String() string { return p.Ref }

func (p PartDynamicRef) String() string { return p.Ref }

// ArgType is an enumeration of the possible schema part types.
type ArgType int

const (
	ArgTypeBool ArgType = iota + 1
	ArgTypeString
	ArgTypeStrings
	ArgTypeStringOrStrings
	ArgTypeInt
	ArgTypeNumber
	ArgTypeSchema
	ArgTypeSchemas
	ArgTypeMapSchema
	ArgTypeMapStrings
	ArgTypePatternSchemas
	ArgTypeRegexp
	ArgTypeRef
	ArgTypeDynamicRef
	ArgTypeValues
	ArgTypeAny
)

// LookupKeyword returns the value associated with a keyword in the schema.
// The bool result reports whether the keyword is present at all.
func (s *Schema) LookupKeyword(keyword string) (PartValue, bool) {
	for _, part := range s.Parts {
		if part.Keyword.Name == keyword {
			return part.Value, true
		}
	}
	return nil, false
}
