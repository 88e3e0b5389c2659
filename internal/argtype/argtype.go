// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtype defines a few helpers for types.ArgType.
// The keyword generator uses it to read keyword files,
// and the loader uses it in error messages.
package argtype

import (
	"fmt"

	"github.com/altshiftab/jsonvalidate/pkg/types"
)

// byName maps the argument type names used in keyword files
// to [types.ArgType] values.
var byName = map[string]types.ArgType{
	"bool":            types.ArgTypeBool,
	"string":          types.ArgTypeString,
	"strings":         types.ArgTypeStrings,
	"stringOrStrings": types.ArgTypeStringOrStrings,
	"int":             types.ArgTypeInt,
	"number":          types.ArgTypeNumber,
	"schema":          types.ArgTypeSchema,
	"schemas":         types.ArgTypeSchemas,
	"mapSchema":       types.ArgTypeMapSchema,
	"mapStrings":      types.ArgTypeMapStrings,
	"patternSchemas":  types.ArgTypePatternSchemas,
	"regexp":          types.ArgTypeRegexp,
	"ref":             types.ArgTypeRef,
	"dynamicRef":      types.ArgTypeDynamicRef,
	"values":          types.ArgTypeValues,
	"any":             types.ArgTypeAny,
}

// Parse returns the [types.ArgType] for a name used in a keyword file.
func Parse(name string) (types.ArgType, error) {
	if t, ok := byName[name]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown argument type %q", name)
}

// nameToConst maps [types.ArgType] to the name of the constant,
// for generated code.
var nameToConst = map[types.ArgType]string{
	types.ArgTypeBool:            "ArgTypeBool",
	types.ArgTypeString:          "ArgTypeString",
	types.ArgTypeStrings:         "ArgTypeStrings",
	types.ArgTypeStringOrStrings: "ArgTypeStringOrStrings",
	types.ArgTypeInt:             "ArgTypeInt",
	types.ArgTypeNumber:          "ArgTypeNumber",
	types.ArgTypeSchema:          "ArgTypeSchema",
	types.ArgTypeSchemas:         "ArgTypeSchemas",
	types.ArgTypeMapSchema:       "ArgTypeMapSchema",
	types.ArgTypeMapStrings:      "ArgTypeMapStrings",
	types.ArgTypePatternSchemas:  "ArgTypePatternSchemas",
	types.ArgTypeRegexp:          "ArgTypeRegexp",
	types.ArgTypeRef:             "ArgTypeRef",
	types.ArgTypeDynamicRef:      "ArgTypeDynamicRef",
	types.ArgTypeValues:          "ArgTypeValues",
	types.ArgTypeAny:             "ArgTypeAny",
}

// Const returns the name of the constant for a [types.ArgType].
func Const(t types.ArgType) string {
	if n, ok := nameToConst[t]; ok {
		return n
	}
	panic(fmt.Sprintf("unexpected ArgType value %d", t))
}

// descriptions describes the JSON that a keyword of each
// argument type accepts.
var descriptions = map[types.ArgType]string{
	types.ArgTypeBool:            "a boolean",
	types.ArgTypeString:          "a string",
	types.ArgTypeStrings:         "an array of strings",
	types.ArgTypeStringOrStrings: "a string or an array of strings",
	types.ArgTypeInt:             "a non-negative integer",
	types.ArgTypeNumber:          "a number",
	types.ArgTypeSchema:          "a schema",
	types.ArgTypeSchemas:         "a non-empty array of schemas",
	types.ArgTypeMapSchema:       "an object of schemas",
	types.ArgTypeMapStrings:      "an object of string arrays",
	types.ArgTypePatternSchemas:  "an object of schemas keyed by regular expression",
	types.ArgTypeRegexp:          "a regular expression string",
	types.ArgTypeRef:             "a URI reference string",
	types.ArgTypeDynamicRef:      "a URI reference string",
	types.ArgTypeValues:          "an array",
	types.ArgTypeAny:             "any value",
}

// Describe returns a description of the JSON a keyword
// with argument type t accepts, such as "an array of strings".
func Describe(t types.ArgType) string {
	if d, ok := descriptions[t]; ok {
		return d
	}
	return fmt.Sprintf("ArgType(%d)", t)
}
