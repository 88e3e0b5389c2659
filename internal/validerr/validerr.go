// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validerr defines the errors that abort a validation.
//
// An instance that does not satisfy a schema is not an error:
// it is an ordinary false result. The errors here report a problem
// with the schema or its references, and are always fatal.
package validerr

import (
	"errors"
	"fmt"
)

// ErrRecursionTooDeep is returned when a schema is reached again at
// the same instance location, as with a schema that refers to itself
// without consuming any of the instance, or when evaluation nests
// deeper than the supported limit.
var ErrRecursionTooDeep = errors.New("recursion while validating schema too deep")

// SchemaLoadError reports a structural problem found while loading
// a schema document.
type SchemaLoadError struct {
	// URI of the resource holding the offending schema.
	URI string
	// Pointer to the offending schema within the resource.
	Pointer string
	// Message describes the problem.
	Message string
	// Err is an underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *SchemaLoadError) Error() string {
	msg := fmt.Sprintf("schema %s#%s: %s", e.URI, e.Pointer, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SchemaLoadError) Unwrap() error { return e.Err }

// UnresolvedReference reports a $ref or $dynamicRef whose target
// could not be found, even after consulting preloaded documents
// and the fetch hook.
type UnresolvedReference struct {
	// Ref is the absolute reference.
	Ref string
	// From is the location of the schema holding the reference.
	From string
	// Err is the reason, if any.
	Err error
}

// Error implements the error interface.
func (e *UnresolvedReference) Error() string {
	msg := fmt.Sprintf("unresolved reference %q in %s", e.Ref, e.From)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *UnresolvedReference) Unwrap() error { return e.Err }

// RegexCompileError reports a pattern or patternProperties regular
// expression that cannot be compiled.
type RegexCompileError struct {
	Pattern string
	// Location of the schema holding the pattern.
	Location string
	Err      error
}

// Error implements the error interface.
func (e *RegexCompileError) Error() string {
	return fmt.Sprintf("%s: cannot compile regular expression %q: %v", e.Location, e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *RegexCompileError) Unwrap() error { return e.Err }

// InvalidJSON reports input text that is not well-formed JSON.
// The engine itself only sees parsed values; this is used by
// the entry points that accept text.
type InvalidJSON struct {
	// Source names the input, such as a file name or URI.
	Source string
	Err    error
}

// Error implements the error interface.
func (e *InvalidJSON) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid JSON: %v", e.Err)
	}
	return fmt.Sprintf("%s: invalid JSON: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvalidJSON) Unwrap() error { return e.Err }

// IsFatal reports whether err belongs to the fatal taxonomy.
func IsFatal(err error) bool {
	var (
		sle *SchemaLoadError
		ur  *UnresolvedReference
		rce *RegexCompileError
		ij  *InvalidJSON
	)
	return errors.As(err, &sle) || errors.As(err, &ur) || errors.As(err, &rce) ||
		errors.As(err, &ij) || errors.Is(err, ErrRecursionTooDeep)
}
