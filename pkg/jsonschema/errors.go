// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import "github.com/altshiftab/jsonvalidate/internal/validerr"

// The fatal errors. Use errors.As to classify an error
// returned by this package.
type (
	// SchemaLoadError reports a malformed schema document.
	SchemaLoadError = validerr.SchemaLoadError
	// UnresolvedReference reports a reference with no target.
	UnresolvedReference = validerr.UnresolvedReference
	// RegexCompileError reports a pattern that is not a valid
	// ECMA-262 regular expression.
	RegexCompileError = validerr.RegexCompileError
	// InvalidJSON reports input that is not JSON.
	InvalidJSON = validerr.InvalidJSON
)

// ErrRecursionTooDeep is returned for a schema whose evaluation
// nests without bound, such as {"$ref": "#"}.
var ErrRecursionTooDeep = validerr.ErrRecursionTooDeep

// IsFatal reports whether err is one of the errors above.
func IsFatal(err error) bool {
	return validerr.IsFatal(err)
}
