// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/altshiftab/jsonvalidate/pkg/jsonvalue"

// BoolKeyword is not a real keyword, but is used to represent the
// special schema values "true" and "false".
var BoolKeyword = Keyword{
	Name:     "$bool",
	ArgType:  ArgTypeBool,
	Validate: validateBool,
}

// validateBool handles the special $bool keyword,
// which does not actually appear in schema definitions.
func validateBool(arg PartValue, instance jsonvalue.Value, state *ValidationState) (bool, error) {
	return bool(arg.(PartBool)), nil
}

// NewBoolSchema returns the true or false schema.
func NewBoolSchema(b bool, res *Resource, ptr string) *Schema {
	return &Schema{
		Parts:    []Part{MakePart(&BoolKeyword, PartBool(b))},
		Resource: res,
		Pointer:  ptr,
	}
}
