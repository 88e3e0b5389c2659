// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft202012

import (
	"github.com/altshiftab/jsonvalidate/internal/validerr"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
	"github.com/altshiftab/jsonvalidate/pkg/types"
)

// validateRef validates a $ref keyword.
// The target is evaluated in place: its annotations
// belong to the referring schema.
func validateRef(arg types.PartRef, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	target, err := refTarget(arg.Ref, arg.Target, state)
	if err != nil {
		return false, err
	}
	return target.ValidateInPlaceSchema(instance, state)
}

// validateDynamicRef validates a $dynamicRef keyword.
func validateDynamicRef(arg types.PartDynamicRef, instance jsonvalue.Value, state *types.ValidationState) (bool, error) {
	target, err := refTarget(arg.Ref, arg.Target, state)
	if err != nil {
		return false, err
	}
	return resolveDynamicRef(arg.Anchor, target, state).ValidateInPlaceSchema(instance, state)
}

// refTarget returns the target of a reference, looking it up
// if this is its first evaluation.
func refTarget(ref string, t *types.RefTarget, state *types.ValidationState) (*types.Schema, error) {
	if t == nil {
		// A schema that was not built by Load.
		return nil, &validerr.UnresolvedReference{Ref: ref, From: state.Schema.Location()}
	}
	return t.Schema()
}

// resolveDynamicRef returns the schema a $dynamicRef refers to
// in the current dynamic scope. If the reference bookends,
// that is the dynamic anchor of the same name declared by the
// outermost resource in scope; otherwise it is the static target.
func resolveDynamicRef(anchor string, target *types.Schema, state *types.ValidationState) *types.Schema {
	if !bookends(anchor, target) {
		return target
	}
	for res := range state.Scope.OldestFirst() {
		if s, ok := res.DynamicAnchors[anchor]; ok {
			return s
		}
	}
	return target
}
