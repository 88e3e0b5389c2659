// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"github.com/dlclark/regexp2"
	"github.com/google/uuid"
)

// checkUUID accepts only the hyphenated 36 character RFC 4122 form;
// uuid.Parse also takes urn and brace forms.
func checkUUID(s string) error {
	if len(s) != 36 {
		return invalid("uuid", s, "wrong length")
	}
	if _, err := uuid.Parse(s); err != nil {
		return invalid("uuid", s, err.Error())
	}
	return nil
}

// checkRegex requires an ECMA-262 regular expression.
func checkRegex(s string) error {
	if _, err := regexp2.Compile(s, regexp2.ECMAScript); err != nil {
		return invalid("regex", s, err.Error())
	}
	return nil
}

var (
	jsonPointer         = regexp2.MustCompile(`^(?:/(?:[^/~]|~[01])*)*$`, regexp2.ECMAScript)
	relativeJSONPointer = regexp2.MustCompile(`^(?:0|[1-9][0-9]*)(?:#|(?:/(?:[^/~]|~[01])*)*)$`, regexp2.ECMAScript)
)

func checkJSONPointer(s string) error {
	if !match(jsonPointer, s) {
		return invalid("json-pointer", s)
	}
	return nil
}

func checkRelativeJSONPointer(s string) error {
	if !match(relativeJSONPointer, s) {
		return invalid("relative-json-pointer", s)
	}
	return nil
}
