// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format defines checkers for the values of the format keyword.
//
// By default the format keyword is an annotation and always matches.
// When format assertion is enabled the validator looks the format
// name up in a map of checkers; [Checkers] returns the map of the
// formats defined by draft 2020-12.
// Formats that are not in the map always match.
package format

import (
	"fmt"
	"maps"
)

// Checker reports whether a string is in a format.
// It returns a non-nil error describing the problem if it is not.
type Checker = func(string) error

// Error is the error returned by the checkers of this package.
type Error struct {
	Format string // format name
	Value  string // the rejected string
	Reason string // optional detail
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%q is not a valid %s: %s", e.Value, e.Format, e.Reason)
	}
	return fmt.Sprintf("%q is not a valid %s", e.Value, e.Format)
}

// invalid returns an *Error for format name and value s.
func invalid(name, s string, reason ...string) error {
	e := &Error{Format: name, Value: s}
	if len(reason) > 0 {
		e.Reason = reason[0]
	}
	return e
}

// boolChecker returns a Checker for a predicate.
func boolChecker(name string, valid func(string) bool) Checker {
	return func(s string) error {
		if !valid(s) {
			return invalid(name, s)
		}
		return nil
	}
}

var checkers = map[string]Checker{
	"date":                  boolChecker("date", isValidDate),
	"date-time":             boolChecker("date-time", isValidDateTime),
	"duration":              boolChecker("duration", isValidDuration),
	"email":                 boolChecker("email", func(s string) bool { return isValidEmail(s, false) }),
	"hostname":              boolChecker("hostname", func(s string) bool { return isValidHostname(s, false) }),
	"idn-email":             boolChecker("idn-email", func(s string) bool { return isValidEmail(s, true) }),
	"idn-hostname":          boolChecker("idn-hostname", func(s string) bool { return isValidHostname(s, true) }),
	"ipv4":                  checkIPv4,
	"ipv6":                  checkIPv6,
	"iri":                   uriChecker("iri", true, false),
	"iri-reference":         uriChecker("iri-reference", true, true),
	"json-pointer":          checkJSONPointer,
	"regex":                 checkRegex,
	"relative-json-pointer": checkRelativeJSONPointer,
	"time":                  boolChecker("time", isValidTime),
	"uri":                   uriChecker("uri", false, false),
	"uri-reference":         uriChecker("uri-reference", false, true),
	"uri-template":          checkURITemplate,
	"uuid":                  checkUUID,
}

// Checkers returns a new map holding a checker for each
// format defined by draft 2020-12.
// The caller may add to or replace entries in the map.
func Checkers() map[string]Checker {
	return maps.Clone(checkers)
}

// Check checks s against the named format.
// Unknown formats always pass.
func Check(name, s string) error {
	c, ok := checkers[name]
	if !ok {
		return nil
	}
	return c(s)
}
