// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strconv"
	"time"

	"github.com/dlclark/regexp2"
)

// All patterns use ECMAScript mode so that \d only matches ASCII digits.
const reOpts = regexp2.ECMAScript | regexp2.IgnoreCase

// fullTime is RFC 3339 full-time: partial-time time-offset.
var fullTime = regexp2.MustCompile(
	`^(\d{2}):(\d{2}):(\d{2})(?:\.\d+)?(?:(z)|([+-])(\d{2}):(\d{2}))$`, reOpts)

// duration is the RFC 3339 appendix A duration grammar.
// Weeks do not combine with other units, and each unit may only
// be followed by the next smaller one.
var duration = regexp2.MustCompile(`^p(?:`+
	`\d+w`+
	`|(?:\d+y(?:\d+m(?:\d+d)?)?|\d+m(?:\d+d)?|\d+d)(?:t(?:\d+h(?:\d+m(?:\d+s)?)?|\d+m(?:\d+s)?|\d+s))?`+
	`|t(?:\d+h(?:\d+m(?:\d+s)?)?|\d+m(?:\d+s)?|\d+s)`+
	`)$`, reOpts)

// match reports whether re matches s.
// A regexp2 match error, which only happens on timeout, is a mismatch.
func match(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// isValidDate reports whether s is an RFC 3339 full-date.
func isValidDate(s string) bool {
	if len(s) != len(time.DateOnly) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// isValidDateTime reports whether s is an RFC 3339 date-time.
func isValidDateTime(s string) bool {
	const n = len(time.DateOnly)
	if len(s) <= n || (s[n] != 'T' && s[n] != 't') {
		return false
	}
	return isValidDate(s[:n]) && isValidTime(s[n+1:])
}

// isValidTime reports whether s is an RFC 3339 full-time.
// A leap second is only accepted at 23:59:60 UTC.
func isValidTime(s string) bool {
	m, err := fullTime.FindStringMatch(s)
	if err != nil || m == nil {
		return false
	}
	num := func(i int) int {
		n, _ := strconv.Atoi(m.GroupByNumber(i).String())
		return n
	}
	hour, minute, second := num(1), num(2), num(3)
	if hour > 23 || minute > 59 || second > 60 {
		return false
	}
	var offHour, offMinute int
	if m.GroupByNumber(4).Length == 0 {
		offHour, offMinute = num(6), num(7)
		if offHour > 23 || offMinute > 59 {
			return false
		}
		if m.GroupByNumber(5).String() == "-" {
			offHour, offMinute = -offHour, -offMinute
		}
	}
	if second < 60 {
		return true
	}
	// Convert to UTC minutes since midnight.
	utc := ((hour-offHour)*60 + minute - offMinute + 24*60) % (24 * 60)
	return utc == 23*60+59
}

// isValidDuration reports whether s is an RFC 3339 duration.
func isValidDuration(s string) bool {
	return match(duration, s)
}
