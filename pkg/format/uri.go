// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/netip"
	"net/url"
	"strings"
)

// uriChecker returns a checker for one of the four URI formats.
// An IRI may hold non-ASCII characters. A reference may be relative.
func uriChecker(name string, iri, reference bool) Checker {
	return func(s string) error {
		if reference && strings.HasPrefix(s, `\\`) {
			return invalid(name, s, `leading \\`)
		}
		u, err := url.Parse(s)
		if err != nil {
			return invalid(name, s, err.Error())
		}
		if !reference && !u.IsAbs() {
			return invalid(name, s, "not absolute")
		}
		if reason := uriProblem(u, iri); reason != "" {
			return invalid(name, s, reason)
		}
		return nil
	}
}

// uriProblem reports what url.Parse accepts that RFC 3986 does not.
func uriProblem(u *url.URL, iri bool) string {
	if addr, err := netip.ParseAddr(u.Host); err == nil && addr.Is6() {
		return "IPv6 host not in brackets"
	}
	if strings.Contains(u.Fragment, `\`) {
		return "backslash in fragment"
	}
	if iri {
		return ""
	}
	for _, c := range []byte(u.RawPath) {
		if !isPathChar(c) {
			return "invalid character in path"
		}
	}
	return ""
}

// isPathChar reports whether c may appear unescaped in a URI path.
func isPathChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.~@&=+$/;,()#", c) >= 0
}

// checkURITemplate checks an RFC 6570 URI template.
// Only the expression syntax is checked.
func checkURITemplate(s string) error {
	rest := s
	for {
		open := strings.IndexAny(rest, "{}")
		if open < 0 {
			return nil
		}
		if rest[open] == '}' {
			return invalid("uri-template", s, "unbalanced '}'")
		}
		expr, after, ok := strings.Cut(rest[open+1:], "}")
		if !ok {
			return invalid("uri-template", s, "unterminated expression")
		}
		if !validTemplateExpr(expr) {
			return invalid("uri-template", s, "bad expression {"+expr+"}")
		}
		rest = after
	}
}

// validTemplateExpr checks the text between braces:
// an optional operator and a comma separated list of varspecs.
func validTemplateExpr(expr string) bool {
	if expr != "" && strings.IndexByte("+#./;?&=,!@|", expr[0]) >= 0 {
		expr = expr[1:]
	}
	if expr == "" {
		return false
	}
	for spec := range strings.SplitSeq(expr, ",") {
		name := spec
		if n, ok := strings.CutSuffix(spec, "*"); ok {
			name = n
		} else if n, length, ok := strings.Cut(spec, ":"); ok {
			if length == "" || len(length) > 4 || strings.Trim(length, "0123456789") != "" || length[0] == '0' {
				return false
			}
			name = n
		}
		if name == "" {
			return false
		}
		for _, c := range []byte(name) {
			switch {
			case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_', c == '.', c == '%':
			default:
				return false
			}
		}
	}
	return true
}
