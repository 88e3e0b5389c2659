// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uri resolves and normalizes the URIs used to
// identify schema resources.
package uri

import (
	"fmt"
	"net/url"
	"strings"
)

// Parse parses s, which may be a relative reference.
func Parse(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("malformed URI %q: %v", s, err)
	}
	return u, nil
}

// Normalize returns the normalized form of an absolute URI.
// The scheme and host are lower-cased and an empty fragment is dropped.
func Normalize(s string) (string, error) {
	u, err := Parse(s)
	if err != nil {
		return "", err
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("URI %q is not absolute", s)
	}
	return normalized(u), nil
}

// normalized returns the string form of a parsed absolute URI.
func normalized(u *url.URL) string {
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Fragment == "" {
		u.RawFragment = ""
	}
	return u.String()
}

// Resolve resolves ref against the absolute URI base,
// following the relative-reference algorithm of RFC 3986 section 5.
// The result is normalized.
func Resolve(base, ref string) (string, error) {
	r, err := Parse(ref)
	if err != nil {
		return "", err
	}
	if r.IsAbs() {
		return normalized(r), nil
	}
	b, err := Parse(base)
	if err != nil {
		return "", err
	}
	if !b.IsAbs() {
		return "", fmt.Errorf("base URI %q is not absolute", base)
	}
	if b.Opaque != "" && r.Host == "" && r.Path != "" && !strings.HasPrefix(r.Path, "/") {
		// net/url does not merge paths against an opaque base
		// such as "urn:example:a"; do it here.
		dir := b.Opaque[:strings.LastIndex(b.Opaque, "/")+1]
		if dir == "" {
			dir = b.Opaque[:strings.LastIndex(b.Opaque, ":")+1]
		}
		res := &url.URL{
			Scheme:      b.Scheme,
			Opaque:      dir + r.EscapedPath(),
			RawQuery:    r.RawQuery,
			Fragment:    r.Fragment,
			RawFragment: r.RawFragment,
		}
		return normalized(res), nil
	}
	return normalized(b.ResolveReference(r)), nil
}

// Split splits an absolute URI into the URI without its fragment
// and the fragment. The fragment is returned still percent-encoded.
func Split(s string) (resource, fragment string) {
	resource, fragment, _ = strings.Cut(s, "#")
	return resource, fragment
}

// Join appends a fragment to a resource URI.
func Join(resource, fragment string) string {
	if fragment == "" {
		return resource
	}
	return resource + "#" + fragment
}

// IsPointer reports whether a fragment is a JSON pointer.
// The empty fragment is the pointer to the document root.
func IsPointer(fragment string) bool {
	return fragment == "" || fragment[0] == '/'
}

// HasFragment reports whether the reference s has a non-empty fragment.
func HasFragment(s string) bool {
	_, frag, _ := strings.Cut(s, "#")
	return frag != ""
}

// Anchor returns the anchor name held by a fragment
// that is not a JSON pointer, percent-decoded.
func Anchor(fragment string) (string, error) {
	name, err := url.PathUnescape(fragment)
	if err != nil {
		return "", fmt.Errorf("malformed fragment %q: %v", fragment, err)
	}
	return name, nil
}
