// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonpointer implements JSON pointers (RFC 6901)
// as they appear in URI fragments of schema references.
package jsonpointer

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

// Parse splits a pointer into its unescaped reference tokens.
// The empty pointer refers to the whole document and has no tokens.
// Otherwise the pointer must start with '/'.
// Each token has "~1" replaced by "/", then "~0" by "~",
// and is then percent-decoded, since pointers here come from URI fragments.
// An empty token is a legal key.
func Parse(ptr string) ([]string, error) {
	if ptr == "" {
		return nil, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("json pointer %q does not start with '/'", ptr)
	}
	toks := strings.Split(ptr[1:], "/")
	for i, tok := range toks {
		tok, err := decodeToken(tok)
		if err != nil {
			return nil, fmt.Errorf("json pointer %q: %v", ptr, err)
		}
		toks[i] = tok
	}
	return toks, nil
}

// decodeToken unmangles a token in a JSON pointer.
func decodeToken(tok string) (string, error) {
	for i := 0; i < len(tok); i++ {
		if tok[i] == '~' && (i+1 == len(tok) || (tok[i+1] != '0' && tok[i+1] != '1')) {
			return "", fmt.Errorf("invalid escape in token %q", tok)
		}
	}
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return url.PathUnescape(tok)
}

// Escape escapes a single reference token.
func Escape(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

// Format joins unescaped tokens into a pointer.
// The result is not percent-encoded.
func Format(toks []string) string {
	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteByte('/')
		sb.WriteString(Escape(tok))
	}
	return sb.String()
}

// Append returns the pointer ptr extended by the given tokens.
func Append(ptr string, toks ...string) string {
	return ptr + Format(toks)
}

// Deref returns the value within root to which ptr refers.
func Deref(root jsonvalue.Value, ptr string) (jsonvalue.Value, error) {
	toks, err := Parse(ptr)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	return DerefTokens(root, toks)
}

// DerefTokens is like [Deref] but takes already parsed tokens.
func DerefTokens(root jsonvalue.Value, toks []string) (jsonvalue.Value, error) {
	v := root
	for i, tok := range toks {
		switch v.Kind() {
		case jsonvalue.KindObject:
			next, ok := v.Get(tok)
			if !ok {
				return jsonvalue.Value{}, fmt.Errorf("when dereferencing pointer %q map key %q not present", Format(toks), tok)
			}
			v = next
		case jsonvalue.KindArray:
			idx, err := arrayIndex(tok)
			if err != nil {
				return jsonvalue.Value{}, fmt.Errorf("when dereferencing pointer %q got token %q, expected array index", Format(toks), tok)
			}
			items := v.Items()
			if idx >= len(items) {
				return jsonvalue.Value{}, fmt.Errorf("when dereferencing pointer %q array index %d out of range (length %d)", Format(toks), idx, len(items))
			}
			v = items[idx]
		default:
			return jsonvalue.Value{}, fmt.Errorf("when dereferencing pointer %q token %d reaches a %s", Format(toks), i, v.Kind())
		}
	}
	return v, nil
}

// arrayIndex parses an array index token.
// Leading zeros and signs are not permitted.
func arrayIndex(tok string) (int, error) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, fmt.Errorf("bad index %q", tok)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("bad index %q", tok)
		}
	}
	return strconv.Atoi(tok)
}
