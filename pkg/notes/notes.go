// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notes defines the annotations passed between keywords
// while a schema object is evaluated against one instance.
//
// The unevaluatedProperties and unevaluatedItems keywords only
// apply to the members and elements that no other applicator at the
// same schema level has evaluated. Notes record that set.
// A subschema's notes are merged into its parent's only when the
// subschema validates, so a branch that failed, or that belongs
// to a cousin schema, never leaks into a sibling's view.
//
// People who are only interested in validating JSON values
// do not need to use this package.
package notes

import (
	"fmt"
	"maps"
	"math/bits"
	"slices"
	"strings"
)

// Notes is the annotation record for one evaluation of one schema
// object against one instance.
//
// The zero value of Notes is directly usable.
// Notes may not be used concurrently by multiple goroutines.
type Notes struct {
	props    map[string]struct{}
	allProps bool

	items    bitset
	allItems bool

	// contains holds the indexes matched by a sibling "contains".
	// It is local to the schema object and is never merged.
	contains    []int
	hasContains bool
}

// EvaluateProperty records that an object member was evaluated.
func (n *Notes) EvaluateProperty(name string) {
	if n.allProps {
		return
	}
	if n.props == nil {
		n.props = make(map[string]struct{})
	}
	n.props[name] = struct{}{}
}

// EvaluateAllProperties records that every member was evaluated.
func (n *Notes) EvaluateAllProperties() {
	n.allProps = true
	n.props = nil
}

// PropertyEvaluated reports whether a member was evaluated.
func (n *Notes) PropertyEvaluated(name string) bool {
	if n.allProps {
		return true
	}
	_, ok := n.props[name]
	return ok
}

// EvaluateItem records that an array element was evaluated.
func (n *Notes) EvaluateItem(i int) {
	if !n.allItems {
		n.items.set(i)
	}
}

// EvaluateItems records that elements [from, to) were evaluated.
func (n *Notes) EvaluateItems(from, to int) {
	for i := from; i < to; i++ {
		n.EvaluateItem(i)
	}
}

// EvaluateAllItems records that every element was evaluated.
func (n *Notes) EvaluateAllItems() {
	n.allItems = true
	n.items = nil
}

// ItemEvaluated reports whether an array element was evaluated.
func (n *Notes) ItemEvaluated(i int) bool {
	return n.allItems || n.items.has(i)
}

// SetContains records the indexes matched by "contains".
func (n *Notes) SetContains(matches []int) {
	n.contains = matches
	n.hasContains = true
}

// Contains returns the indexes matched by "contains",
// and reports whether "contains" ran at all.
func (n *Notes) Contains() ([]int, bool) {
	return n.contains, n.hasContains
}

// AddNotes merges the evaluated properties and items of each
// element of ns into n. Contains matches are not merged.
func (n *Notes) AddNotes(ns ...*Notes) {
	for _, n2 := range ns {
		if n2 == nil {
			continue
		}
		if n2.allProps {
			n.EvaluateAllProperties()
		} else {
			for name := range n2.props {
				n.EvaluateProperty(name)
			}
		}
		if n2.allItems {
			n.EvaluateAllItems()
		} else if !n.allItems {
			n.items.union(n2.items)
		}
	}
}

// Clear clears all current notes.
func (n *Notes) Clear() {
	*n = Notes{}
}

// IsEmpty reports whether nothing has been recorded.
func (n *Notes) IsEmpty() bool {
	return !n.allProps && len(n.props) == 0 && !n.allItems && n.items.empty() && !n.hasContains
}

// String returns a printable Notes.
func (n *Notes) String() string {
	var parts []string
	if n.allProps {
		parts = append(parts, "properties:*")
	} else if len(n.props) > 0 {
		parts = append(parts, fmt.Sprintf("properties:%q", slices.Sorted(maps.Keys(n.props))))
	}
	if n.allItems {
		parts = append(parts, "items:*")
	} else if !n.items.empty() {
		parts = append(parts, fmt.Sprintf("items:%v", n.items.indexes()))
	}
	if n.hasContains {
		parts = append(parts, fmt.Sprintf("contains:%v", n.contains))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// bitset is a set of small non-negative integers.
type bitset []uint64

func (b *bitset) set(i int) {
	w := i / 64
	if w >= len(*b) {
		*b = append(*b, make([]uint64, w+1-len(*b))...)
	}
	(*b)[w] |= 1 << (uint(i) % 64)
}

func (b bitset) has(i int) bool {
	w := i / 64
	return w < len(b) && b[w]&(1<<(uint(i)%64)) != 0
}

func (b *bitset) union(o bitset) {
	if len(o) > len(*b) {
		*b = append(*b, make([]uint64, len(o)-len(*b))...)
	}
	for i, w := range o {
		(*b)[i] |= w
	}
}

func (b bitset) empty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

func (b bitset) indexes() []int {
	var r []int
	for wi, w := range b {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			r = append(r, wi*64+tz)
			w &^= 1 << uint(tz)
		}
	}
	return r
}
