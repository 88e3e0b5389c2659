// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonvalue is the JSON data model used by the validator.
//
// Unlike the values produced by [encoding/json], a [Value] keeps the
// insertion order of object members and remembers whether a number
// was written as an integer or with a fraction or exponent.
// Numbers are held exactly, as rationals, so comparison never
// loses precision.
package jsonvalue

import (
	"fmt"
	"iter"
	"math/big"
	"strings"
)

// Kind is the kind of a JSON value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt    // a number written without fraction or exponent
	KindNumber // a number written with a fraction or exponent
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindInt:    "integer",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String returns the JSON schema type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Value is an immutable JSON value.
// The zero Value is JSON null.
type Value struct {
	kind Kind
	b    bool
	s    string   // string contents, or the literal of a number
	num  *big.Rat // numbers only
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns a JSON integer.
func Int(i int64) Value {
	return Value{kind: KindInt, s: fmt.Sprint(i), num: new(big.Rat).SetInt64(i)}
}

// Number returns the JSON number spelled by lit.
// lit must follow the JSON number grammar.
// The kind is [KindInt] if lit has neither a fraction nor an exponent.
func Number(lit string) (Value, error) {
	if !validNumber(lit) {
		return Value{}, fmt.Errorf("jsonvalue: %q is not a JSON number", lit)
	}
	r, err := parseRat(lit)
	if err != nil {
		return Value{}, err
	}
	kind := KindInt
	if strings.ContainsAny(lit, ".eE") {
		kind = KindNumber
	}
	return Value{kind: kind, s: lit, num: r}, nil
}

// MustNumber is like [Number] but panics on a malformed literal.
func MustNumber(lit string) Value {
	v, err := Number(lit)
	if err != nil {
		panic(err)
	}
	return v
}

// Array returns a JSON array holding items.
// The slice is retained; the caller must not modify it afterward.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// ObjectOf returns a JSON object value for o.
// A nil o is the empty object.
func ObjectOf(o *Object) Value {
	if o == nil {
		o = &Object{}
	}
	return Value{kind: KindObject, obj: o}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNumber reports whether v is a number of either kind.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindNumber }

// IsInteger reports whether v is a number with a zero fractional part.
// This is true for 1.0 and 1e2 as well as 1.
func (v Value) IsInteger() bool { return v.IsNumber() && v.num.IsInt() }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Rat returns the exact value of a number.
// The result is shared and must not be modified.
// It returns nil if v is not a number.
func (v Value) Rat() *big.Rat {
	if !v.IsNumber() {
		return nil
	}
	return v.num
}

// Literal returns the source spelling of a number.
func (v Value) Literal() string {
	if !v.IsNumber() {
		return ""
	}
	return v.s
}

// AsInt returns v as an int64 if it is an integer that fits.
func (v Value) AsInt() (int64, bool) {
	if !v.IsInteger() {
		return 0, false
	}
	n := v.num.Num()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// Items returns the elements of an array, or nil.
// The result must not be modified.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the members of an object, or nil.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Get returns the member of an object with the given key.
// It reports false if v is not an object or has no such member.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.obj.Get(key)
}

// String returns v as compact JSON text.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(data)
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that remembers member insertion order.
// Keys are unique: setting an existing key replaces its value
// and keeps its original position.
// An Object must not be modified once it is part of a [Value]
// that has been shared.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an object holding members, in order.
// A repeated key keeps the last value.
func NewObject(members ...Member) *Object {
	o := &Object{}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Set adds or replaces a member.
func (o *Object) Set(key string, val Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = val
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: val})
}

// Get returns the value of a member.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Has reports whether the object has a member with the given key.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[key]
	return ok
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// All iterates over the members in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, m := range o.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for k := range o.All() {
		keys = append(keys, k)
	}
	return keys
}
