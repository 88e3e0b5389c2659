// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Parse decodes a single JSON document.
// Trailing data after the value is an error,
// as is a string or member name that is not valid UTF-8.
func Parse(data []byte) (Value, error) {
	if err := jx.DecodeBytes(data).Validate(); err != nil {
		return Value{}, errors.Wrap(err, "invalid json")
	}
	v, err := decode(jx.DecodeBytes(data))
	if err != nil {
		return Value{}, errors.Wrap(err, "decode json")
	}
	return v, nil
}

// MustParse is like [Parse] but panics on error.
// It is intended for tests and package-level fixtures.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("jsonvalue.MustParse(%q): %v", s, err))
	}
	return v
}

var errInvalidUTF8 = errors.New("string is not valid UTF-8")

// decode reads the next value from d.
func decode(d *jx.Decoder) (Value, error) {
	switch tt := d.Next(); tt {
	case jx.Null:
		if err := d.Null(); err != nil {
			return Value{}, err
		}
		return Null(), nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return Value{}, err
		}
		return Number(n.String())
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return Value{}, err
		}
		if !utf8.ValidString(s) {
			return Value{}, errInvalidUTF8
		}
		return String(s), nil
	case jx.Array:
		items := []Value{}
		err := d.Arr(func(d *jx.Decoder) error {
			item, err := decode(d)
			if err != nil {
				return errors.Wrapf(err, "[%d]", len(items))
			}
			items = append(items, item)
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		return Array(items...), nil
	case jx.Object:
		obj := &Object{}
		err := d.Obj(func(d *jx.Decoder, key string) error {
			if !utf8.ValidString(key) {
				return errors.Wrapf(errInvalidUTF8, "member name %q", key)
			}
			val, err := decode(d)
			if err != nil {
				return errors.Wrapf(err, "%q", key)
			}
			obj.Set(key, val)
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		return ObjectOf(obj), nil
	default:
		return Value{}, errors.Errorf("unexpected %s", tt)
	}
}

// FromAny converts a Go value of the kind produced by [encoding/json]
// into a Value. Accepted types are nil, bool, string, float64,
// json.Number, Go integer types, []any, and map[string]any.
// Map members are ordered by key, since Go maps carry no order.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return Number(string(x))
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case int32:
		return Int(int64(x)), nil
	case uint64:
		return Number(strconv.FormatUint(x, 10))
	case []any:
		items := make([]Value, len(x))
		for i, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, errors.Wrapf(err, "[%d]", i)
			}
			items[i] = v
		}
		return Array(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		obj := &Object{}
		for _, k := range keys {
			v, err := FromAny(x[k])
			if err != nil {
				return Value{}, errors.Wrapf(err, "%q", k)
			}
			obj.Set(k, v)
		}
		return ObjectOf(obj), nil
	default:
		return Value{}, errors.Errorf("unsupported Go type %s", reflect.TypeOf(x))
	}
}

// fromFloat converts a float64 to a number.
// Floats with no fractional part keep the integer kind,
// matching how they would have been written in JSON.
func fromFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, errors.Errorf("%v is not a JSON number", f)
	}
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}
