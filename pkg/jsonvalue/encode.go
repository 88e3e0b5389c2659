// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"github.com/go-faster/jx"
)

// MarshalJSON encodes v as compact JSON.
// Object members keep their order and numbers keep their spelling.
// This implements [encoding/json.Marshaler].
func (v Value) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	v.encode(&e)
	return e.Bytes(), nil
}

// UnmarshalJSON decodes JSON text into v.
// This implements [encoding/json.Unmarshaler].
func (v *Value) UnmarshalJSON(data []byte) error {
	nv, err := Parse(data)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

func (v Value) encode(e *jx.Encoder) {
	switch v.kind {
	case KindNull:
		e.Null()
	case KindBool:
		e.Bool(v.b)
	case KindInt, KindNumber:
		e.Num(jx.Num(v.s))
	case KindString:
		e.Str(v.s)
	case KindArray:
		e.Arr(func(e *jx.Encoder) {
			for _, item := range v.arr {
				item.encode(e)
			}
		})
	case KindObject:
		e.Obj(func(e *jx.Encoder) {
			for _, m := range v.obj.members {
				e.Field(m.Key, func(e *jx.Encoder) {
					m.Value.encode(e)
				})
			}
		})
	}
}
