// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether two values are equal as JSON.
// Numbers compare mathematically regardless of spelling, so 1, 1.0
// and 1e0 are all equal. Booleans never equal numbers.
// Object member order does not matter.
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		return a.num.Cmp(b.num) == 0
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for k, av := range a.obj.All() {
			bv, ok := b.obj.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Type tags written ahead of each hashed value.
// Both number kinds share a tag so that 1 and 1.0 collide.
const (
	tagNull byte = iota
	tagFalse
	tagTrue
	tagNumber
	tagString
	tagArray
	tagObject
)

// Hash returns a hash of v consistent with [Equal]:
// equal values have equal hashes.
func (v Value) Hash() uint64 {
	var d xxhash.Digest
	d.Reset()
	v.hash(&d)
	return d.Sum64()
}

func (v Value) hash(d *xxhash.Digest) {
	var buf [9]byte
	switch v.kind {
	case KindNull:
		d.Write([]byte{tagNull})
	case KindBool:
		if v.b {
			d.Write([]byte{tagTrue})
		} else {
			d.Write([]byte{tagFalse})
		}
	case KindInt, KindNumber:
		d.Write([]byte{tagNumber})
		d.WriteString(v.num.RatString())
	case KindString:
		buf[0] = tagString
		binary.LittleEndian.PutUint64(buf[1:], uint64(len(v.s)))
		d.Write(buf[:])
		d.WriteString(v.s)
	case KindArray:
		buf[0] = tagArray
		binary.LittleEndian.PutUint64(buf[1:], uint64(len(v.arr)))
		d.Write(buf[:])
		for _, item := range v.arr {
			item.hash(d)
		}
	case KindObject:
		// Members are combined by addition so that order is irrelevant.
		var sum uint64
		for k, mv := range v.obj.All() {
			var md xxhash.Digest
			md.Reset()
			String(k).hash(&md)
			mv.hash(&md)
			sum += md.Sum64()
		}
		buf[0] = tagObject
		binary.LittleEndian.PutUint64(buf[1:], sum)
		d.Write(buf[:])
	}
}
