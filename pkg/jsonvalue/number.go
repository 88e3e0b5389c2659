// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// maxExponent bounds the decimal exponent of a number literal.
// big.Rat materializes 10^exp, so an unbounded exponent
// would let a short document consume arbitrary memory.
const maxExponent = 100000

// validNumber reports whether s follows the JSON number grammar.
func validNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseRat converts a valid JSON number literal to an exact rational.
func parseRat(lit string) (*big.Rat, error) {
	if i := strings.IndexAny(lit, "eE"); i >= 0 {
		exp, err := strconv.Atoi(strings.TrimPrefix(lit[i+1:], "+"))
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return nil, errors.Errorf("number %q: exponent out of range", lit)
		}
	}
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, errors.Errorf("number %q: cannot convert", lit)
	}
	return r, nil
}

// CompareNumbers compares two numbers mathematically.
// Both values must be numbers.
func CompareNumbers(a, b Value) int {
	return a.num.Cmp(b.num)
}

// IsMultipleOf reports whether the number v is an integer multiple of
// the number m. m must be positive.
func IsMultipleOf(v, m Value) bool {
	q := new(big.Rat).Quo(v.num, m.num)
	return q.IsInt()
}
