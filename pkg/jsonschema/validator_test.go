// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

func newCountingValidator(t *testing.T, calls *atomic.Int32) *Validator {
	t.Helper()
	v := NewValidator(&ValidatorOptions{
		Options: Options{
			Fetch: func(_ context.Context, u string) (jsonvalue.Value, error) {
				calls.Add(1)
				return jsonvalue.MustParse(`{"$defs":{"pos":{"exclusiveMinimum":0}}}`), nil
			},
		},
		CacheSize: 16,
	})
	t.Cleanup(v.Close)
	return v
}

func TestValidatorCachesCompiledSchemas(t *testing.T) {
	var calls atomic.Int32
	v := newCountingValidator(t, &calls)

	schema := jsonvalue.MustParse(`{"$ref":"http://example.com/defs.json#/$defs/pos"}`)
	s1, err := v.Compile(schema)
	require.NoError(t, err)
	// An equal document parsed separately.
	s2, err := v.Compile(jsonvalue.MustParse(`{"$ref":"http://example.com/defs.json#/$defs/pos"}`))
	require.NoError(t, err)
	assert.Same(t, s1, s2)
	assert.Equal(t, 1, v.Len())
	assert.Zero(t, calls.Load())

	ok, err := v.Validate(jsonvalue.MustParse(`3`), schema)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = v.Validate(jsonvalue.MustParse(`0`), schema)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int32(1), calls.Load())
}

func TestValidatorSharesDocuments(t *testing.T) {
	var calls atomic.Int32
	v := newCountingValidator(t, &calls)

	for _, tt := range []struct{ schema, instance string }{
		{`{"$ref":"http://example.com/defs.json#/$defs/pos"}`, `1`},
		{`{"items":{"$ref":"http://example.com/defs.json#/$defs/pos"}}`, `[1]`},
		{`{"properties":{"n":{"$ref":"http://example.com/defs.json#/$defs/pos"}}}`, `{"n":1}`},
	} {
		ok, err := v.Validate(jsonvalue.MustParse(tt.instance), jsonvalue.MustParse(tt.schema))
		require.NoError(t, err)
		assert.True(t, ok, tt.schema)
	}
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, int32(1), calls.Load())

	v.Reset()
	assert.Equal(t, 0, v.Len())
	ok, err := v.Validate(jsonvalue.MustParse(`1`), jsonvalue.MustParse(`{"$ref":"http://example.com/defs.json#/$defs/pos"}`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestValidatorConcurrent(t *testing.T) {
	var calls atomic.Int32
	v := newCountingValidator(t, &calls)
	schema := jsonvalue.MustParse(`{"type":"array","items":{"$ref":"http://example.com/defs.json#/$defs/pos"}}`)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := v.Validate(jsonvalue.MustParse(`[1,2,3]`), schema)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestValidatorErrorsNotCached(t *testing.T) {
	v := NewValidator(nil)
	defer v.Close()
	schema := jsonvalue.MustParse(`{"type":7}`)
	_, err := v.Compile(schema)
	require.Error(t, err)
	assert.Equal(t, 0, v.Len())
	_, err = v.Validate(jsonvalue.MustParse(`1`), schema)
	var sle *SchemaLoadError
	assert.ErrorAs(t, err, &sle)
}

func TestValidatorRetriesUnresolved(t *testing.T) {
	var calls atomic.Int32
	v := NewValidator(&ValidatorOptions{
		Options: Options{
			Fetch: func(_ context.Context, u string) (jsonvalue.Value, error) {
				if calls.Add(1) == 1 {
					return jsonvalue.Value{}, errors.New("unavailable")
				}
				return jsonvalue.MustParse(`{"type":"integer"}`), nil
			},
		},
	})
	defer v.Close()
	schema := jsonvalue.MustParse(`{"$ref":"http://example.com/int.json"}`)

	_, err := v.Validate(jsonvalue.MustParse(`1`), schema)
	var ur *UnresolvedReference
	require.ErrorAs(t, err, &ur)
	assert.Equal(t, 0, v.Len())

	ok, err := v.Validate(jsonvalue.MustParse(`1`), schema)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, int32(2), calls.Load())
}
