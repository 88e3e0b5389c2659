// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schemacache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

func TestCacheRetrieveOnce(t *testing.T) {
	var c Cache
	calls := 0
	fetch := func(uri string) (jsonvalue.Value, error) {
		calls++
		if uri == "urn:bad" {
			return jsonvalue.Value{}, errors.New("no such document")
		}
		return jsonvalue.String(uri), nil
	}

	for range 3 {
		v, err := c.Retrieve("urn:good", fetch)
		require.NoError(t, err)
		s, _ := v.AsString()
		assert.Equal(t, "urn:good", s)

		_, err = c.Retrieve("urn:bad", fetch)
		assert.Error(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestCacheStoreKeepsFirst(t *testing.T) {
	var c Cache
	c.Store("u", Document{Value: jsonvalue.Int(1)})
	got := c.Store("u", Document{Value: jsonvalue.Int(2)})
	assert.True(t, jsonvalue.Equal(jsonvalue.Int(1), got.Value))
}

func TestConcurrentCacheFetch(t *testing.T) {
	cc := NewConcurrent[int](16, 0)
	defer cc.Stop()

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func() (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := cc.Fetch("k", fn)
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	close(release)
	wg.Wait()

	v, hit, err := cc.Fetch("k", fn)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 42, v)
	assert.LessOrEqual(t, calls.Load(), int32(8))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestConcurrentCacheErrorNotCached(t *testing.T) {
	cc := NewConcurrent[string](16, 0)
	defer cc.Stop()

	_, _, err := cc.Fetch("k", func() (string, error) { return "", errors.New("boom") })
	require.Error(t, err)
	_, ok := cc.Load("k")
	assert.False(t, ok)

	v, hit, err := cc.Fetch("k", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", v)
}

func TestConcurrentCacheDelete(t *testing.T) {
	cc := NewConcurrent[int](16, 0)
	defer cc.Stop()

	cc.Store("a", 1)
	cc.Delete("a")
	cc.Delete("missing")
	_, ok := cc.Load("a")
	assert.False(t, ok)

	v, hit, err := cc.Fetch("a", func() (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, v)
}
