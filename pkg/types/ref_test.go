// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altshiftab/jsonvalidate/pkg/types"
)

func TestRefTargetResolvesOnce(t *testing.T) {
	want := &types.Schema{Pointer: "/x"}
	var calls atomic.Int32
	rt := types.NewRefTarget(func() (*types.Schema, error) {
		calls.Add(1)
		return want, nil
	})
	assert.Zero(t, calls.Load())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := rt.Schema()
			assert.NoError(t, err)
			assert.Same(t, want, got)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestRefTargetKeepsError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	rt := types.NewRefTarget(func() (*types.Schema, error) {
		calls++
		return nil, boom
	})
	for range 2 {
		s, err := rt.Schema()
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, s)
	}
	assert.Equal(t, 1, calls)
}
