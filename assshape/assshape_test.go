// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assast"
)

func TestDrawingCacheMoveLineClose(t *testing.T) {
	dc := NewDrawingCache(8)
	path := dc.Evaluate("m 0 0 l 10 0 l 10 10 c", 1)
	require.Len(t, path, 4)
	assert.Equal(t, assast.MoveTo, path[0].Kind)
	assert.Equal(t, assast.LineTo, path[1].Kind)
	assert.Equal(t, assast.LineTo, path[2].Kind)
	assert.Equal(t, assast.Close, path[3].Kind)
}

func TestDrawingCacheScalesCoordinates(t *testing.T) {
	dc := NewDrawingCache(8)
	path := dc.Evaluate("m 20 20", 2) // scale 2 => divisor 2^(2-1)=2
	require.Len(t, path, 1)
	assert.Equal(t, float32(10), path[0].X)
	assert.Equal(t, float32(10), path[0].Y)
}

func TestDrawingCacheHitsOnRepeat(t *testing.T) {
	dc := NewDrawingCache(8)
	dc.Evaluate("m 1 1 l 2 2", 1)
	dc.Evaluate("m 1 1 l 2 2", 1)
	hits, misses := dc.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestDrawingCacheBezierAndIgnoresUnknownTokens(t *testing.T) {
	dc := NewDrawingCache(8)
	path := dc.Evaluate("m 0 0 b 1 1 2 2 3 3 zz", 1)
	require.Len(t, path, 2)
	assert.Equal(t, assast.CubicTo, path[1].Kind)
}

func TestFontDBQueryFallsBackToDefaultFamily(t *testing.T) {
	db := NewFontDB("Arial")
	db.Register("Arial", false, false, nil)
	db.Register("Comic Sans", true, false, nil)

	_, ok := db.Query("Missing Font", false, false)
	assert.True(t, ok, "falls back to default family, then first face")
}
