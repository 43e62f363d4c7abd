// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asscompose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assast"
)

func solidLayer(x, y, w, h int, r, g, b, a byte, layer, order int) assast.IntermediateLayer {
	px := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		px[i*4] = r
		px[i*4+1] = g
		px[i*4+2] = b
		px[i*4+3] = a
	}
	return assast.IntermediateLayer{
		Kind: assast.RasterLayer, Pixels: px, X: x, Y: y, W: w, H: h,
		Opacity: 1, Layer: layer, Order: order,
	}
}

func TestCompositeOpaqueLayerCopiesPixels(t *testing.T) {
	c := NewCompositor()
	l := solidLayer(0, 0, 2, 2, 255, 0, 0, 255, 0, 0)
	out, err := c.Composite(2, 2, []assast.IntermediateLayer{l})
	require.NoError(t, err)
	assert.Equal(t, byte(255), out[0])
	assert.Equal(t, byte(0), out[1])
	assert.Equal(t, byte(255), out[3])
}

func TestCompositeRejectsInvalidDimensions(t *testing.T) {
	c := NewCompositor()
	_, err := c.Composite(0, 10, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestCompositeIncrementalRejectsBadBufferSize(t *testing.T) {
	c := NewCompositor()
	_, err := c.CompositeIncremental(2, 2, nil, nil, make([]byte, 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBufferSize))
}

func TestCompositeIncrementalReusesOutsideDirtyRegion(t *testing.T) {
	c := NewCompositor()
	prev := make([]byte, 4*4*4)
	for i := range prev {
		if i%4 == 3 {
			prev[i] = 255
		} else {
			prev[i] = 9
		}
	}
	region := []assast.DirtyRegion{{X: 0, Y: 0, W: 2, H: 2}}
	out, err := c.CompositeIncremental(4, 4, nil, region, prev)
	require.NoError(t, err)
	// Untouched pixel (outside the dirty region) must be preserved.
	off := (3*4 + 3) * 4
	assert.Equal(t, byte(9), out[off])
	// Dirty region with no layers drawn into it is cleared to transparent.
	assert.Equal(t, byte(0), out[3])
}

func TestOrderLayersSortsByLayerThenOrder(t *testing.T) {
	a := solidLayer(0, 0, 1, 1, 1, 0, 0, 255, 1, 0)
	b := solidLayer(0, 0, 1, 1, 2, 0, 0, 255, 0, 5)
	ordered := orderLayers([]assast.IntermediateLayer{a, b})
	assert.Equal(t, 0, ordered[0].Layer)
	assert.Equal(t, 1, ordered[1].Layer)
}

func TestTrackerFirstCallIsFullScreen(t *testing.T) {
	tr := NewTracker()
	regions := tr.Update(nil, nil, nil)
	require.Len(t, regions, 1)
	assert.True(t, regions[0].IsFullScreen())
}

func TestTrackerSecondCallIsQuietWhenNothingChanges(t *testing.T) {
	tr := NewTracker()
	bounds := []LayerBounds{{EventIndex: 0, Bounds: assast.Rect{X: 0, Y: 0, W: 10, H: 10}}}
	tr.Update([]int{0}, nil, bounds)
	regions := tr.Update(nil, nil, bounds)
	assert.Nil(t, regions)
}

func TestTrackerUnionsAnimatedAndNewlyActiveBounds(t *testing.T) {
	tr := NewTracker()
	tr.Update(nil, nil, nil)
	bounds := []LayerBounds{
		{EventIndex: 1, Bounds: assast.Rect{X: 5, Y: 5, W: 2, H: 2}, Animated: true},
	}
	regions := tr.Update(nil, nil, bounds)
	require.Len(t, regions, 1)
	assert.Equal(t, 5, regions[0].X)
	assert.Equal(t, 5, regions[0].Y)
}

func TestTrackerIncludesNewlyInactivePreviousBounds(t *testing.T) {
	tr := NewTracker()
	first := []LayerBounds{{EventIndex: 2, Bounds: assast.Rect{X: 1, Y: 1, W: 3, H: 3}}}
	tr.Update([]int{2}, nil, first)
	regions := tr.Update(nil, []int{2}, nil)
	require.Len(t, regions, 1)
	assert.Equal(t, 1, regions[0].X)
	assert.Equal(t, 3, regions[0].W)
}
