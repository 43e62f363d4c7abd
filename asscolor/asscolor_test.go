// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asscolor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subforge/asscore/asstext"
)

func TestFromLiteralInvertsAlpha(t *testing.T) {
	lit := asstext.ColorLiteral{A: 0, B: 10, G: 20, R: 30, HadAlpha: true}
	c := FromLiteral(lit)
	assert.Equal(t, color.RGBA{R: 30, G: 20, B: 10, A: 255}, c)
}

func TestFromLiteralRoundTrip(t *testing.T) {
	lit := asstext.ColorLiteral{A: 64, B: 1, G: 2, R: 3, HadAlpha: true}
	c := FromLiteral(lit)
	back := ToLiteral(c)
	assert.Equal(t, lit, back)
}

func TestOverOpaqueSrcIsCopy(t *testing.T) {
	src := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	dst := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	out := Over(src, dst)
	assert.Equal(t, src, out)
}

func TestOverShortCircuitTransparentSrcSkipped(t *testing.T) {
	src := color.RGBA{R: 255, A: 0}
	dst := color.RGBA{G: 255, A: 255}
	assert.Equal(t, dst, OverShortCircuit(src, dst))
}

func TestLerpBounds(t *testing.T) {
	a := color.RGBA{R: 0, A: 255}
	b := color.RGBA{R: 255, A: 255}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	mid := Lerp(a, b, 0.5)
	assert.InDelta(t, 127, mid.R, 1)
}
