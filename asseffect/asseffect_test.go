// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asseffect

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assast"
)

func TestCurveLinearIsIdentity(t *testing.T) {
	c := Curve{Kind: Linear}
	assert.InDelta(t, 0.5, c.Evaluate(0.5), 1e-6)
}

func TestCurveEaseInOutMidpoint(t *testing.T) {
	c := Curve{Kind: EaseInOut}
	assert.InDelta(t, 0.5, c.Evaluate(0.5), 1e-6)
}

func TestCurveClampsOutOfRange(t *testing.T) {
	c := Curve{Kind: EaseIn}
	assert.Equal(t, float32(0), c.Evaluate(-1))
	assert.Equal(t, float32(1), c.Evaluate(2))
}

func TestProgressClampsToWindow(t *testing.T) {
	c := Curve{Kind: Linear}
	assert.Equal(t, float32(0), Progress(c, -5, 0, 10))
	assert.Equal(t, float32(1), Progress(c, 50, 0, 10))
	assert.InDelta(t, 0.5, Progress(c, 5, 0, 10), 1e-6)
}

func TestAffineIdentityIsNoop(t *testing.T) {
	x, y := Identity().Apply(3, 4)
	assert.Equal(t, float32(3), x)
	assert.Equal(t, float32(4), y)
}

func TestAffineInvertRoundTrips(t *testing.T) {
	m := Scale(2, 0.5).Mul(Translate(10, -5))
	inv := m.Invert()
	x, y := m.Apply(3, 4)
	x2, y2 := inv.Apply(x, y)
	assert.InDelta(t, 3, x2, 1e-3)
	assert.InDelta(t, 4, y2, 1e-3)
}

func TestTransformIdentityPreservesOpaquePixel(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(1, 1, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	out := Transform(src, Identity(), 2, 2)
	got := out.RGBAAt(1, 1)
	assert.InDelta(t, 200, got.R, 2)
}

func TestGaussianBlurZeroRadiusIsNoop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 5, G: 6, B: 7, A: 255})
	out := GaussianBlur(src, 0)
	assert.Equal(t, src.RGBAAt(0, 0), out.RGBAAt(0, 0))
}

func TestBuildChainOrdersBlurBeforeTransform(t *testing.T) {
	effs := []assast.TextEffect{
		{Kind: assast.EffBlur, Radius: 2},
		{Kind: assast.EffRotation, RZ: 45},
	}
	chain := BuildChain(effs)
	require.Len(t, chain.Steps, 2)
	assert.Equal(t, StepBlur, chain.Steps[0].Kind)
	assert.Equal(t, StepTransform, chain.Steps[1].Kind)
}

func TestAnimationValueAtInterpolates(t *testing.T) {
	a := Animation{Curve: Curve{Kind: Linear}, Start: 0, End: 100}
	assert.InDelta(t, 50, a.ValueAt(0.5), 1e-6)
}

func TestAnimationColorAtInterpolates(t *testing.T) {
	a := Animation{
		Curve:      Curve{Kind: Linear},
		ColorStart: color.RGBA{R: 0, A: 255},
		ColorEnd:   color.RGBA{R: 200, A: 255},
	}
	got := a.ColorAt(0.5)
	assert.InDelta(t, 100, got.R, 2)
}
