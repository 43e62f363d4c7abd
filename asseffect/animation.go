// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asseffect

import "image/color"

// PropertyKind discriminates which layer property an Animation drives
// (spec section 4.7: "interpolate a property (opacity, position, scale,
// rotation, color)").
type PropertyKind int

const (
	PropOpacity PropertyKind = iota
	PropPositionX
	PropPositionY
	PropScale
	PropRotation
	PropColor
)

// Animation interpolates one property over [Start,End] using Curve.
type Animation struct {
	Property   PropertyKind
	Curve      Curve
	Start, End float32 // from, to -- units depend on Property
	ColorStart, ColorEnd color.RGBA
}

// ValueAt evaluates the animation's scalar property at normalized
// progress p in [0,1] (the caller derives p from its own time window via
// Progress, since that window's units -- centiseconds for the pipeline,
// seconds elsewhere -- aren't Animation's concern).
func (a Animation) ValueAt(p float32) float32 {
	return lerp(a.Start, a.End, a.Curve.Evaluate(clamp01(p)))
}

// ColorAt evaluates a PropColor animation's color at normalized progress
// p in [0,1].
func (a Animation) ColorAt(p float32) color.RGBA {
	eased := a.Curve.Evaluate(clamp01(p))
	l := func(a0, b0 uint8) uint8 {
		return uint8(float32(a0) + (float32(b0)-float32(a0))*eased)
	}
	return color.RGBA{
		R: l(a.ColorStart.R, a.ColorEnd.R),
		G: l(a.ColorStart.G, a.ColorEnd.G),
		B: l(a.ColorStart.B, a.ColorEnd.B),
		A: l(a.ColorStart.A, a.ColorEnd.A),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
