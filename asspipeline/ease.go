// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asspipeline

import (
	"image/color"
	"math"
)

// progressOf returns the eased [0,1] progress of t within [t1,t2] using
// pow(linear_progress, accel) easing (spec section 4.5, "\t(...)").
// A zero-width or inverted interval is treated as instantaneous: fully
// unreached before t1, fully reached at or after it.
func progressOf(t, t1, t2 int64, accel float32) float32 {
	if t2 <= t1 {
		if t < t1 {
			return 0
		}
		return 1
	}
	if t <= t1 {
		return 0
	}
	if t >= t2 {
		return 1
	}
	linear := float32(t-t1) / float32(t2-t1)
	if accel == 1 || accel == 0 {
		return linear
	}
	return float32(math.Pow(float64(linear), float64(accel)))
}

func lerp32(a, b, p float32) float32 {
	return a + (b-a)*p
}

func lerpRGBA(a, b color.RGBA, p float32) color.RGBA {
	return color.RGBA{
		R: lerpByte(a.R, b.R, p),
		G: lerpByte(a.G, b.G, p),
		B: lerpByte(a.B, b.B, p),
		A: lerpByte(a.A, b.A, p),
	}
}
