// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asscolor converts ASS's BGR(A) color literals into
// image/color.RGBA values and provides the Porter-Duff "source-over"
// integer blend (spec section 4.8), kept distinct from asstext's
// literal-parsing scope since a literal and a renderable color are
// different concerns (the teacher's colors package similarly splits
// parsing/model from blend.go).
package asscolor

import (
	"image/color"

	"github.com/subforge/asscore/asstext"
)

// FromLiteral converts a parsed ColorLiteral -- stored as A,B,G,R per the
// ASS wire order -- into a standard image/color.RGBA. ASS alpha is
// inverted (0 = opaque, 255 = transparent); RGBA.A is true alpha, so it
// is flipped here.
func FromLiteral(lit asstext.ColorLiteral) color.RGBA {
	return color.RGBA{R: lit.R, G: lit.G, B: lit.B, A: 255 - lit.A}
}

// ToLiteral is the inverse of FromLiteral, used when re-serializing a
// RenderState color back into ASS's &HAABBGGRR& form.
func ToLiteral(c color.RGBA) asstext.ColorLiteral {
	return asstext.ColorLiteral{A: 255 - c.A, B: c.B, G: c.G, R: c.R, HadAlpha: true}
}

// Over composites src over dst using the reference integer formula (spec
// section 4.8). Both colors are straight (non-premultiplied) alpha.
// Callers should short-circuit α=0 (skip the src entirely) and α=255
// over a fully-transparent dst (plain copy) themselves, since Over does
// not special-case those for clarity.
func Over(src, dst color.RGBA) color.RGBA {
	a := uint32(src.A)
	inv := 255 - a
	blend := func(sc, dc uint8) uint8 {
		return uint8((uint32(sc)*a + uint32(dc)*inv + 255) >> 8)
	}
	outA := uint8((a*255 + uint32(dst.A)*inv + 255) >> 8)
	return color.RGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: outA,
	}
}

// OverShortCircuit is Over with the two documented fast paths applied:
// a fully transparent src is skipped (dst returned unchanged), and a
// fully opaque src over a fully transparent dst is a plain copy.
func OverShortCircuit(src, dst color.RGBA) color.RGBA {
	if src.A == 0 {
		return dst
	}
	if src.A == 255 && dst.A == 0 {
		return src
	}
	return Over(src, dst)
}

// Lerp linearly interpolates each channel between a and b by t in [0,1],
// used by asseffect's color animation property.
func Lerp(a, b color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp8 := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{
		R: lerp8(a.R, b.R),
		G: lerp8(a.G, b.G),
		B: lerp8(a.B, b.B),
		A: lerp8(a.A, b.A),
	}
}
