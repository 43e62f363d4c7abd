// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asseffect

import (
	"image"

	"github.com/subforge/asscore/assast"
)

// StepKind discriminates a Chain Step.
type StepKind int

const (
	StepBlur StepKind = iota
	StepTransform
)

// Step is one effect application, built from a layer's TextEffect list.
type Step struct {
	Kind   StepKind
	Radius float32 // StepBlur
	Box    bool    // StepBlur: true = box filter, false = Gaussian
	Affine Affine3 // StepTransform
}

// Chain is an ordered sequence of effect steps, applied in slice order.
// A Chain from BuildChain does not follow the TextEffect list's order
// between blur and transform effects: every blur step comes first and
// all rotation/scale/shear effects run last, as one combined transform.
type Chain struct {
	Steps []Step
}

// BuildChain derives a Chain from a layer's TextEffect list: EffBlur
// contributes a blur pass; EffRotation/EffScale/EffShear compose into a
// single affine transform pass, applied after any blur so the blur
// radius is in pre-transform pixel space (matching the reference
// renderer's blur-then-warp ordering for rotated glyph runs).
func BuildChain(effects []assast.TextEffect) Chain {
	var c Chain
	m := Identity()
	haveTransform := false
	for _, e := range effects {
		switch e.Kind {
		case assast.EffBlur, assast.EffEdgeBlur:
			c.Steps = append(c.Steps, Step{Kind: StepBlur, Radius: e.Radius})
		case assast.EffRotation:
			if e.RZ != 0 {
				m = m.Mul(Rotate(e.RZ))
				haveTransform = true
			}
		case assast.EffScale:
			if e.SX != 1 || e.SY != 1 {
				m = m.Mul(Scale(e.SX, e.SY))
				haveTransform = true
			}
		case assast.EffShear:
			if e.ShX != 0 || e.ShY != 0 {
				m = m.Mul(Affine3{A: 1, B: e.ShX, C: e.ShY, D: 1})
				haveTransform = true
			}
		}
	}
	if haveTransform {
		c.Steps = append(c.Steps, Step{Kind: StepTransform, Affine: m})
	}
	return c
}

// Apply runs every step of c over img in order, returning the final
// image (may be img itself if c has no steps).
func (c Chain) Apply(img *image.RGBA) *image.RGBA {
	out := img
	for _, s := range c.Steps {
		switch s.Kind {
		case StepBlur:
			if s.Box {
				out = BoxBlur(out, s.Radius)
			} else {
				out = GaussianBlur(out, s.Radius)
			}
		case StepTransform:
			b := out.Bounds()
			out = Transform(out, s.Affine, b.Dx(), b.Dy())
		}
	}
	return out
}
