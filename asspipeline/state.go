// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asspipeline

import (
	"image/color"

	"github.com/subforge/asscore/assanalysis"
	"github.com/subforge/asscore/asscolor"
	"github.com/subforge/asscore/asstag"
)

// RenderState is the mutable accumulator a tag walk updates left to
// right over one event's override blocks (spec section 4.5,
// "process_event ... walk left-to-right maintaining a mutable
// RenderState").
type RenderState struct {
	Bold, Italic, Underline, StrikeOut bool
	FontFamily                         string
	FontSize                           float32
	Primary, Secondary, Outline, Back  color.RGBA
	ScaleX, ScaleY                     float32
	Spacing                            float32
	RX, RY, RZ                         float32
	BorderWidth                        float32
	ShadowDepth                        float32
	BlurRadius                         float32
	Alignment                          int

	HasPos  bool
	PosX, PosY float32
	HasOrg  bool
	OrgX, OrgY float32
	HasMove bool
	Move    MoveState
	HasFade bool
	Fade    FadeState
	// FadeAlpha is the alpha multiplier \fad/\fade resolve to at the
	// frame time process_event was called for; 1 means fully visible.
	FadeAlpha float32
	Anims     []Animation
	Clip      *ClipState

	Karaoke asstag.KaraokeCursor

	DrawingScale int // \p argument; 0 = not in drawing mode
}

// NewRenderState seeds a RenderState from a resolved style, the starting
// point every event's tag walk begins from (spec section 4.5, "Resolve
// effective style").
func NewRenderState(st *assanalysis.ResolvedStyle) RenderState {
	rs := RenderState{
		FontFamily: st.Fontname,
		FontSize:   float32(st.Fontsize),
		Bold:       st.Bold,
		Italic:     st.Italic,
		Underline:  st.Underline,
		StrikeOut:  st.StrikeOut,
		ScaleX:     float32(st.ScaleX),
		ScaleY:     float32(st.ScaleY),
		Spacing:    float32(st.Spacing),
		RZ:         float32(st.Angle),
		BorderWidth: float32(st.Outline),
		ShadowDepth: float32(st.Shadow),
		Alignment:  st.Alignment,
		FadeAlpha:  1,
	}
	return rs
}

// MoveState is the accumulated state of a \move(x1,y1,x2,y2[,t1,t2]) tag.
type MoveState struct {
	X1, Y1, X2, Y2 float32
	T1, T2         int64 // centiseconds from event start; T1==T2==0 means "whole event"
}

// FadeState is the accumulated state of a \fad(in,out) or
// \fade(a1,a2,a3,t1,t2,t3,t4) tag.
type FadeState struct {
	InMS, OutMS int64
	Extended    bool
	A1, A2, A3  uint8
	T1, T2, T3, T4 int64
}

// ClipState is the accumulated state of a \clip/\iclip tag.
type ClipState struct {
	X1, Y1, X2, Y2 float32
	Inverse        bool
	Drawing        string // non-empty if \clip(drawing-commands) form was used
}

// Animation is one \t(t1,t2,accel,tags) registration: a sub-walk of
// tags applied with the given easing over [T1,T2] (spec section 4.5).
type Animation struct {
	T1, T2 int64
	Accel  float32
	Tags   []tagged
}

type tagged struct {
	Name string
	Args string
}

func applyColorTag(rs *RenderState, name, raw string) {
	lit, err := parseColorArg(raw)
	if err != nil {
		return
	}
	c := asscolor.FromLiteral(lit)
	switch name {
	case "c", "1c":
		rs.Primary = c
	case "2c":
		rs.Secondary = c
	case "3c":
		rs.Outline = c
	case "4c":
		rs.Back = c
	}
}

func applyAlphaTag(rs *RenderState, name, raw string) {
	lit, err := parseAlphaArg(raw)
	if err != nil {
		return
	}
	switch name {
	case "1a":
		rs.Primary.A = 255 - lit.A
	case "2a":
		rs.Secondary.A = 255 - lit.A
	case "3a":
		rs.Outline.A = 255 - lit.A
	case "4a":
		rs.Back.A = 255 - lit.A
	}
}
