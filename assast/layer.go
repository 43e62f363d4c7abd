// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

import "image/color"

// LayerKind discriminates the IntermediateLayer union.
type LayerKind int

const (
	RasterLayer LayerKind = iota
	VectorLayer
	TextLayer
)

// IntermediateLayer is one layer produced by the pipeline front (C7) for
// a single event at a single frame time, to be shaped/drawn (C8),
// effect-processed (C9), and composited (C10). Modeled as a Kind tag plus
// payload fields rather than an interface, because the compositor needs
// to switch on kind anyway and a flat struct keeps per-frame allocation
// to one slice instead of N heap objects behind an interface.
type IntermediateLayer struct {
	Kind LayerKind

	// Raster fields.
	Pixels  []byte // RGBA8, row-major, Raster.W*Raster.H*4 bytes
	X, Y    int
	W, H    int
	Opacity float32

	// Vector fields.
	Path   []PathCommand
	Fill   color.RGBA
	Stroke *Stroke
	BBox   Rect

	// Text fields.
	UTF8       string
	FontFamily string
	FontSize   float32
	TextColor  color.RGBA
	TX, TY     float32

	// Shared.
	Effects []TextEffect
	Layer   int // ASS event layer, for paint ordering
	Order   int // source order, tiebreaker for same-layer events
}

// Stroke describes a vector-path outline.
type Stroke struct {
	Color color.RGBA
	Width float32
}

// Rect is an axis-aligned bounding box in render-space pixels.
type Rect struct {
	X, Y, W, H float32
}

// Union returns the smallest Rect containing both r and o. An empty
// receiver (W==0 && H==0) is treated as the identity.
func (r Rect) Union(o Rect) Rect {
	if r.W == 0 && r.H == 0 {
		return o
	}
	if o.W == 0 && o.H == 0 {
		return r
	}
	x0 := min32(r.X, o.X)
	y0 := min32(r.Y, o.Y)
	x1 := max32(r.X+r.W, o.X+o.W)
	y1 := max32(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// PathCommandKind discriminates a drawing command parsed from a `\p`
// block (spec section 4.6).
type PathCommandKind int

const (
	MoveTo PathCommandKind = iota
	LineTo
	CubicTo
	Close
)

// PathCommand is one op in a vector path built from an ASS drawing
// command stream.
type PathCommand struct {
	Kind               PathCommandKind
	X, Y               float32 // MoveTo, LineTo
	X1, Y1, X2, Y2     float32 // CubicTo control points
	X3, Y3             float32 // CubicTo endpoint
}

// TextEffectKind discriminates the TextEffect union (spec section 3).
type TextEffectKind int

const (
	EffBold TextEffectKind = iota
	EffItalic
	EffUnderline
	EffStrike
	EffOutline
	EffShadow
	EffBlur
	EffEdgeBlur
	EffKaraoke
	EffRotation
	EffShear
	EffScale
	EffClip
)

// TextEffect is one rendering-state modifier attached to a Text or
// Vector layer, in the order its tags were applied (spec section 5:
// "tag effects apply strictly left-to-right").
type TextEffect struct {
	Kind TextEffectKind

	// Outline / Shadow
	RGBA  color.RGBA
	Width float32
	DX, DY float32

	// Blur / EdgeBlur
	Radius float32

	// Karaoke
	Progress float32
	Style    int // 0 = highlight, 1 = sweep (\K/\kf), 2 = outline sweep (\ko)

	// Rotation
	RX, RY, RZ float32

	// Shear
	ShX, ShY float32

	// Scale
	SX, SY float32

	// Clip
	CX1, CY1, CX2, CY2 float32
	Inverse            bool
}

// DirtyRegion is a framebuffer-aligned rectangle that must be
// recomposited this frame (spec section 3).
type DirtyRegion struct {
	X, Y, W, H int
}

// FullScreen is the sentinel dirty region meaning "recomposite
// everything".
func FullScreen() DirtyRegion {
	const inf = 1 << 30
	return DirtyRegion{X: 0, Y: 0, W: inf, H: inf}
}

// IsFullScreen reports whether d is the FullScreen sentinel.
func (d DirtyRegion) IsFullScreen() bool {
	return d == FullScreen()
}
