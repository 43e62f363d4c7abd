// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assrender is the render context and backend trait (C11): it
// owns output resolution, font database, and play/storage/render scale
// factors, and dispatches compositing work to a Backend implementation
// (Software is mandatory and always available; GPU backends are
// optional stubs, spec section 4.9).
package assrender

import (
	"strconv"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/assshape"
)

// RenderContext bundles everything a Backend needs to turn intermediate
// layers into a frame: output dimensions, the font database, and the
// scale factors between the script's PlayRes coordinate space, its
// storage resolution, and the actual output raster.
type RenderContext struct {
	Width, Height int
	FontDB        *assshape.FontDB

	PlayResX, PlayResY       int
	StorageResX, StorageResY int

	FPS float32
	PAR float32 // pixel aspect ratio; 1 if unspecified
}

// Option configures a RenderContext at construction (teacher's
// functional-option convention, e.g. cli.Config-adjacent packages use
// the same small-option-struct shape).
type Option func(*RenderContext)

// WithPlayRes sets the script's PlayResX/PlayResY (defaults to the
// output width/height if never called, matching the classic ASS
// convention that an unset PlayRes means "same as output").
func WithPlayRes(x, y int) Option {
	return func(rc *RenderContext) { rc.PlayResX, rc.PlayResY = x, y }
}

// WithStorageRes sets the script's StorageResX/StorageResY, distinct
// from PlayRes when the subtitle author authored at a different
// resolution than it plays back at.
func WithStorageRes(x, y int) Option {
	return func(rc *RenderContext) { rc.StorageResX, rc.StorageResY = x, y }
}

// WithFPS sets the nominal frame rate (used only by callers that step
// frame-by-frame; the core itself is time-driven, not frame-driven).
func WithFPS(fps float32) Option {
	return func(rc *RenderContext) { rc.FPS = fps }
}

// WithPixelAspectRatio sets a non-square pixel aspect ratio.
func WithPixelAspectRatio(par float32) Option {
	return func(rc *RenderContext) { rc.PAR = par }
}

// NewContext builds a RenderContext for a width x height output buffer.
// PlayRes/StorageRes default to width/height until overridden by
// WithPlayRes/WithStorageRes, typically from PlayResFromScriptInfo.
func NewContext(width, height int, fonts *assshape.FontDB, opts ...Option) *RenderContext {
	rc := &RenderContext{
		Width: width, Height: height, FontDB: fonts,
		PlayResX: width, PlayResY: height,
		StorageResX: width, StorageResY: height,
		FPS: 30, PAR: 1,
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// ScaleX is the play-resolution-to-storage-resolution horizontal scale.
func (rc *RenderContext) ScaleX() float32 {
	if rc.PlayResX == 0 {
		return 1
	}
	return float32(rc.StorageResX) / float32(rc.PlayResX)
}

// ScaleY is the play-resolution-to-storage-resolution vertical scale.
func (rc *RenderContext) ScaleY() float32 {
	if rc.PlayResY == 0 {
		return 1
	}
	return float32(rc.StorageResY) / float32(rc.PlayResY)
}

// RenderScaleX is the play-resolution-to-actual-output-buffer horizontal
// scale: the factor a coordinate authored in PlayRes space must be
// multiplied by to land in this RenderContext's Width.
func (rc *RenderContext) RenderScaleX() float32 {
	if rc.PlayResX == 0 {
		return 1
	}
	return float32(rc.Width) / float32(rc.PlayResX)
}

// RenderScaleY is RenderScaleX's vertical counterpart.
func (rc *RenderContext) RenderScaleY() float32 {
	if rc.PlayResY == 0 {
		return 1
	}
	return float32(rc.Height) / float32(rc.PlayResY)
}

// PlayResFromScriptInfo reads PlayResX/PlayResY out of a script's
// [Script Info] section, returning false if either is absent or
// unparsable so the caller can keep its own default.
func PlayResFromScriptInfo(info *assast.ScriptInfoSection, src []byte) (x, y int, ok bool) {
	if info == nil {
		return 0, 0, false
	}
	xs, xok := info.Get(src, "PlayResX")
	ys, yok := info.Get(src, "PlayResY")
	if !xok || !yok {
		return 0, 0, false
	}
	xv, xerr := strconv.Atoi(xs.Text(src))
	yv, yerr := strconv.Atoi(ys.Text(src))
	if xerr != nil || yerr != nil {
		return 0, 0, false
	}
	return xv, yv, true
}
