// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asscompose

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asscolor"
)

// Compositor blends a frame's intermediate layers bottom-up into an
// RGBA8 framebuffer (spec section 4.8). By the time layers reach
// Compositor they are expected to be RasterLayer-kind: assrender's
// Software backend rasterizes Text/Vector layers into pixel buffers
// before handing the frame to Compositor. A
// non-Raster layer reaching Compositor is skipped with no error, the
// same "failing event is skipped" policy the pipeline front uses (spec
// section 4.10), since that indicates an upstream stage did not finish
// its rasterization step rather than a compositor-level failure.
type Compositor struct{}

// NewCompositor returns a ready-to-use Compositor. It holds no state;
// all per-run state (dirty tracking) lives in Tracker.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Composite renders every layer in paint order into a fresh w*h*4 RGBA8
// buffer, fully transparent to start.
func (c *Compositor) Composite(w, h int, layers []assast.IntermediateLayer) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("composite %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	out := make([]byte, w*h*4)
	ordered := orderLayers(layers)
	for _, l := range ordered {
		blendLayerInto(out, w, h, l, nil)
	}
	return out, nil
}

// CompositeIncremental reuses prevFrame outside the dirty regions and
// only re-blends layers that intersect them (spec section 4.8: "layers
// whose bounds do not intersect any dirty region may be reused from the
// previous frame's buffer"). A FullScreen region, or one dirty region
// is the common case; dirty may contain more than one entry.
func (c *Compositor) CompositeIncremental(w, h int, layers []assast.IntermediateLayer, dirty []assast.DirtyRegion, prevFrame []byte) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("composite %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	want := w * h * 4
	if len(prevFrame) != want {
		return nil, fmt.Errorf("composite incremental: prev frame has %d bytes, want %d: %w", len(prevFrame), want, ErrInvalidBufferSize)
	}
	out := make([]byte, want)
	copy(out, prevFrame)

	ordered := orderLayers(layers)
	for _, region := range dirty {
		clamped := clampRegion(region, w, h)
		if clamped.W <= 0 || clamped.H <= 0 {
			continue
		}
		clearRegion(out, w, clamped)
		for _, l := range ordered {
			if !layerIntersectsRegion(l, clamped) {
				continue
			}
			blendLayerInto(out, w, h, l, &clamped)
		}
	}
	return out, nil
}

// orderLayers sorts by ascending Layer then ascending Order (spec
// section 5: "rendering order is by layer ascending, then by source
// order"); Compositor blends in that order so later events overwrite
// earlier ones at the same pixel.
func orderLayers(layers []assast.IntermediateLayer) []assast.IntermediateLayer {
	ordered := make([]assast.IntermediateLayer, len(layers))
	copy(ordered, layers)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Layer != ordered[j].Layer {
			return ordered[i].Layer < ordered[j].Layer
		}
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}

func clampRegion(r assast.DirtyRegion, w, h int) assast.DirtyRegion {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	return assast.DirtyRegion{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func clearRegion(buf []byte, stride int, r assast.DirtyRegion) {
	for y := r.Y; y < r.Y+r.H; y++ {
		off := (y*stride + r.X) * 4
		for x := 0; x < r.W; x++ {
			buf[off+x*4+0] = 0
			buf[off+x*4+1] = 0
			buf[off+x*4+2] = 0
			buf[off+x*4+3] = 0
		}
	}
}

func layerIntersectsRegion(l assast.IntermediateLayer, r assast.DirtyRegion) bool {
	if l.Kind != assast.RasterLayer {
		return false
	}
	return l.X < r.X+r.W && l.X+l.W > r.X && l.Y < r.Y+r.H && l.Y+l.H > r.Y
}

// blendLayerInto composites one Raster layer's pixels over dst. If clip
// is non-nil, only pixels within it are touched.
func blendLayerInto(dst []byte, w, h int, l assast.IntermediateLayer, clip *assast.DirtyRegion) {
	if l.Kind != assast.RasterLayer || len(l.Pixels) == 0 {
		return
	}
	op := l.Opacity
	if op <= 0 {
		return
	}
	for ly := 0; ly < l.H; ly++ {
		dy := l.Y + ly
		if dy < 0 || dy >= h {
			continue
		}
		if clip != nil && (dy < clip.Y || dy >= clip.Y+clip.H) {
			continue
		}
		for lx := 0; lx < l.W; lx++ {
			dx := l.X + lx
			if dx < 0 || dx >= w {
				continue
			}
			if clip != nil && (dx < clip.X || dx >= clip.X+clip.W) {
				continue
			}
			si := (ly*l.W + lx) * 4
			if si+3 >= len(l.Pixels) {
				continue
			}
			src := color.RGBA{R: l.Pixels[si], G: l.Pixels[si+1], B: l.Pixels[si+2], A: scaleAlpha(l.Pixels[si+3], op)}
			di := (dy*w + dx) * 4
			dstC := color.RGBA{R: dst[di], G: dst[di+1], B: dst[di+2], A: dst[di+3]}
			out := asscolor.OverShortCircuit(src, dstC)
			dst[di], dst[di+1], dst[di+2], dst[di+3] = out.R, out.G, out.B, out.A
		}
	}
}

func scaleAlpha(a byte, opacity float32) byte {
	if opacity >= 1 {
		return a
	}
	if opacity <= 0 {
		return 0
	}
	return byte(float32(a) * opacity)
}
