// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assrender

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-text/typesetting/opentype/api"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asscolor"
	"github.com/subforge/asscore/asscompose"
	"github.com/subforge/asscore/asseffect"
	"github.com/subforge/asscore/assshape"
)

// Software is the mandatory, always-available Backend (spec section
// 4.9). It turns Vector/Text intermediate layers into pixels itself --
// rasterizing glyph outlines and drawing-command paths with
// golang.org/x/image/vector, same as the reference renderer's "apply
// effects to pixels" contract (spec section 4.7) requires something to
// have produced pixels first -- runs each layer's effect chain (C9),
// then hands the now-uniformly-Raster layer set to asscompose (C10) for
// the actual dirty-region-aware blend.
type Software struct {
	state      BackendState
	shaper     *assshape.Shaper
	compositor *asscompose.Compositor
}

// NewSoftware returns a Software backend shaping text against fonts.
func NewSoftware(fonts *assshape.FontDB) *Software {
	return &Software{
		state:      Uninitialized,
		shaper:     assshape.NewShaper(fonts, 512),
		compositor: asscompose.NewCompositor(),
	}
}

func (s *Software) Name() string        { return "software" }
func (s *Software) State() BackendState { return s.state }

func (s *Software) CreatePipeline() (*Pipeline, error) {
	if s.state == Dropped {
		return nil, fmt.Errorf("software: %w", ErrBackendInitFailed)
	}
	s.state = Ready
	return &Pipeline{Backend: s}, nil
}

func (s *Software) Supports(f Feature) bool {
	return f == FeatureIncrementalComposite
}

func (s *Software) CompositeLayers(layers []assast.IntermediateLayer, ctx *RenderContext) ([]byte, error) {
	if s.state != Ready {
		return nil, fmt.Errorf("software composite: %w", ErrBackendNotReady)
	}
	s.state = Rendering
	rastered := s.rasterizeAll(layers)
	out, err := s.compositor.Composite(ctx.Width, ctx.Height, rastered)
	if err != nil {
		s.state = Dropped
		return nil, fmt.Errorf("software composite: %w", err)
	}
	s.state = Ready
	return out, nil
}

func (s *Software) CompositeLayersIncremental(layers []assast.IntermediateLayer, dirty []assast.DirtyRegion, prevFrame []byte, ctx *RenderContext) ([]byte, error) {
	if s.state != Ready {
		return nil, fmt.Errorf("software composite incremental: %w", ErrBackendNotReady)
	}
	s.state = Rendering
	rastered := s.rasterizeAll(layers)
	out, err := s.compositor.CompositeIncremental(ctx.Width, ctx.Height, rastered, dirty, prevFrame)
	if err != nil {
		s.state = Dropped
		return nil, fmt.Errorf("software composite incremental: %w", err)
	}
	s.state = Ready
	return out, nil
}

// rasterizeAll converts every Vector/Text layer to Raster form, running
// its effect chain, and skips a layer that fails to rasterize (spec
// section 4.10's "a failing event/layer is skipped" policy), rather
// than failing the whole frame the way a compositor buffer-size
// mismatch does.
func (s *Software) rasterizeAll(layers []assast.IntermediateLayer) []assast.IntermediateLayer {
	out := make([]assast.IntermediateLayer, 0, len(layers))
	for _, l := range layers {
		r, err := s.rasterizeLayer(l)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *Software) rasterizeLayer(l assast.IntermediateLayer) (assast.IntermediateLayer, error) {
	switch l.Kind {
	case assast.RasterLayer:
		return l, nil
	case assast.VectorLayer:
		return s.rasterizeVector(l)
	case assast.TextLayer:
		return s.rasterizeText(l)
	default:
		return assast.IntermediateLayer{}, fmt.Errorf("assrender: unknown layer kind %d", l.Kind)
	}
}

func (s *Software) rasterizeVector(l assast.IntermediateLayer) (assast.IntermediateLayer, error) {
	w := int(l.BBox.W + 0.999)
	h := int(l.BBox.H + 0.999)
	if w <= 0 || h <= 0 {
		return assast.IntermediateLayer{}, fmt.Errorf("assrender: empty vector bounds")
	}
	mask := rasterizePath(l.Path, w, h, l.BBox.X, l.BBox.Y)
	out := l
	out.Kind = assast.RasterLayer
	out.X, out.Y, out.W, out.H = int(l.BBox.X), int(l.BBox.Y), w, h
	out.Opacity = 1
	out.Pixels = tint(mask, l.Fill)
	applyChain(&out)
	return out, nil
}

func (s *Software) rasterizeText(l assast.IntermediateLayer) (assast.IntermediateLayer, error) {
	style := assshape.ShapeStyle{
		Family: l.FontFamily,
		SizePx: l.FontSize,
		Bold:   hasEffect(l.Effects, assast.EffBold),
		Italic: hasEffect(l.Effects, assast.EffItalic),
	}
	line, err := s.shaper.ShapeLine(l.UTF8, style)
	if err != nil {
		return assast.IntermediateLayer{}, err
	}
	w := int(line.Metrics.Width + 0.999)
	h := int(line.Metrics.Ascent+line.Metrics.Descent) + 1
	if w <= 0 || h <= 0 {
		return assast.IntermediateLayer{}, fmt.Errorf("assrender: empty text bounds")
	}
	mask := rasterizeGlyphs(line, w, h, line.Metrics.Ascent)
	out := l
	out.Kind = assast.RasterLayer
	out.X, out.Y = int(l.TX), int(l.TY)
	out.W, out.H = w, h
	out.Opacity = 1
	out.Pixels = tint(mask, l.TextColor)
	applyChain(&out)
	return out, nil
}

func applyChain(l *assast.IntermediateLayer) {
	chain := asseffect.BuildChain(l.Effects)
	if len(chain.Steps) == 0 {
		return
	}
	img := pixelsToRGBA(l.Pixels, l.W, l.H)
	img = chain.Apply(img)
	l.Pixels = img.Pix
	b := img.Bounds()
	l.W, l.H = b.Dx(), b.Dy()
}

func hasEffect(effects []assast.TextEffect, kind assast.TextEffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// rasterizePath fills an ASS drawing-command path (already evaluated by
// assshape.DrawingCache upstream) into an alpha coverage mask, offset so
// bbox's top-left lands at (0,0).
func rasterizePath(path []assast.PathCommand, w, h int, offsetX, offsetY float32) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	for _, c := range path {
		switch c.Kind {
		case assast.MoveTo:
			r.MoveTo(c.X-offsetX, c.Y-offsetY)
		case assast.LineTo:
			r.LineTo(c.X-offsetX, c.Y-offsetY)
		case assast.CubicTo:
			r.CubeTo(c.X1-offsetX, c.Y1-offsetY, c.X2-offsetX, c.Y2-offsetY, c.X3-offsetX, c.Y3-offsetY)
		case assast.Close:
			r.ClosePath()
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// rasterizeGlyphs walks each shaped glyph's outline (go-text/typesetting
// font.Face.GlyphData) into an alpha coverage mask. baseline is the
// distance from the top of h down to the glyph origin's y==0 line.
func rasterizeGlyphs(line assshape.ShapedLine, w, h int, baseline float32) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	upem := float32(1000)
	if line.Face != nil {
		if u := float32(line.Face.Upem()); u > 0 {
			upem = u
		}
	}
	scale := line.SizePx / upem

	for _, g := range line.Glyphs {
		if line.Face == nil {
			continue
		}
		data := line.Face.GlyphData(g.GID)
		outline, ok := data.(api.GlyphOutline)
		if !ok {
			continue
		}
		ox := g.X
		oy := baseline - g.Y
		for _, seg := range outline.Segments {
			var args [3][2]float32
			n := segArgCount(seg.Op)
			for i := 0; i < n; i++ {
				args[i][0] = ox + fixedToFloat32(seg.Args[i].X)*scale
				args[i][1] = oy - fixedToFloat32(seg.Args[i].Y)*scale
			}
			switch seg.Op {
			case api.SegmentOpMoveTo:
				r.MoveTo(args[0][0], args[0][1])
			case api.SegmentOpLineTo:
				r.LineTo(args[0][0], args[0][1])
			case api.SegmentOpQuadTo:
				r.QuadTo(args[0][0], args[0][1], args[1][0], args[1][1])
			case api.SegmentOpCubeTo:
				r.CubeTo(args[0][0], args[0][1], args[1][0], args[1][1], args[2][0], args[2][1])
			}
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func segArgCount(op api.SegmentOp) int {
	switch op {
	case api.SegmentOpQuadTo:
		return 2
	case api.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// tint multiplies an alpha coverage mask by a straight-alpha fill color,
// producing tightly-packed RGBA8 (no stride padding, matching
// asscompose.Compositor's expectations for IntermediateLayer.Pixels).
func tint(mask *image.Alpha, fill color.RGBA) []byte {
	b := mask.Bounds()
	out := make([]byte, b.Dx()*b.Dy()*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := mask.AlphaAt(x, y).A
			a := asscolor.Lerp(color.RGBA{}, fill, float32(cov)/255).A
			out[i] = fill.R
			out[i+1] = fill.G
			out[i+2] = fill.B
			out[i+3] = a
			i += 4
		}
	}
	return out
}

func pixelsToRGBA(px []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, px)
	return img
}
