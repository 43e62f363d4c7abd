// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assshape

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// TextMetrics is one shaped line's layout-relevant measurements (spec
// section 4.6, "Report a TextMetrics record per line").
type TextMetrics struct {
	Width   float32
	Height  float32
	Ascent  float32
	Descent float32
	Baseline float32
}

// Glyph is one positioned glyph within a shaped line.
type Glyph struct {
	GID     font.GID
	X, Y    float32 // pen-relative origin
	XAdvance float32
}

// ShapedLine is one line of shaped text: its glyphs and metrics. Face
// and SizePx are carried alongside so a rasterizer can pull glyph
// outlines without re-running FontDB.Query (and without risking a
// different answer if the FontDB is mutated between shaping and
// rasterizing).
type ShapedLine struct {
	Glyphs  []Glyph
	Metrics TextMetrics
	Face    *font.Face
	SizePx  float32
}

// ShapeStyle carries the inputs that affect shaping output and doubles
// as (part of) the cache key, per spec section 4.6 ("memoized by a key
// tuple (text, family, size (rounded to int), bold, italic)").
type ShapeStyle struct {
	Family  string
	SizePx  float32
	Bold    bool
	Italic  bool
	Spacing float32
}

type shapeCacheKey struct {
	text    string
	family  string
	size    int
	bold    bool
	italic  bool
}

// Shaper shapes lowered text (already split on hard/soft breaks by
// asstag.LowerBreaks) into positioned glyph runs, memoizing results. Not
// safe for concurrent use by design -- caches are per-pipeline, not
// shared across threads (spec section 5).
type Shaper struct {
	Fonts *FontDB

	cache  *lru.Cache[shapeCacheKey, ShapedLine]
	hits   int64
	misses int64

	shaper shaping.HarfbuzzShaper
}

// NewShaper returns a Shaper backed by fonts, with an LRU cache holding
// up to capacity shaped lines.
func NewShaper(fonts *FontDB, capacity int) *Shaper {
	if capacity <= 0 {
		capacity = 512
	}
	c, _ := lru.New[shapeCacheKey, ShapedLine](capacity)
	return &Shaper{Fonts: fonts, cache: c}
}

// Stats reports cache hit/miss counters (spec section 4.6, "an LRU with
// size limit and hit/miss counters").
func (s *Shaper) Stats() (hits, misses int64) { return s.hits, s.misses }

// ShapeLine shapes one line of plain text (no embedded break markers)
// under style, consulting the memoization cache first.
func (s *Shaper) ShapeLine(text string, style ShapeStyle) (ShapedLine, error) {
	key := shapeCacheKey{text: text, family: style.Family, size: int(style.SizePx + 0.5), bold: style.Bold, italic: style.Italic}
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			s.hits++
			return v, nil
		}
	}
	s.misses++

	face, ok := s.Fonts.Query(style.Family, style.Bold, style.Italic)
	if !ok || face == nil {
		return ShapedLine{}, fmt.Errorf("assshape: no font available for family %q", style.Family)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: 0, // left-to-right; ASS has no bidi control tags to honor
		Face:      face,
		Size:      fixed.I(int(style.SizePx + 0.5)),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	out := s.shaper.Shape(input)

	line := ShapedLine{}
	var penX float32
	ascender, descender := faceVerticalMetrics(face, style.SizePx)
	for _, g := range out.Glyphs {
		gl := Glyph{
			GID:      g.GlyphID,
			X:        penX + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: fixedToFloat(g.XAdvance) + style.Spacing,
		}
		line.Glyphs = append(line.Glyphs, gl)
		penX += gl.XAdvance
	}
	line.Metrics = TextMetrics{
		Width:    penX,
		Height:   style.SizePx,
		Ascent:   ascender,
		Descent:  descender,
		Baseline: ascender,
	}
	line.Face = face
	line.SizePx = style.SizePx

	if s.cache != nil {
		s.cache.Add(key, line)
	}
	return line, nil
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// faceVerticalMetrics scales the ascender/descender reported by
// face.FontHExtents to sizePx. The line gap is not added. When the face
// reports no horizontal extents it returns 0.8*sizePx and 0.2*sizePx.
func faceVerticalMetrics(face *font.Face, sizePx float32) (ascender, descender float32) {
	upem := float32(face.Upem())
	if upem == 0 {
		upem = 1000
	}
	extents, ok := face.FontHExtents()
	if !ok {
		return sizePx * 0.8, sizePx * 0.2
	}
	scale := sizePx / upem
	return float32(extents.Ascender) * scale, -float32(extents.Descender) * scale
}
