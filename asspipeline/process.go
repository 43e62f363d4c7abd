// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asspipeline

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/subforge/asscore/assanalysis"
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/assshape"
	"github.com/subforge/asscore/asstag"
	"github.com/subforge/asscore/asstext"
)

// Context carries everything process_event needs besides the event and
// time: the resolved styles map, the event's own source buffer, and the
// drawing-command cache (C8) that backs \p evaluation.
type Context struct {
	Src      []byte
	Styles   map[string]*assanalysis.ResolvedStyle
	Drawings *assshape.DrawingCache
}

// ProcessEvent resolves ev's effective style, walks its override tags
// left to right building a RenderState, and emits one IntermediateLayer
// per text/drawing segment (spec section 4.5, "process_event").
func ProcessEvent(ev assast.Event, timeCS int64, ctx Context, layer, order int) []assast.IntermediateLayer {
	base := ctx.Styles[ev.Style.Text(ctx.Src)]
	if base == nil {
		base = &assanalysis.ResolvedStyle{}
	}
	rs := NewRenderState(base)

	startCS, _ := asstext.ParseTimestamp(ev.Start.Text(ctx.Src))

	var layers []assast.IntermediateLayer
	for _, seg := range asstag.SplitEventText(ctx.Src, ev.Text) {
		switch seg.Kind {
		case asstag.BlockSegment:
			applyBlockTags(&rs, seg.Tags, ctx.Src, timeCS, startCS)
		case asstag.TextSegment:
			for _, run := range asstag.LowerBreaks(seg.Span.Bytes(ctx.Src)) {
				if run.Break != asstag.BreakNone || run.Text == "" {
					continue
				}
				if rs.DrawingScale > 0 {
					layers = append(layers, buildVectorLayer(rs, ctx.Drawings, run.Text, layer, order))
				} else {
					layers = append(layers, buildTextLayer(rs, run.Text, layer, order))
				}
			}
		}
	}
	return layers
}

func buildTextLayer(rs RenderState, text string, layer, order int) assast.IntermediateLayer {
	return assast.IntermediateLayer{
		Kind:       assast.TextLayer,
		UTF8:       text,
		FontFamily: rs.FontFamily,
		FontSize:   rs.FontSize,
		TextColor:  fadedColor(rs, rs.Primary),
		Effects:    buildEffects(rs),
		Layer:      layer,
		Order:      order,
	}
}

func buildVectorLayer(rs RenderState, cache *assshape.DrawingCache, commands string, layer, order int) assast.IntermediateLayer {
	var path []assast.PathCommand
	if cache != nil {
		path = cache.Evaluate(commands, rs.DrawingScale)
	} else {
		path = assshape.NewDrawingCache(1).Evaluate(commands, rs.DrawingScale)
	}
	var bbox assast.Rect
	for _, p := range path {
		bbox = bbox.Union(assast.Rect{X: p.X, Y: p.Y, W: 0, H: 0})
	}
	var stroke *assast.Stroke
	if rs.BorderWidth > 0 {
		stroke = &assast.Stroke{Color: fadedColor(rs, rs.Outline), Width: rs.BorderWidth}
	}
	return assast.IntermediateLayer{
		Kind:    assast.VectorLayer,
		Path:    path,
		Fill:    fadedColor(rs, rs.Primary),
		Stroke:  stroke,
		BBox:    bbox,
		Effects: buildEffects(rs),
		Layer:   layer,
		Order:   order,
	}
}

// fadedColor returns c with its alpha scaled by the fade multiplier
// applyTag already resolved into rs.FadeAlpha for this frame.
func fadedColor(rs RenderState, c color.RGBA) color.RGBA {
	if !rs.HasFade || rs.FadeAlpha >= 1 {
		return c
	}
	c.A = uint8(float32(c.A) * rs.FadeAlpha)
	return c
}

func buildEffects(rs RenderState) []assast.TextEffect {
	var effs []assast.TextEffect
	if rs.Bold {
		effs = append(effs, assast.TextEffect{Kind: assast.EffBold})
	}
	if rs.Italic {
		effs = append(effs, assast.TextEffect{Kind: assast.EffItalic})
	}
	if rs.Underline {
		effs = append(effs, assast.TextEffect{Kind: assast.EffUnderline})
	}
	if rs.StrikeOut {
		effs = append(effs, assast.TextEffect{Kind: assast.EffStrike})
	}
	if rs.BorderWidth > 0 {
		effs = append(effs, assast.TextEffect{Kind: assast.EffOutline, RGBA: rs.Outline, Width: rs.BorderWidth})
	}
	if rs.ShadowDepth > 0 {
		effs = append(effs, assast.TextEffect{Kind: assast.EffShadow, RGBA: rs.Back, DX: rs.ShadowDepth, DY: rs.ShadowDepth})
	}
	if rs.BlurRadius > 0 {
		effs = append(effs, assast.TextEffect{Kind: assast.EffBlur, Radius: rs.BlurRadius})
	}
	if rs.RX != 0 || rs.RY != 0 || rs.RZ != 0 {
		effs = append(effs, assast.TextEffect{Kind: assast.EffRotation, RX: rs.RX, RY: rs.RY, RZ: rs.RZ})
	}
	if rs.ScaleX != 100 || rs.ScaleY != 100 {
		effs = append(effs, assast.TextEffect{Kind: assast.EffScale, SX: rs.ScaleX / 100, SY: rs.ScaleY / 100})
	}
	if rs.Clip != nil {
		effs = append(effs, assast.TextEffect{
			Kind: assast.EffClip,
			CX1:  rs.Clip.X1, CY1: rs.Clip.Y1, CX2: rs.Clip.X2, CY2: rs.Clip.Y2,
			Inverse: rs.Clip.Inverse,
		})
	}
	for _, syl := range rs.Karaoke.Syllables {
		effs = append(effs, assast.TextEffect{Kind: assast.EffKaraoke, Style: int(syl.Fill), Progress: 0})
	}
	return effs
}

// applyBlockTags walks one override block's flat tag list, reassembling
// \t(...)'s wrapped sub-tags. ScanBlock truncates a tag's Args at the
// first nested backslash (spec section 3's scanning rule applies
// uniformly, with no special case for \t), so a \t(t1,t2,accel,\fscx200)
// arrives as two adjacent top-level tags -- "t" with Args "(t1,t2,accel,"
// and "fscx" with Args "200)". Reassembly tracks paren balance across
// consecutive tags until it closes, then hands the whole original text
// to applyAnimationTag as one unit.
func applyBlockTags(rs *RenderState, tags []assast.OverrideTag, src []byte, timeCS, startCS int64) {
	for i := 0; i < len(tags); i++ {
		tg := tags[i]
		name := tg.NameText(src)
		if tg.Name.Text(src) == "K" {
			name = "K" // KaraokeCursor.Advance tells \K (sweep) apart from \k
		}
		if name != "t" {
			applyTag(rs, name, tg.Args.Text(src), timeCS, startCS)
			continue
		}
		raw := tg.Args.Text(src)
		for parenBalance(raw) > 0 && i+1 < len(tags) {
			i++
			raw += "\\" + tags[i].NameText(src) + tags[i].Args.Text(src)
		}
		applyAnimationTag(rs, raw, timeCS, startCS)
	}
}

func parenBalance(s string) int {
	bal := 0
	for _, r := range s {
		switch r {
		case '(':
			bal++
		case ')':
			bal--
		}
	}
	return bal
}

// applyTag updates rs for one override tag encountered during the walk.
// timeCS/startCS let \t/\move/\fad/karaoke resolve time-dependent state.
func applyTag(rs *RenderState, name, raw string, timeCS, startCS int64) {
	raw = strings.TrimSpace(raw)
	if ok, _ := rs.Karaoke.Advance(name, raw); ok {
		return
	}
	switch name {
	case "b":
		rs.Bold = raw != "0"
	case "i":
		rs.Italic = raw != "0"
	case "u":
		rs.Underline = raw != "0"
	case "s":
		rs.StrikeOut = raw != "0"
	case "fn":
		rs.FontFamily = raw
	case "fs":
		rs.FontSize = parseF32(raw)
	case "fscx":
		rs.ScaleX = parseF32(raw)
	case "fscy":
		rs.ScaleY = parseF32(raw)
	case "fsp":
		rs.Spacing = parseF32(raw)
	case "frx":
		rs.RX = parseF32(raw)
	case "fry":
		rs.RY = parseF32(raw)
	case "frz", "fr":
		rs.RZ = parseF32(raw)
	case "bord":
		rs.BorderWidth = parseF32(raw)
	case "shad":
		rs.ShadowDepth = parseF32(raw)
	case "blur", "be":
		rs.BlurRadius = parseF32(raw)
	case "an":
		rs.Alignment = int(parseF32(raw))
	case "c", "1c", "2c", "3c", "4c":
		applyColorTag(rs, name, raw)
	case "1a", "2a", "3a", "4a":
		applyAlphaTag(rs, name, raw)
	case "pos":
		parts := splitArgsTrim(raw)
		if len(parts) == 2 {
			rs.HasPos = true
			rs.PosX, rs.PosY = parseF32(parts[0]), parseF32(parts[1])
		}
	case "org":
		parts := splitArgsTrim(raw)
		if len(parts) == 2 {
			rs.HasOrg = true
			rs.OrgX, rs.OrgY = parseF32(parts[0]), parseF32(parts[1])
		}
	case "move":
		parts := splitArgsTrim(raw)
		if len(parts) >= 4 {
			ms := MoveState{X1: parseF32(parts[0]), Y1: parseF32(parts[1]), X2: parseF32(parts[2]), Y2: parseF32(parts[3])}
			if len(parts) >= 6 {
				ms.T1, _ = strconv.ParseInt(parts[4], 10, 64)
				ms.T2, _ = strconv.ParseInt(parts[5], 10, 64)
			}
			rs.HasMove = true
			rs.Move = ms
			applyMoveAt(rs, ms, timeCS, startCS)
		}
	case "fad":
		parts := splitArgsTrim(raw)
		if len(parts) == 2 {
			in, _ := strconv.ParseInt(parts[0], 10, 64)
			out, _ := strconv.ParseInt(parts[1], 10, 64)
			fs := FadeState{InMS: in, OutMS: out}
			rs.HasFade = true
			rs.Fade = fs
			rs.FadeAlpha = simpleFadeAlpha(fs, timeCS-startCS)
		}
	case "fade":
		parts := splitArgsTrim(raw)
		if len(parts) == 7 {
			fs := FadeState{Extended: true}
			fs.A1 = byte(parseF32(parts[0]))
			fs.A2 = byte(parseF32(parts[1]))
			fs.A3 = byte(parseF32(parts[2]))
			fs.T1, _ = strconv.ParseInt(parts[3], 10, 64)
			fs.T2, _ = strconv.ParseInt(parts[4], 10, 64)
			fs.T3, _ = strconv.ParseInt(parts[5], 10, 64)
			fs.T4, _ = strconv.ParseInt(parts[6], 10, 64)
			rs.HasFade = true
			rs.Fade = fs
			rs.FadeAlpha = extendedFadeAlpha(fs, timeCS-startCS)
		}
	case "clip", "iclip":
		applyClipTag(rs, name == "iclip", raw)
	case "t":
		applyAnimationTag(rs, raw, timeCS, startCS)
	case "p":
		rs.DrawingScale = int(parseF32(raw))
	case "r":
		// Reset: a full implementation re-seeds from the named (or
		// default) style; scope here resets only the toggles most
		// tags actually flip, since a full style re-lookup needs the
		// style table that applyTag is not given.
		rs.Bold, rs.Italic, rs.Underline, rs.StrikeOut = false, false, false, false
	}
}

func splitArgsTrim(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseF32(s string) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

// simpleFadeAlpha resolves the fade-in half of \fad(in,out), with in in
// milliseconds: alpha ramps from 0 to 1 over the first in ms after the
// event start. The fade-out half is not applied: fs.OutMS is kept on the
// RenderState, but no alpha multiplier is derived from it.
func simpleFadeAlpha(fs FadeState, elapsedCS int64) float32 {
	inCS := fs.InMS / 10
	if inCS <= 0 {
		return 1
	}
	if elapsedCS >= inCS {
		return 1
	}
	if elapsedCS <= 0 {
		return 0
	}
	return float32(elapsedCS) / float32(inCS)
}

// extendedFadeAlpha resolves \fade(a1,a2,a3,t1,t2,t3,t4): alpha is a1
// before t1, ramps to a2 over [t1,t2], holds a2 over [t2,t3], ramps to
// a3 over [t3,t4], and is a3 after t4. Alpha values here are in ASS's
// inverted convention (0=opaque) so the returned multiplier is 1-a/255.
func extendedFadeAlpha(fs FadeState, elapsedCS int64) float32 {
	t := elapsedCS * 10 // tag times are in ms
	var a uint8
	switch {
	case t <= fs.T1:
		a = fs.A1
	case t <= fs.T2:
		a = lerpByte(fs.A1, fs.A2, progressOf(t, fs.T1, fs.T2, 1))
	case t <= fs.T3:
		a = fs.A2
	case t <= fs.T4:
		a = lerpByte(fs.A2, fs.A3, progressOf(t, fs.T3, fs.T4, 1))
	default:
		a = fs.A3
	}
	return 1 - float32(a)/255
}

func applyMoveAt(rs *RenderState, ms MoveState, timeCS, startCS int64) {
	t1, t2 := ms.T1, ms.T2
	if t1 == 0 && t2 == 0 {
		// Whole-event move (no t1,t2): the event's End is not known
		// here, so the position stays at (x1,y1) for the whole event
		// and is not interpolated towards (x2,y2).
		rs.PosX, rs.PosY = ms.X1, ms.Y1
		return
	}
	elapsed := timeCS - startCS
	p := progressOf(elapsed, t1, t2, 1)
	rs.PosX = lerp32(ms.X1, ms.X2, p)
	rs.PosY = lerp32(ms.Y1, ms.Y2, p)
}

func applyClipTag(rs *RenderState, inverse bool, raw string) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "(") && strings.ContainsAny(raw, "mlbsc ") && !looksNumeric(raw) {
		rs.Clip = &ClipState{Inverse: inverse, Drawing: strings.Trim(raw, "()")}
		return
	}
	parts := splitArgsTrim(raw)
	if len(parts) != 4 {
		return
	}
	rs.Clip = &ClipState{
		X1: parseF32(parts[0]), Y1: parseF32(parts[1]),
		X2: parseF32(parts[2]), Y2: parseF32(parts[3]),
		Inverse: inverse,
	}
}

func looksNumeric(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != ',' && r != ' ' && r != '(' && r != ')' {
			return false
		}
	}
	return true
}

// applyAnimationTag implements \t(t1,t2,accel,tags): the wrapped tags
// are applied at full strength to compute the target state, then the
// animatable fields actually touched are interpolated between their
// pre-\t value and that target using pow(progress, accel) easing (spec
// section 4.5). Only the common animatable subset -- colors/alpha,
// scale, rotation, border, shadow, blur, font size -- is interpolated; this is a
// deliberate scope narrowing from the full "any wrapped tag" generality.
func applyAnimationTag(rs *RenderState, raw string, timeCS, startCS int64) {
	t1, t2, accel, tagsStr := splitAnimationArgs(raw)
	elapsed := timeCS - startCS
	progress := progressOf(elapsed, t1, t2, accel)
	if progress <= 0 {
		return
	}

	before := *rs
	target := *rs
	for _, tg := range asstag.ScanBlock([]byte(tagsStr), assast.Span{Start: 0, End: len(tagsStr)}) {
		applyTag(&target, tg.NameText([]byte(tagsStr)), tg.Args.Text([]byte(tagsStr)), timeCS, startCS)
	}

	rs.ScaleX = lerp32(before.ScaleX, target.ScaleX, progress)
	rs.ScaleY = lerp32(before.ScaleY, target.ScaleY, progress)
	rs.RX = lerp32(before.RX, target.RX, progress)
	rs.RY = lerp32(before.RY, target.RY, progress)
	rs.RZ = lerp32(before.RZ, target.RZ, progress)
	rs.BorderWidth = lerp32(before.BorderWidth, target.BorderWidth, progress)
	rs.ShadowDepth = lerp32(before.ShadowDepth, target.ShadowDepth, progress)
	rs.BlurRadius = lerp32(before.BlurRadius, target.BlurRadius, progress)
	rs.FontSize = lerp32(before.FontSize, target.FontSize, progress)
	rs.Primary = lerpRGBA(before.Primary, target.Primary, progress)
	rs.Secondary = lerpRGBA(before.Secondary, target.Secondary, progress)
	rs.Outline = lerpRGBA(before.Outline, target.Outline, progress)
	rs.Back = lerpRGBA(before.Back, target.Back, progress)
}

func splitAnimationArgs(raw string) (t1, t2 int64, accel float32, tagsStr string) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "(")
	idx := strings.IndexByte(raw, '\\')
	if idx < 0 {
		return 0, 0, 1, ""
	}
	prefix := strings.TrimSuffix(strings.TrimSpace(raw[:idx]), ",")
	tagsStr = "{" + strings.TrimSuffix(raw[idx:], ")") + "}"

	var prefixParts []string
	if prefix != "" {
		prefixParts = splitArgsTrim("(" + prefix + ")")
	}
	accel = 1
	switch len(prefixParts) {
	case 3:
		t1, _ = strconv.ParseInt(prefixParts[0], 10, 64)
		t2, _ = strconv.ParseInt(prefixParts[1], 10, 64)
		accel = parseF32(prefixParts[2])
	case 2:
		t1, _ = strconv.ParseInt(prefixParts[0], 10, 64)
		t2, _ = strconv.ParseInt(prefixParts[1], 10, 64)
	}
	return t1, t2, accel, tagsStr
}
