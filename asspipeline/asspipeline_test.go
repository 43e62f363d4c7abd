// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asspipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assanalysis"
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/assparse"
)

const doc = "[Script Info]\nScriptType: v4.00+\n\n" +
	"[V4+ Styles]\nFormat: Name, Fontsize, Bold, PrimaryColour\n" +
	"Style: Default,20,0,&H00FFFFFF\n\n" +
	"[Events]\nFormat: Layer, Start, End, Style, Text\n" +
	"Dialogue: 0,0:00:00.00,0:00:05.00,Default,{\\b1\\pos(10,20)}Hello\n" +
	"Dialogue: 0,0:00:03.00,0:00:08.00,Default,Overlap!\n" +
	"Comment: 0,0:00:01.00,0:00:02.00,Default,hidden\n"

func TestSelectReportsActiveAndDirty(t *testing.T) {
	script, src := assparse.Parse([]byte(doc))
	sel := NewSelector()

	first := sel.Select(script, src, 100)
	require.Contains(t, first.Indices, 0)
	assert.True(t, first.IsDirty, "first call is always dirty")
	assert.Contains(t, first.NewlyActive, 0)

	second := sel.Select(script, src, 150)
	assert.Contains(t, second.Indices, 0)
	assert.Empty(t, second.NewlyActive)
	assert.Empty(t, second.NewlyInactive)
}

func TestSelectRespectsRenderComments(t *testing.T) {
	script, src := assparse.Parse([]byte(doc))
	sel := NewSelector()
	sel.RenderComments = false

	active := sel.Select(script, src, 150)
	for _, idx := range active.Indices {
		assert.NotEqual(t, assast.Comment, script.Events()[idx].Type)
	}
}

func TestProcessEventAppliesBoldAndPos(t *testing.T) {
	script, src := assparse.Parse([]byte(doc))
	a := assanalysis.Analyze(script, src)
	ctx := Context{Src: src, Styles: a.Styles}

	ev := script.Events()[0]
	layers := ProcessEvent(ev, 100, ctx, 0, 0)

	require.Len(t, layers, 1)
	assert.Equal(t, "Hello", layers[0].UTF8)
	assert.Contains(t, effectKinds(layers[0].Effects), assast.EffBold)
}

func TestProcessEventPlainTextNoOverride(t *testing.T) {
	script, src := assparse.Parse([]byte(doc))
	a := assanalysis.Analyze(script, src)
	ctx := Context{Src: src, Styles: a.Styles}

	ev := script.Events()[1]
	layers := ProcessEvent(ev, 500, ctx, 0, 1)
	require.Len(t, layers, 1)
	assert.Equal(t, "Overlap!", layers[0].UTF8)
}

func TestProbeExplainsInactiveEvent(t *testing.T) {
	script, src := assparse.Parse([]byte(doc))
	report := Probe(script, src, 600)

	require.Len(t, report.Events, 3)
	assert.True(t, report.Events[1].Active)
	assert.False(t, report.Events[2].Active, "comment event is out of range at t=600")
}

func TestApplyTagKaraokeAdvancesCursorNotRenderState(t *testing.T) {
	rs := NewRenderState(&assanalysis.ResolvedStyle{})
	applyTag(&rs, "k", "50", 0, 0)
	require.Len(t, rs.Karaoke.Syllables, 1)
	assert.Equal(t, int64(500), rs.Karaoke.Syllables[0].DurationCS)
}

func TestApplyAnimationTagInterpolatesScale(t *testing.T) {
	rs := NewRenderState(&assanalysis.ResolvedStyle{ScaleX: 100, ScaleY: 100})
	applyTag(&rs, "t", `(0,100,\fscx200)`, 50, 0)
	assert.InDelta(t, 150, rs.ScaleX, 0.01)
}

func effectKinds(effs []assast.TextEffect) []assast.TextEffectKind {
	var out []assast.TextEffectKind
	for _, e := range effs {
		out = append(out, e.Kind)
	}
	return out
}
