// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assast"
)

func TestScanBlockOrder(t *testing.T) {
	src := []byte(`\b1\i1\pos(100,200)\r`)
	tags := ScanBlock(src, assast.Span{Start: 0, End: len(src)})
	require.Len(t, tags, 4)

	names := make([]string, len(tags))
	for i, tg := range tags {
		names[i] = tg.NameText(src)
	}
	assert.Equal(t, []string{"b", "i", "pos", "r"}, names)

	assert.Equal(t, "1", tags[0].Args.Text(src))
	assert.Equal(t, "(100,200)", tags[2].Args.Text(src))
	assert.Equal(t, "", tags[3].Args.Text(src))
}

func TestScanBlockComplexity(t *testing.T) {
	src := []byte(`\b1\pos(1,2)\t(0,100,\fad(1,1))`)
	tags := ScanBlock(src, assast.Span{Start: 0, End: len(src)})
	require.GreaterOrEqual(t, len(tags), 2)
	assert.Equal(t, 1, tags[0].Complexity) // b
	assert.Equal(t, 2, tags[1].Complexity) // pos
}

func TestScanBlockUnknownTagDefaultsComplexity2(t *testing.T) {
	src := []byte(`\hello(world)`)
	tags := ScanBlock(src, assast.Span{Start: 0, End: len(src)})
	require.Len(t, tags, 1)
	assert.Equal(t, 2, tags[0].Complexity)
}

func TestSplitEventTextUnbalancedBraceIsLiteral(t *testing.T) {
	src := []byte(`{\b1}Hi{unbalanced`)
	segs := SplitEventText(src, assast.Span{Start: 0, End: len(src)})
	var sawTrailingLiteral bool
	for _, s := range segs {
		if s.Kind == TextSegment && s.Span.Text(src) == "{unbalanced" {
			sawTrailingLiteral = true
		}
	}
	assert.True(t, sawTrailingLiteral)
}

func TestSplitEventTextSegmentsInOrder(t *testing.T) {
	src := []byte(`{\b1\i1}Hi{\r}`)
	segs := SplitEventText(src, assast.Span{Start: 0, End: len(src)})
	require.Len(t, segs, 3)
	assert.Equal(t, BlockSegment, segs[0].Kind)
	require.Len(t, segs[0].Tags, 2)
	assert.Equal(t, TextSegment, segs[1].Kind)
	assert.Equal(t, "Hi", segs[1].Span.Text(src))
	assert.Equal(t, BlockSegment, segs[2].Kind)
}

func TestLowerBreaks(t *testing.T) {
	runs := LowerBreaks([]byte(`Line1\NLine2\nLine3\hEnd`))
	require.Len(t, runs, 7)
	assert.Equal(t, "Line1", runs[0].Text)
	assert.Equal(t, BreakHard, runs[1].Break)
	assert.Equal(t, "Line2", runs[2].Text)
	assert.Equal(t, BreakSoft, runs[3].Break)
	assert.Equal(t, "Line3", runs[4].Text)
	assert.Equal(t, BreakNBSP, runs[5].Break)
	assert.Equal(t, "End", runs[6].Text)
}

func TestRegistryLookup(t *testing.T) {
	h, ok := Lookup("POS")
	require.True(t, ok)
	assert.Equal(t, "pos", h.Name())

	_, ok = Lookup("notarealtag")
	assert.False(t, ok)
}

func TestKaraokeCursorAdvance(t *testing.T) {
	var cur KaraokeCursor
	ok, err := cur.Advance("k", "50")
	require.True(t, ok)
	require.NoError(t, err)
	ok, err = cur.Advance("K", "30")
	require.True(t, ok)
	require.NoError(t, err)
	require.Len(t, cur.Syllables, 2)
	assert.Equal(t, int64(0), cur.Syllables[0].StartCS)
	assert.Equal(t, int64(500), cur.Syllables[0].DurationCS)
	assert.Equal(t, FillSweep, cur.Syllables[1].Fill) // \K aliases \kf
	assert.Equal(t, int64(500), cur.Syllables[1].StartCS)

	ok, err = cur.Advance("kt", "200")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, int64(200), cur.cursorCS)
}
