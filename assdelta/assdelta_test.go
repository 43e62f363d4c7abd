// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assdelta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assparse"
)

const sampleScript = "[Script Info]\nTitle: Demo\n\n[V4+ Styles]\nFormat: Name, Fontsize\nStyle: Default,20\n\n[Events]\nFormat: Layer, Start, End, Style, Text\nDialogue: 0,0:00:00.00,0:00:05.00,Default,Hello\n"

func TestReparseShiftsLaterSections(t *testing.T) {
	script, buf := assparse.Parse([]byte(sampleScript))
	require.Len(t, script.Sections, 3)

	edit := EditRange{Start: 21, End: 21} // inside "Title: Demo"
	fragment := []byte("!!")
	newText := splice(buf, edit, fragment)

	newScript, deltas := Reparse(script, buf, edit, fragment, newText)
	require.Len(t, newScript.Sections, 3)
	assert.NotEmpty(t, deltas)

	stylesBefore := script.Sections[1].Span()
	stylesAfter := newScript.Sections[1].Span()
	assert.Equal(t, stylesBefore.Start+len(fragment), stylesAfter.Start)
}

func TestSessionFallsBackOnBoundaryEdit(t *testing.T) {
	script, buf := assparse.Parse([]byte(sampleScript))
	sess := NewSession(script, buf)

	// Edit touches the "[Events]" header bracket.
	idx := indexOf(buf, "[Events]")
	require.GreaterOrEqual(t, idx, 0)
	deltas := sess.Apply(EditRange{Start: idx, End: idx + 1}, []byte("X"))
	require.Len(t, deltas, 1)
	assert.Equal(t, ReplaceAll, deltas[0].Kind)
}

func TestReparseRestampsLineAfterLineCountChangingEdit(t *testing.T) {
	script, buf := assparse.Parse([]byte(sampleScript))
	require.Len(t, script.Sections, 3)
	stylesLineBefore := script.Sections[1].Span().Line

	// Insert two newlines into the ScriptInfo section body, pushing
	// every later section down two lines.
	idx := indexOf(buf, "Title: Demo\n")
	require.GreaterOrEqual(t, idx, 0)
	insertAt := idx + len("Title: Demo\n")
	edit := EditRange{Start: insertAt, End: insertAt}
	fragment := []byte("\n\n")
	newText := splice(buf, edit, fragment)

	newScript, _ := Reparse(script, buf, edit, fragment, newText)
	require.Len(t, newScript.Sections, 3)
	assert.Equal(t, stylesLineBefore+2, newScript.Sections[1].Span().Line)
}

func TestSessionFallsBackWhenFragmentIntroducesNewHeader(t *testing.T) {
	script, buf := assparse.Parse([]byte(sampleScript))
	sess := NewSession(script, buf)

	// Edit lands inside the Styles section's body (not touching any
	// existing header) but the inserted fragment itself opens a brand
	// new "[Fonts]" section -- splitting what was one section into two.
	idx := indexOf(buf, "Style: Default,20\n")
	require.GreaterOrEqual(t, idx, 0)
	insertAt := idx + len("Style: Default,20\n")
	deltas := sess.Apply(EditRange{Start: insertAt, End: insertAt}, []byte("[Fonts]\nfontname: a.ttf\nAAAA\n\n"))
	require.Len(t, deltas, 1)
	assert.Equal(t, ReplaceAll, deltas[0].Kind)
	require.Len(t, sess.Script.Sections, 4)
}

func indexOf(buf []byte, s string) int {
	for i := 0; i+len(s) <= len(buf); i++ {
		if string(buf[i:i+len(s)]) == s {
			return i
		}
	}
	return -1
}
