// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asslex"
)

func TestParseDispatchesEachKnownSectionKind(t *testing.T) {
	src := []byte("[Script Info]\n" +
		"Title: demo\n" +
		"ScriptType: v4.00+\n" +
		"\n" +
		"[V4+ Styles]\n" +
		"Format: Name, Fontname, Fontsize\n" +
		"Style: Default,Arial,20\n" +
		"\n" +
		"[Events]\n" +
		"Format: Layer, Start, End, Style, Text\n" +
		"Dialogue: 0,0:00:00.00,0:00:05.00,Default,Hello\n")

	script, _ := Parse(src)
	require.Len(t, script.Sections, 3)
	assert.Equal(t, assast.ScriptInfoKind, script.Sections[0].Kind())
	assert.Equal(t, assast.StylesKind, script.Sections[1].Kind())
	assert.Equal(t, assast.EventsKind, script.Sections[2].Kind())
	assert.Equal(t, assast.AssV4, script.Version)
}

func TestParseScriptInfoCollectsFieldsInOrder(t *testing.T) {
	src := []byte("[Script Info]\nTitle: a\nPlayResX: 1920\nPlayResY: 1080\n")
	script, out := Parse(src)
	info, ok := script.Section(assast.ScriptInfoKind).(*assast.ScriptInfoSection)
	require.True(t, ok)
	require.Len(t, info.Fields, 3)
	assert.Equal(t, "Title", info.Fields[0].Key.Text(out))
	v, ok := info.Get(out, "playresx")
	require.True(t, ok)
	assert.Equal(t, "1920", v.Text(out))
}

func TestParseScriptInfoWarnsOnNonKeyValueLine(t *testing.T) {
	src := []byte("[Script Info]\nnot a key value line without colon\n")
	script, _ := Parse(src)
	require.NotEmpty(t, script.Issues)
	assert.Equal(t, assast.Warning, script.Issues[0].Severity)
	assert.Equal(t, assast.CategoryStructural, script.Issues[0].Category)
}

func TestParseStylesRequiresFormatLineFirst(t *testing.T) {
	src := []byte("[V4+ Styles]\nStyle: Default,Arial,20\n")
	script, _ := Parse(src)
	sec, ok := script.Section(assast.StylesKind).(*assast.StylesSection)
	require.True(t, ok)
	assert.Empty(t, sec.Rows)
	require.NotEmpty(t, script.Issues)
}

func TestParseStylesRowFieldsMapByFormatColumns(t *testing.T) {
	src := []byte("[V4+ Styles]\nFormat: Name, Fontname, Fontsize\nStyle: Default,Arial,36\n")
	script, out := Parse(src)
	sec, ok := script.Section(assast.StylesKind).(*assast.StylesSection)
	require.True(t, ok)
	require.Len(t, sec.Rows, 1)
	st := sec.Rows[0]
	assert.Equal(t, "Default", st.Name.Text(out))
	assert.Equal(t, "Arial", st.Fontname.Text(out))
	assert.Equal(t, "36", st.Fontsize.Text(out))
}

func TestParseStylesShortRowIsWarnedAndSkipped(t *testing.T) {
	src := []byte("[V4+ Styles]\nFormat: Name, Fontname, Fontsize\nStyle: Default,Arial\n")
	script, _ := Parse(src)
	sec, ok := script.Section(assast.StylesKind).(*assast.StylesSection)
	require.True(t, ok)
	assert.Empty(t, sec.Rows)
	require.NotEmpty(t, script.Issues)
}

func TestParseStylesParentColumnIsCaptured(t *testing.T) {
	src := []byte("[V4+ Styles]\nFormat: Name, Fontname, Fontsize, Parent\nStyle: Child,Arial,20,Default\n")
	script, out := Parse(src)
	sec, ok := script.Section(assast.StylesKind).(*assast.StylesSection)
	require.True(t, ok)
	require.Len(t, sec.Rows, 1)
	assert.True(t, sec.Rows[0].HasParent())
	assert.Equal(t, "Default", sec.Rows[0].Parent.Text(out))
}

func TestParseEventsLastColumnAbsorbsRemainingCommas(t *testing.T) {
	src := []byte("[Events]\nFormat: Layer, Start, End, Style, Text\n" +
		"Dialogue: 0,0:00:00.00,0:00:05.00,Default,Hello, world, with, commas\n")
	script, out := Parse(src)
	events := script.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Hello, world, with, commas", events[0].Text.Text(out))
	assert.Equal(t, assast.Dialogue, events[0].Type)
}

func TestParseEventsUnrecognizedRowLabelIsWarned(t *testing.T) {
	src := []byte("[Events]\nFormat: Layer, Start, End, Style, Text\n" +
		"Banter: 0,0:00:00.00,0:00:05.00,Default,Hi\n")
	script, _ := Parse(src)
	assert.Empty(t, script.Events())
	require.NotEmpty(t, script.Issues)
}

func TestParseEventsCommentRowsAreIgnoredNotErrors(t *testing.T) {
	src := []byte("[Events]\nFormat: Layer, Start, End, Style, Text\n" +
		"; this is a free comment line\n" +
		"Comment: 0,0:00:00.00,0:00:05.00,Default,note to self\n")
	script, _ := Parse(src)
	events := script.Events()
	require.Len(t, events, 1)
	assert.Equal(t, assast.Comment, events[0].Type)
}

func TestParseFontsDecodesClassicUUEntry(t *testing.T) {
	src := []byte("[Fonts]\nfontname: myfont.ttf\n" +
		"begin 644 myfont.ttf\n" +
		"#0V%H\n" +
		"`\n" +
		"end\n")
	script, out := Parse(src)
	sec, ok := script.Section(assast.FontsKind).(*assast.FontsSection)
	require.True(t, ok)
	require.Len(t, sec.Entries, 1)
	assert.Equal(t, "myfont.ttf", sec.Entries[0].NameSp.Text(out))
	decoded, err := assast.DecodeUU(out, sec.Entries[0].Lines)
	require.NoError(t, err)
	assert.NotEmpty(t, decoded)
}

func TestParseFontsGroupsLinesUntilBlankOrNextEntry(t *testing.T) {
	src := []byte("[Fonts]\nfontname: a.ttf\nAAAA\nBBBB\n\nfontname: b.ttf\nCCCC\n")
	script, out := Parse(src)
	sec, ok := script.Section(assast.FontsKind).(*assast.FontsSection)
	require.True(t, ok)
	require.Len(t, sec.Entries, 2)
	assert.Equal(t, "a.ttf", sec.Entries[0].NameSp.Text(out))
	assert.Len(t, sec.Entries[0].Lines, 2)
	assert.Equal(t, "b.ttf", sec.Entries[1].NameSp.Text(out))
	assert.Len(t, sec.Entries[1].Lines, 1)
}

func TestParseGraphicsUsesFilenameKey(t *testing.T) {
	src := []byte("[Graphics]\nfilename: logo.png\nAAAA\n")
	script, out := Parse(src)
	sec, ok := script.Section(assast.GraphicsKind).(*assast.GraphicsSection)
	require.True(t, ok)
	require.Len(t, sec.Entries, 1)
	assert.Equal(t, "logo.png", sec.Entries[0].NameSp.Text(out))
}

func TestParseUnknownSectionRetainsRawLinesVerbatim(t *testing.T) {
	src := []byte("[Aegisub Project Garbage]\nAudio File: foo.wav\nVideo Zoom: 2\n")
	script, out := Parse(src)
	sec, ok := script.Sections[0].(*assast.UnknownSection)
	require.True(t, ok)
	require.Len(t, sec.RawLines, 2)
	assert.Equal(t, "Audio File: foo.wav", sec.RawLines[0].Text(out))
}

func TestRegisterSectionOverridesDefaultToCustomKind(t *testing.T) {
	RegisterSection("My Custom Block", func(src []byte, header assast.Span, body []asslex.Token, issues *assast.Issuer) *assast.CustomSection {
		return &assast.CustomSection{HeaderSp: header, Sp: header, Name: "mycustomblock", Data: len(body)}
	})

	src := []byte("[My Custom Block]\nanything: goes here\nanother: line\n")
	script, _ := Parse(src)
	require.Len(t, script.Sections, 1)
	sec, ok := script.Sections[0].(*assast.CustomSection)
	require.True(t, ok)
	assert.Equal(t, assast.CustomKind, sec.Kind())
	assert.Equal(t, "mycustomblock", sec.Name)
	assert.Equal(t, 2, sec.Data)
}

func TestParseTotalAcrossMultipleMalformedSections(t *testing.T) {
	// A malformed Styles section must not prevent Events from parsing
	// (spec section 4.2's "a malformed section never aborts script
	// parsing").
	src := []byte("[V4+ Styles]\nStyle: Default,Arial,20\n\n" +
		"[Events]\nFormat: Layer, Start, End, Style, Text\n" +
		"Dialogue: 0,0:00:00.00,0:00:05.00,Default,ok\n")
	script, _ := Parse(src)
	require.NotEmpty(t, script.Issues)
	require.Len(t, script.Events(), 1)
}

func TestParseEndToEndScriptProducesAllSections(t *testing.T) {
	src := []byte("\xEF\xBB\xBF[Script Info]\r\n" +
		"Title: Full demo\r\n" +
		"ScriptType: v4.00+\r\n" +
		"PlayResX: 1280\r\n" +
		"PlayResY: 720\r\n" +
		"\r\n" +
		"[V4+ Styles]\r\n" +
		"Format: Name, Fontname, Fontsize, PrimaryColour, Bold, Italic\r\n" +
		"Style: Default,Arial,20,&H00FFFFFF,0,0\r\n" +
		"\r\n" +
		"[Events]\r\n" +
		"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\r\n" +
		"Dialogue: 0,0:00:01.00,0:00:04.00,Default,,0,0,0,,Hello {\\b1}world{\\b0}!\r\n" +
		"Comment: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,note\r\n")

	script, out := Parse(src)
	require.Len(t, script.Sections, 3)
	assert.Equal(t, assast.AssV4, script.Version)

	info, ok := script.Section(assast.ScriptInfoKind).(*assast.ScriptInfoSection)
	require.True(t, ok)
	px, ok := info.Get(out, "PlayResX")
	require.True(t, ok)
	assert.Equal(t, "1280", px.Text(out))

	styles := script.Styles()
	require.Len(t, styles, 1)
	assert.Equal(t, "Default", styles[0].Name.Text(out))

	events := script.Events()
	require.Len(t, events, 2)
	assert.Equal(t, assast.Dialogue, events[0].Type)
	assert.Equal(t, "Hello {\\b1}world{\\b0}!", events[0].Text.Text(out))
	assert.Equal(t, assast.Comment, events[1].Type)
}
