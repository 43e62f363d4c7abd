// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assanalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assparse"
)

const doc = "[Script Info]\nScriptType: v4.00+\n\n" +
	"[V4+ Styles]\nFormat: Name, Fontsize, Bold\n" +
	"Style: Default,20,0\n" +
	"Style: Child,,1\n\n" +
	"[Events]\nFormat: Layer, Start, End, Style, Text\n" +
	"Dialogue: 0,0:00:00.00,0:00:05.00,Default,{\\b1\\pos(1,2)}Hello\n" +
	"Dialogue: 0,0:00:03.00,0:00:08.00,Default,Overlap!\n" +
	"Dialogue: 0,0:00:10.00,0:00:05.00,Missing,Bad range\n"

func TestAnalyzeEndToEnd(t *testing.T) {
	script, src := assparse.Parse([]byte(doc))
	a := Analyze(script, src)

	require.Contains(t, a.Styles, "Default")
	require.Len(t, a.Script.Events(), 3)

	require.NotEmpty(t, a.Overlaps)
	assert.Equal(t, Overlap{Low: 0, High: 1}, a.Overlaps[0])

	require.Len(t, a.Scores, 3)
	assert.GreaterOrEqual(t, a.Scores[0].AnimationScore, 1)
}

func TestStyleInheritanceFillsFromParentConventionColumn(t *testing.T) {
	const withParent = "[Script Info]\nScriptType: v4.00+\n\n" +
		"[V4+ Styles]\nFormat: Name, Fontsize, Bold, Parent\n" +
		"Style: Base,30,1,\n" +
		"Style: Derived,,,Base\n\n" +
		"[Events]\nFormat: Layer, Start, End, Style, Text\n"
	script, src := assparse.Parse([]byte(withParent))
	a := Analyze(script, src)

	derived := a.Styles["Derived"]
	require.NotNil(t, derived)
	assert.Equal(t, float64(30), derived.Fontsize)
	assert.True(t, derived.Bold)
	assert.Equal(t, 1, derived.Depth)
}

func TestCircularInheritanceDetected(t *testing.T) {
	const cyclic = "[Script Info]\nScriptType: v4.00+\n\n" +
		"[V4+ Styles]\nFormat: Name, Fontsize, Parent\n" +
		"Style: A,10,B\n" +
		"Style: B,10,A\n\n" +
		"[Events]\nFormat: Layer, Start, End, Style, Text\n"
	script, src := assparse.Parse([]byte(cyclic))
	a := Analyze(script, src)
	assert.True(t, a.Styles["A"].CircularInheritance || a.Styles["B"].CircularInheritance)
}

func TestLintFindsMissingStyleAndNegativeDuration(t *testing.T) {
	script, src := assparse.Parse([]byte(doc))
	a := Analyze(script, src)
	issues := Lint(a, BuiltinRules(), DefaultLintConfig())

	var sawMissing, sawNegative bool
	for _, iss := range issues {
		if iss.Message == `event references undeclared style "Missing"` {
			sawMissing = true
		}
		if iss.Message == "event start is not before its end" {
			sawNegative = true
		}
	}
	assert.True(t, sawMissing)
	assert.True(t, sawNegative)
}

func TestLintMinSeverityFilters(t *testing.T) {
	script, src := assparse.Parse([]byte(doc))
	a := Analyze(script, src)
	issues := Lint(a, BuiltinRules(), LintConfig{MinSeverity: 100})
	assert.Empty(t, issues)
}
