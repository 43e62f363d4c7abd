// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assanalysis is the semantic analyzer (C6): style resolution
// with inheritance and cycle detection, dialogue timing-overlap via
// sweep-line, text/tag complexity scoring, and a configurable lint rule
// engine built on top of those computations.
package assanalysis

import "github.com/subforge/asscore/assast"

// Analysis is the immutable result of analyzing one Script: every
// downstream computation (lint rules, renderer diagnostics) reads from
// this rather than re-deriving it.
type Analysis struct {
	Script *assast.Script
	Src    []byte

	Styles       map[string]*ResolvedStyle // keyed by style name
	StyleOrder   []string                  // declaration order, for deterministic iteration
	Overlaps     []Overlap
	Scores       []EventScore // parallel to Script.Events()
}

// Overlap is one pair of events (by index into Script.Events()) that
// coexist at some instant. Invariant: Low < High.
type Overlap struct {
	Low, High int
}

// Analyze runs every C6 computation over script and returns the
// combined result. It never errors: malformed input surfaces as
// diagnostics via the lint engine, not as a Go error return (spec
// section 4.10's "no implicit panics/aborts" policy extended to
// analysis).
func Analyze(script *assast.Script, src []byte) *Analysis {
	a := &Analysis{Script: script, Src: src}
	a.Styles, a.StyleOrder = ResolveStyles(script, src)
	a.Overlaps = TimingOverlaps(script, src)
	a.Scores = ScoreEvents(script, src)
	return a
}
