// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assdelta implements the incremental parser (C5): given an
// existing Script, the byte range an editor just replaced, and the new
// text, it reparses only the affected sections and shifts the spans of
// everything else, emitting a stream of deltas instead of handing back
// an opaque new tree.
package assdelta

import (
	"github.com/subforge/asscore/assast"
)

// DeltaKind discriminates one ParseDelta.
type DeltaKind int

const (
	AddSection DeltaKind = iota
	UpdateSection
	RemoveSection
	ParseIssueDelta
	ReplaceAll // full-reparse fallback; see SPEC_FULL.md supplement #5
)

// Delta is one atomic change an incremental reparse produced.
type Delta struct {
	Kind    DeltaKind
	Section assast.Section  // set for AddSection/UpdateSection
	Index   int             // set for RemoveSection (and Add/Update, its new/changed position)
	Issue   assast.ParseIssue // set for ParseIssueDelta
	Script  *assast.Script  // set for ReplaceAll: the full new script
}

// EditRange is a byte range within the old buffer that was replaced.
type EditRange struct {
	Start, End int
}

// Len returns the number of bytes the edit removed from the old buffer.
func (r EditRange) Len() int { return r.End - r.Start }
