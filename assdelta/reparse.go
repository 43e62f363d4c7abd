// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assdelta

import (
	"bytes"
	"log/slog"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/assparse"
)

// FullReparseThreshold is the default accumulated-edit count after which
// Session.Apply gives up on incremental tracking and performs a full
// reparse, emitting a single ReplaceAll delta (spec section 4.3,
// "Fallback"). Editors with their own cost model can ignore this and call
// assparse.Parse directly whenever they prefer.
const FullReparseThreshold = 32

// Session threads accumulated-edit bookkeeping across successive calls
// to Reparse, so a caller doesn't have to count edits itself to get the
// fallback behavior.
type Session struct {
	Script      *assast.Script
	Buffer      []byte
	editsSince  int
	log         *slog.Logger
}

// NewSession wraps an already-parsed Script/Buffer pair (e.g. the result
// of assparse.Parse) for incremental editing.
func NewSession(script *assast.Script, buffer []byte) *Session {
	return &Session{Script: script, Buffer: buffer, log: slog.Default()}
}

// Apply performs one edit, choosing incremental reparse or a full
// fallback, and updates the session's Script/Buffer in place.
func (s *Session) Apply(edit EditRange, fragment []byte) []Delta {
	newBuf := splice(s.Buffer, edit, fragment)
	s.editsSince++

	if s.editsSince > FullReparseThreshold || !editWithinSectionBodies(s.Script, edit) || fragmentIntroducesHeader(fragment) {
		script, buf := assparse.Parse(newBuf)
		s.Script, s.Buffer = script, buf
		s.editsSince = 0
		s.log.Debug("assdelta: full reparse fallback", "reason", "threshold or boundary edit")
		return []Delta{{Kind: ReplaceAll, Script: script}}
	}

	script, deltas := Reparse(s.Script, s.Buffer, edit, fragment, newBuf)
	s.Script, s.Buffer = script, newBuf
	return deltas
}

func splice(old []byte, edit EditRange, fragment []byte) []byte {
	out := make([]byte, 0, len(old)-edit.Len()+len(fragment))
	out = append(out, old[:edit.Start]...)
	out = append(out, fragment...)
	out = append(out, old[edit.End:]...)
	return out
}

// editWithinSectionBodies reports false if the edit range touches a '['
// that could be a section header boundary, in which case the caller
// should fall back to a full reparse rather than guess (spec section
// 4.3, step 2).
func editWithinSectionBodies(script *assast.Script, edit EditRange) bool {
	for _, sec := range script.Sections {
		h := sec.Header()
		if spansOverlap(h.Start, h.End, edit.Start, edit.End) {
			return false
		}
	}
	return true
}

func spansOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// fragmentIntroducesHeader reports whether the inserted bytes themselves
// carry a '[' that could open a brand-new section header inside what was
// previously a single section's body (spec section 4.3, step 2's "the
// edit overlaps section-boundary syntax" case). Bytes outside the edited
// range are unchanged and were already classified by the prior parse, so
// it is specifically a '[' arriving via fragment that can turn one
// section into two -- a single-section reparse of the affected slice
// would silently drop every section after the first (see
// reparseOneSection), so this forces the full-reparse fallback instead.
func fragmentIntroducesHeader(fragment []byte) bool {
	return bytes.IndexByte(fragment, '[') >= 0
}

// Reparse implements the incremental algorithm directly (spec section
// 4.3): sections whose span overlaps edit are reparsed from the new
// buffer; every later section is shifted by Δ; earlier, unaffected
// sections are untouched.
func Reparse(old *assast.Script, oldText []byte, edit EditRange, fragment []byte, newText []byte) (*assast.Script, []Delta) {
	deltaLen := len(fragment) - edit.Len()
	tracker := assast.NewPositionTracker(newText)

	var deltas []Delta
	var sections []assast.Section

	for i, sec := range old.Sections {
		sp := sec.Span()
		switch {
		case sp.End <= edit.Start:
			// Entirely before the edit: untouched.
			sections = append(sections, sec)
		case sp.Start >= edit.End:
			// Entirely after the edit: shift spans and restamp
			// Line/Column against the final buffer, no reparse.
			shifted := assast.ShiftSection(sec, deltaLen, tracker)
			sections = append(sections, shifted)
			if deltaLen != 0 {
				deltas = append(deltas, Delta{Kind: UpdateSection, Section: shifted, Index: i})
			}
		default:
			// Overlaps the edit: reparse this section's slice of the
			// new buffer standalone, by re-running the full section
			// parser over just its own bytes (cheap: sections are
			// small relative to a script) and re-anchoring the result.
			reparsed := reparseOneSection(sec, oldText, edit, fragment, newText, tracker)
			if reparsed == nil {
				deltas = append(deltas, Delta{Kind: RemoveSection, Index: i})
				continue
			}
			sections = append(sections, reparsed)
			deltas = append(deltas, Delta{Kind: UpdateSection, Section: reparsed, Index: i})
		}
	}

	for _, iss := range old.Issues {
		deltas = append(deltas, Delta{Kind: ParseIssueDelta, Issue: iss})
	}

	newScript := &assast.Script{Version: old.Version, Sections: sections, Issues: old.Issues}
	return newScript, deltas
}

// reparseOneSection re-extracts the affected section's byte range from
// newText (accounting for the edit's length delta) and re-invokes the
// whole-document parser over just that slice, splicing its single
// resulting section back in. A section that no longer contains a
// recognizable header (the edit deleted it) returns nil.
func reparseOneSection(sec assast.Section, oldText []byte, edit EditRange, fragment []byte, newText []byte, tracker *assast.PositionTracker) assast.Section {
	sp := sec.Span()
	deltaLen := len(fragment) - edit.Len()

	start := sp.Start
	end := sp.End
	if end >= edit.Start {
		end += deltaLen
	}
	if start > len(newText) {
		start = len(newText)
	}
	if end > len(newText) {
		end = len(newText)
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		return nil
	}

	slice := newText[start:end]
	reparsedScript, buf := assparse.Parse(slice)
	if len(reparsedScript.Sections) == 0 {
		return nil
	}
	// The slice was parsed as a standalone document, so its spans'
	// Line/Column are relative to the slice's own start (line 1), not
	// the full buffer; tracker (built from newText) restamps them
	// correctly once the Start/End offsets are anchored into newText.
	return assast.ShiftSection(reparsedScript.Sections[0], start-computeSliceBase(buf), tracker)
}

// computeSliceBase is 0: assparse.Parse's returned buffer is exactly the
// (BOM-stripped, normalized) slice passed in, so spans it produced are
// already relative to slice start 0. Kept as a named step rather than a
// bare 0 literal so the anchoring logic above reads as deliberate.
func computeSliceBase(buf []byte) int { return 0 }
