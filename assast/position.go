// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

import "sort"

// PositionTracker maps a byte offset within a buffer back to its 1-based
// line and column without rescanning from byte 0 each time -- a small
// precomputed line-start table searched by binary search. Used by
// ShiftSection to restamp Span.Line/Column after an edit changes the
// buffer's line count, since Span.Shift only translates Start/End.
type PositionTracker struct {
	lineStarts []int // lineStarts[i] is the byte offset of line i+1's first byte
}

// NewPositionTracker scans src once for '\n' bytes and records every
// line's starting offset.
func NewPositionTracker(src []byte) *PositionTracker {
	starts := make([]int, 1, 64)
	starts[0] = 0
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &PositionTracker{lineStarts: starts}
}

// LineColumn returns the 1-based line and column of offset within the
// buffer this tracker was built from. offset is clamped into range.
func (t *PositionTracker) LineColumn(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	i := sort.Search(len(t.lineStarts), func(i int) bool { return t.lineStarts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - t.lineStarts[i] + 1
}

// Reposition returns a copy of sp with Line/Column restamped from its
// Start offset using t. Callers shift Start/End first, then reposition.
func (sp Span) Reposition(t *PositionTracker) Span {
	if t == nil {
		return sp
	}
	sp.Line, sp.Column = t.LineColumn(sp.Start)
	return sp
}
