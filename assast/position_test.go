// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

import "testing"

func TestPositionTrackerLineColumnFirstLine(t *testing.T) {
	tr := NewPositionTracker([]byte("abc\ndef\n"))
	line, col := tr.LineColumn(1)
	if line != 1 || col != 2 {
		t.Fatalf("got line=%d col=%d, want line=1 col=2", line, col)
	}
}

func TestPositionTrackerLineColumnSecondLine(t *testing.T) {
	tr := NewPositionTracker([]byte("abc\ndef\n"))
	line, col := tr.LineColumn(4) // 'd' in "def"
	if line != 2 || col != 1 {
		t.Fatalf("got line=%d col=%d, want line=2 col=1", line, col)
	}
}

func TestSpanRepositionUsesTrackerOffset(t *testing.T) {
	tr := NewPositionTracker([]byte("abc\ndef\nghi\n"))
	sp := Span{Start: 8, End: 11} // "ghi"
	sp = sp.Reposition(tr)
	if sp.Line != 3 || sp.Column != 1 {
		t.Fatalf("got line=%d col=%d, want line=3 col=1", sp.Line, sp.Column)
	}
}

func TestSpanRepositionNilTrackerIsNoop(t *testing.T) {
	sp := Span{Start: 8, End: 11, Line: 99, Column: 5}
	sp = sp.Reposition(nil)
	if sp.Line != 99 || sp.Column != 5 {
		t.Fatalf("nil tracker must leave Line/Column untouched, got line=%d col=%d", sp.Line, sp.Column)
	}
}
