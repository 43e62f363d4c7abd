// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstag

import "github.com/subforge/asscore/assast"

// SegmentKind discriminates a Segment.
type SegmentKind int

const (
	TextSegment  SegmentKind = iota // literal run, may still contain \N \n \h
	BlockSegment                    // a {...} override block, already scanned into Tags
)

// Segment is one contiguous run of an Event's text: either literal
// content or a parsed override block.
type Segment struct {
	Kind SegmentKind
	Span assast.Span // TextSegment: the literal run; BlockSegment: interior of {...}
	Tags []assast.OverrideTag
}

// SplitEventText walks an Event's text span and splits it into Text and
// Block segments. An unmatched '{' (no following '}') is treated as
// literal text from that point to the end of the span, per spec section
// 3 ("Unbalanced `{` is treated as literal text").
func SplitEventText(src []byte, text assast.Span) []Segment {
	var out []Segment
	i := text.Start
	end := text.End
	runStart := i

	flushText := func(upto int) {
		if upto > runStart {
			out = append(out, Segment{
				Kind: TextSegment,
				Span: assast.Span{Start: runStart, End: upto, Line: text.Line},
			})
		}
	}

	for i < end {
		if src[i] != '{' {
			i++
			continue
		}
		closeIdx := indexByteRange(src, i+1, end, '}')
		if closeIdx < 0 {
			// Unbalanced: everything from here is literal.
			i = end
			break
		}
		flushText(i)
		inner := assast.Span{Start: i + 1, End: closeIdx, Line: text.Line}
		out = append(out, Segment{
			Kind: BlockSegment,
			Span: inner,
			Tags: ScanBlock(src, inner),
		})
		i = closeIdx + 1
		runStart = i
	}
	flushText(i)
	return out
}

func indexByteRange(src []byte, from, to int, c byte) int {
	for i := from; i < to; i++ {
		if src[i] == c {
			return i
		}
	}
	return -1
}

// BreakKind discriminates the three line-break markers recognized inside
// literal text (spec section 3: "\N, \n, \h ... lower to hard-break,
// soft-break, non-breaking-space respectively -- not override tags").
type BreakKind int

const (
	BreakNone BreakKind = iota
	BreakHard           // \N
	BreakSoft           // \n
	BreakNBSP           // \h
)

// LowerBreaks scans a literal text run (a TextSegment's bytes) into a
// sequence of plain-text runs interspersed with break markers, so a
// shaper (assshape) never has to special-case backslash sequences
// itself.
func LowerBreaks(text []byte) []BreakRun {
	var out []BreakRun
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if text[i] != '\\' {
			continue
		}
		var kind BreakKind
		switch text[i+1] {
		case 'N':
			kind = BreakHard
		case 'n':
			kind = BreakSoft
		case 'h':
			kind = BreakNBSP
		default:
			continue
		}
		if i > start {
			out = append(out, BreakRun{Text: string(text[start:i])})
		}
		out = append(out, BreakRun{Break: kind})
		start = i + 2
		i++ // consumed two bytes
	}
	if start < len(text) {
		out = append(out, BreakRun{Text: string(text[start:])})
	}
	return out
}

// BreakRun is either a plain-text run (Break == BreakNone) or a single
// break marker (Text == "").
type BreakRun struct {
	Text  string
	Break BreakKind
}
