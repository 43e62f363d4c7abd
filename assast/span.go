// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assast defines the borrowed-span AST produced by assparse: the
// section/entity tree whose string fields are slices of the original
// input buffer rather than owned copies.
package assast

import "fmt"

// Span identifies a byte range within an immutable source buffer, along
// with the 1-based line and column of its first byte. Every string field
// in the AST is a Span rather than a copied string; call Text to recover
// the substring from the buffer that produced the AST.
type Span struct {
	Start, End int
	Line       int
	Column     int
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Text returns the substring of src identified by s. It panics if s does
// not lie within src's byte range, matching the debug-build pointer-range
// check described in spec Invariant 1 -- callers that built s from src are
// expected to never violate this.
func (s Span) Text(src []byte) string {
	return string(src[s.Start:s.End])
}

// Bytes returns the byte slice of src identified by s, without copying.
func (s Span) Bytes(src []byte) []byte {
	return src[s.Start:s.End]
}

// Valid reports whether s lies within [0, srcLen] and is non-decreasing.
func (s Span) Valid(srcLen int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= srcLen
}

// Shift returns a copy of s with Start and End moved by delta bytes. Line
// and Column are left untouched; callers that shift spans across an edit
// that crosses a line boundary must restamp them separately, via
// Reposition and a PositionTracker built from the post-edit buffer (see
// assdelta.Reparse, which does this for every Span it shifts).
func (s Span) Shift(delta int) Span {
	s.Start += delta
	s.End += delta
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d[%d,%d)", s.Line, s.Column, s.Start, s.End)
}
