// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asslex

import "github.com/subforge/asscore/assast"

// Lexer is a lazy, O(n) single-pass iterator over a normalized input
// buffer (BOM already stripped, CR/CRLF already folded to LF by the
// caller -- see asstext.StripBOM / asstext.NormalizeLineEndings). Call
// Next until ok is false.
type Lexer struct {
	src    []byte
	pos    int
	line   int
	done   bool
}

// New returns a Lexer over src. src must already be BOM-stripped and
// line-ending normalized; the lexer itself performs no such rewriting
// because doing so would invalidate byte offsets the caller may have
// already computed (e.g. an incremental edit range).
func New(src []byte) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1}
}

// Next returns the next token and true, or a zero Token and false once
// the input is exhausted.
func (l *Lexer) Next() (Token, bool) {
	if l.done || l.pos >= len(l.src) {
		l.done = true
		return Token{}, false
	}
	start := l.pos
	startLine := l.line
	end := start
	for end < len(l.src) && l.src[end] != '\n' {
		end++
	}
	line := l.src[start:end]
	l.pos = end
	if l.pos < len(l.src) {
		l.pos++ // consume '\n'
	}
	l.line++

	sp := assast.Span{Start: start, End: end, Line: startLine, Column: 1}
	return classify(l.src, sp), true
}

// All drains the lexer into a slice, for callers (most of them) that
// need random access/lookahead across tokens rather than streaming.
func All(src []byte) []Token {
	lx := New(src)
	var toks []Token
	for {
		t, ok := lx.Next()
		if !ok {
			break
		}
		toks = append(toks, t)
	}
	return toks
}

func classify(src []byte, sp assast.Span) Token {
	line := sp.Bytes(src)
	trimmed, lead := trimLeadingSpace(line)

	if len(trimmed) == 0 {
		return Token{Kind: Empty, Span: sp}
	}
	if trimmed[0] == ';' || hasPrefixStr(trimmed, "!:") {
		return Token{Kind: Comment, Span: sp}
	}
	if trimmed[0] == '[' {
		if idx := indexByte(trimmed, ']'); idx >= 0 {
			return Token{Kind: SectionHeader, Span: sp}
		}
		// '[' with no matching ']' on this line: not a valid header,
		// fall through to raw/key-value classification below so the
		// parser can still report a useful diagnostic.
	}

	colonIdx := indexByte(trimmed, ':')
	braceIdx := indexByte(trimmed, '{')
	if colonIdx >= 0 && (braceIdx < 0 || colonIdx < braceIdx) {
		keyStart := sp.Start + lead
		keyEnd := keyStart + colonIdx
		valStart := keyEnd + 1
		valEnd := sp.End

		keySpan := trimSpan(src, assast.Span{Start: keyStart, End: keyEnd, Line: sp.Line, Column: keyStart - sp.Start + 1})
		valSpan := trimSpan(src, assast.Span{Start: valStart, End: valEnd, Line: sp.Line, Column: valStart - sp.Start + 1})
		return Token{Kind: KeyValue, Span: sp, Key: keySpan, Value: valSpan}
	}

	return Token{Kind: Raw, Span: sp}
}

func trimLeadingSpace(b []byte) ([]byte, int) {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	return b[i:], i
}

func trimSpan(src []byte, sp assast.Span) assast.Span {
	for sp.Start < sp.End && (src[sp.Start] == ' ' || src[sp.Start] == '\t') {
		sp.Start++
		sp.Column++
	}
	for sp.End > sp.Start && (src[sp.End-1] == ' ' || src[sp.End-1] == '\t') {
		sp.End--
	}
	return sp
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

func hasPrefixStr(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}
