// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assparse

import (
	"github.com/subforge/asscore/assast"
)

// splitFormat splits a "Format: <cols>" value into trimmed column-name
// spans.
func splitFormat(src []byte, value assast.Span) []assast.Span {
	return splitCommaTrimmed(src, value)
}

func splitCommaTrimmed(src []byte, value assast.Span) []assast.Span {
	var out []assast.Span
	start := value.Start
	for i := value.Start; i <= value.End; i++ {
		if i == value.End || src[i] == ',' {
			out = append(out, trimByteSpan(src, assast.Span{Start: start, End: i, Line: value.Line}))
			start = i + 1
		}
	}
	return out
}

func trimByteSpan(src []byte, sp assast.Span) assast.Span {
	for sp.Start < sp.End && (src[sp.Start] == ' ' || src[sp.Start] == '\t') {
		sp.Start++
	}
	for sp.End > sp.Start && (src[sp.End-1] == ' ' || src[sp.End-1] == '\t') {
		sp.End--
	}
	return sp
}

// splitRowFields splits value into exactly numCols fields, where the
// last field absorbs every remaining byte verbatim (including any
// further commas), matching spec section 4.2: "the row body is split by
// ',' into exactly len(cols) fields except that the last declared column
// ... receives the remainder verbatim". ok is false if value has fewer
// than numCols-1 top-level commas (i.e. fewer fields than declared).
func splitRowFields(src []byte, value assast.Span, numCols int) (fields []assast.Span, ok bool) {
	if numCols <= 0 {
		return nil, true
	}
	fields = make([]assast.Span, 0, numCols)
	start := value.Start
	for col := 0; col < numCols-1; col++ {
		idx := indexByteFrom(src, start, value.End, ',')
		if idx < 0 {
			return nil, false
		}
		fields = append(fields, trimByteSpan(src, assast.Span{Start: start, End: idx, Line: value.Line}))
		start = idx + 1
	}
	// last column: remainder verbatim, only leading whitespace trimmed
	// (trailing content, including commas, is preserved literally).
	last := assast.Span{Start: start, End: value.End, Line: value.Line}
	for last.Start < last.End && (src[last.Start] == ' ' || src[last.Start] == '\t') {
		last.Start++
	}
	fields = append(fields, last)
	return fields, true
}

func indexByteFrom(src []byte, from, to int, c byte) int {
	for i := from; i < to; i++ {
		if src[i] == c {
			return i
		}
	}
	return -1
}

// columnNames lowercases and trims each format column span for lookup.
func columnNames(src []byte, cols []assast.Span) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = normalizeColumnName(c.Text(src))
	}
	return names
}

func normalizeColumnName(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// isFormatLabel reports whether key (from a KeyValue token) is a
// "Format" line label rather than a Styles/Events row label.
func isFormatLabel(key string) bool {
	return normalizeColumnName(key) == "format"
}
