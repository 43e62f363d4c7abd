// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstag

import "github.com/subforge/asscore/assast"

// ScanBlock parses one override block's interior (the bytes between `{`
// and `}`, exclusive) into a sequence of OverrideTags. Each run
// `\name` is ASCII-alphabetic; its args extend up to the next `\` or the
// end of the block. Bytes that precede the first backslash, or that sit
// between a name and its own first non-letter character, are otherwise
// ignored -- a handler that needs delimiters like parentheses strips
// them itself from Args (see splitParenArgs).
func ScanBlock(src []byte, span assast.Span) []assast.OverrideTag {
	var out []assast.OverrideTag
	i := span.Start
	end := span.End

	for i < end {
		if src[i] != '\\' {
			i++
			continue
		}
		nameStart := i + 1
		nameEnd := nameStart
		for nameEnd < end && isAsciiAlpha(src[nameEnd]) {
			nameEnd++
		}
		if nameStart == nameEnd {
			// Lone backslash, e.g. a stray "\" with no following
			// letters: emitted as an empty-name tag so the
			// EmptyOverride lint rule (asslint) can see it.
			argsEnd := nextBackslash(src, nameStart, end)
			out = append(out, assast.OverrideTag{
				Name:       assast.Span{Start: nameStart, End: nameStart, Line: span.Line},
				Args:       assast.Span{Start: nameStart, End: argsEnd, Line: span.Line},
				Complexity: complexityFor(""),
				Position:   i,
			})
			i = argsEnd
			continue
		}

		argsEnd := nextBackslash(src, nameEnd, end)
		name := assast.Span{Start: nameStart, End: nameEnd, Line: span.Line}
		args := assast.Span{Start: nameEnd, End: argsEnd, Line: span.Line}
		out = append(out, assast.OverrideTag{
			Name:       name,
			Args:       args,
			Complexity: complexityFor(normalize(src[nameStart:nameEnd])),
			Position:   i,
		})
		i = argsEnd
	}
	return out
}

func nextBackslash(src []byte, from, end int) int {
	for i := from; i < end; i++ {
		if src[i] == '\\' {
			return i
		}
	}
	return end
}

func isAsciiAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func normalize(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
