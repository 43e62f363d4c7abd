// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstext

// NormalizeLineEndings rewrites src in place semantics (returning a new
// slice only when a rewrite is needed) so that "\r\n" and lone "\r" both
// become "\n", matching spec section 4.1: "Line-ending is \n after
// normalization; CR and CRLF both map to \n." Byte offsets before the
// first CR are preserved; offsets after a normalized line ending shift,
// which is why the lexer runs this pass before computing any span.
func NormalizeLineEndings(src []byte) []byte {
	if !containsCR(src) {
		return src
	}
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\r' {
			out = append(out, '\n')
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsCR(src []byte) bool {
	for _, c := range src {
		if c == '\r' {
			return true
		}
	}
	return false
}

// TrimTrailingWhitespace trims trailing space and tab bytes from s, but
// never trailing newlines (callers pass single lines already split on
// '\n').
func TrimTrailingWhitespace(s string) string {
	end := len(s)
	for end > 0 && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[:end]
}

// TrimLeadingWhitespace trims leading space and tab bytes from s and
// returns the trimmed string and the number of bytes removed (so callers
// can adjust a span's Start/Column).
func TrimLeadingWhitespace(s string) (string, int) {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	return s[start:], start
}
