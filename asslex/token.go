// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asslex implements the C2 lexer: a single O(n) pass over the
// normalized input buffer that partitions it into lines and classifies
// each line's shape (section header, key/value, raw, comment, empty)
// with source spans. The lexer performs no interpretation of field
// contents -- it only partitions bytes (spec section 4.1).
package asslex

import "github.com/subforge/asscore/assast"

// Kind discriminates a Token's shape.
type Kind int

const (
	SectionHeader Kind = iota
	KeyValue
	Raw
	Comment
	Empty
)

func (k Kind) String() string {
	switch k {
	case SectionHeader:
		return "SectionHeader"
	case KeyValue:
		return "KeyValue"
	case Raw:
		return "Raw"
	case Comment:
		return "Comment"
	case Empty:
		return "Empty"
	default:
		return "?"
	}
}

// Token is one classified line.
type Token struct {
	Kind Kind
	// Span is the full line (excluding its trailing '\n').
	Span assast.Span
	// Key/Value are only set for Kind==KeyValue: Key is the text before
	// the first ':', Value is the text after it (both spans inside
	// Span, with surrounding whitespace trimmed).
	Key, Value assast.Span
}
