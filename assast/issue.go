// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

import "fmt"

// Severity is the level of a ParseIssue or lint Issue.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Category classifies a ParseIssue per the taxonomy in spec.md section 7.
type Category int

const (
	CategoryStructural Category = iota
	CategoryContent
	CategorySystem
	CategoryRender
)

func (c Category) String() string {
	switch c {
	case CategoryStructural:
		return "structural"
	case CategoryContent:
		return "content"
	case CategorySystem:
		return "system"
	case CategoryRender:
		return "render"
	default:
		return "unknown"
	}
}

// ParseIssue is a non-fatal diagnostic collected during parsing. Parsing
// is total: malformed input produces ParseIssues, never a hard error,
// except for the few SystemError conditions documented in spec.md
// section 7 (invalid UTF-8 that recovery cannot fix, input too large).
type ParseIssue struct {
	Severity Severity
	Category Category
	Message  string
	Line     int
	Column   int
	Offset   int
	Length   int

	// SuggestedFix is an optional human-readable remediation hint (spec
	// section 4.4's "suggested-fix hint" for rules that can name one,
	// e.g. the missing-style lint suggesting to define the style or use
	// an existing one). Empty when a rule has no fix to suggest.
	SuggestedFix string
}

func (i ParseIssue) String() string {
	return i.Severity.String() + ": " + i.Message
}

// Issuer accumulates ParseIssues. Both the lexer-driven parser and the
// incremental reparser share this so sub-parsers can be written against
// one small interface.
type Issuer struct {
	issues []ParseIssue
}

// Add appends an issue.
func (s *Issuer) Add(i ParseIssue) { s.issues = append(s.issues, i) }

// Addf appends a constructed issue at the given span, reading Line/Column
// from the span.
func (s *Issuer) Addf(sev Severity, cat Category, sp Span, format string, args ...any) {
	s.Add(ParseIssue{
		Severity: sev,
		Category: cat,
		Message:  fmt.Sprintf(format, args...),
		Line:     sp.Line,
		Column:   sp.Column,
		Offset:   sp.Start,
		Length:   sp.Len(),
	})
}

// Issues returns the accumulated issues in insertion order.
func (s *Issuer) Issues() []ParseIssue { return s.issues }
