// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assparse

import (
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asslex"
)

func (p *parser) parseStyles(header asslex.Token, body []asslex.Token) *assast.StylesSection {
	sec := &assast.StylesSection{HeaderSp: header.Span}

	cols, rest := p.findFormat(body, "Styles")
	if cols == nil {
		sec.Sp = spanCovering(header.Span, body)
		return sec
	}
	sec.Format = cols
	names := columnNames(p.src, cols)

	for _, tok := range rest {
		switch tok.Kind {
		case asslex.Comment, asslex.Empty:
			continue
		case asslex.KeyValue:
			if !equalFoldKey(tok.Key.Text(p.src), "Style") {
				p.Addf(assast.Warning, assast.CategoryStructural, tok.Span,
					"Styles: expected a \"Style:\" row, got %q", tok.Key.Text(p.src))
				continue
			}
			fields, ok := splitRowFields(p.src, tok.Value, len(names))
			if !ok {
				p.Addf(assast.Warning, assast.CategoryStructural, tok.Span,
					"Styles: row has fewer fields than the %d declared columns", len(names))
				continue
			}
			st := assast.Style{Sp: tok.Span}
			for i, name := range names {
				st.SetField(name, fields[i])
			}
			sec.Rows = append(sec.Rows, st)
		default:
			p.Addf(assast.Warning, assast.CategoryStructural, tok.Span, "Styles: unexpected line")
		}
	}
	sec.Sp = spanCovering(header.Span, body)
	return sec
}

// findFormat scans body for the first non-comment/non-empty line,
// requires it to be "Format: <cols>", and returns the parsed column
// spans plus the remaining tokens after it. If the line is not a Format
// line, a StructuralParseError-class Warning is recorded and cols is
// nil (callers then treat the section as having zero rows, per spec
// section 4.2: "first non-comment line must be Format: <cols>").
func (p *parser) findFormat(body []asslex.Token, sectionName string) (cols []assast.Span, rest []asslex.Token) {
	for i, tok := range body {
		if tok.Kind == asslex.Comment || tok.Kind == asslex.Empty {
			continue
		}
		if tok.Kind == asslex.KeyValue && isFormatLabel(tok.Key.Text(p.src)) {
			return splitFormat(p.src, tok.Value), body[i+1:]
		}
		p.Addf(assast.Warning, assast.CategoryStructural, tok.Span,
			"%s: expected a \"Format:\" line before any rows", sectionName)
		return nil, body[i:]
	}
	return nil, nil
}
