// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assparse

import (
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asslex"
)

func (p *parser) parseEvents(header asslex.Token, body []asslex.Token) *assast.EventsSection {
	sec := &assast.EventsSection{HeaderSp: header.Span}

	cols, rest := p.findFormat(body, "Events")
	if cols == nil {
		sec.Sp = spanCovering(header.Span, body)
		return sec
	}
	sec.Format = cols
	names := columnNames(p.src, cols)
	textCol := -1
	for i, n := range names {
		if n == "text" {
			textCol = i
		}
	}
	if textCol < 0 {
		textCol = len(names) - 1
	}

	row := 0
	for _, tok := range rest {
		switch tok.Kind {
		case asslex.Comment, asslex.Empty:
			continue
		case asslex.KeyValue:
			evType, ok := assast.ParseEventType(tok.Key.Text(p.src))
			if !ok {
				p.Addf(assast.Warning, assast.CategoryStructural, tok.Span,
					"Events: unrecognized row label %q", tok.Key.Text(p.src))
				continue
			}
			fields, ok := splitRowFields(p.src, tok.Value, len(names))
			if !ok {
				p.Addf(assast.Warning, assast.CategoryStructural, tok.Span,
					"Events: row has fewer fields than the %d declared columns", len(names))
				continue
			}
			ev := assast.Event{Sp: tok.Span, Type: evType, RowIndex: row}
			for i, name := range names {
				assignEventField(&ev, name, fields[i])
			}
			if textCol >= 0 && textCol < len(fields) {
				ev.Text = fields[textCol]
			}
			sec.Rows = append(sec.Rows, ev)
			row++
		default:
			p.Addf(assast.Warning, assast.CategoryStructural, tok.Span, "Events: unexpected line")
		}
	}
	sec.Sp = spanCovering(header.Span, body)
	return sec
}

func assignEventField(ev *assast.Event, name string, sp assast.Span) {
	switch name {
	case "layer":
		ev.Layer = sp
	case "start":
		ev.Start = sp
	case "end":
		ev.End = sp
	case "style":
		ev.Style = sp
	case "name", "actor":
		ev.Name = sp
	case "marginl":
		ev.MarginL = sp
	case "marginr":
		ev.MarginR = sp
	case "marginv":
		ev.MarginV = sp
	case "effect":
		ev.Effect = sp
	case "text":
		ev.Text = sp
	}
}
