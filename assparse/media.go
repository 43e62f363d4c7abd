// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assparse

import (
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asslex"
)

func (p *parser) parseFonts(header asslex.Token, body []asslex.Token) *assast.FontsSection {
	sec := &assast.FontsSection{HeaderSp: header.Span}
	sec.Entries = p.parseMediaEntries(body, "fontname")
	sec.Sp = spanCovering(header.Span, body)
	return sec
}

func (p *parser) parseGraphics(header asslex.Token, body []asslex.Token) *assast.GraphicsSection {
	sec := &assast.GraphicsSection{HeaderSp: header.Span}
	sec.Entries = p.parseMediaEntries(body, "filename")
	sec.Sp = spanCovering(header.Span, body)
	return sec
}

// parseMediaEntries groups body into entries keyed by entryKey (either
// "fontname" or "filename"): a KeyValue line with that key starts a new
// entry, and subsequent Raw lines until the next such KeyValue (or a
// blank line) are its UU-encoded body lines (spec section 4.2).
func (p *parser) parseMediaEntries(body []asslex.Token, entryKey string) []assast.MediaEntry {
	var entries []assast.MediaEntry
	var cur *assast.MediaEntry
	for _, tok := range body {
		switch tok.Kind {
		case asslex.KeyValue:
			if equalFoldKey(tok.Key.Text(p.src), entryKey) {
				entries = append(entries, assast.MediaEntry{NameSp: tok.Value})
				cur = &entries[len(entries)-1]
				continue
			}
			if cur != nil {
				cur.Lines = append(cur.Lines, tok.Span)
			}
		case asslex.Raw:
			if cur != nil {
				cur.Lines = append(cur.Lines, tok.Span)
			}
		case asslex.Empty:
			cur = nil
		case asslex.Comment:
			// ignored
		}
	}
	return entries
}

func (p *parser) parseUnknown(header asslex.Token, body []asslex.Token) *assast.UnknownSection {
	sec := &assast.UnknownSection{HeaderSp: header.Span}
	for _, tok := range body {
		sec.RawLines = append(sec.RawLines, tok.Span)
	}
	sec.Sp = spanCovering(header.Span, body)
	return sec
}
