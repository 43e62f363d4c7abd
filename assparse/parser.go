// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assparse consumes the asslex token stream into an assast.Script
// (C3). A dispatcher maps section-header text (case-insensitive) to a
// section sub-parser; the parser is resilient end to end -- a malformed
// row never aborts section parsing, and a malformed section never aborts
// script parsing (spec section 4.2).
package assparse

import (
	"strings"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asslex"
	"github.com/subforge/asscore/asstext"
)

// Parse lexes and parses raw bytes into a Script. It returns the buffer
// that the Script's spans actually reference: raw after BOM-stripping
// and line-ending normalization. Callers must keep this buffer alive for
// as long as they use the Script (see assast's package doc).
func Parse(raw []byte) (*assast.Script, []byte) {
	src, _ := asstext.StripBOM(raw)
	src = asstext.NormalizeLineEndings(src)
	toks := asslex.All(src)

	p := &parser{src: src, toks: toks}
	return p.run(), src
}

type parser struct {
	src  []byte
	toks []asslex.Token
	pos  int
	assast.Issuer
	version    assast.ScriptVersion
	versionSet bool
}

func (p *parser) run() *assast.Script {
	var sections []assast.Section
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		switch tok.Kind {
		case asslex.SectionHeader:
			sec := p.parseSection()
			if sec != nil {
				sections = append(sections, sec)
			}
		default:
			// Content that precedes any header. Real-world scripts
			// sometimes have a stray BOM remnant or blank preface
			// line here; it is not an error, just skipped.
			p.pos++
		}
	}
	return &assast.Script{
		Version:  p.version,
		Sections: sections,
		Issues:   p.Issues(),
	}
}

// headerName extracts and normalizes the text between the brackets of a
// SectionHeader token, e.g. "[V4+ Styles]" -> "v4+styles".
func headerName(src []byte, tok asslex.Token) string {
	line := strings.TrimSpace(tok.Span.Text(src))
	line = strings.TrimPrefix(line, "[")
	if idx := strings.IndexByte(line, ']'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.ToLower(strings.Join(strings.Fields(line), ""))
	return line
}

// sectionEnd returns the index, within p.toks, of the next
// SectionHeader token at or after from, or len(p.toks) if there is none.
func (p *parser) sectionEnd(from int) int {
	for i := from; i < len(p.toks); i++ {
		if p.toks[i].Kind == asslex.SectionHeader {
			return i
		}
	}
	return len(p.toks)
}

// parseSection dispatches the header at p.pos to the matching
// sub-parser and advances p.pos past the section's body.
func (p *parser) parseSection() assast.Section {
	headerTok := p.toks[p.pos]
	name := headerName(p.src, headerTok)
	bodyStart := p.pos + 1
	bodyEnd := p.sectionEnd(bodyStart)
	body := p.toks[bodyStart:bodyEnd]

	var sec assast.Section
	switch {
	case name == "scriptinfo":
		sec = p.parseScriptInfo(headerTok, body)
	case name == "v4styles" || name == "v4+styles" || name == "styles":
		sec = p.parseStyles(headerTok, body)
	case name == "events":
		sec = p.parseEvents(headerTok, body)
	case name == "fonts":
		sec = p.parseFonts(headerTok, body)
	case name == "graphics":
		sec = p.parseGraphics(headerTok, body)
	default:
		if custom, ok := lookupCustomSection(name); ok {
			sec = custom(p.src, headerTok.Span, body, &p.Issuer)
		} else {
			sec = p.parseUnknown(headerTok, body)
		}
	}
	p.pos = bodyEnd
	return sec
}

func spanCovering(header assast.Span, body []asslex.Token) assast.Span {
	if len(body) == 0 {
		return header
	}
	return assast.Span{
		Start:  header.Start,
		End:    body[len(body)-1].Span.End,
		Line:   header.Line,
		Column: header.Column,
	}
}
