// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assparse

import (
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asslex"
)

func (p *parser) parseScriptInfo(header asslex.Token, body []asslex.Token) *assast.ScriptInfoSection {
	sec := &assast.ScriptInfoSection{HeaderSp: header.Span}
	for _, tok := range body {
		switch tok.Kind {
		case asslex.KeyValue:
			sec.Fields = append(sec.Fields, assast.KeyValue{Key: tok.Key, Value: tok.Value})
			if equalFoldKey(tok.Key.Text(p.src), "ScriptType") {
				if v, ok := assast.ParseScriptType(tok.Value.Text(p.src)); ok {
					p.version = v
					p.versionSet = true
				}
			}
		case asslex.Comment, asslex.Empty:
			// ignored
		default:
			p.Addf(assast.Warning, assast.CategoryStructural, tok.Span,
				"ScriptInfo: line is neither a comment nor a key: value pair")
		}
	}
	sec.Sp = spanCovering(header.Span, body)
	return sec
}

func equalFoldKey(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
