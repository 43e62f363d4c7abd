// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assparse

import (
	"strings"
	"sync"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asslex"
)

// SectionParser builds a CustomSection from a section's header and body
// tokens. Implementations should use issues.Addf for any diagnostic
// instead of returning an error -- parsing stays total (spec section
// 4.10).
type SectionParser func(src []byte, header assast.Span, body []asslex.Token, issues *assast.Issuer) *assast.CustomSection

var (
	customSectionsMu sync.RWMutex
	customSections    = map[string]SectionParser{}
)

// RegisterSection associates a non-standard "[name]" header (matched
// case/whitespace-insensitively, the same way built-in headers are) with
// a SectionParser. Registration is expected at process start, mirroring
// the tag registry's append-only, write-once-then-read-only-forever
// convention (spec section 9); registering the same name twice replaces
// the previous parser rather than erroring, since tests commonly
// re-register between cases.
func RegisterSection(name string, parse SectionParser) {
	customSectionsMu.Lock()
	defer customSectionsMu.Unlock()
	customSections[normalizeHeaderName(name)] = parse
}

func lookupCustomSection(normalizedName string) (SectionParser, bool) {
	customSectionsMu.RLock()
	defer customSectionsMu.RUnlock()
	p, ok := customSections[normalizedName]
	return p, ok
}

func normalizeHeaderName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
