// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

// OverrideTag is one `\name[args]` run inside an override block `{...}`.
// Args is the raw, unparsed argument text; a handler that wants typed
// arguments parses Args itself against its declared schema (see
// asstag.Tag), deferred until that handler actually runs (spec section
// 3: "parsing of args into typed TagArgument values is deferred").
type OverrideTag struct {
	Name       Span
	Args       Span
	Complexity int
	Position   int // absolute byte offset of the leading '\'
}

// NameText returns the lowercased tag name.
func (t OverrideTag) NameText(src []byte) string {
	return normalizeKey(t.Name.Text(src))
}
