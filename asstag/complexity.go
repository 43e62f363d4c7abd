// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstag

// complexityTable is the fixed per-tag complexity table (spec section 6,
// "Complexity scoring"). Unlisted tags -- including genuinely unknown
// ones -- fall back to 2, matching "Unknown tags are preserved ... with
// complexity=2" (spec section 3).
var complexityTable = map[string]int{
	"b": 1, "i": 1, "u": 1, "s": 1, "c": 1,
	"1a": 1, "2a": 1, "3a": 1, "4a": 1,

	"pos": 2, "an": 2, "org": 2, "border": 2, "blur": 2, "shad": 2,

	"frx": 3, "fry": 3, "frz": 3, "fr": 3, "fscx": 3, "fscy": 3, "fscz": 3, "fsp": 3,
	"move": 3, "fade": 3, "fad": 3, "clip": 3, "iclip": 3,

	"t":   4,
	"pbo": 5,

	"p": 5,
}

// complexityFor returns the fixed complexity for a lowercased tag name,
// defaulting to 2 for anything not in the table (covers both a genuinely
// unknown name and the empty name of a malformed "\" run).
func complexityFor(name string) int {
	if c, ok := complexityTable[name]; ok {
		return c
	}
	return 2
}
