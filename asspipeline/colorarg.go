// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asspipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/subforge/asscore/asstext"
)

// parseColorArg parses a \c/\1c../4c tag argument, which is a bare
// &HBBGGRR& color literal without an alpha channel (tag-level alpha is
// set separately via \1a../4a).
func parseColorArg(raw string) (asstext.ColorLiteral, error) {
	return asstext.ParseColorLiteral(strings.TrimSpace(raw))
}

// parseAlphaArg parses a \1a../4a tag argument -- a bare &HXX& hex byte
// -- into an alpha value in ASS's inverted convention (0 = opaque).
func parseAlphaArg(raw string) (asstext.ColorLiteral, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "&H")
	s = strings.TrimPrefix(s, "&h")
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	s = strings.TrimSuffix(s, "&")
	if len(s) != 2 {
		return asstext.ColorLiteral{}, fmt.Errorf("invalid alpha literal %q", raw)
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return asstext.ColorLiteral{}, err
	}
	return asstext.ColorLiteral{A: byte(v), HadAlpha: true}, nil
}
