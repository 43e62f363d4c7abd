// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstext

import "fmt"

// ColorLiteral is the decoded form of an ASS "&HBBGGRR&" or
// "&HAABBGGRR&" literal, before alpha inversion is applied (spec
// section 6: "the alpha byte is inverted (0=opaque)"). Callers that want
// a premultiplied/straight [image/color.RGBA] should go through
// asscolor.Parse, which applies the inversion; this function only does
// lexical decoding.
type ColorLiteral struct {
	A, B, G, R byte
	HadAlpha   bool // true if the 8-hex-digit AABBGGRR form was used
}

// ParseColorLiteral parses an ASS BGR(A) color literal. Both "&HBBGGRR&"-
// shaped strings (6 hex digits) and "&HAABBGGRR&"-shaped strings (8 hex
// digits) are accepted; a bare leading "&H" with no trailing "&" is also
// accepted since some encoders omit the closing ampersand. Returns an
// error for anything else.
func ParseColorLiteral(s string) (ColorLiteral, error) {
	body := s
	if len(body) >= 2 && (body[0] == '&' || body[0] == '0') && (body[1] == 'H' || body[1] == 'h' || body[1] == 'x' || body[1] == 'X') {
		body = body[2:]
	} else {
		return ColorLiteral{}, fmt.Errorf("asstext: invalid color literal %q: missing &H prefix", s)
	}
	body = trimTrailingAmp(body)
	switch len(body) {
	case 6:
		b, g, r, ok := hex6(body)
		if !ok {
			return ColorLiteral{}, fmt.Errorf("asstext: invalid color literal %q", s)
		}
		return ColorLiteral{A: 0, B: b, G: g, R: r}, nil
	case 8:
		a, b, g, r, ok := hex8(body)
		if !ok {
			return ColorLiteral{}, fmt.Errorf("asstext: invalid color literal %q", s)
		}
		return ColorLiteral{A: a, B: b, G: g, R: r, HadAlpha: true}, nil
	default:
		return ColorLiteral{}, fmt.Errorf("asstext: invalid color literal %q: expected 6 or 8 hex digits, got %d", s, len(body))
	}
}

// IsValidColorLiteral reports whether s parses as an ASS color literal.
func IsValidColorLiteral(s string) bool {
	_, err := ParseColorLiteral(s)
	return err == nil
}

func trimTrailingAmp(s string) string {
	if len(s) > 0 && s[len(s)-1] == '&' {
		return s[:len(s)-1]
	}
	return s
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func hexByte(s string, i int) (byte, bool) {
	hi, ok1 := hexDigit(s[i])
	lo, ok2 := hexDigit(s[i+1])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

// hex6 decodes a 6-hex-digit "BBGGRR" literal (left-to-right: blue,
// green, red -- spec section 6).
func hex6(s string) (b, g, r byte, ok bool) {
	bb, ok1 := hexByte(s, 0)
	gg, ok2 := hexByte(s, 2)
	rr, ok3 := hexByte(s, 4)
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, false
	}
	return bb, gg, rr, true
}

// hex8 decodes an 8-hex-digit "AABBGGRR" literal, matching the glossary:
// "ASS color literal is packed as 0xAABBGGRR".
func hex8(s string) (a, b, g, r byte, ok bool) {
	aa, ok0 := hexByte(s, 0)
	bb, ok1 := hexByte(s, 2)
	gg, ok2 := hexByte(s, 4)
	rr, ok3 := hexByte(s, 6)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, 0, false
	}
	return aa, bb, gg, rr, true
}
