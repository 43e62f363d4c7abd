// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

import "fmt"

// DecodeUU decodes the body of a MediaEntry (a [Fonts]/[Graphics] block)
// to raw bytes. Two wire forms are accepted, matching spec section 6's
// "Embedded media" interface:
//
//   - the classic UUencode "begin NNN name / body / end" form, where each
//     body line starts with a length byte (' '+n, with '`' meaning zero);
//   - the line-oriented variant ASS itself emits, where every character
//     of every line is a plain 6-bit-packed symbol (offset by '!', with
//     '`' also accepted in place of '!'+0) and there is no begin/end
//     wrapper or per-line length byte -- lines are decoded back-to-back
//     and the encoder is expected to have only padded the final line.
//
// Decoding is lazy by design (spec section 4.2): callers only invoke this
// when they actually need the embedded font/graphic bytes.
func DecodeUU(src []byte, lines []Span) ([]byte, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	first := lines[0].Text(src)
	if len(first) >= 6 && first[:6] == "begin " {
		return decodeUUClassic(src, lines)
	}
	return decodeUULineOriented(src, lines)
}

// uuChar decodes one 6-bit symbol whose value is offset by base (' ' for
// the classic form, '!' for the line-oriented form); '`' is always 0.
func uuChar(c, base byte) (byte, bool) {
	switch {
	case c == '`':
		return 0, true
	case c >= base && c <= '_':
		return (c - base) & 0x3f, true
	default:
		return 0, false
	}
}

// decodeUUClassic handles "begin MODE NAME", length-prefixed body lines,
// a terminating zero-length line, and "end".
func decodeUUClassic(src []byte, lines []Span) ([]byte, error) {
	out := make([]byte, 0, len(lines)*45)
	for _, ln := range lines {
		line := ln.Text(src)
		if line == "" || line == "end" {
			continue
		}
		if len(line) >= 6 && line[:6] == "begin " {
			continue
		}
		n, ok := uuChar(line[0], ' ')
		if !ok {
			return nil, fmt.Errorf("assast: invalid UU length byte %q", line[0])
		}
		length := int(n)
		if length == 0 {
			continue
		}
		body := line[1:]
		decoded, err := decodeUUGroups(body, length, ' ')
		if err != nil {
			return nil, err
		}
		out = append(out, decoded...)
	}
	return out, nil
}

// decodeUULineOriented handles the ASS wire form: every line is pure
// 6-bit symbols with no length byte; the final line may be short (2 or 3
// symbols, carrying 1 or 2 trailing bytes).
func decodeUULineOriented(src []byte, lines []Span) ([]byte, error) {
	out := make([]byte, 0, len(lines)*60)
	for i, ln := range lines {
		line := ln.Text(src)
		if line == "" {
			continue
		}
		full := len(line) / 4 * 4
		decoded, err := decodeUUGroups(line[:full], full/4*3, '!')
		if err != nil {
			return nil, err
		}
		out = append(out, decoded...)
		rem := line[full:]
		if rem == "" {
			continue
		}
		if len(rem) != 2 && len(rem) != 3 {
			return nil, fmt.Errorf("assast: malformed trailing UU group on line %d", i)
		}
		tail, err := decodeUUGroups(rem, len(rem)-1, '!')
		if err != nil {
			return nil, err
		}
		out = append(out, tail...)
	}
	return out, nil
}

// decodeUUGroups decodes up-to-`want` bytes from 4-character UU groups in
// body, where the final group may be 2 or 3 characters when want is not a
// multiple of 3.
func decodeUUGroups(body string, want int, base byte) ([]byte, error) {
	out := make([]byte, 0, want)
	i := 0
	for want > 0 {
		var c [4]byte
		n := 4
		if want < 3 {
			n = want + 1
		}
		if i+n > len(body) {
			return nil, fmt.Errorf("assast: truncated UU data")
		}
		for j := 0; j < n; j++ {
			v, ok := uuChar(body[i+j], base)
			if !ok {
				return nil, fmt.Errorf("assast: invalid UU character %q", body[i+j])
			}
			c[j] = v
		}
		b0 := (c[0] << 2) | (c[1] >> 4)
		out = append(out, b0)
		want--
		if want == 0 {
			break
		}
		b1 := (c[1] << 4) | (c[2] >> 2)
		out = append(out, b1)
		want--
		if want == 0 {
			break
		}
		b2 := (c[2] << 6) | c[3]
		out = append(out, b2)
		want--
		i += n
	}
	return out, nil
}
