// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asstext provides the C1 text utilities: BOM detection, UTF-8
// validation/recovery, line-ending and whitespace normalization, and the
// color/time/numeric literal validators shared by the parser and
// analyzer.
package asstext

// BOMKind identifies a detected byte-order mark.
type BOMKind int

const (
	NoBOM BOMKind = iota
	UTF8BOM
	UTF16LEBOM
	UTF16BEBOM
	UTF32LEBOM
	UTF32BEBOM
)

func (k BOMKind) String() string {
	switch k {
	case UTF8BOM:
		return "UTF-8"
	case UTF16LEBOM:
		return "UTF-16LE"
	case UTF16BEBOM:
		return "UTF-16BE"
	case UTF32LEBOM:
		return "UTF-32LE"
	case UTF32BEBOM:
		return "UTF-32BE"
	default:
		return "none"
	}
}

// bomSignatures is ordered longest-first so UTF-32LE (FF FE 00 00) is not
// mistaken for UTF-16LE (FF FE).
var bomSignatures = []struct {
	kind BOMKind
	sig  []byte
}{
	{UTF32LEBOM, []byte{0xFF, 0xFE, 0x00, 0x00}},
	{UTF32BEBOM, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{UTF8BOM, []byte{0xEF, 0xBB, 0xBF}},
	{UTF16LEBOM, []byte{0xFF, 0xFE}},
	{UTF16BEBOM, []byte{0xFE, 0xFF}},
}

// DetectBOM reports which BOM, if any, src begins with.
func DetectBOM(src []byte) BOMKind {
	for _, b := range bomSignatures {
		if hasPrefix(src, b.sig) {
			return b.kind
		}
	}
	return NoBOM
}

// StripBOM removes a leading UTF-8 BOM from src, if present. Other BOM
// kinds indicate the caller handed us bytes in the wrong encoding; they
// are detected (DetectBOM still reports them) but not stripped here,
// since this package only operates on UTF-8 -- spec section 6 states the
// script source format is UTF-8 with an optional BOM.
func StripBOM(src []byte) (out []byte, had bool) {
	if hasPrefix(src, []byte{0xEF, 0xBB, 0xBF}) {
		return src[3:], true
	}
	return src, false
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}
