// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstext

import "unicode/utf8"

// ValidateUTF8 reports whether src is valid UTF-8.
func ValidateUTF8(src []byte) bool {
	return utf8.Valid(src)
}

// RecoverUTF8 returns a copy of src with every invalid byte sequence
// replaced by U+FFFD, and the number of replacements made. It never
// fails: the only SystemError-class UTF-8 failure this module can raise
// is in the caller's decision to treat "too many replacements" as fatal,
// which is out of scope for this pure function. This mirrors spec
// section 7's "UTF-8 ... after recovery failure" -- recovery itself is
// total, only the caller's policy on top of it can decide to give up.
func RecoverUTF8(src []byte) (out []byte, replaced int) {
	if utf8.Valid(src) {
		return src, 0
	}
	out = make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, "�"...)
			replaced++
			i++
			continue
		}
		out = append(out, src[i:i+size]...)
		i += size
	}
	return out, replaced
}
