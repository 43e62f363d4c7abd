// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstext

import (
	"strconv"
	"strings"
)

// ParseFloatField parses a Style/Event numeric field, tolerating the
// stray leading/trailing whitespace real-world scripts accumulate. It
// never errors on a plainly malformed value; instead it returns def,
// matching the "never abort on a single bad field" resilience policy
// used throughout the parser (spec section 4.2).
func ParseFloatField(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// ParseIntField is ParseFloatField's integer counterpart, used for
// Layer/MarginL/MarginR/MarginV/BorderStyle/Encoding/Alignment.
func ParseIntField(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return int(v)
}

// IsValidNumber reports whether s parses as a plain (optionally signed,
// optionally fractional) decimal number, with no surrounding garbage.
func IsValidNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsValidBool01 reports whether s is a valid ASS boolean-flag field,
// which is either "0"/"1" (Bold/Italic/Underline/StrikeOut) or "-1"/"0"
// depending on convention; both are accepted since real-world scripts
// disagree on the sign.
func IsValidBool01(s string) bool {
	s = strings.TrimSpace(s)
	return s == "0" || s == "1" || s == "-1"
}
