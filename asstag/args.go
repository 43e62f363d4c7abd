// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstag

import (
	"fmt"
	"strconv"
	"strings"
)

// splitParenArgs strips one layer of optional surrounding parentheses
// and splits the interior on commas, trimming each piece. Most multi-arg
// tags (\pos, \move, \clip, \fad, \t, ...) use this shape.
func splitParenArgs(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseFloats(parts []string) ([]float64, error) {
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func floatArgs(fs []float64) []TagArgument {
	out := make([]TagArgument, len(fs))
	for i, f := range fs {
		out[i] = TagArgument{Kind: ArgFloat, F: f}
	}
	return out
}
