// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assshape

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/subforge/asscore/assast"
)

type drawCacheKey struct {
	commands string
	scale    int
}

// DrawingCache memoizes ASS drawing-command evaluation by (command
// string, \p scale), per spec section 4.6 ("drawing paths are memoized
// by a key tuple ... / (command-string); an LRU with size limit and
// hit/miss counters").
type DrawingCache struct {
	cache  *lru.Cache[drawCacheKey, []assast.PathCommand]
	hits   int64
	misses int64
}

// NewDrawingCache returns a DrawingCache holding up to capacity entries.
func NewDrawingCache(capacity int) *DrawingCache {
	if capacity <= 0 {
		capacity = 256
	}
	c, _ := lru.New[drawCacheKey, []assast.PathCommand](capacity)
	return &DrawingCache{cache: c}
}

// Stats reports cache hit/miss counters.
func (d *DrawingCache) Stats() (hits, misses int64) { return d.hits, d.misses }

// Evaluate parses commands (the text of a `\p >= 1` drawing segment)
// into a path, scaling coordinates by the `\p` divisor 2^(scale-1)
// (spec section 4.6), consulting the cache first.
func (d *DrawingCache) Evaluate(commands string, scale int) []assast.PathCommand {
	key := drawCacheKey{commands: commands, scale: scale}
	if d.cache != nil {
		if v, ok := d.cache.Get(key); ok {
			d.hits++
			return v
		}
	}
	d.misses++
	path := evaluateDrawing(commands, scale)
	if d.cache != nil {
		d.cache.Add(key, path)
	}
	return path
}

// evaluateDrawing parses commands without caching. Supported ops: m
// (MoveTo), l (LineTo), b (cubic bezier, CubicTo), c (close current
// spline with the implicit closing segment back to the last m), s
// (uniform b-spline, approximated as line segments through its control
// points -- full b-spline evaluation belongs to the effect/raster stage,
// not this command-stream parse). Unknown tokens and malformed argument
// counts are skipped rather than erroring, matching the renderer's
// "ignore, don't abort" drawing-command tolerance (spec section 4.10).
func evaluateDrawing(src string, scale int) []assast.PathCommand {
	divisor := float32(int(1) << uint(maxInt(scale-1, 0)))
	if divisor == 0 {
		divisor = 1
	}

	toks := strings.Fields(src)
	var out []assast.PathCommand
	var start assast.PathCommand
	haveStart := false

	i := 0
	readPoint := func() (float32, float32, bool) {
		if i+1 >= len(toks) {
			return 0, 0, false
		}
		x, errX := strconv.ParseFloat(toks[i], 32)
		y, errY := strconv.ParseFloat(toks[i+1], 32)
		i += 2
		if errX != nil || errY != nil {
			return 0, 0, false
		}
		return float32(x) / divisor, float32(y) / divisor, true
	}
	isNumeric := func(s string) bool {
		_, err := strconv.ParseFloat(s, 32)
		return err == nil
	}

	for i < len(toks) {
		op := toks[i]
		i++
		switch op {
		case "m":
			x, y, ok := readPoint()
			if !ok {
				continue
			}
			cmd := assast.PathCommand{Kind: assast.MoveTo, X: x, Y: y}
			out = append(out, cmd)
			start, haveStart = cmd, true
		case "l":
			for {
				x, y, ok := readPoint()
				if !ok {
					break
				}
				out = append(out, assast.PathCommand{Kind: assast.LineTo, X: x, Y: y})
				if i >= len(toks) || !isNumeric(toks[i]) {
					break
				}
			}
		case "b":
			for {
				x1, y1, ok1 := readPoint()
				x2, y2, ok2 := readPoint()
				x3, y3, ok3 := readPoint()
				if !ok1 || !ok2 || !ok3 {
					break
				}
				out = append(out, assast.PathCommand{Kind: assast.CubicTo, X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3})
				if i >= len(toks) || !isNumeric(toks[i]) {
					break
				}
			}
		case "s":
			var pts []assast.PathCommand
			for {
				x, y, ok := readPoint()
				if !ok {
					break
				}
				pts = append(pts, assast.PathCommand{Kind: assast.LineTo, X: x, Y: y})
				if i >= len(toks) || !isNumeric(toks[i]) {
					break
				}
			}
			out = append(out, pts...)
		case "c":
			if haveStart {
				out = append(out, assast.PathCommand{Kind: assast.Close, X: start.X, Y: start.Y})
			}
		case "p":
			i++ // pbo argument; carries no geometry of its own here
		default:
			// unknown token; skip
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
