// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstag

import (
	"strconv"
	"strings"

	"github.com/subforge/asscore/assast"
)

// KaraokeFill discriminates which sweep style a karaoke syllable uses.
type KaraokeFill int

const (
	FillNone  KaraokeFill = iota // \k: hard cut, no sweep
	FillSweep                    // \kf (and its \K alias): color sweep across the syllable
	FillOutline                  // \ko: outline-only sweep
)

// KaraokeSyllable is one cursor advance produced by a \k/\K/\kf/\ko/\kt
// run while walking an event's tags left to right.
type KaraokeSyllable struct {
	Fill      KaraokeFill
	StartCS   int64 // absolute centiseconds from event start
	DurationCS int64
}

// KaraokeCursor accumulates syllables while a RenderState walk
// (asspipeline) processes an event's tags in order. \k and \kf/\K take a
// duration in centiseconds and advance the cursor by it; \kt instead
// sets the cursor to an absolute centisecond offset from the event
// start, per spec section 9's resolution of the "cumulative or absolute"
// open question.
type KaraokeCursor struct {
	cursorCS int64
	Syllables []KaraokeSyllable
}

// Advance processes one karaoke tag (name without the leading backslash,
// lowercased except that \K is passed as "K") and its raw argument text,
// updating the cursor. ok is false if name is not a karaoke tag at all.
func (k *KaraokeCursor) Advance(name, args string) (ok bool, err error) {
	args = strings.TrimSpace(args)
	switch name {
	case "k", "kf", "ko":
		fill := FillNone
		if name == "kf" {
			fill = FillSweep
		} else if name == "ko" {
			fill = FillOutline
		}
		cs, perr := strconv.ParseInt(args, 10, 64)
		if perr != nil {
			return true, perr
		}
		durCS := cs * 10 // \k/\kf/\ko args are in 1/10s units; cursor tracks centiseconds.
		k.Syllables = append(k.Syllables, KaraokeSyllable{Fill: fill, StartCS: k.cursorCS, DurationCS: durCS})
		k.cursorCS += durCS
		return true, nil
	case "K":
		// \K is an alias for \kf (sweep fill), not a distinct style.
		return k.Advance("kf", args)
	case "kt":
		cs, perr := strconv.ParseInt(args, 10, 64)
		if perr != nil {
			return true, perr
		}
		k.cursorCS = cs
		return true, nil
	default:
		return false, nil
	}
}

// karaokeHandler registers \k, \K, \kf, \ko, \kt purely so they resolve
// in the tag registry and carry the right declared Schema; the actual
// cursor bookkeeping happens via KaraokeCursor during the RenderState
// walk (asspipeline), not here, since a Handler is stateless per call.
type karaokeHandler struct{ name string }

func (h karaokeHandler) Name() string { return h.name }
func (h karaokeHandler) Schema() Schema {
	return Schema{{Kind: ArgInt}}
}
func (h karaokeHandler) ParseArgs(src []byte, args assast.Span) ([]TagArgument, error) {
	s := strings.TrimSpace(string(args.Bytes(src)))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return []TagArgument{{Kind: ArgInt, I: n}}, nil
}

func init() {
	for _, name := range []string{"k", "K", "kf", "ko", "kt"} {
		RegisterTag(karaokeHandler{name: name})
	}
}
