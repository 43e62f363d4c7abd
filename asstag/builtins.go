// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstag

import (
	"strings"

	"github.com/subforge/asscore/assast"
)

// simpleTag is a Handler built from a declared Schema and a plain
// positional-float/int parse; it covers the large majority of override
// tags, which take either a single toggle/number or a fixed tuple of
// numbers and nothing fancier.
type simpleTag struct {
	name   string
	schema Schema
}

func (t simpleTag) Name() string   { return t.name }
func (t simpleTag) Schema() Schema { return t.schema }

func (t simpleTag) ParseArgs(src []byte, args assast.Span) ([]TagArgument, error) {
	raw := string(args.Bytes(src))
	parts := splitParenArgs(raw)
	if len(t.schema) <= 1 && !strings.ContainsRune(raw, '(') {
		// Single bare-number tags like \b1 \fscx120 take no parens.
		parts = []string{strings.TrimSpace(raw)}
	}
	out := make([]TagArgument, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			if i < len(t.schema) && t.schema[i].Optional {
				continue
			}
			continue
		}
		slot := ArgSlot{Kind: ArgFloat}
		if i < len(t.schema) {
			slot = t.schema[i]
		}
		switch slot.Kind {
		case ArgInt:
			n, err := parseFloats([]string{p})
			if err != nil {
				return nil, err
			}
			out = append(out, TagArgument{Kind: ArgInt, I: int64(n[0])})
		case ArgString:
			out = append(out, TagArgument{Kind: ArgString, S: p})
		default:
			f, err := parseFloats([]string{p})
			if err != nil {
				return nil, err
			}
			out = append(out, TagArgument{Kind: ArgFloat, F: f[0]})
		}
	}
	return out, nil
}

func floatSchema(n int) Schema {
	s := make(Schema, n)
	for i := range s {
		s[i] = ArgSlot{Kind: ArgFloat}
	}
	return s
}

func optionalTail(s Schema, from int) Schema {
	out := make(Schema, len(s))
	copy(out, s)
	for i := from; i < len(out); i++ {
		out[i].Optional = true
	}
	return out
}

func init() {
	reg := func(name string, schema Schema) { RegisterTag(simpleTag{name: name, schema: schema}) }

	// complexity 1 (b/i/u/s/c/1a-4a; the other tags here score 2): style
	// toggles, colors, alpha channels, font.
	reg("b", floatSchema(1))
	reg("i", floatSchema(1))
	reg("u", floatSchema(1))
	reg("s", floatSchema(1))
	reg("c", Schema{{Kind: ArgString}})
	reg("1a", Schema{{Kind: ArgString}})
	reg("2a", Schema{{Kind: ArgString}})
	reg("3a", Schema{{Kind: ArgString}})
	reg("4a", Schema{{Kind: ArgString}})
	reg("1c", Schema{{Kind: ArgString}})
	reg("2c", Schema{{Kind: ArgString}})
	reg("3c", Schema{{Kind: ArgString}})
	reg("4c", Schema{{Kind: ArgString}})
	reg("fn", Schema{{Kind: ArgString}})
	reg("fs", floatSchema(1))
	reg("r", Schema{{Kind: ArgString, Optional: true}})
	reg("q", floatSchema(1))

	// complexity 2: positioning and soft effects.
	reg("pos", floatSchema(2))
	reg("an", floatSchema(1))
	reg("a", floatSchema(1))
	reg("org", floatSchema(2))
	reg("bord", floatSchema(1))
	reg("border", floatSchema(1))
	reg("be", floatSchema(1))
	reg("blur", floatSchema(1))
	reg("shad", floatSchema(1))
	reg("xbord", floatSchema(1))
	reg("ybord", floatSchema(1))
	reg("xshad", floatSchema(1))
	reg("yshad", floatSchema(1))

	// complexity 3: rotation, scale, movement, fades, clipping.
	reg("frx", floatSchema(1))
	reg("fry", floatSchema(1))
	reg("frz", floatSchema(1))
	reg("fr", floatSchema(1))
	reg("fscx", floatSchema(1))
	reg("fscy", floatSchema(1))
	reg("fsp", floatSchema(1))
	reg("move", optionalTail(floatSchema(6), 4))
	reg("fad", floatSchema(2))
	reg("fade", optionalTail(floatSchema(7), 5))
	reg("clip", Schema{{Kind: ArgFloat, Optional: true}, {Kind: ArgFloat, Optional: true}, {Kind: ArgFloat, Optional: true}, {Kind: ArgFloat, Optional: true}})
	reg("iclip", Schema{{Kind: ArgFloat, Optional: true}, {Kind: ArgFloat, Optional: true}, {Kind: ArgFloat, Optional: true}, {Kind: ArgFloat, Optional: true}})

	// complexity 4-5: animation and drawing.
	reg("t", Schema{{Kind: ArgFloat, Optional: true}, {Kind: ArgFloat, Optional: true}, {Kind: ArgFloat, Optional: true}, {Kind: ArgString}})
	reg("pbo", floatSchema(1))
	reg("p", floatSchema(1))
}
