// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assanalysis

import (
	"strconv"

	"github.com/subforge/asscore/assast"
)

// ResolvedStyle is a fully numeric/typed copy of a Style with
// inheritance flattened and a complexity score attached (spec section
// 3, "ResolvedStyle (analysis output)").
type ResolvedStyle struct {
	Name        string
	Fontname    string
	Fontsize    float64
	Bold        bool
	Italic      bool
	Underline   bool
	StrikeOut   bool
	ScaleX      float64
	ScaleY      float64
	Spacing     float64
	Angle       float64
	BorderStyle int
	Outline     float64
	Shadow      float64
	Alignment   int
	MarginL     int
	MarginR     int
	MarginV     int
	Encoding    int

	Depth             int // 0 = root, no parent
	CircularInheritance bool
}

// ResolveStyles builds the parent map for every Style row, detects
// cycles via DFS with a visiting set, and flattens each style's fields
// from root to leaf. A style participating in a cycle keeps its own
// (leaf) field values unchanged and is flagged CircularInheritance,
// matching spec section 4.4's "cycles ... yield the leaf style
// unchanged".
func ResolveStyles(script *assast.Script, src []byte) (map[string]*ResolvedStyle, []string) {
	rows := script.Styles()
	byName := make(map[string]*assast.Style, len(rows))
	order := make([]string, 0, len(rows))
	for i := range rows {
		// A duplicate name overwrites the earlier declaration here; the
		// duplication itself is a lint concern (see DuplicateName in
		// lint.go), not something resolution needs to flag twice.
		name := rows[i].Name.Text(src)
		byName[name] = &rows[i]
		order = append(order, name)
	}

	out := make(map[string]*ResolvedStyle, len(rows))
	state := make(map[string]int) // 0=unvisited 1=visiting 2=done
	cyclic := make(map[string]bool)
	var stack []string

	var resolve func(name string) *ResolvedStyle
	resolve = func(name string) *ResolvedStyle {
		if r, ok := out[name]; ok {
			return r
		}
		st, ok := byName[name]
		if !ok {
			return nil
		}
		if state[name] == 1 {
			// Back edge: every style on the stack from name onward is
			// part of the cycle.
			for i := len(stack) - 1; i >= 0; i-- {
				cyclic[stack[i]] = true
				if stack[i] == name {
					break
				}
			}
			return nil
		}
		state[name] = 1
		stack = append(stack, name)

		var parent *ResolvedStyle
		if st.HasParent() {
			parentName := st.Parent.Text(src)
			if parentName != "" && parentName != name {
				parent = resolve(parentName)
			}
		}
		stack = stack[:len(stack)-1]

		r := fieldsOf(st, src)
		if cyclic[name] {
			r.CircularInheritance = true
		} else if parent != nil && !parent.CircularInheritance {
			inheritUnset(r, st, parent, src)
			r.Depth = parent.Depth + 1
		}
		state[name] = 2
		out[name] = r
		return r
	}

	for _, name := range order {
		resolve(name)
	}
	return out, order
}

func fieldsOf(st *assast.Style, src []byte) *ResolvedStyle {
	return &ResolvedStyle{
		Name:        st.Name.Text(src),
		Fontname:    st.Fontname.Text(src),
		Fontsize:    parseF(st.Fontsize.Text(src)),
		Bold:        parseBool01(st.Bold.Text(src)),
		Italic:      parseBool01(st.Italic.Text(src)),
		Underline:   parseBool01(st.Underline.Text(src)),
		StrikeOut:   parseBool01(st.StrikeOut.Text(src)),
		ScaleX:      parseF(st.ScaleX.Text(src)),
		ScaleY:      parseF(st.ScaleY.Text(src)),
		Spacing:     parseF(st.Spacing.Text(src)),
		Angle:       parseF(st.Angle.Text(src)),
		BorderStyle: int(parseF(st.BorderStyle.Text(src))),
		Outline:     parseF(st.Outline.Text(src)),
		Shadow:      parseF(st.Shadow.Text(src)),
		Alignment:   int(parseF(st.Alignment.Text(src))),
		MarginL:     int(parseF(st.MarginL.Text(src))),
		MarginR:     int(parseF(st.MarginR.Text(src))),
		MarginV:     int(parseF(st.MarginV.Text(src))),
		Encoding:    int(parseF(st.Encoding.Text(src))),
	}
}

// inheritUnset fills any field st left blank in the source with the
// parent's already-resolved value. A field counts as "set" if its
// borrowed span is non-empty.
func inheritUnset(r *ResolvedStyle, st *assast.Style, parent *ResolvedStyle, src []byte) {
	if st.Fontname.Empty() {
		r.Fontname = parent.Fontname
	}
	if st.Fontsize.Empty() {
		r.Fontsize = parent.Fontsize
	}
	if st.Bold.Empty() {
		r.Bold = parent.Bold
	}
	if st.Italic.Empty() {
		r.Italic = parent.Italic
	}
	if st.Underline.Empty() {
		r.Underline = parent.Underline
	}
	if st.StrikeOut.Empty() {
		r.StrikeOut = parent.StrikeOut
	}
	if st.ScaleX.Empty() {
		r.ScaleX = parent.ScaleX
	}
	if st.ScaleY.Empty() {
		r.ScaleY = parent.ScaleY
	}
	if st.Spacing.Empty() {
		r.Spacing = parent.Spacing
	}
	if st.Angle.Empty() {
		r.Angle = parent.Angle
	}
	if st.BorderStyle.Empty() {
		r.BorderStyle = parent.BorderStyle
	}
	if st.Outline.Empty() {
		r.Outline = parent.Outline
	}
	if st.Shadow.Empty() {
		r.Shadow = parent.Shadow
	}
	if st.Alignment.Empty() {
		r.Alignment = parent.Alignment
	}
	if st.MarginL.Empty() {
		r.MarginL = parent.MarginL
	}
	if st.MarginR.Empty() {
		r.MarginR = parent.MarginR
	}
	if st.MarginV.Empty() {
		r.MarginV = parent.MarginV
	}
	if st.Encoding.Empty() {
		r.Encoding = parent.Encoding
	}
}

func parseF(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseBool01(s string) bool {
	return s == "-1" || s == "1"
}
