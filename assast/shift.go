// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

// shiftSpan translates sp by delta bytes and restamps its Line/Column
// from the resulting Start offset via t, so a section shifted across a
// line-count-changing edit never carries stale position info (spec
// section 4.3's position tracker, see PositionTracker in position.go).
func shiftSpan(sp Span, delta int, t *PositionTracker) Span {
	return sp.Shift(delta).Reposition(t)
}

// Shift translates every span this Style borrows by delta bytes,
// restamping Line/Column via t. Used by assdelta when an edit lies
// entirely before a section: the section itself is not reparsed, only
// its offsets (and derived line/column) move.
func (st Style) Shift(delta int, t *PositionTracker) Style {
	st.Sp = shiftSpan(st.Sp, delta, t)
	for _, f := range st.spanFields() {
		*f = shiftSpan(*f, delta, t)
	}
	if st.Extra != nil {
		extra := make(map[string]Span, len(st.Extra))
		for k, v := range st.Extra {
			extra[k] = shiftSpan(v, delta, t)
		}
		st.Extra = extra
	}
	return st
}

func (st *Style) spanFields() []*Span {
	return []*Span{
		&st.Name, &st.Fontname, &st.Fontsize, &st.PrimaryColour, &st.SecondaryColour,
		&st.OutlineColour, &st.BackColour, &st.Bold, &st.Italic, &st.Underline,
		&st.StrikeOut, &st.ScaleX, &st.ScaleY, &st.Spacing, &st.Angle,
		&st.BorderStyle, &st.Outline, &st.Shadow, &st.Alignment, &st.MarginL,
		&st.MarginR, &st.MarginV, &st.Encoding, &st.Parent,
	}
}

// Shift translates every span this Event borrows by delta bytes,
// restamping Line/Column via t.
func (ev Event) Shift(delta int, t *PositionTracker) Event {
	ev.Sp = shiftSpan(ev.Sp, delta, t)
	ev.Layer = shiftSpan(ev.Layer, delta, t)
	ev.Start = shiftSpan(ev.Start, delta, t)
	ev.End = shiftSpan(ev.End, delta, t)
	ev.Style = shiftSpan(ev.Style, delta, t)
	ev.Name = shiftSpan(ev.Name, delta, t)
	ev.MarginL = shiftSpan(ev.MarginL, delta, t)
	ev.MarginR = shiftSpan(ev.MarginR, delta, t)
	ev.MarginV = shiftSpan(ev.MarginV, delta, t)
	ev.Effect = shiftSpan(ev.Effect, delta, t)
	ev.Text = shiftSpan(ev.Text, delta, t)
	return ev
}

func shiftSpans(spans []Span, delta int, t *PositionTracker) []Span {
	if spans == nil {
		return nil
	}
	out := make([]Span, len(spans))
	for i, s := range spans {
		out[i] = shiftSpan(s, delta, t)
	}
	return out
}

// ShiftSection returns a copy of sec with every borrowed span translated
// by delta bytes and its Line/Column restamped via t, preserving its
// concrete type. Used for every section that lies entirely after an
// edit's end (spec section 4.3, step 3), and for a freshly reparsed
// section being re-anchored into the full document (whose own parse
// computed Line/Column relative to its own slice, not the full buffer).
// t should be built from the final, post-edit buffer; pass nil only when
// the caller genuinely has no buffer to reposition against (Line/Column
// are then left untouched, same as before this tracker existed).
func ShiftSection(sec Section, delta int, t *PositionTracker) Section {
	if delta == 0 && t == nil {
		return sec
	}
	switch s := sec.(type) {
	case *ScriptInfoSection:
		cp := *s
		cp.Sp = shiftSpan(cp.Sp, delta, t)
		cp.HeaderSp = shiftSpan(cp.HeaderSp, delta, t)
		fields := make([]KeyValue, len(s.Fields))
		for i, kv := range s.Fields {
			fields[i] = KeyValue{Key: shiftSpan(kv.Key, delta, t), Value: shiftSpan(kv.Value, delta, t)}
		}
		cp.Fields = fields
		return &cp
	case *StylesSection:
		cp := *s
		cp.Sp = shiftSpan(cp.Sp, delta, t)
		cp.HeaderSp = shiftSpan(cp.HeaderSp, delta, t)
		cp.Format = shiftSpans(s.Format, delta, t)
		rows := make([]Style, len(s.Rows))
		for i, row := range s.Rows {
			rows[i] = row.Shift(delta, t)
		}
		cp.Rows = rows
		return &cp
	case *EventsSection:
		cp := *s
		cp.Sp = shiftSpan(cp.Sp, delta, t)
		cp.HeaderSp = shiftSpan(cp.HeaderSp, delta, t)
		cp.Format = shiftSpans(s.Format, delta, t)
		rows := make([]Event, len(s.Rows))
		for i, row := range s.Rows {
			rows[i] = row.Shift(delta, t)
		}
		cp.Rows = rows
		return &cp
	case *FontsSection:
		cp := *s
		cp.Sp = shiftSpan(cp.Sp, delta, t)
		cp.HeaderSp = shiftSpan(cp.HeaderSp, delta, t)
		cp.Entries = shiftMediaEntries(s.Entries, delta, t)
		return &cp
	case *GraphicsSection:
		cp := *s
		cp.Sp = shiftSpan(cp.Sp, delta, t)
		cp.HeaderSp = shiftSpan(cp.HeaderSp, delta, t)
		cp.Entries = shiftMediaEntries(s.Entries, delta, t)
		return &cp
	case *UnknownSection:
		cp := *s
		cp.Sp = shiftSpan(cp.Sp, delta, t)
		cp.HeaderSp = shiftSpan(cp.HeaderSp, delta, t)
		cp.RawLines = shiftSpans(s.RawLines, delta, t)
		return &cp
	case *CustomSection:
		cp := *s
		cp.Sp = shiftSpan(cp.Sp, delta, t)
		cp.HeaderSp = shiftSpan(cp.HeaderSp, delta, t)
		return &cp
	default:
		return sec
	}
}

func shiftMediaEntries(entries []MediaEntry, delta int, t *PositionTracker) []MediaEntry {
	if entries == nil {
		return nil
	}
	out := make([]MediaEntry, len(entries))
	for i, e := range entries {
		out[i] = MediaEntry{NameSp: shiftSpan(e.NameSp, delta, t), Lines: shiftSpans(e.Lines, delta, t)}
	}
	return out
}
