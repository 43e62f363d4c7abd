// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asspipeline

import (
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asstext"
)

// ProbeReport is a read-only diagnostic snapshot of which events are
// active at a frame time and why, without materializing any layers.
// Grounded on the same active-event accounting Select performs, exposed
// standalone for tooling that wants to explain a frame rather than
// render it.
type ProbeReport struct {
	TimeCS int64
	Events []ProbeEvent
}

// ProbeEvent explains one event's activity state at a probe's time.
type ProbeEvent struct {
	Index      int
	Type       assast.EventType
	StartCS    int64
	EndCS      int64
	Active     bool
	Reason     string
	HasOverride bool
}

// Probe reports every event's active/inactive status and a short reason,
// intended for introspection tools (e.g. "why isn't this line showing").
func Probe(script *assast.Script, src []byte, timeCS int64) ProbeReport {
	events := script.Events()
	report := ProbeReport{TimeCS: timeCS}

	for i, ev := range events {
		pe := ProbeEvent{Index: i, Type: ev.Type}

		start, sErr := asstext.ParseTimestamp(ev.Start.Text(src))
		end, eErr := asstext.ParseTimestamp(ev.End.Text(src))
		pe.StartCS, pe.EndCS = start, end

		switch {
		case sErr != nil || eErr != nil:
			pe.Reason = "unparsable timestamp"
		case ev.Type != assast.Dialogue && ev.Type != assast.Comment:
			pe.Reason = "non-renderable event type"
		case end < start:
			pe.Reason = "end precedes start"
		case timeCS < start:
			pe.Reason = "not yet started"
		case timeCS > end:
			pe.Reason = "already ended"
		default:
			pe.Active = true
			pe.Reason = "within [start,end]"
		}

		pe.HasOverride = hasOverrideBlock(ev.Text.Text(src))
		report.Events = append(report.Events, pe)
	}
	return report
}

func hasOverrideBlock(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] == '{' {
			return true
		}
	}
	return false
}
