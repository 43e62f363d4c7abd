// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asspipeline is the pipeline front (C7): selects the events
// active at a given time, walks their tags to build a mutable render
// state, and emits intermediate layers for the shaper/effect/compositor
// stages downstream.
package asspipeline

import (
	"strings"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asstext"
)

// Selector tracks previously-active events across successive frames so
// it can report newly-active/newly-inactive diffs and a dirty flag,
// mirroring the reference EventSelector's incremental-rendering state.
type Selector struct {
	previousActive map[int]bool
	lastTimestamp  int64
	hasLast        bool

	// RenderComments includes Comment-type events in selection (signs
	// are sometimes carried as comments); defaults to true.
	RenderComments bool
}

// NewSelector returns a Selector with RenderComments enabled, matching
// the reference default.
func NewSelector() *Selector {
	return &Selector{previousActive: map[int]bool{}, RenderComments: true}
}

// ActiveEvents is the result of one Select call.
type ActiveEvents struct {
	Indices       []int
	NewlyActive   []int
	NewlyInactive []int
	IsDirty       bool
}

// Select returns the events active at timeCS (inclusive both ends),
// computing newly_active/newly_inactive diffs against the previous
// call and an is_dirty flag (spec section 4.5).
func (s *Selector) Select(script *assast.Script, src []byte, timeCS int64) ActiveEvents {
	events := script.Events()
	current := map[int]bool{}
	var indices []int

	for i, ev := range events {
		switch ev.Type {
		case assast.Dialogue:
		case assast.Comment:
			if !s.RenderComments {
				continue
			}
		default:
			continue
		}
		start, sErr := asstext.ParseTimestamp(ev.Start.Text(src))
		end, eErr := asstext.ParseTimestamp(ev.End.Text(src))
		if sErr != nil || eErr != nil {
			continue
		}
		if start <= timeCS && timeCS <= end {
			indices = append(indices, i)
			current[i] = true
		}
	}

	var newlyActive, newlyInactive []int
	for idx := range current {
		if !s.previousActive[idx] {
			newlyActive = append(newlyActive, idx)
		}
	}
	for idx := range s.previousActive {
		if !current[idx] {
			newlyInactive = append(newlyInactive, idx)
		}
	}

	isDirty := len(newlyActive) > 0 || len(newlyInactive) > 0 ||
		hasAnimatedContent(events, indices, src, timeCS) ||
		!s.hasLast || abs64(timeCS-s.lastTimestamp) > 100

	s.previousActive = current
	s.lastTimestamp = timeCS
	s.hasLast = true

	return ActiveEvents{Indices: indices, NewlyActive: newlyActive, NewlyInactive: newlyInactive, IsDirty: isDirty}
}

// hasAnimatedContent reports whether any active event's raw text
// contains an animation-driving tag, or an in-progress karaoke sweep
// (spec section 4.5, is_dirty clause).
func hasAnimatedContent(events []assast.Event, indices []int, src []byte, timeCS int64) bool {
	for _, idx := range indices {
		text := events[idx].Text.Text(src)
		if strings.Contains(text, `\t(`) || strings.Contains(text, `\move(`) ||
			strings.Contains(text, `\fad(`) || strings.Contains(text, `\fade(`) {
			return true
		}
		if strings.Contains(text, `\k`) || strings.Contains(text, `\K`) || strings.Contains(text, `\kt`) {
			if start, err := asstext.ParseTimestamp(events[idx].Start.Text(src)); err == nil && timeCS > start {
				return true
			}
		}
	}
	return false
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
