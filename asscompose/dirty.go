// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asscompose

import "github.com/subforge/asscore/assast"

// LayerBounds is one event's render-space bounding box for a frame,
// keyed by the event index asspipeline.Select/ProcessEvent use as
// "order" (spec section 4.8's "bounding boxes of layers whose underlying
// event entered or left active state").
type LayerBounds struct {
	EventIndex int
	Bounds     assast.Rect
	Animated   bool // has an active, per-frame-reevaluated animation
}

// Tracker accumulates the per-frame dirty-region union across calls to
// Update, mirroring the reference renderer's incremental dirty tracking:
// newly active/inactive events and any event with a live animation force
// their bounds into this frame's dirty set; everything else may reuse
// the previous frame's pixels (spec section 4.8).
type Tracker struct {
	seen     bool
	lastSeen map[int]assast.Rect
}

// NewTracker returns an empty Tracker. The first Update call always
// reports FullScreen, since there is no previous frame to reuse.
func NewTracker() *Tracker {
	return &Tracker{lastSeen: map[int]assast.Rect{}}
}

// Update computes this frame's dirty regions from the set of events that
// became active or inactive since the last call (as reported by
// asspipeline.Selector.Select) and the current frame's layer bounds.
// newlyInactive events contribute their *previous* bounds (they have no
// bounds this frame, since they no longer render); every other entry in
// bounds contributes its current bounds only if newly active or
// Animated.
func (t *Tracker) Update(newlyActive, newlyInactive []int, bounds []LayerBounds) []assast.DirtyRegion {
	current := make(map[int]assast.Rect, len(bounds))
	for _, b := range bounds {
		current[b.EventIndex] = b.Bounds
	}

	if !t.seen {
		t.seen = true
		t.lastSeen = current
		return []assast.DirtyRegion{assast.FullScreen()}
	}

	newlySet := make(map[int]bool, len(newlyActive))
	for _, idx := range newlyActive {
		newlySet[idx] = true
	}

	var union assast.Rect
	var any bool
	merge := func(r assast.Rect) {
		union = union.Union(r)
		any = true
	}

	for _, idx := range newlyInactive {
		if r, ok := t.lastSeen[idx]; ok {
			merge(r)
		}
	}
	for _, b := range bounds {
		if newlySet[b.EventIndex] || b.Animated {
			merge(b.Bounds)
		}
	}

	t.lastSeen = current

	if !any {
		return nil
	}
	return []assast.DirtyRegion{toDirtyRegion(union)}
}

// toDirtyRegion converts a sub-pixel Rect to an integer, outward-rounded
// DirtyRegion.
func toDirtyRegion(r assast.Rect) assast.DirtyRegion {
	x0 := int(r.X)
	y0 := int(r.Y)
	x1 := int(r.X + r.W + 0.999)
	y1 := int(r.Y + r.H + 0.999)
	return assast.DirtyRegion{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
