// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assanalysis

import (
	"sort"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asstext"
)

type endpointKind int8

const (
	endpointStart endpointKind = 0
	endpointEnd   endpointKind = 1
)

type endpoint struct {
	cs    int64
	kind  endpointKind
	event int
}

// TimingOverlaps finds every pair of events that coexist at some instant
// via an O(n log n) sweep-line: sort (start,+1)/(end,-1) endpoints in
// time order (ties broken by ending before starting at the same
// instant), then sweep maintaining an active set, recording every pair
// that is simultaneously active (spec section 4.4). The result is
// deterministic and every pair satisfies Low < High.
func TimingOverlaps(script *assast.Script, src []byte) []Overlap {
	events := script.Events()
	endpoints := make([]endpoint, 0, len(events)*2)
	for i, ev := range events {
		start, sErr := asstext.ParseTimestamp(ev.Start.Text(src))
		end, eErr := asstext.ParseTimestamp(ev.End.Text(src))
		if sErr != nil || eErr != nil || start >= end {
			// An event with no positive duration is never active, so it
			// coexists with nothing.
			continue
		}
		endpoints = append(endpoints,
			endpoint{cs: start, kind: endpointStart, event: i},
			endpoint{cs: end, kind: endpointEnd, event: i},
		)
	}

	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].cs != endpoints[j].cs {
			return endpoints[i].cs < endpoints[j].cs
		}
		// Ends sort before starts at the same instant, so a dialogue
		// that ends exactly when the next begins does not overlap it.
		return endpoints[i].kind > endpoints[j].kind
	})

	var overlaps []Overlap
	active := map[int]bool{}
	for _, ep := range endpoints {
		switch ep.kind {
		case endpointStart:
			for other := range active {
				lo, hi := ep.event, other
				if lo > hi {
					lo, hi = hi, lo
				}
				overlaps = append(overlaps, Overlap{Low: lo, High: hi})
			}
			active[ep.event] = true
		case endpointEnd:
			delete(active, ep.event)
		}
	}

	sort.Slice(overlaps, func(i, j int) bool {
		if overlaps[i].Low != overlaps[j].Low {
			return overlaps[i].Low < overlaps[j].Low
		}
		return overlaps[i].High < overlaps[j].High
	})
	return overlaps
}
