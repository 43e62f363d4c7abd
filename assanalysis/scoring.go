// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assanalysis

import (
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asstag"
)

// PerformanceImpact categorizes an EventScore for rendering-strategy
// decisions (spec section 4.4, "Impact tier").
type PerformanceImpact int

const (
	ImpactMinimal PerformanceImpact = iota
	ImpactLow
	ImpactMedium
	ImpactHigh
	ImpactCritical
)

func (p PerformanceImpact) String() string {
	switch p {
	case ImpactMinimal:
		return "Minimal"
	case ImpactLow:
		return "Low"
	case ImpactMedium:
		return "Medium"
	case ImpactHigh:
		return "High"
	case ImpactCritical:
		return "Critical"
	default:
		return "?"
	}
}

// EventScore is the complexity analysis for one event.
type EventScore struct {
	AnimationScore int // clamp(sum of per-tag complexity, 0..=10)
	OverallScore   int // 0..100
	Impact         PerformanceImpact
	TagCount       int
	CharCount      int
}

// ScoreEvents computes an EventScore per event, parallel to
// script.Events().
func ScoreEvents(script *assast.Script, src []byte) []EventScore {
	events := script.Events()
	out := make([]EventScore, len(events))
	for i, ev := range events {
		segs := asstag.SplitEventText(src, ev.Text)
		var tagCount, animSum, charCount int
		for _, seg := range segs {
			switch seg.Kind {
			case asstag.BlockSegment:
				tagCount += len(seg.Tags)
				for _, tg := range seg.Tags {
					animSum += tg.Complexity
				}
			case asstag.TextSegment:
				charCount += seg.Span.Len()
			}
		}
		anim := clamp(animSum, 0, 10)
		overall := overallScore(anim, charCount, tagCount)
		out[i] = EventScore{
			AnimationScore: anim,
			OverallScore:   overall,
			Impact:         impactTier(overall),
			TagCount:       tagCount,
			CharCount:      charCount,
		}
	}
	return out
}

func overallScore(animation, charCount, tagCount int) int {
	score := animation * 5
	score += charCountBucket(charCount)
	score += tagCountBucket(tagCount)
	return clamp(score, 0, 100)
}

// charCountBucket matches the reference's char-count staircase:
// 0..=50 -> 0, 51..=200 -> 5, 201..=500 -> 15, 501..=1000 -> 30, else 50.
func charCountBucket(n int) int {
	switch {
	case n <= 50:
		return 0
	case n <= 200:
		return 5
	case n <= 500:
		return 15
	case n <= 1000:
		return 30
	default:
		return 50
	}
}

// tagCountBucket matches the reference's override-count staircase:
// 0 -> 0, 1..=5 -> 5, 6..=15 -> 15, 16..=30 -> 25, else 35.
func tagCountBucket(n int) int {
	switch {
	case n == 0:
		return 0
	case n <= 5:
		return 5
	case n <= 15:
		return 15
	case n <= 30:
		return 25
	default:
		return 35
	}
}

func impactTier(score int) PerformanceImpact {
	switch {
	case score <= 20:
		return ImpactMinimal
	case score <= 40:
		return ImpactLow
	case score <= 60:
		return ImpactMedium
	case score <= 80:
		return ImpactHigh
	default:
		return ImpactCritical
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
