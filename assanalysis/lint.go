// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assanalysis

import (
	"fmt"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asstag"
	"github.com/subforge/asscore/asstext"
)

// Rule is implemented by every lint rule, as trait objects in the
// reference implementation (spec section 4.4: "rules are trait objects
// { id, name, severity, category, run(&Analysis) -> Vec<Issue> }").
type Rule interface {
	ID() string
	Name() string
	DefaultSeverity() assast.Severity
	Category() assast.Category
	Run(a *Analysis) []assast.ParseIssue
}

// LintConfig selects which rules run and the minimum severity reported.
type LintConfig struct {
	MinSeverity    assast.Severity
	MaxIssues      int // 0 = unlimited
	EnabledRules   map[string]bool // empty/nil = all enabled
	DisabledRules  map[string]bool
}

// DefaultLintConfig reports everything, matching the reference's
// Default impl (min_severity: Info, max_issues: unlimited).
func DefaultLintConfig() LintConfig {
	return LintConfig{MinSeverity: assast.Info}
}

func (c LintConfig) enabled(id string) bool {
	if c.DisabledRules[id] {
		return false
	}
	if len(c.EnabledRules) == 0 {
		return true
	}
	return c.EnabledRules[id]
}

// BuiltinRules are always available to Lint; a caller wanting custom
// rules appends to this slice's result.
func BuiltinRules() []Rule {
	return []Rule{
		negativeDurationRule{},
		missingStyleRule{},
		invalidColorRule{},
		invalidTagRule{},
		duplicateNameRule{},
		timingOverlapRule{},
		circularInheritanceRule{},
	}
}

// Lint runs rules (typically BuiltinRules(), possibly with custom rules
// appended) against a against pre-computed Analysis and returns every
// issue at or above config.MinSeverity, capped at config.MaxIssues.
func Lint(a *Analysis, rules []Rule, config LintConfig) []assast.ParseIssue {
	var out []assast.ParseIssue
	for _, r := range rules {
		if !config.enabled(r.ID()) {
			continue
		}
		for _, iss := range r.Run(a) {
			if iss.Severity < config.MinSeverity {
				continue
			}
			out = append(out, iss)
			if config.MaxIssues > 0 && len(out) >= config.MaxIssues {
				return out
			}
		}
	}
	return out
}

type negativeDurationRule struct{}

func (negativeDurationRule) ID() string                    { return "negative-duration" }
func (negativeDurationRule) Name() string                  { return "Negative or zero duration" }
func (negativeDurationRule) DefaultSeverity() assast.Severity { return assast.Error }
func (negativeDurationRule) Category() assast.Category     { return assast.CategoryContent }
func (negativeDurationRule) Run(a *Analysis) []assast.ParseIssue {
	var out []assast.ParseIssue
	for _, ev := range a.Script.Events() {
		start, sErr := asstext.ParseTimestamp(ev.Start.Text(a.Src))
		end, eErr := asstext.ParseTimestamp(ev.End.Text(a.Src))
		if sErr != nil || eErr != nil {
			continue
		}
		if start >= end {
			out = append(out, assast.ParseIssue{
				Severity: assast.Error, Category: assast.CategoryContent,
				Message: "event start is not before its end",
				Line: ev.Sp.Line, Column: ev.Sp.Column, Offset: ev.Sp.Start, Length: ev.Sp.Len(),
			})
		}
	}
	return out
}

type missingStyleRule struct{}

func (missingStyleRule) ID() string                    { return "missing-style" }
func (missingStyleRule) Name() string                  { return "Style not declared" }
func (missingStyleRule) DefaultSeverity() assast.Severity { return assast.Error }
func (missingStyleRule) Category() assast.Category     { return assast.CategoryStructural }
func (missingStyleRule) Run(a *Analysis) []assast.ParseIssue {
	var out []assast.ParseIssue
	for _, ev := range a.Script.Events() {
		name := ev.Style.Text(a.Src)
		if name == "" {
			continue
		}
		if _, ok := a.Styles[name]; !ok {
			out = append(out, assast.ParseIssue{
				Severity: assast.Error, Category: assast.CategoryStructural,
				Message:      fmt.Sprintf("event references undeclared style %q", name),
				SuggestedFix: fmt.Sprintf("define style %q or use an existing style", name),
				Line:         ev.Style.Line, Column: ev.Style.Column, Offset: ev.Style.Start, Length: ev.Style.Len(),
			})
		}
	}
	return out
}

type invalidColorRule struct{}

func (invalidColorRule) ID() string                    { return "invalid-color" }
func (invalidColorRule) Name() string                  { return "Invalid color literal" }
func (invalidColorRule) DefaultSeverity() assast.Severity { return assast.Error }
func (invalidColorRule) Category() assast.Category     { return assast.CategoryRender }
func (invalidColorRule) Run(a *Analysis) []assast.ParseIssue {
	var out []assast.ParseIssue
	check := func(sp assast.Span) {
		text := sp.Text(a.Src)
		if text == "" {
			return
		}
		if !asstext.IsValidColorLiteral(text) {
			out = append(out, assast.ParseIssue{
				Severity: assast.Error, Category: assast.CategoryRender,
				Message: fmt.Sprintf("invalid color literal %q", text),
				Line: sp.Line, Column: sp.Column, Offset: sp.Start, Length: sp.Len(),
			})
		}
	}
	for _, st := range a.Script.Styles() {
		check(st.PrimaryColour)
		check(st.SecondaryColour)
		check(st.OutlineColour)
		check(st.BackColour)
	}
	for _, ev := range a.Script.Events() {
		for _, seg := range asstag.SplitEventText(a.Src, ev.Text) {
			if seg.Kind != asstag.BlockSegment {
				continue
			}
			for _, tg := range seg.Tags {
				switch tg.NameText(a.Src) {
				case "c", "1c", "2c", "3c", "4c", "1a", "2a", "3a", "4a":
					check(tg.Args)
				}
			}
		}
	}
	return out
}

type invalidTagRule struct{}

func (invalidTagRule) ID() string                    { return "invalid-tag" }
func (invalidTagRule) Name() string                  { return "Empty override tag name" }
func (invalidTagRule) DefaultSeverity() assast.Severity { return assast.Warning }
func (invalidTagRule) Category() assast.Category     { return assast.CategoryContent }
func (invalidTagRule) Run(a *Analysis) []assast.ParseIssue {
	var out []assast.ParseIssue
	for _, ev := range a.Script.Events() {
		for _, seg := range asstag.SplitEventText(a.Src, ev.Text) {
			if seg.Kind != asstag.BlockSegment {
				continue
			}
			for _, tg := range seg.Tags {
				if tg.Name.Empty() {
					out = append(out, assast.ParseIssue{
						Severity: assast.Warning, Category: assast.CategoryContent,
						Message: "empty override tag name",
						Line: seg.Span.Line, Offset: tg.Position, Length: 1,
					})
				}
			}
		}
	}
	return out
}

type duplicateNameRule struct{}

func (duplicateNameRule) ID() string                    { return "duplicate-name" }
func (duplicateNameRule) Name() string                  { return "Duplicate style name" }
func (duplicateNameRule) DefaultSeverity() assast.Severity { return assast.Warning }
func (duplicateNameRule) Category() assast.Category     { return assast.CategoryStructural }
func (duplicateNameRule) Run(a *Analysis) []assast.ParseIssue {
	seen := map[string]bool{}
	var out []assast.ParseIssue
	for _, st := range a.Script.Styles() {
		name := st.Name.Text(a.Src)
		if seen[name] {
			out = append(out, assast.ParseIssue{
				Severity: assast.Warning, Category: assast.CategoryStructural,
				Message: fmt.Sprintf("duplicate style name %q", name),
				Line: st.Name.Line, Column: st.Name.Column, Offset: st.Name.Start, Length: st.Name.Len(),
			})
		}
		seen[name] = true
	}
	return out
}

// timingOverlapRule wraps Analysis.Overlaps as a lint-severity advisory,
// distinct from the raw sweep-line computation itself (SPEC_FULL.md
// supplement #4).
type timingOverlapRule struct{}

func (timingOverlapRule) ID() string                    { return "timing-overlap" }
func (timingOverlapRule) Name() string                  { return "Overlapping dialogue timing" }
func (timingOverlapRule) DefaultSeverity() assast.Severity { return assast.Info }
func (timingOverlapRule) Category() assast.Category     { return assast.CategoryContent }
func (timingOverlapRule) Run(a *Analysis) []assast.ParseIssue {
	events := a.Script.Events()
	out := make([]assast.ParseIssue, 0, len(a.Overlaps))
	for _, ov := range a.Overlaps {
		if ov.High >= len(events) {
			continue
		}
		sp := events[ov.High].Sp
		out = append(out, assast.ParseIssue{
			Severity: assast.Info, Category: assast.CategoryContent,
			Message: fmt.Sprintf("event %d overlaps event %d", ov.High, ov.Low),
			Line: sp.Line, Column: sp.Column, Offset: sp.Start, Length: sp.Len(),
		})
	}
	return out
}

type circularInheritanceRule struct{}

func (circularInheritanceRule) ID() string                    { return "circular-inheritance" }
func (circularInheritanceRule) Name() string                  { return "Circular style inheritance" }
func (circularInheritanceRule) DefaultSeverity() assast.Severity { return assast.Error }
func (circularInheritanceRule) Category() assast.Category     { return assast.CategoryStructural }
func (circularInheritanceRule) Run(a *Analysis) []assast.ParseIssue {
	var out []assast.ParseIssue
	for _, name := range a.StyleOrder {
		r := a.Styles[name]
		if r != nil && r.CircularInheritance {
			out = append(out, assast.ParseIssue{
				Severity: assast.Error, Category: assast.CategoryStructural,
				Message: fmt.Sprintf("style %q participates in a circular inheritance chain", name),
			})
		}
	}
	return out
}
