// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

// SectionKind discriminates the Section union (spec section 3).
type SectionKind int

const (
	ScriptInfoKind SectionKind = iota
	StylesKind
	EventsKind
	FontsKind
	GraphicsKind
	UnknownKind
	CustomKind
)

func (k SectionKind) String() string {
	switch k {
	case ScriptInfoKind:
		return "ScriptInfo"
	case StylesKind:
		return "Styles"
	case EventsKind:
		return "Events"
	case FontsKind:
		return "Fonts"
	case GraphicsKind:
		return "Graphics"
	case UnknownKind:
		return "Unknown"
	case CustomKind:
		return "Custom"
	default:
		return "?"
	}
}

// Section is implemented by every concrete section type. Go has no
// native tagged union, so the spec's "Section (tagged union)" is modeled
// as a small sealed interface (mirroring go/ast.Node) with a type switch
// or Kind() check at call sites; this keeps each section's shape its own
// concrete type instead of one struct with a dozen optional fields.
type Section interface {
	Kind() SectionKind
	Span() Span
	Header() Span // the "[...]" header span, including brackets
}

// KeyValue is an ordered key/value pair borrowed from a ScriptInfo line
// or an Unknown section's raw line that happened to parse as one.
type KeyValue struct {
	Key, Value Span
}

// ScriptInfoSection accumulates KeyValues preserving input order (spec
// section 4.2).
type ScriptInfoSection struct {
	Sp       Span
	HeaderSp Span
	Fields   []KeyValue
}

func (s *ScriptInfoSection) Kind() SectionKind { return ScriptInfoKind }
func (s *ScriptInfoSection) Span() Span        { return s.Sp }
func (s *ScriptInfoSection) Header() Span      { return s.HeaderSp }

// Get returns the value span of the first field with the given key
// (case-insensitive), and whether it was found.
func (s *ScriptInfoSection) Get(src []byte, key string) (Span, bool) {
	for _, kv := range s.Fields {
		if equalFold(kv.Key.Text(src), key) {
			return kv.Value, true
		}
	}
	return Span{}, false
}

// StylesSection holds the Styles table: the declared column order and
// the parsed rows.
type StylesSection struct {
	Sp       Span
	HeaderSp Span
	Format   []Span
	Rows     []Style
}

func (s *StylesSection) Kind() SectionKind { return StylesKind }
func (s *StylesSection) Span() Span        { return s.Sp }
func (s *StylesSection) Header() Span      { return s.HeaderSp }

// EventsSection holds the Events table: the declared column order and
// the parsed rows.
type EventsSection struct {
	Sp       Span
	HeaderSp Span
	Format   []Span
	Rows     []Event
}

func (s *EventsSection) Kind() SectionKind { return EventsKind }
func (s *EventsSection) Span() Span        { return s.Sp }
func (s *EventsSection) Header() Span      { return s.HeaderSp }

// MediaEntry is one fontname:/filename: block with its UU-encoded body
// stored as a list of borrowed line spans; decoding is lazy (see
// DecodeUU in media.go).
type MediaEntry struct {
	NameSp Span // the text after "fontname:" / "filename:"
	Lines  []Span
}

// FontsSection holds embedded-font entries (spec section 3, "Fonts").
type FontsSection struct {
	Sp       Span
	HeaderSp Span
	Entries  []MediaEntry
}

func (s *FontsSection) Kind() SectionKind { return FontsKind }
func (s *FontsSection) Span() Span        { return s.Sp }
func (s *FontsSection) Header() Span      { return s.HeaderSp }

// GraphicsSection holds embedded-graphic entries; identical shape to
// FontsSection.
type GraphicsSection struct {
	Sp       Span
	HeaderSp Span
	Entries  []MediaEntry
}

func (s *GraphicsSection) Kind() SectionKind { return GraphicsKind }
func (s *GraphicsSection) Span() Span        { return s.Sp }
func (s *GraphicsSection) Header() Span      { return s.HeaderSp }

// UnknownSection retains a non-standard header and its body lines
// verbatim, so no information is lost on round-trip (spec Invariant:
// "unknown sections are retained verbatim").
type UnknownSection struct {
	Sp       Span
	HeaderSp Span
	RawLines []Span
}

func (s *UnknownSection) Kind() SectionKind { return UnknownKind }
func (s *UnknownSection) Span() Span        { return s.Sp }
func (s *UnknownSection) Header() Span      { return s.HeaderSp }

// CustomSection is produced by a section parser registered via
// assparse.RegisterSection for a non-standard "[Section Name]" header
// that a caller wants structured rather than falling into
// UnknownSection. Data is whatever the registered parser chose to
// produce; assparse only threads it through.
type CustomSection struct {
	Sp       Span
	HeaderSp Span
	Name     string
	Data     any
}

func (s *CustomSection) Kind() SectionKind { return CustomKind }
func (s *CustomSection) Span() Span        { return s.Sp }
func (s *CustomSection) Header() Span      { return s.HeaderSp }

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
