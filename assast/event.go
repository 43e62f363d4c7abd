// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assast

// EventType is the row kind within the Events table.
type EventType int

const (
	Dialogue EventType = iota
	Comment
	Picture
	Sound
	Movie
	Command
)

func (t EventType) String() string {
	switch t {
	case Dialogue:
		return "Dialogue"
	case Comment:
		return "Comment"
	case Picture:
		return "Picture"
	case Sound:
		return "Sound"
	case Movie:
		return "Movie"
	case Command:
		return "Command"
	default:
		return "Unknown"
	}
}

// ParseEventType maps a row-label keyword (before the first ':') to an
// EventType; ok is false for unrecognized keywords.
func ParseEventType(v string) (EventType, bool) {
	switch normalizeKey(v) {
	case "dialogue":
		return Dialogue, true
	case "comment":
		return Comment, true
	case "picture":
		return Picture, true
	case "sound":
		return Sound, true
	case "movie":
		return Movie, true
	case "command":
		return Command, true
	default:
		return Dialogue, false
	}
}

// Event is one row of the Events table (spec section 3). Start and End
// are borrowed spans of the literal "H:MM:SS.CS" text, not yet parsed
// into centiseconds; use asstext.ParseTimestamp on demand. Text
// holds the literal event text including embedded override blocks and
// \N/\n/\h escapes, uninterpreted.
type Event struct {
	Sp Span

	Type     EventType
	Layer    Span
	Start    Span
	End      Span
	Style    Span
	Name     Span
	MarginL  Span
	MarginR  Span
	MarginV  Span
	Effect   Span
	Text     Span
	RowIndex int // 0-based index within the Events section, input order
}
