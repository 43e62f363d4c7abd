// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assshape is the shaper and drawing evaluator (C8): it turns a
// Text IntermediateLayer's UTF-8 run into positioned glyphs via
// go-text/typesetting, and an ASS `\p` drawing-command stream into a
// vector path, memoizing both by content key.
package assshape

import (
	"sync"

	"github.com/go-text/typesetting/font"
)

// FaceEntry is one loaded font face plus the metadata FontDB.Query
// matches against.
type FaceEntry struct {
	Family string
	Bold   bool
	Italic bool
	Face   *font.Face
}

// FontDB resolves (family, weight, italic) to a loaded font.Face,
// falling back to a configured default family and finally the first
// registered face, per spec section 4.6 ("Select a font via
// FontDB.query ... fall back to the configured default family and
// finally the first available font").
type FontDB struct {
	mu            sync.RWMutex
	faces         []FaceEntry
	DefaultFamily string
}

// NewFontDB returns an empty FontDB; call Register to load faces before
// first use.
func NewFontDB(defaultFamily string) *FontDB {
	return &FontDB{DefaultFamily: defaultFamily}
}

// Register adds a loaded face under the given family/style metadata,
// e.g. from an embedded `[Fonts]` section entry (assast.MediaEntry) or a
// system font file. Mutating Register concurrently with Query is safe;
// callers embedding a new font from `[Fonts]` must still hold unique
// ownership of the FontDB while doing so (spec section 5, "mutation ...
// is gated by unique ownership").
func (db *FontDB) Register(family string, bold, italic bool, face *font.Face) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.faces = append(db.faces, FaceEntry{Family: family, Bold: bold, Italic: italic, Face: face})
}

// Query finds the best matching face: exact (family, bold, italic),
// then family with any style, then DefaultFamily, then the first
// registered face.
func (db *FontDB) Query(family string, bold, italic bool) (*font.Face, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if len(db.faces) == 0 {
		return nil, false
	}
	var familyOnly, defaultFamily *font.Face
	for _, e := range db.faces {
		if e.Family == family && e.Bold == bold && e.Italic == italic {
			return e.Face, true
		}
		if e.Family == family && familyOnly == nil {
			familyOnly = e.Face
		}
		if e.Family == db.DefaultFamily && defaultFamily == nil {
			defaultFamily = e.Face
		}
	}
	if familyOnly != nil {
		return familyOnly, true
	}
	if defaultFamily != nil {
		return defaultFamily, true
	}
	return db.faces[0].Face, true
}
