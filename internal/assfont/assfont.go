// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assfont is the font backing store: it turns font bytes --
// whether read from a file on disk or UU-decoded out of a script's
// [Fonts] section -- into go-text/typesetting font.Face values and
// registers them into an assshape.FontDB. assshape.FontDB itself only
// knows how to query an already-loaded face by family/weight/italic; it
// has no notion of files, UU-decoding, or font collections, which is
// what this package is for (spec section 4.9's "font database ... owned
// by RenderContext").
package assfont

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/font"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/assshape"
)

// LoadFile reads a single font file (TTF/OTF, or a TTC collection) from
// disk and registers every face it contains into db, using each face's
// own name-table family and weight/style to resolve Family/Bold/Italic.
func LoadFile(db *assshape.FontDB, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("assfont: read %s: %w", path, err)
	}
	return LoadBytes(db, b, filepath.Base(path))
}

// LoadDir registers every .ttf/.otf/.ttc file directly inside dir
// (non-recursive, matching the CLI's "font_paths_or_dir" argument, spec
// section 6). A file that fails to parse is skipped; LoadDir returns the
// first hard I/O error it hits reading the directory itself.
func LoadDir(db *assshape.FontDB, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("assfont: read dir %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".ttf" && ext != ".otf" && ext != ".ttc" {
			continue
		}
		_ = LoadFile(db, filepath.Join(dir, e.Name()))
	}
	return nil
}

// LoadBytes parses raw font-collection bytes (a lone TTF/OTF parses as a
// one-face collection) and registers every face found, under nameHint if
// a face's own name table yields an empty family.
func LoadBytes(db *assshape.FontDB, data []byte, nameHint string) error {
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("assfont: parse %s: %w", nameHint, err)
	}
	for _, f := range faces {
		d := f.Describe()
		family := d.Family
		if family == "" {
			family = nameHint
		}
		bold := d.Aspect.Weight >= font.WeightBold
		italic := d.Aspect.Style != font.StyleNormal
		db.Register(family, bold, italic, f)
	}
	return nil
}

// LoadEmbedded UU-decodes every entry in an ASS [Fonts] section and
// registers the resulting faces into db (spec section 4, "Embedded media
// ... fontname:/filename: block with its UU-encoded body").
func LoadEmbedded(db *assshape.FontDB, src []byte, section *assast.FontsSection) error {
	if section == nil {
		return nil
	}
	for _, entry := range section.Entries {
		data, err := assast.DecodeUU(src, entry.Lines)
		if err != nil {
			return fmt.Errorf("assfont: decode embedded font %s: %w", entry.NameSp.Text(src), err)
		}
		if err := LoadBytes(db, data, entry.NameSp.Text(src)); err != nil {
			return err
		}
	}
	return nil
}
