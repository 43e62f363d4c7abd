// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assfont

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assshape"
)

func TestLoadEmbeddedNilSectionIsNoop(t *testing.T) {
	db := assshape.NewFontDB("Default")
	err := LoadEmbedded(db, nil, nil)
	require.NoError(t, err)
}

func TestLoadBytesRejectsGarbage(t *testing.T) {
	db := assshape.NewFontDB("Default")
	err := LoadBytes(db, []byte("not a font file"), "bogus.ttf")
	assert.Error(t, err)
}

func TestLoadDirMissingDirErrors(t *testing.T) {
	db := assshape.NewFontDB("Default")
	err := LoadDir(db, "/nonexistent/path/for/assfont/test")
	assert.Error(t, err)
}

func TestLoadFileMissingFileErrors(t *testing.T) {
	db := assshape.NewFontDB("Default")
	err := LoadFile(db, "/nonexistent/path/for/assfont/test.ttf")
	assert.Error(t, err)
}
