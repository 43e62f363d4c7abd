// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asslex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKinds(t *testing.T) {
	src := []byte("[Events]\nFormat: Layer, Start\nDialogue: 0,0:00:00.00\n; a comment\n\nraw text with no colon")
	toks := All(src)
	require.Len(t, toks, 6)
	assert.Equal(t, SectionHeader, toks[0].Kind)
	assert.Equal(t, KeyValue, toks[1].Kind)
	assert.Equal(t, "Format", toks[1].Key.Text(src))
	assert.Equal(t, "Layer, Start", toks[1].Value.Text(src))
	assert.Equal(t, KeyValue, toks[2].Kind)
	assert.Equal(t, Comment, toks[3].Kind)
	assert.Equal(t, Empty, toks[4].Kind)
	assert.Equal(t, Raw, toks[5].Kind)
}

func TestColonBeforeBraceRequired(t *testing.T) {
	src := []byte("{\\pos(0,0)}Hello: world")
	toks := All(src)
	require.Len(t, toks, 1)
	assert.Equal(t, Raw, toks[0].Kind)
}

func TestAllSpansWithinBuffer(t *testing.T) {
	src := []byte("[Script Info]\nTitle: X\n\n[Events]\n")
	for _, tok := range All(src) {
		assert.True(t, tok.Span.Valid(len(src)))
	}
}
