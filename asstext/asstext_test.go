// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asstext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectAndStripBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[Script Info]")...)
	assert.Equal(t, UTF8BOM, DetectBOM(withBOM))
	stripped, had := StripBOM(withBOM)
	assert.True(t, had)
	assert.Equal(t, "[Script Info]", string(stripped))

	assert.Equal(t, NoBOM, DetectBOM([]byte("[Script Info]")))
}

func TestNormalizeLineEndings(t *testing.T) {
	cases := map[string]string{
		"a\r\nb":   "a\nb",
		"a\rb":     "a\nb",
		"a\nb":     "a\nb",
		"a\r\n\rb": "a\n\nb",
	}
	for in, want := range cases {
		assert.Equal(t, want, string(NormalizeLineEndings([]byte(in))), "input %q", in)
	}
}

func TestParseTimestamp(t *testing.T) {
	cs, err := ParseTimestamp("0:00:05.00")
	require.NoError(t, err)
	assert.Equal(t, int64(500), cs)

	cs, err = ParseTimestamp("1:02:03.45")
	require.NoError(t, err)
	assert.Equal(t, int64(((1*60+2)*60+3)*100+45), cs)

	_, err = ParseTimestamp("0:60:00.00")
	assert.Error(t, err)
	_, err = ParseTimestamp("0:00:60.00")
	assert.Error(t, err)
	_, err = ParseTimestamp("garbage")
	assert.Error(t, err)
}

func TestFormatTimestampRoundTrip(t *testing.T) {
	for _, s := range []string{"0:00:00.00", "0:00:05.00", "1:02:03.45", "10:00:00.00"} {
		cs, err := ParseTimestamp(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatTimestamp(cs))
	}
}

func TestParseColorLiteral(t *testing.T) {
	c, err := ParseColorLiteral("&H00FFFFFF&")
	require.NoError(t, err)
	assert.Equal(t, ColorLiteral{A: 0x00, B: 0xFF, G: 0xFF, R: 0xFF, HadAlpha: true}, c)

	c, err = ParseColorLiteral("&HFFFFFF&")
	require.NoError(t, err)
	assert.Equal(t, ColorLiteral{A: 0, B: 0xFF, G: 0xFF, R: 0xFF}, c)

	c, err = ParseColorLiteral("&H000000FF&")
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), c.R)
	assert.Equal(t, byte(0x00), c.G)

	_, err = ParseColorLiteral("notacolor")
	assert.Error(t, err)
	_, err = ParseColorLiteral("&HZZZZZZ&")
	assert.Error(t, err)
}

func TestParseFloatAndIntField(t *testing.T) {
	assert.InDelta(t, 1.5, ParseFloatField(" 1.5 ", 0), 1e-9)
	assert.InDelta(t, 0.0, ParseFloatField("", 0), 1e-9)
	assert.InDelta(t, -2.0, ParseFloatField("garbage", -2), 1e-9)

	assert.Equal(t, 10, ParseIntField("10", 0))
	assert.Equal(t, 5, ParseIntField("", 5))
}
