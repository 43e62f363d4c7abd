// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assrender

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/assshape"
)

func TestNewContextDefaultsPlayResToOutput(t *testing.T) {
	rc := NewContext(640, 480, nil)
	assert.Equal(t, float32(1), rc.ScaleX())
	assert.Equal(t, float32(1), rc.RenderScaleX())
}

func TestWithPlayResChangesRenderScale(t *testing.T) {
	rc := NewContext(1280, 720, nil, WithPlayRes(640, 360))
	assert.InDelta(t, 2, rc.RenderScaleX(), 1e-6)
	assert.InDelta(t, 2, rc.RenderScaleY(), 1e-6)
}

func TestPlayResFromScriptInfoMissingFieldsFalse(t *testing.T) {
	info := &assast.ScriptInfoSection{}
	_, _, ok := PlayResFromScriptInfo(info, nil)
	assert.False(t, ok)
}

func TestBackendStateStringsAreHumanReadable(t *testing.T) {
	assert.Equal(t, "Ready", Ready.String())
	assert.Equal(t, "Dropped", Dropped.String())
}

func TestSoftwareLifecycleStartsUninitializedThenReady(t *testing.T) {
	sw := NewSoftware(assshape.NewFontDB("Default"))
	assert.Equal(t, Uninitialized, sw.State())
	_, err := sw.CreatePipeline()
	require.NoError(t, err)
	assert.Equal(t, Ready, sw.State())
}

func TestSoftwareCompositeLayersRejectsNotReady(t *testing.T) {
	sw := NewSoftware(assshape.NewFontDB("Default"))
	_, err := sw.CompositeLayers(nil, NewContext(2, 2, nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackendNotReady))
}

func TestSoftwareRasterizesVectorLayerFill(t *testing.T) {
	sw := NewSoftware(assshape.NewFontDB("Default"))
	_, err := sw.CreatePipeline()
	require.NoError(t, err)

	layer := assast.IntermediateLayer{
		Kind: assast.VectorLayer,
		Path: []assast.PathCommand{
			{Kind: assast.MoveTo, X: 0, Y: 0},
			{Kind: assast.LineTo, X: 10, Y: 0},
			{Kind: assast.LineTo, X: 10, Y: 10},
			{Kind: assast.LineTo, X: 0, Y: 10},
			{Kind: assast.Close},
		},
		Fill: color.RGBA{R: 10, G: 20, B: 30, A: 255},
		BBox: assast.Rect{X: 0, Y: 0, W: 10, H: 10},
	}
	out, err := sw.CompositeLayers([]assast.IntermediateLayer{layer}, NewContext(10, 10, nil))
	require.NoError(t, err)
	// Center pixel should be inside the filled square.
	off := (5*10 + 5) * 4
	assert.Equal(t, byte(10), out[off])
	assert.Equal(t, byte(255), out[off+3])
}

func TestSoftwareSkipsTextLayerWithNoRegisteredFont(t *testing.T) {
	sw := NewSoftware(assshape.NewFontDB("Default"))
	_, err := sw.CreatePipeline()
	require.NoError(t, err)

	layer := assast.IntermediateLayer{Kind: assast.TextLayer, UTF8: "hi", FontFamily: "Default", FontSize: 20}
	out, err := sw.CompositeLayers([]assast.IntermediateLayer{layer}, NewContext(10, 10, nil))
	require.NoError(t, err)
	assert.Equal(t, 10*10*4, len(out))
}

func TestAutoFallsBackToSoftwareWithNoPreferred(t *testing.T) {
	a := NewAuto(assshape.NewFontDB("Default"))
	_, err := a.CreatePipeline()
	require.NoError(t, err)
	assert.Equal(t, "software", a.Name())
}

func TestAutoSkipsStubGPUBackends(t *testing.T) {
	a := NewAuto(assshape.NewFontDB("Default"), Vulkan, Metal, WebGPU)
	_, err := a.CreatePipeline()
	require.NoError(t, err)
	assert.Equal(t, "software", a.Name())
}

func TestStubBackendNeverSupportsFeatures(t *testing.T) {
	assert.False(t, Vulkan.Supports(FeatureGPUBlur))
}
