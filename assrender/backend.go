// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assrender

import (
	"errors"
	"fmt"

	"github.com/subforge/asscore/assast"
)

// Sentinel RenderError-family values this package's own operations can
// raise (spec section 7's RenderError taxonomy, the subset that is the
// backend/render-context's concern -- compositor-specific sentinels
// live in asscompose).
var (
	ErrNoBackendAvailable = errors.New("assrender: no backend available")
	ErrBackendInitFailed  = errors.New("assrender: backend init failed")
	ErrBackendNotReady    = errors.New("assrender: backend not in Ready state")
)

// Feature is a capability a Backend may or may not support, queried via
// Backend.Supports.
type Feature int

const (
	FeatureIncrementalComposite Feature = iota
	FeatureGPUBlur
	FeatureGPUTransform
)

// BackendState is a Backend's lifecycle state (spec section 4.9:
// "Uninitialized -> Ready -> Rendering -> Ready -> Dropped. Errors during
// Rendering return Ready; unrecoverable errors transition to Dropped and
// require reconstruction").
type BackendState int

const (
	Uninitialized BackendState = iota
	Ready
	Rendering
	Dropped
)

func (s BackendState) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	case Rendering:
		return "Rendering"
	case Dropped:
		return "Dropped"
	default:
		return fmt.Sprintf("BackendState(%d)", int(s))
	}
}

// Pipeline is the handle a Backend hands back from CreatePipeline; it
// has no behavior of its own in the software reference backend (GPU
// backends would attach command-buffer/descriptor-set state to it).
type Pipeline struct {
	Backend Backend
}

// Backend composites a frame's intermediate layers into an RGBA8 buffer
// (spec section 4.9's Backend trait). Software is the mandatory,
// always-available implementation; optional GPU backends satisfy the
// same interface and fall back to Software via Auto when unavailable.
type Backend interface {
	// Name identifies the backend for logging/selection (e.g.
	// "software", "vulkan").
	Name() string

	// State reports the backend's current lifecycle state.
	State() BackendState

	// CreatePipeline transitions Uninitialized -> Ready (or returns
	// ErrBackendInitFailed, staying Uninitialized).
	CreatePipeline() (*Pipeline, error)

	// CompositeLayers renders one full frame. Must be called with the
	// backend in Ready state; transitions through Rendering and back to
	// Ready (or to Dropped on an unrecoverable error).
	CompositeLayers(layers []assast.IntermediateLayer, ctx *RenderContext) ([]byte, error)

	// CompositeLayersIncremental renders a frame reusing prevFrame
	// outside dirty, the Backend-level counterpart of
	// asscompose.Compositor.CompositeIncremental.
	CompositeLayersIncremental(layers []assast.IntermediateLayer, dirty []assast.DirtyRegion, prevFrame []byte, ctx *RenderContext) ([]byte, error)

	// Supports reports whether this backend implements feature f.
	Supports(f Feature) bool
}
