// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assrender

import (
	"fmt"

	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/assshape"
)

// Auto tries each of its preferred backends in order, falling back to
// Software (spec section 4.9: "An Auto selector tries optional backends
// in a preference order and falls back to Software").
type Auto struct {
	preferred []Backend
	software  *Software
	chosen    Backend
}

// NewAuto returns an Auto selector that tries preferred (e.g. Vulkan,
// Metal, WebGPU, in caller-supplied preference order) before falling
// back to a Software backend built from fonts.
func NewAuto(fonts *assshape.FontDB, preferred ...Backend) *Auto {
	return &Auto{preferred: preferred, software: NewSoftware(fonts)}
}

func (a *Auto) Name() string {
	if a.chosen != nil {
		return a.chosen.Name()
	}
	return "auto"
}

func (a *Auto) State() BackendState {
	if a.chosen != nil {
		return a.chosen.State()
	}
	return Uninitialized
}

// CreatePipeline tries each preferred backend's CreatePipeline in order
// and locks in the first one that succeeds; if none do, Software is
// used (and always succeeds, since it has no external capability crate
// dependency).
func (a *Auto) CreatePipeline() (*Pipeline, error) {
	for _, b := range a.preferred {
		if p, err := b.CreatePipeline(); err == nil {
			a.chosen = b
			return p, nil
		}
	}
	p, err := a.software.CreatePipeline()
	if err != nil {
		return nil, fmt.Errorf("auto: %w", ErrNoBackendAvailable)
	}
	a.chosen = a.software
	return p, nil
}

func (a *Auto) CompositeLayers(layers []assast.IntermediateLayer, ctx *RenderContext) ([]byte, error) {
	if a.chosen == nil {
		return nil, fmt.Errorf("auto: %w", ErrBackendNotReady)
	}
	return a.chosen.CompositeLayers(layers, ctx)
}

func (a *Auto) CompositeLayersIncremental(layers []assast.IntermediateLayer, dirty []assast.DirtyRegion, prevFrame []byte, ctx *RenderContext) ([]byte, error) {
	if a.chosen == nil {
		return nil, fmt.Errorf("auto: %w", ErrBackendNotReady)
	}
	return a.chosen.CompositeLayersIncremental(layers, dirty, prevFrame, ctx)
}

func (a *Auto) Supports(f Feature) bool {
	if a.chosen == nil {
		return false
	}
	return a.chosen.Supports(f)
}

// stubBackend is an optional GPU backend with no capability crate
// present (spec section 4.9: "non-software backends are stubs unless
// their capability crate is present"). CreatePipeline always fails, so
// Auto always falls through to Software unless a real implementation is
// substituted in preferred.
type stubBackend struct {
	name string
}

func (s *stubBackend) Name() string        { return s.name }
func (s *stubBackend) State() BackendState { return Dropped }

func (s *stubBackend) CreatePipeline() (*Pipeline, error) {
	return nil, fmt.Errorf("%s: %w", s.name, ErrBackendInitFailed)
}

func (s *stubBackend) CompositeLayers([]assast.IntermediateLayer, *RenderContext) ([]byte, error) {
	return nil, fmt.Errorf("%s: %w", s.name, ErrBackendNotReady)
}

func (s *stubBackend) CompositeLayersIncremental([]assast.IntermediateLayer, []assast.DirtyRegion, []byte, *RenderContext) ([]byte, error) {
	return nil, fmt.Errorf("%s: %w", s.name, ErrBackendNotReady)
}

func (s *stubBackend) Supports(Feature) bool { return false }

// Vulkan, Metal, and WebGPU are optional backend stubs: they satisfy the
// Backend interface but always fail CreatePipeline, since this module
// carries no GPU capability crate (spec section 2's dropped-dependency
// note: no GPU backend requirement, software is mandatory and
// sufficient). A real build that vendors one of these would replace the
// stub with a concrete implementation of the same interface.
var (
	Vulkan Backend = &stubBackend{name: "vulkan"}
	Metal  Backend = &stubBackend{name: "metal"}
	WebGPU Backend = &stubBackend{name: "webgpu"}
)
