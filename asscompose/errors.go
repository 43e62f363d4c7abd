// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asscompose is the compositor and dirty-region tracker (C10):
// it alpha-blends a frame's intermediate layers bottom-up into an RGBA8
// framebuffer, and tracks which screen regions actually need
// recompositing from one frame to the next.
package asscompose

import "errors"

// Sentinel RenderError-family values (spec section 7's RenderError
// taxonomy, the subset that is the compositor's concern). Callers use
// errors.Is against these; Composite/CompositeIncremental wrap them with
// fmt.Errorf("...: %w", ...) for added context.
var (
	// ErrInvalidBufferSize is returned when a destination buffer's
	// length does not equal width*height*4.
	ErrInvalidBufferSize = errors.New("asscompose: invalid buffer size")
	// ErrInvalidDimensions is returned for a non-positive width or height.
	ErrInvalidDimensions = errors.New("asscompose: invalid dimensions")
)
