// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asseffect

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// GaussianBlur applies a separable Gaussian blur of the given pixel
// radius (spec section 4.7: "σ = r/3", which bild's Gaussian already
// uses internally as its sigma parameter convention).
func GaussianBlur(img image.Image, radius float32) *image.RGBA {
	if radius <= 0 {
		return toRGBA(img)
	}
	return blur.Gaussian(img, float64(radius))
}

// BoxBlur applies a (2r+1)^2 mean filter.
func BoxBlur(img image.Image, radius float32) *image.RGBA {
	if radius <= 0 {
		return toRGBA(img)
	}
	return blur.Box(img, float64(radius))
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
