// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asseffect

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// Affine3 is a 3x3 affine matrix in row-major form, the last row fixed
// to (0,0,1):
//
//	| A B Tx |
//	| C D Ty |
//	| 0 0 1  |
type Affine3 struct {
	A, B, Tx float32
	C, D, Ty float32
}

// Identity returns the identity transform.
func Identity() Affine3 {
	return Affine3{A: 1, D: 1}
}

// Translate returns a pure translation.
func Translate(dx, dy float32) Affine3 {
	return Affine3{A: 1, D: 1, Tx: dx, Ty: dy}
}

// Scale returns a pure scale about the origin.
func Scale(sx, sy float32) Affine3 {
	return Affine3{A: sx, D: sy}
}

// Rotate returns a pure rotation about the origin by degrees.
func Rotate(degrees float32) Affine3 {
	r := degrees * math32.Pi / 180
	sin, cos := math32.Sin(r), math32.Cos(r)
	return Affine3{A: cos, B: -sin, C: sin, D: cos}
}

// Mul returns m composed with n, applying n first then m (m∘n).
func (m Affine3) Mul(n Affine3) Affine3 {
	return Affine3{
		A: m.A*n.A + m.B*n.C, B: m.A*n.B + m.B*n.D, Tx: m.A*n.Tx + m.B*n.Ty + m.Tx,
		C: m.C*n.A + m.D*n.C, D: m.C*n.B + m.D*n.D, Ty: m.C*n.Tx + m.D*n.Ty + m.Ty,
	}
}

// Apply maps a point through the transform.
func (m Affine3) Apply(x, y float32) (float32, float32) {
	return m.A*x + m.B*y + m.Tx, m.C*x + m.D*y + m.Ty
}

// Invert returns m's inverse, or Identity if m is singular.
func (m Affine3) Invert() Affine3 {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity()
	}
	inv := 1 / det
	a, b, c, d := m.D*inv, -m.B*inv, -m.C*inv, m.A*inv
	tx := -(a*m.Tx + b*m.Ty)
	ty := -(c*m.Tx + d*m.Ty)
	return Affine3{A: a, B: b, Tx: tx, C: c, D: d, Ty: ty}
}

// Transform renders img through m into a dst-sized canvas: for each
// destination pixel, m's inverse maps it back to a source coordinate,
// bilinear-sampled with zero (transparent) outside src's bounds (spec
// section 4.7: "output is built by inverse-mapping destination pixels
// to source and bilinear-sampling with zero-outside").
func Transform(src image.Image, m Affine3, dstW, dstH int) *image.RGBA {
	inv := m.Invert()
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	b := src.Bounds()

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			sx, sy := inv.Apply(float32(x)+0.5, float32(y)+0.5)
			dst.SetRGBA(x, y, bilinearSample(src, b, sx-0.5, sy-0.5))
		}
	}
	return dst
}

func bilinearSample(src image.Image, b image.Rectangle, x, y float32) color.RGBA {
	x0 := math32.Floor(x)
	y0 := math32.Floor(y)
	fx := x - x0
	fy := y - y0

	c00 := sampleOrZero(src, b, int(x0), int(y0))
	c10 := sampleOrZero(src, b, int(x0)+1, int(y0))
	c01 := sampleOrZero(src, b, int(x0), int(y0)+1)
	c11 := sampleOrZero(src, b, int(x0)+1, int(y0)+1)

	return color.RGBA{
		R: blend4(c00.R, c10.R, c01.R, c11.R, fx, fy),
		G: blend4(c00.G, c10.G, c01.G, c11.G, fx, fy),
		B: blend4(c00.B, c10.B, c01.B, c11.B, fx, fy),
		A: blend4(c00.A, c10.A, c01.A, c11.A, fx, fy),
	}
}

func sampleOrZero(src image.Image, b image.Rectangle, x, y int) color.RGBA {
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return color.RGBA{}
	}
	r, g, bl, a := src.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)}
}

func blend4(c00, c10, c01, c11 uint8, fx, fy float32) uint8 {
	top := float32(c00) + (float32(c10)-float32(c00))*fx
	bot := float32(c01) + (float32(c11)-float32(c01))*fx
	return uint8(top + (bot-top)*fy)
}
