// seehuhn.de/go/render3d - a software 3D rendering pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render3d

import (
	"image"
	"iter"

	"seehuhn.de/go/geom/rect"
)

// Frame is a pixel buffer of unclamped colours.
//
// Pixel (x, y) with y=0 at the bottom row is stored at index y*width+x.
// All writes are bounds-checked; writes outside the frame are dropped.
// A Frame is not safe for concurrent use.
type Frame struct {
	width, height int
	pix           []Vec4
}

// NewFrame returns a frame of the given size, filled with the zero colour.
func NewFrame(width, height int) *Frame {
	width = max(width, 0)
	height = max(height, 0)
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]Vec4, width*height),
	}
}

// Width returns the number of pixel columns.
func (f *Frame) Width() int { return f.width }

// Height returns the number of pixel rows.
func (f *Frame) Height() int { return f.height }

// Bounds returns the frame rectangle [0,width)×[0,height) in device
// coordinates.
func (f *Frame) Bounds() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(f.width), URy: float64(f.height)}
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c Vec4) {
	if len(f.pix) == 0 {
		return
	}
	f.pix[0] = c
	for i := 1; i < len(f.pix); i *= 2 {
		copy(f.pix[i:], f.pix[:i])
	}
}

// Set writes the colour of pixel (x, y) and reports whether the pixel
// lies inside the frame.
func (f *Frame) Set(x, y int, c Vec4) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	f.pix[y*f.width+x] = c
	return true
}

// Pixel returns the colour of pixel (x, y). The second return value is
// false if the pixel lies outside the frame.
func (f *Frame) Pixel(x, y int) (Vec4, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Vec4{}, false
	}
	return f.pix[y*f.width+x], true
}

// Rows iterates over the pixel rows from the top of the image to the
// bottom, which is the order used by image files. The yielded slice
// aliases the frame and is only valid during the callback.
func (f *Frame) Rows() iter.Seq2[int, []Vec4] {
	return func(yield func(int, []Vec4) bool) {
		for i := range f.height {
			y := f.height - 1 - i
			if !yield(i, f.pix[y*f.width:(y+1)*f.width]) {
				return
			}
		}
	}
}

// ClampChannel converts one colour channel to the integer range [0,255].
// Values are clamped and then truncated.
func ClampChannel(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 || v != v {
		return 0
	}
	return uint8(v)
}

// NRGBA converts the frame into an opaque 8-bit image.
// The row order is flipped so that row 0 of the result is the top row.
func (f *Frame) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y, row := range f.Rows() {
		off := y * img.Stride
		for x, c := range row {
			p := off + 4*x
			img.Pix[p+0] = ClampChannel(c.X())
			img.Pix[p+1] = ClampChannel(c.Y())
			img.Pix[p+2] = ClampChannel(c.Z())
			img.Pix[p+3] = 0xFF
		}
	}
	return img
}
