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
	"math"

	"seehuhn.de/go/geom/rect"
)

// Rasterizer draws lines and triangles, given in pixel coordinates, into a
// Frame. There is no anti-aliasing and no depth test: every covered pixel
// is overwritten, so the order of drawing calls matters.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip is the rectangle lines are clipped against before drawing.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	dst *Frame

	// Written counts the pixel writes which landed inside the frame.
	Written int
}

// NewRasterizer returns a Rasterizer which draws into dst and clips
// against the full frame.
func NewRasterizer(dst *Frame) *Rasterizer {
	return &Rasterizer{
		Clip: dst.Bounds(),
		dst:  dst,
	}
}

func (r *Rasterizer) plot(x, y int, c Vec4) {
	if r.dst.Set(x, y, c) {
		r.Written++
	}
}

// Line clips the segment from a to b against r.Clip and draws the visible
// part. It reports whether anything was left to draw after clipping.
func (r *Rasterizer) Line(a, b ScreenVertex) bool {
	a, b, ok := ClipLine(a, b, r.Clip)
	if !ok {
		return false
	}
	r.drawLine(a, b)
	return true
}

// drawLine draws the segment from a to b without clipping, using integer
// midpoint stepping. Endpoint coordinates are truncated to integers.
//
// The segment is always traversed from the endpoint with the smaller x.
// The final coordinate along the stepping axis is excluded, so that
// consecutive edges of a polygon do not draw their shared vertex twice.
func (r *Rasterizer) drawLine(a, b ScreenVertex) {
	if !finite2(a.P.X, a.P.Y) || !finite2(b.P.X, b.P.Y) {
		return
	}
	x1, y1 := int(a.P.X), int(a.P.Y)
	x2, y2 := int(b.P.X), int(b.P.Y)
	c1, c2 := a.C, b.C
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
		c1, c2 = c2, c1
	}

	dx := x2 - x1
	dy := y2 - y1
	if dx != 0 && abs(dy) <= dx {
		r.shallowLine(x1, y1, x2, y2, c1, c2)
	} else {
		r.steepLine(x1, y1, x2, y2, c1, c2)
	}
}

// shallowLine steps x from x1 to x2 (exclusive), with x1 < x2 and
// |y2-y1| <= x2-x1.
func (r *Rasterizer) shallowLine(x1, y1, x2, y2 int, c1, c2 Vec4) {
	dx := x2 - x1
	dy := y2 - y1
	sy := 1
	if dy < 0 {
		sy = -1
		dy = -dy
	}

	d := 2*dy - dx
	y := y1
	for x := x1; x < x2; x++ {
		r.plot(x, y, Lerp(c1, c2, float64(x-x1)/float64(dx)))
		if d > 0 {
			y += sy
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// steepLine steps y towards the larger y value (exclusive), with
// |x2-x1| < |y2-y1| or x1 == x2.
func (r *Rasterizer) steepLine(x1, y1, x2, y2 int, c1, c2 Vec4) {
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
		c1, c2 = c2, c1
	}
	dy := y2 - y1
	if dy == 0 {
		return
	}
	dx := x2 - x1
	sx := 1
	if dx < 0 {
		sx = -1
		dx = -dx
	}

	d := 2*dx - dy
	x := x1
	for y := y1; y < y2; y++ {
		r.plot(x, y, Lerp(c1, c2, float64(y-y1)/float64(dy)))
		if d > 0 {
			x += sx
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

// edge evaluates the implicit line function through a and b at (x, y).
// It is zero on the line, and has opposite signs on the two sides.
func edge(xa, ya, xb, yb, x, y float64) float64 {
	return x*(ya-yb) + y*(xb-xa) + xa*yb - ya*xb
}

// Barycentric returns the barycentric coordinates of (x, y) with respect
// to the triangle v. The last return value is false if the triangle has
// zero area.
func Barycentric(v [3]ScreenVertex, x, y float64) (alpha, beta, gamma float64, ok bool) {
	p0, p1, p2 := v[0].P, v[1].P, v[2].P

	d0 := edge(p1.X, p1.Y, p2.X, p2.Y, p0.X, p0.Y)
	d1 := edge(p2.X, p2.Y, p0.X, p0.Y, p1.X, p1.Y)
	d2 := edge(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
	if d0 == 0 || d1 == 0 || d2 == 0 {
		return 0, 0, 0, false
	}

	alpha = edge(p1.X, p1.Y, p2.X, p2.Y, x, y) / d0
	beta = edge(p2.X, p2.Y, p0.X, p0.Y, x, y) / d1
	gamma = edge(p0.X, p0.Y, p1.X, p1.Y, x, y) / d2
	return alpha, beta, gamma, true
}

// Triangle fills the triangle v. A pixel (x, y) is covered if all three
// barycentric coordinates of the point (x, y) are non-negative; its colour
// is the barycentric combination of the vertex colours.
// Zero-area triangles draw nothing.
func (r *Rasterizer) Triangle(v [3]ScreenVertex) {
	for i := range v {
		if !finite2(v[i].P.X, v[i].P.Y) {
			return
		}
	}

	if _, _, _, ok := Barycentric(v, 0, 0); !ok {
		return
	}

	lo := V4(v[0].P.X, v[0].P.Y, 0, 0).Min(V4(v[1].P.X, v[1].P.Y, 0, 0)).Min(V4(v[2].P.X, v[2].P.Y, 0, 0))
	hi := V4(v[0].P.X, v[0].P.Y, 0, 0).Max(V4(v[1].P.X, v[1].P.Y, 0, 0)).Max(V4(v[2].P.X, v[2].P.Y, 0, 0))

	// Limiting the loop to the frame does not change which pixels are
	// written, since Set ignores everything outside.
	xMin := clampInt(math.Floor(lo.X()), 0, r.dst.width)
	yMin := clampInt(math.Floor(lo.Y()), 0, r.dst.height)
	xMax := clampInt(math.Ceil(hi.X()), -1, r.dst.width-1)
	yMax := clampInt(math.Ceil(hi.Y()), -1, r.dst.height-1)

	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			alpha, beta, gamma, _ := Barycentric(v, float64(x), float64(y))
			if alpha < 0 || beta < 0 || gamma < 0 {
				continue
			}
			c := v[0].C.Mul(alpha).Add(v[1].C.Mul(beta)).Add(v[2].C.Mul(gamma))
			r.plot(x, y, c)
		}
	}
}

func finite2(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

// clampInt converts v to an int in the range [lo, hi].
func clampInt(v float64, lo, hi int) int {
	if v <= float64(lo) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return int(v)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
