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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ScreenVertex is a projected vertex in pixel coordinates together with
// its colour.
type ScreenVertex struct {
	P vec.Vec2
	C Vec4
}

// ClipLine clips the segment from a to b against the pixel rectangle clip,
// using the Liang–Barsky algorithm.
//
// A point p is inside if clip.LLx <= p.X <= clip.URx and likewise for y.
// Points on the upper edges truncate to pixels just outside the frame,
// which Frame.Set drops. The second return value is false if no part of
// the segment is inside.
//
// The colours of clipped endpoints are interpolated along the colour
// ramp of the original segment, using the same parameter t which locates
// the new endpoint on the original segment.
func ClipLine(a, b ScreenVertex, clip rect.Rect) (ScreenVertex, ScreenVertex, bool) {
	d := b.P.Sub(a.P)

	// For each boundary, p*t <= q must hold for the point at parameter t.
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{
		a.P.X - clip.LLx,
		clip.URx - a.P.X,
		a.P.Y - clip.LLy,
		clip.URy - a.P.Y,
	}

	tEnter, tExit := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return ScreenVertex{}, ScreenVertex{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			tEnter = max(tEnter, t)
		} else {
			tExit = min(tExit, t)
		}
	}
	if tEnter > tExit {
		return ScreenVertex{}, ScreenVertex{}, false
	}

	pointAt := func(t float64) ScreenVertex {
		switch t {
		case 0:
			return a
		case 1:
			return b
		}
		return ScreenVertex{
			P: a.P.Add(d.Mul(t)),
			C: Lerp(a.C, b.C, t),
		}
	}
	return pointAt(tEnter), pointAt(tExit), true
}
