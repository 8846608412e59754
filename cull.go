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

import "gonum.org/v1/gonum/spatial/r3"

// Normal returns cross(V[1]-V[0], V[2]-V[0]). Its length is twice the
// triangle area; a zero-area triangle has the zero normal.
func (t Triangle) Normal() Vec4 {
	n := faceNormal(t.r3())
	return Dir(n.X, n.Y, n.Z)
}

// Center returns the mean of the three vertices.
func (t Triangle) Center() Vec4 {
	c := centroid(t.r3())
	return Point(c.X, c.Y, c.Z)
}

func (t Triangle) r3() r3.Triangle {
	return r3.Triangle{t.V[0].r3(), t.V[1].r3(), t.V[2].r3()}
}

func faceNormal(t r3.Triangle) r3.Vec {
	return r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
}

func centroid(t r3.Triangle) r3.Vec {
	return r3.Scale(1.0/3, r3.Add(r3.Add(t[0], t[1]), t[2]))
}

// Visible decides whether a world-space triangle passes back-face culling
// for the given camera. With culling disabled every triangle is visible.
//
// For perspective cameras a triangle is dropped if
// dot(normal, position - center) <= 0. For orthographic cameras the
// polarity of the test is reversed and the triangle is dropped if the
// product is >= 0.
func Visible(t Triangle, cam *Camera, culling bool) bool {
	if !culling {
		return true
	}
	tri := t.r3()
	d := r3.Dot(faceNormal(tri), r3.Sub(cam.Position.r3(), centroid(tri)))
	if cam.Projection == Orthographic {
		return d < 0
	}
	return d > 0
}
