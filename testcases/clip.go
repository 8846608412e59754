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

package testcases

import "seehuhn.de/go/render3d/sceneio"

// clipCases have geometry which extends past the image border.
var clipCases = []TestCase{
	{
		Name:  "wireframe_partial",
		Scene: large2D(sceneio.TypeWireframe, -1.5, -0.5, 0.5, 2.5),
	},
	{
		Name:  "solid_partial",
		Scene: large2D(sceneio.TypeSolid, -1.5, -0.5, 0.5, 2.5),
	},
	{
		Name:  "wireframe_outside",
		Scene: large2D(sceneio.TypeWireframe, 1.5, 1.5, 3, 3),
	},
	{
		Name:  "solid_outside",
		Scene: large2D(sceneio.TypeSolid, -3, -3, -1.5, -1.5),
	},
	{
		Name:  "solid_covering",
		Scene: large2D(sceneio.TypeSolid, -4, -4, 8, 8),
	},
}

// large2D is a triangle with its right angle at (x0, y0) and the other
// two corners at (x1, y0) and (x0, y1).
func large2D(typ string, x0, y0, x1, y1 float64) *sceneio.Document {
	b := newScene(grey).camera(orthoCamera(48, 32, "clip.ppm"))
	v1 := b.vertex(sceneio.Triple{x0, y0, -5}, red)
	v2 := b.vertex(sceneio.Triple{x1, y0, -5}, green)
	v3 := b.vertex(sceneio.Triple{x0, y1, -5}, blue)
	return b.mesh(typ, sceneio.Faces{{v1, v2, v3}}).build()
}
