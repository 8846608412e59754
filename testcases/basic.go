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

var basicCases = []TestCase{
	{
		Name:  "solid_triangle",
		Scene: orthoTriangle(sceneio.TypeSolid),
	},
	{
		Name:  "wireframe_triangle",
		Scene: orthoTriangle(sceneio.TypeWireframe),
	},
	{
		Name:  "background_only",
		Scene: newScene(grey).camera(orthoCamera(32, 24, "background_only.ppm")).build(),
	},
	{
		Name:  "quad",
		Scene: quad(sceneio.TypeSolid),
	},
	{
		Name:  "quad_wireframe",
		Scene: quad(sceneio.TypeWireframe),
	},
	{
		Name:  "overlap_order",
		Scene: overlap(),
	},
}

// orthoTriangle is a right triangle with a red, a green and a blue
// corner, seen by an orthographic 100×100 camera.
func orthoTriangle(typ string) *sceneio.Document {
	b := newScene(black).camera(orthoCamera(100, 100, typ+"_triangle.ppm"))
	v1 := b.vertex(sceneio.Triple{0, 0, -5}, red)
	v2 := b.vertex(sceneio.Triple{1, 0, -5}, green)
	v3 := b.vertex(sceneio.Triple{0, 1, -5}, blue)
	return b.mesh(typ, sceneio.Faces{{v1, v2, v3}}).build()
}

// quad is a square made of two triangles which share a diagonal.
func quad(typ string) *sceneio.Document {
	b := newScene(black).camera(orthoCamera(64, 64, "quad.ppm"))
	v1 := b.vertex(sceneio.Triple{-0.5, -0.5, -2}, red)
	v2 := b.vertex(sceneio.Triple{0.5, -0.5, -2}, green)
	v3 := b.vertex(sceneio.Triple{0.5, 0.5, -2}, blue)
	v4 := b.vertex(sceneio.Triple{-0.5, 0.5, -2}, white)
	return b.mesh(typ, sceneio.Faces{{v1, v2, v3}, {v1, v3, v4}}).build()
}

// overlap has two meshes covering the centre of the image. The blue one
// is further away but comes second, so it is visible where they overlap.
func overlap() *sceneio.Document {
	b := newScene(black).camera(orthoCamera(64, 64, "overlap.ppm"))
	r1 := b.vertex(sceneio.Triple{-0.8, -0.8, -5}, red)
	r2 := b.vertex(sceneio.Triple{0.6, -0.8, -5}, red)
	r3 := b.vertex(sceneio.Triple{-0.8, 0.6, -5}, red)
	b1 := b.vertex(sceneio.Triple{0.8, 0.8, -8}, blue)
	b2 := b.vertex(sceneio.Triple{-0.6, 0.8, -8}, blue)
	b3 := b.vertex(sceneio.Triple{0.8, -0.6, -8}, blue)
	b.mesh(sceneio.TypeSolid, sceneio.Faces{{r1, r2, r3}})
	b.mesh(sceneio.TypeSolid, sceneio.Faces{{b1, b2, b3}})
	return b.build()
}
