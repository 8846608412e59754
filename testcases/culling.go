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

var cullingCases = []TestCase{
	{
		Name:  "front_facing",
		Scene: facing(true, true),
	},
	{
		Name:  "back_facing",
		Scene: facing(false, true),
	},
	{
		Name:  "back_facing_disabled",
		Scene: facing(false, false),
	},
	{
		Name:  "orthographic_towards_camera",
		Scene: orthoFacing(true),
	},
	{
		Name:  "orthographic_away_from_camera",
		Scene: orthoFacing(false),
	},
	{
		Name:  "cube",
		Scene: cube(true),
	},
	{
		Name:  "cube_disabled",
		Scene: cube(false),
	},
}

// facing is a triangle in the plane z=0, seen by a perspective camera on
// the positive z-axis. If front is set, the normal points at the camera.
func facing(front, culling bool) *sceneio.Document {
	b := newScene(black).culling(culling).
		camera(perspectiveCamera(sceneio.Triple{0, 0, 5}, 64, 64, "facing.ppm"))
	v1 := b.vertex(sceneio.Triple{0, 0, 0}, red)
	v2 := b.vertex(sceneio.Triple{1, 0, 0}, green)
	v3 := b.vertex(sceneio.Triple{0, 1, 0}, blue)
	face := [3]int{v1, v2, v3}
	if !front {
		face = [3]int{v1, v3, v2}
	}
	return b.mesh(sceneio.TypeSolid, sceneio.Faces{face}).build()
}

// orthoFacing is like facing, but for an orthographic camera with
// culling enabled.
func orthoFacing(towards bool) *sceneio.Document {
	b := newScene(black).culling(true).camera(orthoCamera(64, 64, "ortho_facing.ppm"))
	v1 := b.vertex(sceneio.Triple{0, 0, -5}, red)
	v2 := b.vertex(sceneio.Triple{1, 0, -5}, green)
	v3 := b.vertex(sceneio.Triple{0, 1, -5}, blue)
	face := [3]int{v1, v2, v3}
	if !towards {
		face = [3]int{v1, v3, v2}
	}
	return b.mesh(sceneio.TypeSolid, sceneio.Faces{face}).build()
}

// cube is the cube [-1,1]³ with outward-facing triangles, seen in
// perspective from a corner.
func cube(culling bool) *sceneio.Document {
	b := newScene(black).culling(culling).
		camera(perspectiveCamera(sceneio.Triple{3, 2, 5}, 96, 96, "cube.ppm"))
	return addCube(b, sceneio.TypeSolid).build()
}

// addCube adds the cube [-1,1]³ as a mesh with the given type.
// Every corner gets a different colour.
func addCube(b *sceneBuilder, typ string, ops ...sceneio.TransformRef) *sceneBuilder {
	var v [8]int
	for i := range v {
		x := float64(i&1)*2 - 1
		y := float64(i>>1&1)*2 - 1
		z := float64(i>>2&1)*2 - 1
		col := sceneio.Triple{float64(i&1) * 255, float64(i>>1&1) * 255, float64(i>>2&1) * 255}
		v[i] = b.vertex(sceneio.Triple{x, y, z}, col)
	}
	// v[i] has x from bit 0, y from bit 1 and z from bit 2.
	faces := sceneio.Faces{
		{v[4], v[5], v[7]}, {v[4], v[7], v[6]}, // +z
		{v[0], v[3], v[1]}, {v[0], v[2], v[3]}, // -z
		{v[1], v[3], v[7]}, {v[1], v[7], v[5]}, // +x
		{v[0], v[4], v[6]}, {v[0], v[6], v[2]}, // -x
		{v[2], v[6], v[7]}, {v[2], v[7], v[3]}, // +y
		{v[0], v[1], v[5]}, {v[0], v[5], v[4]}, // -y
	}
	return b.mesh(typ, faces, ops...)
}
