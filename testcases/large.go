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

// largeCases contain many triangles, for benchmarks and for tests which
// check that adjacent triangles leave no gaps.
var largeCases = []TestCase{
	{
		Name:  "grid",
		Scene: grid(sceneio.TypeSolid, 16, 512),
	},
	{
		Name:  "grid_wireframe",
		Scene: grid(sceneio.TypeWireframe, 16, 512),
	},
	{
		Name:  "grid_fine",
		Scene: grid(sceneio.TypeSolid, 64, 256),
	},
}

// grid covers the square [-0.9,0.9]² with n×n cells, each split into two
// triangles. Vertex colours vary smoothly across the grid.
func grid(typ string, n, size int) *sceneio.Document {
	b := newScene(black).camera(orthoCamera(size, size, "grid.ppm"))

	idx := make([][]int, n+1)
	for j := range idx {
		idx[j] = make([]int, n+1)
		for i := range idx[j] {
			s := float64(i) / float64(n)
			t := float64(j) / float64(n)
			pos := sceneio.Triple{-0.9 + 1.8*s, -0.9 + 1.8*t, -5}
			col := sceneio.Triple{255 * s, 255 * t, 255 * (1 - s)}
			idx[j][i] = b.vertex(pos, col)
		}
	}

	var faces sceneio.Faces
	for j := range n {
		for i := range n {
			a, c := idx[j][i], idx[j+1][i+1]
			faces = append(faces,
				[3]int{a, idx[j][i+1], c},
				[3]int{a, c, idx[j+1][i]})
		}
	}
	return b.mesh(typ, faces).build()
}
