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

var transformCases = []TestCase{
	{
		Name: "translation",
		Scene: transformed(func(b *sceneBuilder) []sceneio.TransformRef {
			return []sceneio.TransformRef{b.translation(-0.75, -0.5, 0)}
		}),
	},
	{
		Name: "scaling",
		Scene: transformed(func(b *sceneBuilder) []sceneio.TransformRef {
			return []sceneio.TransformRef{b.scaling(0.5, 1.5, 1)}
		}),
	},
	{
		Name: "rotation_z",
		Scene: transformed(func(b *sceneBuilder) []sceneio.TransformRef {
			return []sceneio.TransformRef{b.rotation(90, 0, 0, 1)}
		}),
	},
	{
		// scale first, then rotate, then move
		Name: "composite",
		Scene: transformed(func(b *sceneBuilder) []sceneio.TransformRef {
			return []sceneio.TransformRef{
				b.scaling(0.5, 0.5, 0.5),
				b.rotation(45, 0, 0, 1),
				b.translation(-0.25, -0.25, 0),
			}
		}),
	},
	{
		// same operations as "composite", applied in the opposite order
		Name: "composite_reversed",
		Scene: transformed(func(b *sceneBuilder) []sceneio.TransformRef {
			return []sceneio.TransformRef{
				b.translation(-0.25, -0.25, 0),
				b.rotation(45, 0, 0, 1),
				b.scaling(0.5, 0.5, 0.5),
			}
		}),
	},
	{
		Name:  "rotated_cube",
		Scene: rotatedCube(),
	},
}

// transformed is the triangle of the basic cases with the model
// transformations returned by ops.
func transformed(ops func(*sceneBuilder) []sceneio.TransformRef) *sceneio.Document {
	b := newScene(black).camera(orthoCamera(64, 64, "transformed.ppm"))
	v1 := b.vertex(sceneio.Triple{0, 0, -5}, red)
	v2 := b.vertex(sceneio.Triple{1, 0, -5}, green)
	v3 := b.vertex(sceneio.Triple{0, 1, -5}, blue)
	return b.mesh(sceneio.TypeSolid, sceneio.Faces{{v1, v2, v3}}, ops(b)...).build()
}

// rotatedCube is a wireframe cube, rotated about the space diagonal and
// moved away from the camera at the origin.
func rotatedCube() *sceneio.Document {
	b := newScene(black).camera(sceneio.Camera{
		Type:     sceneio.TypePerspective,
		Position: sceneio.Triple{0, 0, 0},
		Gaze:     sceneio.Triple{0, 0, -1},
		Up:       sceneio.Triple{0, 1, 0},
		ImagePlane: sceneio.ImagePlane{
			Left: -0.5, Right: 0.5, Bottom: -0.5, Top: 0.5, Near: 1, Far: 20,
			Width: 96, Height: 96,
		},
		OutputName: "rotated_cube.ppm",
	})
	s := b.scaling(0.8, 0.8, 0.8)
	r := b.rotation(30, 1, 1, 1)
	t := b.translation(0, 0, -6)
	return addCube(b, sceneio.TypeWireframe, s, r, t).build()
}
