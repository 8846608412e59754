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

var cameraCases = []TestCase{
	{
		Name:  "two_cameras",
		Scene: twoCameras(),
	},
	{
		Name:  "wide_aspect",
		Scene: wideAspect(),
	},
	{
		Name:  "asymmetric_frustum",
		Scene: asymmetricFrustum(),
	},
	{
		Name:  "tilted_up_vector",
		Scene: tiltedUp(),
	},
}

// twoCameras shows one cube from an orthographic and from a perspective
// camera.
func twoCameras() *sceneio.Document {
	b := newScene(grey)
	b.camera(sceneio.Camera{
		Type:     sceneio.TypeOrthographic,
		Position: sceneio.Triple{0, 0, 5},
		Gaze:     sceneio.Triple{0, 0, -1},
		Up:       sceneio.Triple{0, 1, 0},
		ImagePlane: sceneio.ImagePlane{
			Left: -2, Right: 2, Bottom: -2, Top: 2, Near: 1, Far: 20,
			Width: 64, Height: 64,
		},
		OutputName: "two_cameras_ortho.ppm",
	})
	b.camera(perspectiveCamera(sceneio.Triple{4, 3, 5}, 64, 64, "two_cameras_persp.ppm"))
	r := b.rotation(20, 0, 1, 0)
	return addCube(b, sceneio.TypeSolid, r).build()
}

func wideAspect() *sceneio.Document {
	b := newScene(black)
	b.camera(sceneio.Camera{
		Type:     sceneio.TypePerspective,
		Position: sceneio.Triple{0, 1, 6},
		Gaze:     sceneio.Triple{0, -1, -6},
		Up:       sceneio.Triple{0, 1, 0},
		ImagePlane: sceneio.ImagePlane{
			Left: -0.8, Right: 0.8, Bottom: -0.45, Top: 0.45, Near: 1, Far: 50,
			Width: 160, Height: 90,
		},
		OutputName: "wide_aspect.ppm",
	})
	return addCube(b, sceneio.TypeWireframe).build()
}

// asymmetricFrustum has the cube in the lower left part of the image.
func asymmetricFrustum() *sceneio.Document {
	b := newScene(black)
	b.camera(sceneio.Camera{
		Type:     sceneio.TypePerspective,
		Position: sceneio.Triple{0, 0, 8},
		Gaze:     sceneio.Triple{0, 0, -1},
		Up:       sceneio.Triple{0, 1, 0},
		ImagePlane: sceneio.ImagePlane{
			Left: -0.2, Right: 0.6, Bottom: -0.2, Top: 0.6, Near: 1, Far: 50,
			Width: 80, Height: 80,
		},
		OutputName: "asymmetric_frustum.ppm",
	})
	return addCube(b, sceneio.TypeSolid).culling(true).build()
}

// tiltedUp uses an up vector which is not perpendicular to the gaze.
func tiltedUp() *sceneio.Document {
	b := newScene(black)
	b.camera(sceneio.Camera{
		Type:     sceneio.TypeOrthographic,
		Position: sceneio.Triple{0, 0, 0},
		Gaze:     sceneio.Triple{0, 0, -1},
		Up:       sceneio.Triple{1, 1, 0.5},
		ImagePlane: sceneio.ImagePlane{
			Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10,
			Width: 64, Height: 64,
		},
		OutputName: "tilted_up.ppm",
	})
	v1 := b.vertex(sceneio.Triple{0, 0, -5}, red)
	v2 := b.vertex(sceneio.Triple{1, 0, -5}, green)
	v3 := b.vertex(sceneio.Triple{0, 1, -5}, blue)
	return b.mesh(sceneio.TypeSolid, sceneio.Faces{{v1, v2, v3}}).build()
}
