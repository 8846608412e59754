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

import (
	"seehuhn.de/go/render3d/sceneio"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name  string            // lowercase a-z, 0-9 and _ only
	Scene *sceneio.Document // the scene to render
}

// sceneBuilder assembles a scene document. Vertices are numbered from 1
// in the order they are added.
type sceneBuilder struct {
	doc *sceneio.Document
}

func newScene(bg sceneio.Triple) *sceneBuilder {
	return &sceneBuilder{doc: &sceneio.Document{Background: bg}}
}

func (b *sceneBuilder) culling(on bool) *sceneBuilder {
	if on {
		b.doc.Culling = sceneio.CullingEnabled
	} else {
		b.doc.Culling = sceneio.CullingDisabled
	}
	return b
}

func (b *sceneBuilder) camera(c sceneio.Camera) *sceneBuilder {
	c.ID = len(b.doc.Cameras) + 1
	b.doc.Cameras = append(b.doc.Cameras, c)
	return b
}

// vertex adds a vertex and returns its 1-based index.
func (b *sceneBuilder) vertex(pos, color sceneio.Triple) int {
	b.doc.Vertices = append(b.doc.Vertices, sceneio.Vertex{Position: pos, Color: color})
	return len(b.doc.Vertices)
}

func (b *sceneBuilder) translation(x, y, z float64) sceneio.TransformRef {
	id := len(b.doc.Translations) + 1
	b.doc.Translations = append(b.doc.Translations,
		sceneio.Elementary{ID: id, Value: sceneio.Triple{x, y, z}})
	return sceneio.TransformRef{Kind: 't', ID: id}
}

func (b *sceneBuilder) scaling(x, y, z float64) sceneio.TransformRef {
	id := len(b.doc.Scalings) + 1
	b.doc.Scalings = append(b.doc.Scalings,
		sceneio.Elementary{ID: id, Value: sceneio.Triple{x, y, z}})
	return sceneio.TransformRef{Kind: 's', ID: id}
}

func (b *sceneBuilder) rotation(angle, x, y, z float64) sceneio.TransformRef {
	id := len(b.doc.Rotations) + 1
	b.doc.Rotations = append(b.doc.Rotations,
		sceneio.RotationDef{ID: id, Value: sceneio.Rotation{Angle: angle, Axis: sceneio.Triple{x, y, z}}})
	return sceneio.TransformRef{Kind: 'r', ID: id}
}

func (b *sceneBuilder) mesh(typ string, faces sceneio.Faces, ops ...sceneio.TransformRef) *sceneBuilder {
	b.doc.Meshes = append(b.doc.Meshes, sceneio.Mesh{
		ID:              len(b.doc.Meshes) + 1,
		Type:            typ,
		Transformations: ops,
		Faces:           faces,
	})
	return b
}

func (b *sceneBuilder) build() *sceneio.Document {
	return b.doc
}

// orthoCamera looks down the negative z-axis from the origin, onto the
// square [-1,1]×[-1,1].
func orthoCamera(width, height int, name string) sceneio.Camera {
	return sceneio.Camera{
		Type:     sceneio.TypeOrthographic,
		Position: sceneio.Triple{0, 0, 0},
		Gaze:     sceneio.Triple{0, 0, -1},
		Up:       sceneio.Triple{0, 1, 0},
		ImagePlane: sceneio.ImagePlane{
			Left: -1, Right: 1, Bottom: -1, Top: 1, Near: -1, Far: -10,
			Width: width, Height: height,
		},
		OutputName: name,
	}
}

// perspectiveCamera sits at pos and looks at the origin.
func perspectiveCamera(pos sceneio.Triple, width, height int, name string) sceneio.Camera {
	return sceneio.Camera{
		Type:     sceneio.TypePerspective,
		Position: pos,
		Gaze:     sceneio.Triple{-pos[0], -pos[1], -pos[2]},
		Up:       sceneio.Triple{0, 1, 0},
		ImagePlane: sceneio.ImagePlane{
			Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 100,
			Width: width, Height: height,
		},
		OutputName: name,
	}
}

var (
	red   = sceneio.Triple{255, 0, 0}
	green = sceneio.Triple{0, 255, 0}
	blue  = sceneio.Triple{0, 0, 255}
	white = sceneio.Triple{255, 255, 255}
	black = sceneio.Triple{0, 0, 0}
	grey  = sceneio.Triple{128, 128, 128}
)
