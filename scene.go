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
	"fmt"
	"slices"
)

// RenderMode selects how the triangles of a mesh are drawn.
type RenderMode int

const (
	Wireframe RenderMode = iota
	Solid
)

func (m RenderMode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Solid:
		return "solid"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// Triangle is a world-space triangle with one colour per vertex.
// C[i] belongs to V[i].
type Triangle struct {
	V [3]Vec4
	C [3]Vec4
}

// Transform returns the triangle with M applied to the vertex positions.
// Colours are carried over unchanged.
func (t Triangle) Transform(M Mat4) Triangle {
	for i := range t.V {
		t.V[i] = M.MulVec(t.V[i])
	}
	return t
}

// Mesh is a list of triangles sharing a render mode.
// The model transformation is already applied to the vertices.
type Mesh struct {
	ID        int
	Mode      RenderMode
	Triangles []Triangle
}

// Scene is everything needed to render a set of images.
// A Scene is never modified by rendering and may be shared between
// goroutines.
type Scene struct {
	background Vec4
	culling    bool
	cameras    []*Camera
	meshes     []*Mesh
}

// NewScene returns a scene. The slices are copied; the cameras and meshes
// they point to must not be modified afterwards.
func NewScene(background Vec4, culling bool, cameras []*Camera, meshes []*Mesh) *Scene {
	return &Scene{
		background: background,
		culling:    culling,
		cameras:    slices.Clone(cameras),
		meshes:     slices.Clone(meshes),
	}
}

// Background returns the colour of pixels not covered by any mesh.
func (s *Scene) Background() Vec4 { return s.background }

// Culling reports whether back-facing triangles are skipped.
func (s *Scene) Culling() bool { return s.culling }

// Cameras returns the cameras in scene order.
func (s *Scene) Cameras() []*Camera { return slices.Clone(s.cameras) }

// Meshes returns the meshes in drawing order.
func (s *Scene) Meshes() []*Mesh { return slices.Clone(s.meshes) }
