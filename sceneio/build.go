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

package sceneio

import (
	"errors"
	"fmt"

	"seehuhn.de/go/render3d"
)

var (
	// ErrFaceIndex is returned by Build if a face refers to a vertex
	// which does not exist. Vertex indices start at 1.
	ErrFaceIndex = errors.New("face index out of range")

	// ErrUnknownType is returned by Build for a camera or mesh type
	// which is not recognised.
	ErrUnknownType = errors.New("unknown type")

	// ErrDuplicateID is returned by Build if two translations, scalings
	// or rotations share the same id.
	ErrDuplicateID = errors.New("duplicate id")
)

// These are the values of the type attributes and the Culling element.
const (
	TypeOrthographic = "orthographic"
	TypePerspective  = "perspective"
	TypeWireframe    = "wireframe"
	TypeSolid        = "solid"
	CullingEnabled   = "enabled"
	CullingDisabled  = "disabled"
)

// Build validates the document and constructs the scene.
// The model transformation of every mesh is applied to its vertices.
func (doc *Document) Build() (*render3d.Scene, error) {
	cameras := make([]*render3d.Camera, 0, len(doc.Cameras))
	for _, c := range doc.Cameras {
		cam, err := c.build()
		if err != nil {
			return nil, err
		}
		cameras = append(cameras, cam)
	}

	table, err := doc.transformTable()
	if err != nil {
		return nil, err
	}

	meshes := make([]*render3d.Mesh, 0, len(doc.Meshes))
	for _, m := range doc.Meshes {
		mesh, err := m.build(table, doc.Vertices)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", m.ID, err)
		}
		meshes = append(meshes, mesh)
	}

	culling := doc.Culling == CullingEnabled
	return render3d.NewScene(doc.Background.RGB(), culling, cameras, meshes), nil
}

func (c *Camera) build() (*render3d.Camera, error) {
	var proj render3d.Projection
	switch c.Type {
	case TypeOrthographic:
		proj = render3d.Orthographic
	case TypePerspective:
		proj = render3d.Perspective
	default:
		return nil, fmt.Errorf("camera %d: %w %q", c.ID, ErrUnknownType, c.Type)
	}
	return render3d.NewCamera(c.ID, proj,
		c.Position.Point(), c.Gaze.Dir(), c.Up.Dir(),
		render3d.ImagePlane(c.ImagePlane), c.OutputName)
}

func (doc *Document) transformTable() (*render3d.TransformTable, error) {
	table := render3d.NewTransformTable()
	for _, t := range doc.Translations {
		if _, dup := table.Translations[t.ID]; dup {
			return nil, fmt.Errorf("translation %d: %w", t.ID, ErrDuplicateID)
		}
		table.Translations[t.ID] = render3d.Translation(t.Value[0], t.Value[1], t.Value[2])
	}
	for _, s := range doc.Scalings {
		if _, dup := table.Scalings[s.ID]; dup {
			return nil, fmt.Errorf("scaling %d: %w", s.ID, ErrDuplicateID)
		}
		table.Scalings[s.ID] = render3d.Scaling(s.Value[0], s.Value[1], s.Value[2])
	}
	for _, r := range doc.Rotations {
		if _, dup := table.Rotations[r.ID]; dup {
			return nil, fmt.Errorf("rotation %d: %w", r.ID, ErrDuplicateID)
		}
		M, err := render3d.Rotation(r.Value.Axis.Dir(), r.Value.Angle)
		if err != nil {
			return nil, fmt.Errorf("rotation %d: %w", r.ID, err)
		}
		table.Rotations[r.ID] = M
	}
	return table, nil
}

func (m *Mesh) build(table *render3d.TransformTable, vertices []Vertex) (*render3d.Mesh, error) {
	var mode render3d.RenderMode
	switch m.Type {
	case TypeWireframe:
		mode = render3d.Wireframe
	case TypeSolid:
		mode = render3d.Solid
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, m.Type)
	}

	ops := make([]render3d.TransformOp, len(m.Transformations))
	for i, t := range m.Transformations {
		ops[i] = render3d.TransformOp(t)
	}
	M, err := table.Compose(ops)
	if err != nil {
		return nil, err
	}

	tris := make([]render3d.Triangle, 0, len(m.Faces))
	for _, face := range m.Faces {
		var tri render3d.Triangle
		for i, k := range face {
			if k < 1 || k > len(vertices) {
				return nil, fmt.Errorf("%w: %d not in 1..%d", ErrFaceIndex, k, len(vertices))
			}
			v := vertices[k-1]
			tri.V[i] = v.Position.Point()
			tri.C[i] = v.Color.RGB()
		}
		tris = append(tris, tri.Transform(M))
	}

	return &render3d.Mesh{ID: m.ID, Mode: mode, Triangles: tris}, nil
}
