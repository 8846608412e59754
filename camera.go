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
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateCamera is returned by NewCamera if the camera vectors or
// the image plane do not define a valid projection.
var ErrDegenerateCamera = errors.New("degenerate camera")

// Projection selects how a camera maps view space onto the image plane.
type Projection int

const (
	Orthographic Projection = iota
	Perspective
)

func (p Projection) String() string {
	switch p {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ImagePlane describes the view volume and the resolution of a camera.
//
// Near and Far are the distances of the two clipping planes in front of
// the camera. Since the camera looks down -w, the planes lie at z = -Near
// and z = -Far in view space. Only the magnitudes are used, so the signed
// values -1, -10 and the distances 1, 10 describe the same volume.
type ImagePlane struct {
	Left, Right, Bottom, Top float64
	Near, Far                float64
	Width, Height            int
}

// Camera is a viewpoint from which one image is rendered.
// A Camera is immutable after construction and safe for concurrent use.
type Camera struct {
	ID         int
	Projection Projection
	Position   Vec4
	Plane      ImagePlane
	OutputName string

	// Gaze is the unit viewing direction. U, V and W form an orthonormal
	// basis: U points right, V up, and W backwards (W = -Gaze).
	Gaze, U, V, W Vec4
}

// NewCamera returns a camera at position pos which looks in direction gaze.
// The hint up need not be perpendicular to gaze; the vertical basis vector
// is re-orthogonalized from the other two.
func NewCamera(id int, proj Projection, pos, gaze, up Vec4, plane ImagePlane, outputName string) (*Camera, error) {
	if proj != Orthographic && proj != Perspective {
		return nil, fmt.Errorf("camera %d: %w: projection %d", id, ErrDegenerateCamera, int(proj))
	}
	if plane.Width <= 0 || plane.Height <= 0 {
		return nil, fmt.Errorf("camera %d: %w: resolution %dx%d",
			id, ErrDegenerateCamera, plane.Width, plane.Height)
	}
	if plane.Left == plane.Right || plane.Bottom == plane.Top ||
		math.Abs(plane.Near) == math.Abs(plane.Far) {
		return nil, fmt.Errorf("camera %d: %w: empty view volume", id, ErrDegenerateCamera)
	}
	if proj == Perspective && plane.Near == 0 {
		return nil, fmt.Errorf("camera %d: %w: near plane at the eye", id, ErrDegenerateCamera)
	}

	g, ok := gaze.WithW(0).Normalize()
	if !ok {
		return nil, fmt.Errorf("camera %d: %w: zero gaze vector", id, ErrDegenerateCamera)
	}
	u, ok := g.Cross(up.WithW(0)).Normalize()
	if !ok {
		return nil, fmt.Errorf("camera %d: %w: up vector parallel to gaze", id, ErrDegenerateCamera)
	}
	v, _ := u.Cross(g).Normalize()

	return &Camera{
		ID:         id,
		Projection: proj,
		Position:   pos.WithW(1),
		Plane:      plane,
		OutputName: outputName,
		Gaze:       g,
		U:          u,
		V:          v,
		W:          g.Mul(-1),
	}, nil
}

// ViewMatrix maps world space into camera space, where the camera sits at
// the origin and looks down the negative z-axis.
func (cam *Camera) ViewMatrix() Mat4 {
	row := func(axis Vec4) Vec4 {
		return axis.WithW(-axis.WithW(0).Dot(cam.Position.WithW(0)))
	}
	return Rows(row(cam.U), row(cam.V), row(cam.W), V4(0, 0, 0, 1))
}

// ProjectionMatrix maps camera space onto the canonical cube [-1,1]³.
// For perspective cameras the result has w != 1 and needs to be divided
// by w afterwards.
func (cam *Camera) ProjectionMatrix() Mat4 {
	p := cam.Plane
	l, r, b, t := p.Left, p.Right, p.Bottom, p.Top
	n, f := math.Abs(p.Near), math.Abs(p.Far)

	switch cam.Projection {
	case Perspective:
		return Rows(
			V4(2*n/(r-l), 0, (r+l)/(r-l), 0),
			V4(0, 2*n/(t-b), (t+b)/(t-b), 0),
			V4(0, 0, -(f+n)/(f-n), -2*f*n/(f-n)),
			V4(0, 0, -1, 0),
		)
	default:
		return Rows(
			V4(2/(r-l), 0, 0, -(r+l)/(r-l)),
			V4(0, 2/(t-b), 0, -(t+b)/(t-b)),
			V4(0, 0, -2/(f-n), -(f+n)/(f-n)),
			V4(0, 0, 0, 1),
		)
	}
}

// CameraMatrix returns ProjectionMatrix·ViewMatrix.
func (cam *Camera) CameraMatrix() Mat4 {
	return cam.ProjectionMatrix().Mul(cam.ViewMatrix())
}

// ViewportMatrix maps the canonical square [-1,1]² onto pixel
// coordinates [0,width-1]×[0,height-1], and z onto [0,1].
// The pixel-centre offset of 0.5 is not included; see Project.
func (cam *Camera) ViewportMatrix() Mat4 {
	sx := float64(cam.Plane.Width-1) / 2
	sy := float64(cam.Plane.Height-1) / 2
	return Rows(
		V4(sx, 0, 0, sx),
		V4(0, sy, 0, sy),
		V4(0, 0, 0.5, 0.5),
		V4(0, 0, 0, 1),
	)
}

// pixelCenter is added to x and y after the viewport transform so that
// truncation to int selects the pixel whose box contains the point.
const pixelCenter = 0.5
