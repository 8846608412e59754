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

// Package pdfexport writes a vector proof of a rendered view as a PDF file.
//
// The proof shows the same projected triangles as the raster image, with
// one grey level per triangle instead of interpolated colours. It is
// useful for checking geometry, culling and clipping independently of the
// rasterizer.
package pdfexport

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/render3d"
)

// WriteProof writes a one-page PDF showing the scene as seen by cam.
// One pixel of the camera corresponds to scale PDF points.
func WriteProof(fname string, s *render3d.Scene, cam *render3d.Camera, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	w := float64(cam.Plane.Width)
	h := float64(cam.Plane.Height)

	paper := &pdf.Rectangle{
		URx: w * scale,
		URy: h * scale,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.Transform(matrix.Matrix{scale, 0, 0, scale, 0, 0})

	page.SetFillColor(gray(s.Background()))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	clip := render3d.NewFrame(cam.Plane.Width, cam.Plane.Height).Bounds()
	var drawn int
	for _, mesh := range s.Meshes() {
		for _, tri := range mesh.Triangles {
			if !render3d.Visible(tri, cam, s.Culling()) {
				continue
			}
			sv, ok := project(cam, tri)
			if !ok {
				continue
			}

			switch mesh.Mode {
			case render3d.Solid:
				page.SetFillColor(gray(average(tri.C)))
				emit(page, trianglePath(sv))
				page.Fill()
			default:
				p := &path.Data{}
				for i := range sv {
					a, b, ok := render3d.ClipLine(sv[i], sv[(i+1)%3], clip)
					if ok {
						p = p.MoveTo(a.P).LineTo(b.P)
					}
				}
				if len(p.Cmds) == 0 {
					continue
				}
				page.SetStrokeColor(gray(average(tri.C)))
				emit(page, p)
				page.Stroke()
			}
			drawn++
		}
	}

	render3d.Logger().Debug("pdf proof",
		"file", fname, "camera", cam.ID, "triangles", drawn)
	return page.Close()
}

func project(cam *render3d.Camera, tri render3d.Triangle) ([3]render3d.ScreenVertex, bool) {
	var sv [3]render3d.ScreenVertex
	for i := range sv {
		p, ok := cam.Project(tri.V[i])
		if !ok {
			return sv, false
		}
		sv[i] = render3d.ScreenVertex{P: p, C: tri.C[i]}
	}
	return sv, true
}

func trianglePath(sv [3]render3d.ScreenVertex) *path.Data {
	return (&path.Data{}).
		MoveTo(sv[0].P).
		LineTo(sv[1].P).
		LineTo(sv[2].P).
		Close()
}

// emit appends the path to the current page, without painting it.
func emit(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func average(c [3]render3d.Vec4) render3d.Vec4 {
	return c[0].Add(c[1]).Add(c[2]).Mul(1.0 / 3)
}

// gray converts a colour with channels in [0,255] to a grey level.
func gray(c render3d.Vec4) color.Color {
	y := (0.299*c.X() + 0.587*c.Y() + 0.114*c.Z()) / 255
	return color.DeviceGray(min(max(y, 0), 1))
}
