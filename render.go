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

// Package render3d implements a software 3D rendering pipeline.
//
// A [Scene] holds cameras and meshes of coloured triangles. Each camera is
// rendered independently: triangles are culled, projected onto the image
// plane, mapped to pixel coordinates and drawn either as wireframes or as
// filled triangles, with colours interpolated linearly between the
// vertices. There is no depth test; later triangles overwrite earlier ones.
//
// Scenes are usually read from XML files by the sceneio package, and the
// resulting frames written to image files by the imageio package.
package render3d

//go:generate go run ./testcases/export

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/vec"
)

// Project maps a world-space point to pixel coordinates, including the
// perspective divide and the pixel-centre offset. The second return value
// is false if the result is not finite, for example for points in the
// plane of a perspective camera.
func (cam *Camera) Project(p Vec4) (vec.Vec2, bool) {
	return cam.project(cam.CameraMatrix(), cam.ViewportMatrix(), p)
}

func (cam *Camera) project(M, VP Mat4, p Vec4) (vec.Vec2, bool) {
	q := M.MulVec(p)
	if cam.Projection == Perspective {
		q = q.Mul(1 / q.W())
	}
	q = VP.MulVec(q)
	x := q.X() + pixelCenter
	y := q.Y() + pixelCenter
	if !finite2(x, y) {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: x, Y: y}, true
}

// Stats summarizes one render pass.
type Stats struct {
	Triangles  int // triangles considered
	Culled     int // dropped by back-face culling
	Degenerate int // dropped because the projection was not finite or had zero area
	Drawn      int // passed on to the rasterizer
	Pixels     int // pixel writes inside the frame
}

func (s Stats) attrs() []any {
	return []any{
		slog.Int("triangles", s.Triangles),
		slog.Int("culled", s.Culled),
		slog.Int("degenerate", s.Degenerate),
		slog.Int("drawn", s.Drawn),
		slog.Int("pixels", s.Pixels),
	}
}

// RenderCamera renders the scene as seen by cam.
//
// The frame is first filled with the background colour. Then the
// triangles of all meshes are drawn in list order, so that later
// triangles overwrite earlier ones where they overlap.
func RenderCamera(s *Scene, cam *Camera) (*Frame, Stats) {
	log := Logger().With(slog.Int("camera", cam.ID))
	log.Debug("render start",
		slog.String("projection", cam.Projection.String()),
		slog.Int("width", cam.Plane.Width),
		slog.Int("height", cam.Plane.Height))

	frame := NewFrame(cam.Plane.Width, cam.Plane.Height)
	frame.Fill(s.background)
	r := NewRasterizer(frame)

	M := cam.CameraMatrix()
	VP := cam.ViewportMatrix()

	var stats Stats
	for _, mesh := range s.meshes {
		for _, tri := range mesh.Triangles {
			stats.Triangles++
			if !Visible(tri, cam, s.culling) {
				stats.Culled++
				continue
			}

			var sv [3]ScreenVertex
			ok := true
			for i := range sv {
				sv[i].P, ok = cam.project(M, VP, tri.V[i])
				if !ok {
					break
				}
				sv[i].C = tri.C[i]
			}
			if !ok {
				stats.Degenerate++
				continue
			}

			switch mesh.Mode {
			case Solid:
				if _, _, _, ok := Barycentric(sv, 0, 0); !ok {
					stats.Degenerate++
					continue
				}
				r.Triangle(sv)
			default:
				r.Line(sv[0], sv[1])
				r.Line(sv[1], sv[2])
				r.Line(sv[2], sv[0])
			}
			stats.Drawn++
		}
	}
	stats.Pixels = r.Written

	log.Debug("render done", stats.attrs()...)
	return frame, stats
}

// Output is the result of rendering one camera.
type Output struct {
	Camera *Camera
	Frame  *Frame
	Stats  Stats
}

// RenderAll renders every camera of the scene. Up to workers cameras are
// rendered concurrently; values below 1 are treated as 1.
//
// The outputs are returned in camera order. If ctx is cancelled, cameras
// which have not started yet are skipped and the context's error is
// returned.
func RenderAll(ctx context.Context, s *Scene, workers int) ([]Output, error) {
	out := make([]Output, len(s.cameras))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, cam := range s.cameras {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frame, stats := RenderCamera(s, cam)
			out[i] = Output{Camera: cam, Frame: frame, Stats: stats}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
