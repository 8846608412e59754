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
	"strconv"
	"strings"

	"seehuhn.de/go/render3d"
)

var errSyntax = errors.New("malformed value")

// parseFloats parses exactly len(dst) space-separated numbers.
func parseFloats(text []byte, dst []float64) error {
	fields := strings.Fields(string(text))
	if len(fields) != len(dst) {
		return fmt.Errorf("%w %q: want %d numbers, got %d",
			errSyntax, text, len(dst), len(fields))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("%w %q: %w", errSyntax, text, err)
		}
		dst[i] = x
	}
	return nil
}

func formatFloats(xx ...float64) []byte {
	var buf []byte
	for i, x := range xx {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
	}
	return buf
}

// Triple is a position, direction or colour, written as "x y z".
type Triple [3]float64

func (t Triple) MarshalText() ([]byte, error) {
	return formatFloats(t[:]...), nil
}

func (t *Triple) UnmarshalText(text []byte) error {
	return parseFloats(text, t[:])
}

// Point returns t as a position vector.
func (t Triple) Point() render3d.Vec4 { return render3d.Point(t[0], t[1], t[2]) }

// Dir returns t as a direction vector.
func (t Triple) Dir() render3d.Vec4 { return render3d.Dir(t[0], t[1], t[2]) }

// RGB returns t as a colour.
func (t Triple) RGB() render3d.Vec4 { return render3d.RGB(t[0], t[1], t[2]) }

// ImagePlane is written as "left right bottom top near far width height".
type ImagePlane render3d.ImagePlane

func (p ImagePlane) MarshalText() ([]byte, error) {
	buf := formatFloats(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	buf = fmt.Appendf(buf, " %d %d", p.Width, p.Height)
	return buf, nil
}

func (p *ImagePlane) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 8 {
		return fmt.Errorf("%w %q: want 8 values, got %d", errSyntax, text, len(fields))
	}
	var xx [6]float64
	if err := parseFloats([]byte(strings.Join(fields[:6], " ")), xx[:]); err != nil {
		return err
	}
	w, err1 := strconv.Atoi(fields[6])
	h, err2 := strconv.Atoi(fields[7])
	if err := errors.Join(err1, err2); err != nil {
		return fmt.Errorf("%w %q: %w", errSyntax, text, err)
	}
	*p = ImagePlane{
		Left: xx[0], Right: xx[1], Bottom: xx[2], Top: xx[3],
		Near: xx[4], Far: xx[5],
		Width: w, Height: h,
	}
	return nil
}

// Rotation is written as "angle x y z", with the angle in degrees.
type Rotation struct {
	Angle float64
	Axis  Triple
}

func (r Rotation) MarshalText() ([]byte, error) {
	return formatFloats(r.Angle, r.Axis[0], r.Axis[1], r.Axis[2]), nil
}

func (r *Rotation) UnmarshalText(text []byte) error {
	var xx [4]float64
	if err := parseFloats(text, xx[:]); err != nil {
		return err
	}
	r.Angle = xx[0]
	r.Axis = Triple{xx[1], xx[2], xx[3]}
	return nil
}

// TransformRef names one elementary transformation, written as a
// single letter and an id, for example "r 2".
//
// Any letter is accepted here; unknown letters are reported when the
// scene is built.
type TransformRef render3d.TransformOp

func (t TransformRef) MarshalText() ([]byte, error) {
	return fmt.Appendf(nil, "%c %d", byte(t.Kind), t.ID), nil
}

func (t *TransformRef) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 2 || len(fields[0]) != 1 {
		return fmt.Errorf("%w transformation %q", errSyntax, text)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w transformation %q: %w", errSyntax, text, err)
	}
	t.Kind = render3d.TransformKind(fields[0][0])
	t.ID = id
	return nil
}

// Faces lists triangles as triples of 1-based vertex indices, one
// triangle per line. Blank lines are ignored.
type Faces [][3]int

func (f Faces) MarshalText() ([]byte, error) {
	var buf []byte
	for i, face := range f {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = fmt.Appendf(buf, "%d %d %d", face[0], face[1], face[2])
	}
	return buf, nil
}

func (f *Faces) UnmarshalText(text []byte) error {
	var res Faces
	for line := range strings.Lines(string(text)) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return fmt.Errorf("%w face %q", errSyntax, strings.TrimSpace(line))
		}
		var face [3]int
		for i, s := range fields {
			k, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("%w face %q: %w", errSyntax, strings.TrimSpace(line), err)
			}
			face[i] = k
		}
		res = append(res, face)
	}
	*f = res
	return nil
}
