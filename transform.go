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

var (
	// ErrDegenerateAxis is returned for a rotation about a zero-length axis.
	ErrDegenerateAxis = errors.New("rotation axis has zero length")

	// ErrUnknownTransform is returned for a transformation code other
	// than 't', 'r' or 's'.
	ErrUnknownTransform = errors.New("unknown transformation")

	// ErrUnknownTransformID is returned when a transformation refers to
	// an id which is not in the table.
	ErrUnknownTransformID = errors.New("unknown transformation id")
)

// Translation returns the matrix which moves points by (dx, dy, dz).
func Translation(dx, dy, dz float64) Mat4 {
	return Rows(
		V4(1, 0, 0, dx),
		V4(0, 1, 0, dy),
		V4(0, 0, 1, dz),
		V4(0, 0, 0, 1),
	)
}

// Scaling returns the matrix which scales the three axes independently.
func Scaling(sx, sy, sz float64) Mat4 {
	return Rows(
		V4(sx, 0, 0, 0),
		V4(0, sy, 0, 0),
		V4(0, 0, sz, 0),
		V4(0, 0, 0, 1),
	)
}

func rotationX(c, s float64) Mat4 {
	return Rows(
		V4(1, 0, 0, 0),
		V4(0, c, -s, 0),
		V4(0, s, c, 0),
		V4(0, 0, 0, 1),
	)
}

func rotationY(c, s float64) Mat4 {
	return Rows(
		V4(c, 0, s, 0),
		V4(0, 1, 0, 0),
		V4(-s, 0, c, 0),
		V4(0, 0, 0, 1),
	)
}

// Rotation returns the matrix which rotates counter-clockwise by angle
// degrees about the given axis through the origin, looking down the axis
// towards the origin.
//
// The axis is first rotated about x into the xz-plane and then about y
// onto the positive x-axis. After the rotation about x by angle, both
// alignment steps are undone using their inverses.
func Rotation(axis Vec4, angle float64) (Mat4, error) {
	a, b, c := axis.X(), axis.Y(), axis.Z()
	l := math.Sqrt(a*a + b*b + c*c)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Mat4{}, ErrDegenerateAxis
	}

	// (a, b, c) -> (a, 0, d)
	toXZ := Identity()
	d := math.Hypot(b, c)
	if d > 0 {
		toXZ = rotationX(c/d, b/d)
	}

	// (a, 0, d) -> (l, 0, 0)
	toX := rotationY(a/l, d/l)

	theta := angle * math.Pi / 180
	rot := rotationX(math.Cos(theta), math.Sin(theta))

	fromXZ, ok1 := toXZ.Inverse()
	fromX, ok2 := toX.Inverse()
	if !ok1 || !ok2 {
		return Mat4{}, ErrDegenerateAxis
	}
	return fromXZ.Mul(fromX).Mul(rot).Mul(toX).Mul(toXZ), nil
}

// TransformKind identifies a table of elementary transformations.
type TransformKind byte

// These are the transformation codes used in scene descriptions.
const (
	KindTranslation TransformKind = 't'
	KindRotation    TransformKind = 'r'
	KindScaling     TransformKind = 's'
)

func (k TransformKind) String() string {
	switch k {
	case KindTranslation:
		return "translation"
	case KindRotation:
		return "rotation"
	case KindScaling:
		return "scaling"
	default:
		return fmt.Sprintf("TransformKind(%q)", byte(k))
	}
}

// TransformOp refers to one entry of a TransformTable.
type TransformOp struct {
	Kind TransformKind
	ID   int
}

// TransformTable holds the named elementary transformations of a scene.
type TransformTable struct {
	Translations map[int]Mat4
	Rotations    map[int]Mat4
	Scalings     map[int]Mat4
}

// NewTransformTable returns an empty table.
func NewTransformTable() *TransformTable {
	return &TransformTable{
		Translations: make(map[int]Mat4),
		Rotations:    make(map[int]Mat4),
		Scalings:     make(map[int]Mat4),
	}
}

// Lookup returns the matrix for a single operation.
func (tt *TransformTable) Lookup(op TransformOp) (Mat4, error) {
	var table map[int]Mat4
	switch op.Kind {
	case KindTranslation:
		table = tt.Translations
	case KindRotation:
		table = tt.Rotations
	case KindScaling:
		table = tt.Scalings
	default:
		return Mat4{}, fmt.Errorf("%w %q", ErrUnknownTransform, byte(op.Kind))
	}
	M, ok := table[op.ID]
	if !ok {
		return Mat4{}, fmt.Errorf("%w: %s %d", ErrUnknownTransformID, op.Kind, op.ID)
	}
	return M, nil
}

// Compose returns the composite model matrix op_n·…·op_2·op_1 of the
// given operations, so that ops[0] is applied to a vertex first.
// An empty list gives the identity.
func (tt *TransformTable) Compose(ops []TransformOp) (Mat4, error) {
	M := Identity()
	for _, op := range ops {
		T, err := tt.Lookup(op)
		if err != nil {
			return Mat4{}, err
		}
		M = T.Mul(M)
	}
	return M, nil
}
