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
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4×4 matrix of doubles. Elements are addressed in row-major
// order by At, independent of the internal storage layout.
//
// The zero value is the zero matrix; use Identity for the neutral element
// of multiplication.
type Mat4 struct {
	m mgl64.Mat4
}

// Identity returns the 4×4 identity matrix.
func Identity() Mat4 {
	return Mat4{mgl64.Ident4()}
}

// Rows returns the matrix with the given rows.
func Rows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{mgl64.Mat4FromRows(r0.v, r1.v, r2.v, r3.v)}
}

// At returns the element in row r and column c.
func (A Mat4) At(r, c int) float64 {
	return A.m.At(r, c)
}

// Row returns row r.
func (A Mat4) Row(r int) Vec4 {
	return Vec4{A.m.Row(r)}
}

// Mul returns the matrix product A·B. Applied to a vector, B acts first.
func (A Mat4) Mul(B Mat4) Mat4 {
	return Mat4{A.m.Mul4(B.m)}
}

// MulVec returns the matrix-vector product A·v.
func (A Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{A.m.Mul4x1(v.v)}
}

// Transpose returns the transposed matrix.
func (A Mat4) Transpose() Mat4 {
	return Mat4{A.m.Transpose()}
}

// Det returns the determinant.
func (A Mat4) Det() float64 {
	return A.m.Det()
}

// Inverse returns the inverse of A.
// The second return value is false if A is singular.
func (A Mat4) Inverse() (Mat4, bool) {
	if A.m.Det() == 0 {
		return Mat4{}, false
	}
	return Mat4{A.m.Inv()}, true
}

// ApproxEqual reports whether all elements of A and B differ by at most eps.
func (A Mat4) ApproxEqual(B Mat4, eps float64) bool {
	for i := range A.m {
		if !(math.Abs(A.m[i]-B.m[i]) <= eps) {
			return false
		}
	}
	return true
}

func (A Mat4) String() string {
	var b strings.Builder
	b.WriteString("[")
	for r := range 4 {
		if r > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%g %g %g %g", A.At(r, 0), A.At(r, 1), A.At(r, 2), A.At(r, 3))
	}
	b.WriteString("]")
	return b.String()
}
