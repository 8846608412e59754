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

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec4 is a homogeneous four-component vector of doubles.
//
// Positions carry w=1 until they are projected, directions carry w=0.
// The same type holds colours as (r, g, b, a); colour channels are not
// clamped until an image is serialized.
type Vec4 struct {
	v mgl64.Vec4
}

// V4 returns the vector (x, y, z, w).
func V4(x, y, z, w float64) Vec4 {
	return Vec4{mgl64.Vec4{x, y, z, w}}
}

// Point returns the position (x, y, z, 1).
func Point(x, y, z float64) Vec4 {
	return V4(x, y, z, 1)
}

// Dir returns the direction (x, y, z, 0).
func Dir(x, y, z float64) Vec4 {
	return V4(x, y, z, 0)
}

// RGB returns the colour (r, g, b, 0).
func RGB(r, g, b float64) Vec4 {
	return V4(r, g, b, 0)
}

// X returns the first component.
func (a Vec4) X() float64 { return a.v[0] }

// Y returns the second component.
func (a Vec4) Y() float64 { return a.v[1] }

// Z returns the third component.
func (a Vec4) Z() float64 { return a.v[2] }

// W returns the fourth component.
func (a Vec4) W() float64 { return a.v[3] }

// At returns component i, 0 <= i < 4.
func (a Vec4) At(i int) float64 { return a.v[i] }

// Add returns the componentwise sum a+b.
func (a Vec4) Add(b Vec4) Vec4 { return Vec4{a.v.Add(b.v)} }

// Sub returns the componentwise difference a-b.
func (a Vec4) Sub(b Vec4) Vec4 { return Vec4{a.v.Sub(b.v)} }

// Mul returns a with all four components multiplied by s.
func (a Vec4) Mul(s float64) Vec4 { return Vec4{a.v.Mul(s)} }

// Dot returns the sum of the elementwise products over all four components.
func (a Vec4) Dot(b Vec4) float64 {
	return a.v.Dot(b.v)
}

// Cross returns the 3D cross product of the first three components.
// The w component of the result is zero and carries no meaning.
func (a Vec4) Cross(b Vec4) Vec4 {
	return Vec4{a.v.Vec3().Cross(b.v.Vec3()).Vec4(0)}
}

// Len3 returns the Euclidean length of the first three components.
func (a Vec4) Len3() float64 {
	return a.v.Vec3().Len()
}

// Normalize divides the vector by the length of its first three
// components. The second return value is false, and the vector is
// returned unchanged, if that length is zero or not finite.
func (a Vec4) Normalize() (Vec4, bool) {
	l := a.Len3()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return a, false
	}
	return Vec4{a.v.Mul(1 / l)}, true
}

// Min returns the elementwise minimum of a and b.
func (a Vec4) Min(b Vec4) Vec4 {
	return V4(
		math.Min(a.v[0], b.v[0]),
		math.Min(a.v[1], b.v[1]),
		math.Min(a.v[2], b.v[2]),
		math.Min(a.v[3], b.v[3]),
	)
}

// Max returns the elementwise maximum of a and b.
func (a Vec4) Max(b Vec4) Vec4 {
	return V4(
		math.Max(a.v[0], b.v[0]),
		math.Max(a.v[1], b.v[1]),
		math.Max(a.v[2], b.v[2]),
		math.Max(a.v[3], b.v[3]),
	)
}

// WithW returns a copy of a with the fourth component replaced.
func (a Vec4) WithW(w float64) Vec4 {
	a.v[3] = w
	return a
}

// Lerp returns (1-t)*a + t*b.
func Lerp(a, b Vec4, t float64) Vec4 {
	return Vec4{a.v.Mul(1 - t).Add(b.v.Mul(t))}
}

// ApproxEqual reports whether all components of a and b differ by at
// most eps.
func (a Vec4) ApproxEqual(b Vec4, eps float64) bool {
	for i := range a.v {
		if !(math.Abs(a.v[i]-b.v[i]) <= eps) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vec4) IsFinite() bool {
	for _, x := range a.v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// r3 converts the first three components to a gonum vector.
func (a Vec4) r3() r3.Vec {
	return r3.Vec{X: a.v[0], Y: a.v[1], Z: a.v[2]}
}

func (a Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", a.v[0], a.v[1], a.v[2], a.v[3])
}
