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

package imageio

import (
	"io"

	"github.com/spakin/netpbm"

	"seehuhn.de/go/render3d"
)

// writePPM writes the frame as a plain (ASCII) PPM file with maximum
// value 255. The name is stored as a header comment.
func writePPM(w io.Writer, frame *render3d.Frame, name string) error {
	opt := &netpbm.EncodeOptions{
		Format:   netpbm.PPM,
		Plain:    true,
		MaxValue: 255,
		Comments: []string{name},
	}
	return netpbm.Encode(w, frame.NRGBA(), opt)
}
