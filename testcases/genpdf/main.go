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

// Command genpdf writes a PDF proof for every camera of every test case.
// The proofs show the projected, culled and clipped geometry and can be
// compared visually with the rendered images.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/render3d/pdfexport"
	"seehuhn.de/go/render3d/testcases"
)

const proofDir = "testdata/proofs"

// scale is the number of PDF points per pixel.
const scale = 4

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(name, tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(name string, tc testcases.TestCase) error {
	scene, err := tc.Scene.Build()
	if err != nil {
		return err
	}
	for _, cam := range scene.Cameras() {
		fname := filepath.Join(proofDir, fmt.Sprintf("%s_%d.pdf", name, cam.ID))
		if err := pdfexport.WriteProof(fname, scene, cam, scale); err != nil {
			return err
		}
	}
	return nil
}
