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

// Package sceneio reads and writes scene descriptions in XML format.
//
// A scene file has the following structure:
//
//	<Scene>
//	  <BackgroundColor>0 0 0</BackgroundColor>
//	  <Culling>enabled</Culling>
//	  <Cameras>
//	    <Camera id="1" type="perspective">
//	      <Position>0 0 0</Position>
//	      <Gaze>0 0 -1</Gaze>
//	      <Up>0 1 0</Up>
//	      <ImagePlane>-1 1 -1 1 1 10 100 100</ImagePlane>
//	      <OutputName>out.ppm</OutputName>
//	    </Camera>
//	  </Cameras>
//	  <Vertices>
//	    <Vertex position="0 0 -5" color="255 0 0"/>
//	  </Vertices>
//	  <Translations><Translation id="1" value="1 0 0"/></Translations>
//	  <Scalings><Scaling id="1" value="2 2 2"/></Scalings>
//	  <Rotations><Rotation id="1" value="45 0 0 1"/></Rotations>
//	  <Meshes>
//	    <Mesh id="1" type="solid">
//	      <Transformations><Transformation>t 1</Transformation></Transformations>
//	      <Faces>1 2 3</Faces>
//	    </Mesh>
//	  </Meshes>
//	</Scene>
//
// The image plane lists left, right, bottom, top, near, far, and the
// horizontal and vertical resolution. Rotation values are an angle in
// degrees followed by the axis. Faces hold one triangle per line, given
// by 1-based indices into the vertex list.
package sceneio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/render3d"
)

// Document is the XML form of a scene.
type Document struct {
	XMLName      xml.Name      `xml:"Scene"`
	Background   Triple        `xml:"BackgroundColor"`
	Culling      string        `xml:"Culling,omitempty"`
	Cameras      []Camera      `xml:"Cameras>Camera"`
	Vertices     []Vertex      `xml:"Vertices>Vertex"`
	Translations []Elementary  `xml:"Translations>Translation"`
	Scalings     []Elementary  `xml:"Scalings>Scaling"`
	Rotations    []RotationDef `xml:"Rotations>Rotation"`
	Meshes       []Mesh        `xml:"Meshes>Mesh"`
}

// Camera is the XML form of a camera.
type Camera struct {
	ID         int        `xml:"id,attr"`
	Type       string     `xml:"type,attr"`
	Position   Triple     `xml:"Position"`
	Gaze       Triple     `xml:"Gaze"`
	Up         Triple     `xml:"Up"`
	ImagePlane ImagePlane `xml:"ImagePlane"`
	OutputName string     `xml:"OutputName"`
}

// Vertex is a vertex position together with its colour.
type Vertex struct {
	Position Triple `xml:"position,attr"`
	Color    Triple `xml:"color,attr"`
}

// Elementary defines a translation or a scaling.
type Elementary struct {
	ID    int    `xml:"id,attr"`
	Value Triple `xml:"value,attr"`
}

// RotationDef defines a rotation.
type RotationDef struct {
	ID    int      `xml:"id,attr"`
	Value Rotation `xml:"value,attr"`
}

// Mesh is the XML form of a mesh.
type Mesh struct {
	ID              int            `xml:"id,attr"`
	Type            string         `xml:"type,attr"`
	Transformations []TransformRef `xml:"Transformations>Transformation"`
	Faces           Faces          `xml:"Faces"`
}

// Decode reads a scene document from r.
// The document is not validated; see [Document.Build].
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := xml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return doc, nil
}

// Encode writes the document to w as indented XML.
func (doc *Document) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ReadFile reads a scene document from the named file.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteFile writes the document to the named file.
func (doc *Document) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return doc.Encode(f)
}

// Load reads the named scene file and builds the scene.
func Load(path string) (*render3d.Scene, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
