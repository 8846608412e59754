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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"seehuhn.de/go/render3d/imageio"
	"seehuhn.de/go/render3d/testcases"
)

func TestParseArgsDefaults(t *testing.T) {
	opts, scene, err := parseArgs([]string{"scene.xml"})
	if err != nil {
		t.Fatal(err)
	}
	if scene != "scene.xml" {
		t.Errorf("scene file %q", scene)
	}
	want := Options{OutDir: ".", Workers: runtime.GOMAXPROCS(0), PDFScale: 1}
	if *opts != want {
		t.Errorf("got %+v, want %+v", *opts, want)
	}
}

func TestParseArgsConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "opts.json")
	data := []byte(`{"format": "png", "outDir": "images", "workers": 3, "pdf": true}`)
	if err := os.WriteFile(config, data, 0o644); err != nil {
		t.Fatal(err)
	}

	opts, _, err := parseArgs([]string{"-config", config, "scene.xml"})
	if err != nil {
		t.Fatal(err)
	}
	want := Options{Format: "png", OutDir: "images", Workers: 3, PDF: true, PDFScale: 1}
	if *opts != want {
		t.Errorf("got %+v, want %+v", *opts, want)
	}

	// flags given on the command line win
	opts, _, err = parseArgs([]string{"-config", config, "-j", "1", "-format", "bmp", "scene.xml"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Workers != 1 || opts.Format != "bmp" || opts.OutDir != "images" {
		t.Errorf("got %+v", *opts)
	}
}

func TestParseArgsErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"a.xml", "b.xml"},
		{"-format", "gif", "scene.xml"},
		{"-config", filepath.Join(t.TempDir(), "missing.json"), "scene.xml"},
	}
	for _, args := range cases {
		if _, _, err := parseArgs(args); err == nil {
			t.Errorf("%q: no error", args)
		}
	}
}

func TestOutputPath(t *testing.T) {
	cases := []struct {
		format, name string
		wantPath     string
		wantFormat   imageio.Format
	}{
		{"", "out.ppm", "dir/out.ppm", imageio.PPM},
		{"", "out.png", "dir/out.png", imageio.PNG},
		{"", "out", "dir/out", imageio.PPM},
		{"", "sub/out.bmp", "dir/sub/out.bmp", imageio.BMP},
		{"", "/abs/out.tif", "/abs/out.tif", imageio.TIFF},
		{"png", "out.ppm", "dir/out.png", imageio.PNG},
		{"tiff", "out", "dir/out.tif", imageio.TIFF},
	}
	for _, c := range cases {
		opts := &Options{Format: c.format, OutDir: "dir"}
		path, format, err := opts.outputPath(c.name)
		if err != nil {
			t.Errorf("%s/%s: %v", c.format, c.name, err)
			continue
		}
		if path != filepath.FromSlash(c.wantPath) || format != c.wantFormat {
			t.Errorf("%s/%s: got %s, %s, want %s, %s",
				c.format, c.name, path, format, c.wantPath, c.wantFormat)
		}
	}

	opts := &Options{OutDir: "dir"}
	if _, _, err := opts.outputPath("out.jpg"); !errors.Is(err, imageio.ErrUnknownFormat) {
		t.Errorf("jpg: got error %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "scene.xml")
	if err := testcases.All["basic"][0].Scene.WriteFile(sceneFile); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	err := run([]string{"-o", out, "-pdf", sceneFile})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(out, "solid_triangle.ppm"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n")) || !bytes.Contains(data, []byte("# solid_triangle.ppm\n")) {
		t.Errorf("unexpected image header %q", data[:min(len(data), 40)])
	}

	data, err = os.ReadFile(filepath.Join(out, "solid_triangle.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("proof is not a PDF file")
	}
}

func TestRunBadOutputName(t *testing.T) {
	dir := t.TempDir()
	src := testcases.All["basic"][0].Scene
	doc := *src
	second := src.Cameras[0]
	second.ID = 2
	second.OutputName = "second.jpg"
	doc.Cameras = append(slices.Clone(src.Cameras), second)

	sceneFile := filepath.Join(dir, "scene.xml")
	if err := doc.WriteFile(sceneFile); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	err := run([]string{"-o", out, sceneFile})
	if !errors.Is(err, imageio.ErrUnknownFormat) {
		t.Fatalf("got error %v, want %v", err, imageio.ErrUnknownFormat)
	}
	name := filepath.Join(out, src.Cameras[0].OutputName)
	if _, err := os.Stat(name); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("%s was written before the error was reported", name)
	}
}
