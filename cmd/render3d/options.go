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
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"seehuhn.de/go/render3d/imageio"
)

// Options controls how a scene is rendered and where the images go.
// Options can be read from a JSON file; command line flags override the
// values from the file.
type Options struct {
	// Format is the image format. If empty, the format is chosen by the
	// extension of each camera's output name, and names without an
	// extension are written as PPM.
	Format string `json:"format,omitempty"`

	// OutDir is the directory for relative output names.
	OutDir string `json:"outDir,omitempty"`

	// Workers is the number of cameras rendered concurrently.
	Workers int `json:"workers,omitempty"`

	// PDF enables writing a vector proof next to every image.
	PDF      bool    `json:"pdf,omitempty"`
	PDFScale float64 `json:"pdfScale,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// setDefaults fills in unset fields and checks the format name.
func (o *Options) setDefaults() error {
	if o.OutDir == "" {
		o.OutDir = "."
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.PDFScale <= 0 {
		o.PDFScale = 1
	}
	if o.Format != "" {
		if _, err := imageio.ParseFormat(o.Format); err != nil {
			return err
		}
	}
	return nil
}

// loadOptions reads options from a JSON file.
func loadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var opts Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &opts, nil
}

// parseArgs parses the command line. It returns the options and the
// name of the scene file.
func parseArgs(args []string) (*Options, string, error) {
	fs := flag.NewFlagSet("render3d", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: render3d [flags] scene.xml\n")
		fs.PrintDefaults()
	}

	var flagOpts Options
	configFile := fs.String("config", "", "read options from a JSON `file`")
	fs.StringVar(&flagOpts.Format, "format", "", "image `format` (ppm, png, bmp or tiff)")
	fs.StringVar(&flagOpts.OutDir, "o", "", "output `directory`")
	fs.IntVar(&flagOpts.Workers, "j", 0, "number of cameras to render in parallel")
	fs.BoolVar(&flagOpts.PDF, "pdf", false, "also write a PDF proof for every camera")
	fs.Float64Var(&flagOpts.PDFScale, "pdf-scale", 0, "PDF points per pixel")
	fs.BoolVar(&flagOpts.Verbose, "v", false, "log debugging information")

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, "", fmt.Errorf("expected one scene file, got %d arguments", fs.NArg())
	}

	opts := &Options{}
	if *configFile != "" {
		var err error
		opts, err = loadOptions(*configFile)
		if err != nil {
			return nil, "", err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			opts.Format = flagOpts.Format
		case "o":
			opts.OutDir = flagOpts.OutDir
		case "j":
			opts.Workers = flagOpts.Workers
		case "pdf":
			opts.PDF = flagOpts.PDF
		case "pdf-scale":
			opts.PDFScale = flagOpts.PDFScale
		case "v":
			opts.Verbose = flagOpts.Verbose
		}
	})
	if err := opts.setDefaults(); err != nil {
		return nil, "", err
	}
	return opts, fs.Arg(0), nil
}

// outputPath returns the file name and the format for the image of a
// camera with the given output name.
func (o *Options) outputPath(name string) (string, imageio.Format, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(o.OutDir, name)
	}

	if o.Format != "" {
		format, err := imageio.ParseFormat(o.Format)
		if err != nil {
			return "", 0, err
		}
		return strings.TrimSuffix(name, filepath.Ext(name)) + format.Ext(), format, nil
	}

	if filepath.Ext(name) == "" {
		return name, imageio.PPM, nil
	}
	format, err := imageio.FormatFromExt(name)
	if err != nil {
		return "", 0, err
	}
	return name, format, nil
}
