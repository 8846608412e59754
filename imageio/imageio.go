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

// Package imageio writes rendered frames to image files.
package imageio

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/render3d"
)

// ErrUnknownFormat is returned for an unsupported image format or file
// name extension.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an image file format.
type Format int

// These are the supported formats.
const (
	PPM Format = iota
	PNG
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PPM:
		return "ppm"
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the usual file name extension for the format, including
// the leading dot.
func (f Format) Ext() string {
	if f == TIFF {
		return ".tif"
	}
	return "." + f.String()
}

// ParseFormat converts a format name like "png" into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "ppm":
		return PPM, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// FormatFromExt determines the image format from a file name.
func FormatFromExt(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	return ParseFormat(ext[1:])
}

// Encode writes the frame to w. The name is only used by the PPM format,
// where it is stored in a comment line.
func Encode(w io.Writer, frame *render3d.Frame, format Format, name string) error {
	switch format {
	case PPM:
		return writePPM(w, frame, name)
	case PNG:
		return png.Encode(w, frame.NRGBA())
	case BMP:
		return bmp.Encode(w, frame.NRGBA())
	case TIFF:
		opt := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
		return tiff.Encode(w, frame.NRGBA(), opt)
	default:
		return fmt.Errorf("%w %s", ErrUnknownFormat, format)
	}
}

// WriteFile writes the frame to the named file, using the file name
// extension to choose the format.
func WriteFile(path string, frame *render3d.Frame) error {
	format, err := FormatFromExt(path)
	if err != nil {
		return err
	}
	return WriteFileAs(path, frame, format)
}

// WriteFileAs writes the frame to the named file in the given format,
// independent of the file name extension.
func WriteFileAs(path string, frame *render3d.Frame, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, frame, format, filepath.Base(path))
}
