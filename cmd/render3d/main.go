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

// Command render3d renders a scene file to one image per camera.
//
// Usage:
//
//	render3d [flags] scene.xml
//
// Setting the environment variable DEBUG has the same effect as -v.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/imageio"
	"seehuhn.de/go/render3d/pdfexport"
	"seehuhn.de/go/render3d/sceneio"
)

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, sceneFile, err := parseArgs(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.Verbose || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render3d.SetLogger(logger)

	scene, err := sceneio.Load(sceneFile)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded",
		"file", sceneFile,
		"cameras", len(scene.Cameras()),
		"meshes", len(scene.Meshes()))

	// Resolve all output names before rendering.
	type target struct {
		fname  string
		format imageio.Format
	}
	targets := make([]target, len(scene.Cameras()))
	for i, cam := range scene.Cameras() {
		fname, format, err := opts.outputPath(cam.OutputName)
		if err != nil {
			return fmt.Errorf("camera %d: %w", cam.ID, err)
		}
		targets[i] = target{fname, format}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outputs, err := render3d.RenderAll(ctx, scene, opts.Workers)
	if err != nil {
		return err
	}

	for i, out := range outputs {
		fname, format := targets[i].fname, targets[i].format
		if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
			return err
		}
		if err := imageio.WriteFileAs(fname, out.Frame, format); err != nil {
			return fmt.Errorf("camera %d: %w", out.Camera.ID, err)
		}
		logger.Info("image written",
			"camera", out.Camera.ID,
			"file", fname,
			"triangles", out.Stats.Drawn)

		if opts.PDF {
			pdfName := strings.TrimSuffix(fname, filepath.Ext(fname)) + ".pdf"
			err := pdfexport.WriteProof(pdfName, scene, out.Camera, opts.PDFScale)
			if err != nil {
				return fmt.Errorf("camera %d: %w", out.Camera.ID, err)
			}
			logger.Info("proof written", "camera", out.Camera.ID, "file", pdfName)
		}
	}
	return nil
}
