// Copyright (c) 2026, The Subforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ass-render is an illustrative CLI front-end exercising the
// core: it parses a script, resolves fonts, and renders frames of it to
// PNG files at a fixed frame rate over a fixed duration. It is
// explicitly out of core scope (spec section 6) -- a fixed surface just
// complete enough to drive C1 through C11 end to end.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/subforge/asscore/assanalysis"
	"github.com/subforge/asscore/assast"
	"github.com/subforge/asscore/asserr"
	"github.com/subforge/asscore/assparse"
	"github.com/subforge/asscore/asspipeline"
	"github.com/subforge/asscore/assrender"
	"github.com/subforge/asscore/assshape"
	"github.com/subforge/asscore/internal/assfont"
)

const usage = "usage: ass-render <subs.ass> <font_paths_or_dir> <out_dir> <WIDTHxHEIGHT> [fps=30] [duration_sec=10]"

// Exit codes (spec section 6).
const (
	exitOK          = 0
	exitUsageError  = 1
	exitParseError  = 2
	exitIOError     = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ass-render", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return exitUsageError
	}
	pos := fs.Args()
	if len(pos) < 4 {
		fmt.Fprintln(os.Stderr, usage)
		return exitUsageError
	}

	subsPath, fontPath, outDir, sizeArg := pos[0], pos[1], pos[2], pos[3]
	fps := 30
	duration := 10
	if len(pos) >= 5 {
		v, err := strconv.Atoi(pos[4])
		if err != nil {
			fmt.Fprintln(os.Stderr, usage)
			return exitUsageError
		}
		fps = v
	}
	if len(pos) >= 6 {
		v, err := strconv.Atoi(pos[5])
		if err != nil {
			fmt.Fprintln(os.Stderr, usage)
			return exitUsageError
		}
		duration = v
	}

	w, h, err := parseSize(sizeArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		return exitUsageError
	}

	raw, err := os.ReadFile(subsPath)
	if err != nil {
		slog.Error("read script", "path", subsPath, "err", err)
		return exitIOError
	}

	script, src := assparse.Parse(raw)
	if fatalParseError(script.Issues) {
		for _, issue := range script.Issues {
			slog.Error("parse", "issue", issue.String())
		}
		return exitParseError
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		slog.Error("create output dir", "path", outDir, "err", err)
		return exitIOError
	}

	fonts := assshape.NewFontDB("Default")
	if info, ok := fontInfo(fontPath); ok {
		if info.IsDir() {
			asserr.Log(assfont.LoadDir(fonts, fontPath))
		} else {
			asserr.Log(assfont.LoadFile(fonts, fontPath))
		}
	}
	if fontsSec, ok := script.Section(assast.FontsKind).(*assast.FontsSection); ok {
		asserr.Log(assfont.LoadEmbedded(fonts, src, fontsSec))
	}

	analysis := assanalysis.Analyze(script, src)

	var opts []assrender.Option
	if info, ok := script.Section(assast.ScriptInfoKind).(*assast.ScriptInfoSection); ok {
		if px, py, ok := assrender.PlayResFromScriptInfo(info, src); ok {
			opts = append(opts, assrender.WithPlayRes(px, py))
		}
	}
	opts = append(opts, assrender.WithFPS(float32(fps)))
	ctx := assrender.NewContext(w, h, fonts, opts...)

	backend := assrender.NewAuto(fonts, assrender.Vulkan, assrender.Metal, assrender.WebGPU)
	if _, err := backend.CreatePipeline(); err != nil {
		slog.Error("create pipeline", "err", err)
		return exitIOError
	}
	slog.Info("rendering", "backend", backend.Name(), "width", w, "height", h, "fps", fps, "duration", duration)

	selector := asspipeline.NewSelector()
	totalFrames := fps * duration
	for frame := 0; frame < totalFrames; frame++ {
		timeCS := int64(frame) * 100 / int64(fps)
		active := selector.Select(script, src, timeCS)

		var layers []assast.IntermediateLayer
		events := script.Events()
		for _, idx := range active.Indices {
			pctx := asspipeline.Context{Src: src, Styles: analysis.Styles}
			layerNum, _ := strconv.Atoi(events[idx].Layer.Text(src))
			evLayers := asspipeline.ProcessEvent(events[idx], timeCS, pctx, layerNum, idx)
			layers = append(layers, scaleLayers(evLayers, ctx.RenderScaleX(), ctx.RenderScaleY())...)
		}

		frameBytes, err := backend.CompositeLayers(layers, ctx)
		if err != nil {
			slog.Error("composite frame", "frame", frame, "err", err)
			continue
		}
		if err := writePNG(filepath.Join(outDir, fmt.Sprintf("frame-%05d.png", frame)), frameBytes, w, h); err != nil {
			slog.Error("write frame", "frame", frame, "err", err)
			return exitIOError
		}
	}
	return exitOK
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func fontInfo(path string) (os.FileInfo, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	return info, true
}

// fatalParseError reports whether issues contain a structural Error that
// leaves no usable Events section, matching exit code 2's "parse error
// surfaced from core" (spec section 6); content-level issues never
// block rendering, matching the parser's total-parsing guarantee (spec
// section 4.10).
func fatalParseError(issues []assast.ParseIssue) bool {
	for _, issue := range issues {
		if issue.Severity == assast.Error && issue.Category == assast.CategoryStructural {
			return true
		}
	}
	return false
}

// scaleLayers maps a frame's layers from PlayRes coordinate space into
// the actual output buffer's pixel space (spec section 4.9's
// render_scale_x/y).
func scaleLayers(layers []assast.IntermediateLayer, sx, sy float32) []assast.IntermediateLayer {
	if sx == 1 && sy == 1 {
		return layers
	}
	out := make([]assast.IntermediateLayer, len(layers))
	for i, l := range layers {
		l.TX *= sx
		l.TY *= sy
		l.FontSize *= sy
		l.BBox = assast.Rect{X: l.BBox.X * sx, Y: l.BBox.Y * sy, W: l.BBox.W * sx, H: l.BBox.H * sy}
		for j := range l.Path {
			p := &l.Path[j]
			p.X, p.Y = p.X*sx, p.Y*sy
			p.X1, p.Y1 = p.X1*sx, p.Y1*sy
			p.X2, p.Y2 = p.X2*sx, p.Y2*sy
			p.X3, p.Y3 = p.X3*sx, p.Y3*sy
		}
		out[i] = l
	}
	return out
}

// writePNG encodes a straight-alpha RGBA8 frame (spec section 6's
// rendered-frame format) as a PNG. image.NRGBA is the straight-alpha
// variant, matching Compositor's output directly.
func writePNG(path string, rgba []byte, w, h int) error {
	img := &image.NRGBA{Pix: rgba, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
