// Command meshgen builds the solids and shapes described in a scene file,
// reports mesh statistics, classifies query points and optionally renders a
// preview.
//
// Usage:
//
//	meshgen -config scene.yaml [-preview out.png] [-size 512] [-watch] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/procedural"
	"github.com/gogpu/procedural/preview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	var (
		config  = flag.String("config", "", "scene file (.yaml, .yml or .toml)")
		output  = flag.String("preview", "", "write a PNG preview to this file")
		size    = flag.Int("size", 512, "preview size in pixels")
		watch   = flag.Bool("watch", false, "rebuild whenever the scene file changes")
		verbose = flag.Bool("v", false, "log generator details")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	procedural.SetLogger(logger)

	if *config == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	j := &job{
		config: *config,
		output: *output,
		size:   *size,
		out:    os.Stdout,
		log:    logger,
	}
	if err := j.run(); err != nil {
		logger.Error("build failed", "config", *config, "err", err)
		if !*watch {
			os.Exit(1)
		}
	}
	if *watch {
		if err := j.watch(ctx); err != nil {
			logger.Error("watch failed", "err", err)
			os.Exit(1)
		}
	}
}

type job struct {
	config  string
	output  string
	size    int
	out     io.Writer
	log     *slog.Logger
	builder *Builder
}

// solidCacheLimit bounds the solids kept between watch rebuilds.
const solidCacheLimit = 64

// run builds the scene once and writes the report and preview.
func (j *job) run() error {
	scene, err := LoadScene(j.config)
	if err != nil {
		return err
	}
	if j.builder == nil {
		j.builder = NewBuilder(solidCacheLimit)
	}
	res, err := j.builder.Build(scene)
	if err != nil {
		return err
	}
	j.log.Info("scene built", "config", j.config, "solids", len(scene.Solids), "reused", res.Reused)
	report(j.out, res)
	if j.output != "" {
		if err := renderPreview(res, j.size).SavePNG(j.output); err != nil {
			return err
		}
		j.log.Info("preview written", "path", j.output, "size", j.size)
	}
	return nil
}

// watch rebuilds on every change to the scene file until ctx is done.
// The directory is watched because editors often replace files on save.
func (j *job) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()
	if err := w.Add(filepath.Dir(j.config)); err != nil {
		return err
	}
	target := filepath.Clean(j.config)
	j.log.Info("watching", "config", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target ||
				!event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := j.run(); err != nil {
				j.log.Error("rebuild failed", "config", target, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				j.log.Warn("watch events dropped, rebuilding")
				if err := j.run(); err != nil {
					j.log.Error("rebuild failed", "config", target, "err", err)
				}
				continue
			}
			return err
		}
	}
}

// report prints mesh statistics and query classifications.
func report(w io.Writer, res *Result) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "vertices:  %d\n", res.Mesh.VertexCount())
	_, _ = p.Fprintf(w, "triangles: %d\n", len(res.Mesh.Indices)/3)
	_, _ = p.Fprintf(w, "uv sets:   %d\n", len(res.Mesh.TexCoords))
	if lo, hi, ok := res.Buffer.Bounds(); ok {
		_, _ = p.Fprintf(w, "bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
			lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	}
	if _, ok := res.Mesh.Indices16(); ok {
		_, _ = fmt.Fprintln(w, "indices:   fit in 16 bits")
	}
	_, _ = p.Fprintf(w, "shapes:    %d (%d points)\n", res.Shapes.ShapeCount(), len(res.Shapes.Points()))
	for _, q := range res.Queries {
		where := "outside"
		if q.Inside {
			where = "inside"
		}
		_, _ = p.Fprintf(w, "  (%.3f, %.3f): %s\n", q.Point.X, q.Point.Y, where)
	}
}

var (
	meshColor    = color.RGBA{R: 90, G: 110, B: 140, A: 255}
	regionColor  = color.NRGBA{R: 240, G: 170, B: 60, A: 160}
	outlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	insideColor  = color.RGBA{G: 180, A: 255}
	outsideColor = color.RGBA{R: 200, A: 255}
)

// renderPreview draws the mesh silhouette, the shape region with its
// outlines and the classified query points.
func renderPreview(res *Result, size int) *preview.Canvas {
	frame := preview.FitBuffer(res.Buffer, 0.25)
	var pts []procedural.Vec2
	pts = append(pts, res.Shapes.Points()...)
	for _, q := range res.Queries {
		pts = append(pts, q.Point)
	}
	if len(pts) > 0 {
		frame = frame.Union(preview.FitPoints(pts, 0.25))
	}

	c := preview.NewCanvas(size, frame)
	c.Clear(color.White)
	// Validated by Build.
	_ = c.FillBuffer(res.Buffer, meshColor)
	if res.Shapes.ShapeCount() > 0 {
		c.FillMultiShape(res.Shapes, regionColor)
		c.StrokeMultiShape(res.Shapes, 1.5, outlineColor)
	}
	for _, q := range res.Queries {
		col := outsideColor
		if q.Inside {
			col = insideColor
		}
		c.Mark(q.Point, 6, col)
	}
	return c
}
