// Package preview rasterises shapes and generated meshes into images for
// quick visual inspection.
//
// Drawing is orthographic: shapes are drawn in their own XY plane, meshes
// are projected along -Z and only their front-facing triangles are filled.
// World Y points up, image Y points down.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"slices"

	"github.com/chewxy/math32"
	"github.com/gogpu/procedural"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Frame is the world-space rectangle a Canvas shows.
type Frame struct {
	Min, Max procedural.Vec2
}

// FitPoints returns the bounding frame of points grown by margin on every
// side. An empty point set gives a frame around the origin.
func FitPoints(points []procedural.Vec2, margin float32) Frame {
	if len(points) == 0 {
		return Frame{Min: procedural.V2(-margin-1, -margin-1), Max: procedural.V2(margin+1, margin+1)}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = procedural.V2(math32.Min(lo.X, p.X), math32.Min(lo.Y, p.Y))
		hi = procedural.V2(math32.Max(hi.X, p.X), math32.Max(hi.Y, p.Y))
	}
	m := procedural.V2(margin, margin)
	return Frame{Min: lo.Sub(m), Max: hi.Add(m)}
}

// FitBuffer returns the frame around the XY projection of tb.
func FitBuffer(tb *procedural.TriangleBuffer, margin float32) Frame {
	lo, hi, ok := tb.Bounds()
	if !ok {
		return FitPoints(nil, margin)
	}
	return FitPoints([]procedural.Vec2{procedural.V2(lo.X, lo.Y), procedural.V2(hi.X, hi.Y)}, margin)
}

// Union returns the smallest frame containing f and g.
func (f Frame) Union(g Frame) Frame {
	return Frame{
		Min: procedural.V2(math32.Min(f.Min.X, g.Min.X), math32.Min(f.Min.Y, g.Min.Y)),
		Max: procedural.V2(math32.Max(f.Max.X, g.Max.X), math32.Max(f.Max.Y, g.Max.Y)),
	}
}

// Canvas is a square RGBA image showing a Frame. The frame is scaled
// uniformly to fit and centred, so its aspect ratio is kept.
type Canvas struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	scale  float32
	center procedural.Vec2
	size   int
}

// NewCanvas returns a transparent size x size canvas showing frame.
func NewCanvas(size int, frame Frame) *Canvas {
	extent := frame.Max.Sub(frame.Min)
	span := math32.Max(extent.X, extent.Y)
	if span <= 0 {
		span = 1
	}
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, size, size)),
		ras:    vector.NewRasterizer(size, size),
		scale:  float32(size) / span,
		center: frame.Min.Add(frame.Max).Mul(0.5),
		size:   size,
	}
}

// Project maps a world point to image coordinates.
func (c *Canvas) Project(p procedural.Vec2) (x, y float32) {
	half := float32(c.size) / 2
	return half + (p.X-c.center.X)*c.scale, half - (p.Y-c.center.Y)*c.scale
}

// Pixel returns the image pixel containing the world point p.
func (c *Canvas) Pixel(p procedural.Vec2) image.Point {
	x, y := c.Project(p)
	return image.Pt(int(math32.Floor(x)), int(math32.Floor(y)))
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillMultiShape fills the region IsPointInside reports as inside.
//
// Each contour is traced with its declared inside on the left, so holes
// wind against their outline and cancel its coverage.
func (c *Canvas) FillMultiShape(ms *procedural.MultiShape, col color.Color) {
	c.ras.Reset(c.size, c.size)
	for i := range ms.ShapeCount() {
		s := ms.Shape(i)
		pts := s.Points()
		if len(pts) < 3 {
			continue
		}
		if s.OutSide() == procedural.SideLeft {
			slices.Reverse(pts)
		}
		c.ras.MoveTo(c.Project(pts[0]))
		for _, p := range pts[1:] {
			c.ras.LineTo(c.Project(p))
		}
		c.ras.ClosePath()
	}
	c.draw(col)
	procedural.Logger().Debug("preview: multishape filled", "shapes", ms.ShapeCount())
}

// StrokeMultiShape draws every member shape as a polyline of the given
// pixel width.
func (c *Canvas) StrokeMultiShape(ms *procedural.MultiShape, width float32, col color.Color) {
	lm := ms.RealizeLineMesh()
	c.ras.Reset(c.size, c.size)
	for _, strip := range lm.Strips {
		for k := 0; k+1 < len(strip); k++ {
			c.segmentQuad(procedural.V2(strip[k].X, strip[k].Y), procedural.V2(strip[k+1].X, strip[k+1].Y), width)
		}
	}
	c.draw(col)
}

// segmentQuad adds a counter-clockwise (in image space) quad covering the
// segment a-b with the given pixel width.
func (c *Canvas) segmentQuad(a, b procedural.Vec2, width float32) {
	ax, ay := c.Project(a)
	bx, by := c.Project(b)
	d := procedural.V2(bx-ax, by-ay).Normalize()
	if d == (procedural.Vec2{}) {
		return
	}
	n := d.Perp().Mul(width / 2)
	c.ras.MoveTo(ax+n.X, ay+n.Y)
	c.ras.LineTo(bx+n.X, by+n.Y)
	c.ras.LineTo(bx-n.X, by-n.Y)
	c.ras.LineTo(ax-n.X, ay-n.Y)
	c.ras.ClosePath()
}

// FillBuffer fills the XY projection of every triangle of tb that faces +Z.
// Back faces are skipped so a closed mesh covers its silhouette once.
func (c *Canvas) FillBuffer(tb *procedural.TriangleBuffer, col color.Color) error {
	if err := tb.Validate(); err != nil {
		return err
	}
	c.ras.Reset(c.size, c.size)
	v, idx := tb.Vertices(), tb.Indices()
	front := 0
	for t := 0; t+2 < len(idx); t += 3 {
		a, b, d := v[idx[t]].Position, v[idx[t+1]].Position, v[idx[t+2]].Position
		if b.Sub(a).Cross(d.Sub(a)).Z <= 0 {
			continue
		}
		front++
		c.ras.MoveTo(c.Project(procedural.V2(a.X, a.Y)))
		c.ras.LineTo(c.Project(procedural.V2(b.X, b.Y)))
		c.ras.LineTo(c.Project(procedural.V2(d.X, d.Y)))
		c.ras.ClosePath()
	}
	c.draw(col)
	procedural.Logger().Debug("preview: buffer filled", "buffer", tb, "front_triangles", front)
	return nil
}

// Mark draws a filled square of the given pixel size centred on p.
func (c *Canvas) Mark(p procedural.Vec2, size float32, col color.Color) {
	x, y := c.Project(p)
	h := size / 2
	c.ras.Reset(c.size, c.size)
	c.ras.MoveTo(x-h, y-h)
	c.ras.LineTo(x+h, y-h)
	c.ras.LineTo(x+h, y+h)
	c.ras.LineTo(x-h, y+h)
	c.ras.ClosePath()
	c.draw(col)
}

func (c *Canvas) draw(col color.Color) {
	c.ras.DrawOp = draw.Over
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Image returns the canvas image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Encode writes the canvas as PNG.
func (c *Canvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return c.Encode(f)
}
