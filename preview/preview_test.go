package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/procedural"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func alphaAt(c *Canvas, p procedural.Vec2) uint8 {
	px := c.Pixel(p)
	return c.Image().RGBAAt(px.X, px.Y).A
}

func TestFillMultiShape_Square(t *testing.T) {
	ms := procedural.NewMultiShape(procedural.RectangleShape(2, 2))
	c := NewCanvas(64, FitPoints(ms.Points(), 0.5))
	c.FillMultiShape(ms, white)

	assert.Equal(t, uint8(255), alphaAt(c, procedural.V2(0, 0)))
	assert.Equal(t, uint8(255), alphaAt(c, procedural.V2(0.8, -0.8)))
	assert.Zero(t, alphaAt(c, procedural.V2(1.4, 0)))
	assert.Zero(t, alphaAt(c, procedural.V2(0, -1.4)))
}

func TestFillMultiShape_AgreesWithIsPointInside(t *testing.T) {
	outer := procedural.RectangleShape(4, 4)
	hole := procedural.CircleShape(1, 24).SwitchSide()
	ms := procedural.NewMultiShape(outer, hole)

	c := NewCanvas(80, FitPoints(ms.Points(), 0.5))
	c.FillMultiShape(ms, white)

	for _, p := range []procedural.Vec2{
		procedural.V2(0, 0.1),
		procedural.V2(0.5, 0.3),
		procedural.V2(1.5, 1.5),
		procedural.V2(-1.7, 0.3),
		procedural.V2(2.3, 0.3),
		procedural.V2(0.3, -2.3),
	} {
		want := ms.IsPointInside(p)
		got := alphaAt(c, p) == 255
		assert.Equal(t, want, got, "point %v", p)
	}
}

func TestFillBuffer_Silhouette(t *testing.T) {
	rb := procedural.NewRoundedBoxGenerator()
	rb.SizeX, rb.SizeY, rb.SizeZ = 2, 1, 1
	rb.ChamferSize = 0.25
	tb := procedural.BuildTriangleBuffer(rb)

	c := NewCanvas(96, FitBuffer(tb, 0.5))
	require.NoError(t, c.FillBuffer(tb, white))

	assert.Equal(t, uint8(255), alphaAt(c, procedural.V2(0, 0)))
	assert.Equal(t, uint8(255), alphaAt(c, procedural.V2(1.1, 0.6)))
	assert.Zero(t, alphaAt(c, procedural.V2(0, 0.9)))
	assert.Zero(t, alphaAt(c, procedural.V2(1.45, 0)))
	// The rounded corner leaves its bounding-box corner empty.
	assert.Zero(t, alphaAt(c, procedural.V2(1.24, 0.74)))
}

func TestFillBuffer_RejectsInvalidBuffer(t *testing.T) {
	tb := procedural.NewTriangleBuffer()
	tb.Triangle(0, 1, 2)
	c := NewCanvas(8, FitPoints(nil, 0))
	assert.ErrorIs(t, c.FillBuffer(tb, white), procedural.ErrIndexOutOfRange)
}

func TestStrokeAndMark(t *testing.T) {
	ms := procedural.NewMultiShape(procedural.RectangleShape(2, 2))
	c := NewCanvas(64, FitPoints(ms.Points(), 0.5))
	c.Clear(color.Black)
	c.StrokeMultiShape(ms, 2, white)
	c.Mark(procedural.V2(0, 0), 4, color.RGBA{R: 255, A: 255})

	edge := c.Pixel(procedural.V2(1, 0))
	assert.Equal(t, white, c.Image().RGBAAt(edge.X, edge.Y))
	center := c.Pixel(procedural.V2(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c.Image().RGBAAt(center.X, center.Y))
	inside := c.Pixel(procedural.V2(0.5, 0.5))
	assert.Equal(t, color.RGBA{A: 255}, c.Image().RGBAAt(inside.X, inside.Y))
}

func TestFrame(t *testing.T) {
	f := FitPoints([]procedural.Vec2{procedural.V2(1, 2), procedural.V2(-1, 5)}, 1)
	assert.Equal(t, Frame{Min: procedural.V2(-2, 1), Max: procedural.V2(2, 6)}, f)

	u := f.Union(Frame{Min: procedural.V2(0, -3), Max: procedural.V2(7, 0)})
	assert.Equal(t, Frame{Min: procedural.V2(-2, -3), Max: procedural.V2(7, 6)}, u)

	c := NewCanvas(100, Frame{Min: procedural.V2(0, 0), Max: procedural.V2(10, 10)})
	x, y := c.Project(procedural.V2(0, 0))
	assert.InDelta(t, 0, x, 1e-4)
	assert.InDelta(t, 100, y, 1e-4)
}

func TestSavePNG(t *testing.T) {
	c := NewCanvas(16, FitPoints(nil, 0))
	c.FillMultiShape(procedural.NewMultiShape(procedural.RectangleShape(1, 1)), white)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.SavePNG(path))

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Image().Bounds(), img.Bounds())
}
