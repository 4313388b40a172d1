package procedural

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareAt(x0, y0, size float32) *Shape {
	return NewShape(
		V2(x0, y0), V2(x0+size, y0), V2(x0+size, y0+size), V2(x0, y0+size),
	).Close()
}

func TestMultiShape_IsPointInside_Square(t *testing.T) {
	ms := NewMultiShape(unitSquare())

	tests := []struct {
		name  string
		point Vec2
		want  bool
	}{
		{"center", V2(0.5, 0.5), true},
		{"near left edge", V2(0.1, 0.5), true},
		{"right of square", V2(2, 0.5), false},
		{"left of square", V2(-1, 0.5), false},
		{"above, no crossing", V2(2, 2), false},
		{"below, no crossing", V2(0.5, -3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ms.IsPointInside(tt.point))
		})
	}
}

func TestMultiShape_IsPointInside_Hole(t *testing.T) {
	outer := squareAt(0, 0, 4)
	// Clockwise hole; its right-hand side is the hole interior.
	hole := NewShape(V2(1, 1), V2(1, 3), V2(3, 3), V2(3, 1)).Close()
	ms := NewMultiShape(outer, hole)

	tests := []struct {
		name  string
		point Vec2
		want  bool
	}{
		{"in hole", V2(2, 2), false},
		{"between left walls", V2(0.5, 2), true},
		{"between right walls", V2(3.5, 2), true},
		{"below hole", V2(2, 0.5), true},
		{"outside everything", V2(5, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ms.IsPointInside(tt.point))
		})
	}
}

func TestMultiShape_IsPointInside_RegularPolygons(t *testing.T) {
	// Switching the hexagon's side makes its interior the outside: a hole.
	ms := NewMultiShape(CircleShape(2, 32), RegularPolygonShape(6, 1, 0).SwitchSide())
	assert.False(t, ms.IsPointInside(V2(0, 0.1)))
	assert.True(t, ms.IsPointInside(V2(1.5, 0.1)))
	assert.True(t, ms.IsPointInside(V2(-1.5, 0.1)))
	assert.False(t, ms.IsPointInside(V2(2.5, 0.1)))
}

func TestMultiShape_IsPointInside_TieKeepsFirstCrossing(t *testing.T) {
	// (1.5, 0.5) is 0.5 away from the right wall of a and the left wall of b.
	a := squareAt(0, 0, 1)
	b := squareAt(2, 0, 1).SetOutSide(SideLeft)
	p := V2(1.5, 0.5)

	assert.False(t, NewMultiShape(a, b).IsPointInside(p), "a's wall wins")
	assert.True(t, NewMultiShape(b, a).IsPointInside(p), "b's wall wins")
}

func TestMultiShape_IsPointInside_Fallback(t *testing.T) {
	// No segment straddles y=5: the first shape's declared and geometric
	// outsides decide.
	agree := NewMultiShape(unitSquare())
	assert.False(t, agree.IsPointInside(V2(0.5, 5)))

	disagree := NewMultiShape(unitSquare().SetOutSide(SideLeft))
	assert.True(t, disagree.IsPointInside(V2(0.5, 5)))
}

func TestMultiShape_IsPointInside_ShapesWithoutSegments(t *testing.T) {
	tests := []struct {
		name  string
		ms    *MultiShape
		point Vec2
		want  bool
	}{
		{"empty first shape, crossing found", NewMultiShape(NewShape(), unitSquare()), V2(0.5, 0.5), true},
		{"empty first shape, fallback agrees", NewMultiShape(NewShape(), unitSquare()), V2(0.5, 5), false},
		{"empty first shape, fallback disagrees", NewMultiShape(NewShape(), unitSquare().SetOutSide(SideLeft)), V2(0.5, 5), true},
		{"single open point", NewMultiShape(NewShape(V2(0, 0))), V2(1, 1), false},
		{"only empty shapes", NewMultiShape(NewShape(), NewShape()), V2(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, tt.ms.IsPointInside(tt.point))
			})
		})
	}
}

func TestMultiShape_Empty(t *testing.T) {
	ms := NewMultiShape()
	assert.Zero(t, ms.ShapeCount())
	assert.Empty(t, ms.Points())
	assert.False(t, ms.IsPointInside(V2(0, 0)))
}

func TestMultiShape_StoresCopies(t *testing.T) {
	s := unitSquare()
	ms := NewMultiShape()
	ms.AddShape(s)

	s.Translate(V2(10, 10))
	assert.True(t, ms.IsPointInside(V2(0.5, 0.5)))
	assert.Equal(t, V2(0, 0), ms.Shape(0).Point(0))

	ms.Shape(0).Translate(V2(10, 0))
	assert.Equal(t, V2(10, 0), ms.Shape(0).Point(0))
	assert.False(t, ms.IsPointInside(V2(0.5, 0.5)))
}

func TestMultiShape_Points(t *testing.T) {
	ms := NewMultiShape(
		NewShape(V2(0, 0), V2(1, 0)),
		NewShape(V2(2, 2), V2(3, 3), V2(4, 4)).Close(),
	)
	assert.Equal(t, []Vec2{V2(0, 0), V2(1, 0), V2(2, 2), V2(3, 3), V2(4, 4)}, ms.Points())
}

func TestMultiShape_AddMultiShape(t *testing.T) {
	a := NewMultiShape(squareAt(0, 0, 1), squareAt(2, 0, 1))
	b := NewMultiShape(squareAt(5, 5, 1))

	a.AddMultiShape(b)
	require.Equal(t, 3, a.ShapeCount())
	assert.Equal(t, V2(5, 5), a.Shape(2).Point(0))

	b.Shape(0).Translate(V2(1, 1))
	assert.Equal(t, V2(5, 5), a.Shape(2).Point(0))

	a.AddMultiShape(a)
	assert.Equal(t, 6, a.ShapeCount())
	assert.Equal(t, a.Shape(0).Points(), a.Shape(3).Points())
}

func TestMultiShape_RealizeLineMesh(t *testing.T) {
	ms := NewMultiShape(unitSquare(), NewShape(V2(5, 5), V2(6, 5)))
	lm := ms.RealizeLineMesh()

	require.Len(t, lm.Strips, 2)
	assert.Len(t, lm.Strips[0], 5, "closed strip repeats its first point")
	assert.Equal(t, lm.Strips[0][0], lm.Strips[0][4])
	assert.Equal(t, []Vec3{V3(5, 5, 0), V3(6, 5, 0)}, lm.Strips[1])

	positions, first, count := lm.Positions()
	assert.Len(t, positions, 7*3)
	assert.Equal(t, []int{0, 5}, first)
	assert.Equal(t, []int{5, 2}, count)

	assert.Equal(t, gputypes.PrimitiveTopologyLineStrip, lm.Topology())
	layout := lm.VertexBufferLayout()
	assert.Equal(t, uint64(12), layout.ArrayStride)
	assert.Equal(t, gputypes.VertexFormatFloat32x3, layout.Attributes[0].Format)
}

func TestLineMesh_VertexOutsideStripIgnored(t *testing.T) {
	lm := &LineMesh{}
	lm.Vertex(V3(1, 1, 1))
	assert.Empty(t, lm.Strips)

	lm.BeginStrip()
	lm.Vertex(V3(1, 2, 3))
	lm.EndStrip()
	lm.Vertex(V3(4, 5, 6))
	assert.Equal(t, [][]Vec3{{V3(1, 2, 3)}}, lm.Strips)
}
