package procedural

import "github.com/gogpu/gputypes"

// LineStripBuilder receives line strips. It is the mesh-building context
// shapes are realized into; a renderer integration implements it to feed
// its own line primitives.
type LineStripBuilder interface {
	BeginStrip()
	Vertex(p Vec3)
	EndStrip()
}

// AppendTo emits the shape as one line strip in the z=0 plane. A closed
// shape repeats its first point at the end.
func (s *Shape) AppendTo(b LineStripBuilder) {
	b.BeginStrip()
	for _, p := range s.points {
		b.Vertex(Vec3{X: p.X, Y: p.Y})
	}
	if s.closed && len(s.points) > 0 {
		b.Vertex(Vec3{X: s.points[0].X, Y: s.points[0].Y})
	}
	b.EndStrip()
}

// Realize emits every member shape, in order, as one line strip each.
func (ms *MultiShape) Realize(b LineStripBuilder) {
	for i := range ms.shapes {
		ms.shapes[i].AppendTo(b)
	}
}

// RealizeLineMesh realizes the shapes into a new LineMesh.
func (ms *MultiShape) RealizeLineMesh() *LineMesh {
	lm := &LineMesh{}
	ms.Realize(lm)
	return lm
}

// LineMesh is an in-memory LineStripBuilder holding the realized strips.
type LineMesh struct {
	Strips [][]Vec3
	open   bool
}

var _ LineStripBuilder = (*LineMesh)(nil)

// BeginStrip implements LineStripBuilder.
func (lm *LineMesh) BeginStrip() {
	lm.Strips = append(lm.Strips, nil)
	lm.open = true
}

// Vertex implements LineStripBuilder. Vertices outside a strip are dropped.
func (lm *LineMesh) Vertex(p Vec3) {
	if !lm.open {
		Logger().Debug("procedural: line vertex outside strip, ignored")
		return
	}
	last := len(lm.Strips) - 1
	lm.Strips[last] = append(lm.Strips[last], p)
}

// EndStrip implements LineStripBuilder.
func (lm *LineMesh) EndStrip() {
	lm.open = false
}

// Positions flattens all strips into one x, y, z array and returns the
// vertex range [first, first+count) of each strip, one draw call per strip.
func (lm *LineMesh) Positions() (positions []float32, first, count []int) {
	for _, strip := range lm.Strips {
		first = append(first, len(positions)/3)
		count = append(count, len(strip))
		for _, p := range strip {
			positions = append(positions, p.X, p.Y, p.Z)
		}
	}
	return positions, first, count
}

// Topology returns the primitive topology of each strip.
func (lm *LineMesh) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyLineStrip
}

// VertexBufferLayout describes the position stream returned by Positions.
func (lm *LineMesh) VertexBufferLayout() gputypes.VertexBufferLayout {
	return streamLayout(gputypes.VertexFormatFloat32x3, vec3Stride, PositionLocation)
}
