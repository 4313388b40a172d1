package procedural

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
)

// Vertex holds the attributes of one generated vertex.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	// UV holds one texture coordinate pair per channel, in emission order.
	UV []Vec2
}

// TriangleBuffer accumulates vertices and triangle indices emitted by
// generators.
//
// Generators follow a fixed calling convention per vertex: Position, then
// Normal, then one TextureCoord per UV channel. Triangles are emitted as
// three Index calls each, wound counter-clockwise around the outward normal.
//
// Indices passed to Index are relative to the rebase offset. A generator
// calls RebaseOffset before emitting an independent sub-mesh, so it can
// number its own vertices from 0 and still land in the shared index space.
//
// A TriangleBuffer is not safe for concurrent use.
type TriangleBuffer struct {
	vertices []Vertex
	indices  []int
	offset   int
	channels int
}

// NewTriangleBuffer returns an empty buffer.
func NewTriangleBuffer() *TriangleBuffer {
	return &TriangleBuffer{}
}

// RebaseOffset captures the current vertex count as the base added to
// every subsequently emitted index.
func (tb *TriangleBuffer) RebaseOffset() {
	tb.offset = len(tb.vertices)
}

// Offset returns the current rebase offset.
func (tb *TriangleBuffer) Offset() int {
	return tb.offset
}

// Position appends a new vertex at p. Its normal and texture coordinates
// stay zero until set by Normal and TextureCoord.
func (tb *TriangleBuffer) Position(p Vec3) *TriangleBuffer {
	tb.vertices = append(tb.vertices, Vertex{Position: p})
	return tb
}

// PositionXYZ appends a new vertex at (x, y, z).
func (tb *TriangleBuffer) PositionXYZ(x, y, z float32) *TriangleBuffer {
	return tb.Position(Vec3{X: x, Y: y, Z: z})
}

// Normal sets the normal of the most recently appended vertex.
// It is ignored when no vertex has been appended yet.
func (tb *TriangleBuffer) Normal(n Vec3) *TriangleBuffer {
	if len(tb.vertices) == 0 {
		Logger().Debug("procedural: Normal called before Position, ignored")
		return tb
	}
	tb.vertices[len(tb.vertices)-1].Normal = n
	return tb
}

// TextureCoord appends a UV pair to the most recently appended vertex.
// It is ignored when no vertex has been appended yet.
func (tb *TriangleBuffer) TextureCoord(u, v float32) *TriangleBuffer {
	if len(tb.vertices) == 0 {
		Logger().Debug("procedural: TextureCoord called before Position, ignored")
		return tb
	}
	last := &tb.vertices[len(tb.vertices)-1]
	last.UV = append(last.UV, Vec2{X: u, Y: v})
	if len(last.UV) > tb.channels {
		tb.channels = len(last.UV)
	}
	return tb
}

// Index appends i plus the current rebase offset to the index list.
func (tb *TriangleBuffer) Index(i int) *TriangleBuffer {
	tb.indices = append(tb.indices, i+tb.offset)
	return tb
}

// Triangle appends three self-relative indices forming one triangle.
func (tb *TriangleBuffer) Triangle(i0, i1, i2 int) *TriangleBuffer {
	return tb.Index(i0).Index(i1).Index(i2)
}

// EstimateVertexCount reserves room for n more vertices.
func (tb *TriangleBuffer) EstimateVertexCount(n int) {
	if n <= 0 || cap(tb.vertices)-len(tb.vertices) >= n {
		return
	}
	grown := make([]Vertex, len(tb.vertices), len(tb.vertices)+n)
	copy(grown, tb.vertices)
	tb.vertices = grown
}

// EstimateIndexCount reserves room for n more indices.
func (tb *TriangleBuffer) EstimateIndexCount(n int) {
	if n <= 0 || cap(tb.indices)-len(tb.indices) >= n {
		return
	}
	grown := make([]int, len(tb.indices), len(tb.indices)+n)
	copy(grown, tb.indices)
	tb.indices = grown
}

// Vertices returns the vertex slice. Modifiers edit vertices in place
// through it; callers must not append to it.
func (tb *TriangleBuffer) Vertices() []Vertex {
	return tb.vertices
}

// Indices returns the absolute triangle index list.
func (tb *TriangleBuffer) Indices() []int {
	return tb.indices
}

// VertexCount returns the number of vertices.
func (tb *TriangleBuffer) VertexCount() int {
	return len(tb.vertices)
}

// IndexCount returns the number of indices.
func (tb *TriangleBuffer) IndexCount() int {
	return len(tb.indices)
}

// TriangleCount returns the number of complete triangles.
func (tb *TriangleBuffer) TriangleCount() int {
	return len(tb.indices) / 3
}

// TexCoordChannels returns the largest number of UV pairs carried by any vertex.
func (tb *TriangleBuffer) TexCoordChannels() int {
	return tb.channels
}

// Reset empties the buffer and clears the rebase offset.
func (tb *TriangleBuffer) Reset() {
	tb.vertices = tb.vertices[:0]
	tb.indices = tb.indices[:0]
	tb.offset = 0
	tb.channels = 0
}

// Append copies every vertex and triangle of other after the existing
// content, rebasing other's indices.
func (tb *TriangleBuffer) Append(other *TriangleBuffer) *TriangleBuffer {
	tb.RebaseOffset()
	tb.EstimateVertexCount(len(other.vertices))
	tb.EstimateIndexCount(len(other.indices))
	for _, v := range other.vertices {
		tb.Position(v.Position).Normal(v.Normal)
		for _, uv := range v.UV {
			tb.TextureCoord(uv.X, uv.Y)
		}
	}
	for _, i := range other.indices {
		tb.Index(i)
	}
	return tb
}

// Translate moves every vertex by d.
func (tb *TriangleBuffer) Translate(d Vec3) *TriangleBuffer {
	for i := range tb.vertices {
		tb.vertices[i].Position = tb.vertices[i].Position.Add(d)
	}
	return tb
}

// InvertNormals negates every normal and reverses triangle winding, turning
// the mesh inside out.
func (tb *TriangleBuffer) InvertNormals() *TriangleBuffer {
	for i := range tb.vertices {
		tb.vertices[i].Normal = tb.vertices[i].Normal.Neg()
	}
	for i := 0; i+2 < len(tb.indices); i += 3 {
		tb.indices[i+1], tb.indices[i+2] = tb.indices[i+2], tb.indices[i+1]
	}
	return tb
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
// ok is false for an empty buffer.
func (tb *TriangleBuffer) Bounds() (lo, hi Vec3, ok bool) {
	if len(tb.vertices) == 0 {
		return Vec3{}, Vec3{}, false
	}
	lo = Vec3{X: math32.MaxFloat32, Y: math32.MaxFloat32, Z: math32.MaxFloat32}
	hi = lo.Neg()
	for _, v := range tb.vertices {
		p := v.Position
		lo = Vec3{X: math32.Min(lo.X, p.X), Y: math32.Min(lo.Y, p.Y), Z: math32.Min(lo.Z, p.Z)}
		hi = Vec3{X: math32.Max(hi.X, p.X), Y: math32.Max(hi.Y, p.Y), Z: math32.Max(hi.Z, p.Z)}
	}
	return lo, hi, true
}

// Validate reports whether the index list forms whole triangles that only
// refer to existing vertices.
func (tb *TriangleBuffer) Validate() error {
	if len(tb.indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrIncompleteTriangle, len(tb.indices))
	}
	for pos, i := range tb.indices {
		if i < 0 || i >= len(tb.vertices) {
			return fmt.Errorf("%w: index %d at position %d, %d vertices",
				ErrIndexOutOfRange, i, pos, len(tb.vertices))
		}
	}
	return nil
}

// LogValue implements slog.LogValuer so a buffer can be logged directly.
func (tb *TriangleBuffer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("vertices", len(tb.vertices)),
		slog.Int("triangles", len(tb.indices)/3),
		slog.Int("uv_channels", tb.channels),
	)
}
