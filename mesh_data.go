package procedural

import (
	"math"

	"github.com/gogpu/gputypes"
)

// Byte strides of the non-interleaved attribute streams.
const (
	vec3Stride = 12
	vec2Stride = 8
)

// Shader locations used by MeshData.VertexBufferLayouts.
const (
	PositionLocation = 0
	NormalLocation   = 1
	// TexCoordLocation is the location of UV channel 0; channel n uses
	// TexCoordLocation+n.
	TexCoordLocation = 2
)

// MeshData is a finished TriangleBuffer split into flat attribute arrays,
// the form a renderer or mesh importer consumes.
type MeshData struct {
	// Positions holds x, y, z per vertex.
	Positions []float32
	// Normals holds x, y, z per vertex.
	Normals []float32
	// TexCoords holds one u, v array per UV channel. Vertices that carry
	// fewer channels than the buffer are zero-padded.
	TexCoords [][]float32
	// Indices holds three vertex indices per triangle.
	Indices []uint32
}

// MeshData validates the buffer and converts it to separate arrays.
func (tb *TriangleBuffer) MeshData() (*MeshData, error) {
	if err := tb.Validate(); err != nil {
		Logger().Warn("procedural: buffer failed validation", "buffer", tb, "err", err)
		return nil, err
	}

	n := len(tb.vertices)
	md := &MeshData{
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		TexCoords: make([][]float32, tb.channels),
		Indices:   make([]uint32, len(tb.indices)),
	}
	for c := range md.TexCoords {
		md.TexCoords[c] = make([]float32, n*2)
	}
	for vi, v := range tb.vertices {
		md.Positions = append(md.Positions, v.Position.X, v.Position.Y, v.Position.Z)
		md.Normals = append(md.Normals, v.Normal.X, v.Normal.Y, v.Normal.Z)
		for c, uv := range v.UV {
			md.TexCoords[c][vi*2] = uv.X
			md.TexCoords[c][vi*2+1] = uv.Y
		}
	}
	for i, idx := range tb.indices {
		md.Indices[i] = uint32(idx) //nolint:gosec // validated non-negative and < vertex count
	}
	return md, nil
}

// VertexCount returns the number of vertices.
func (md *MeshData) VertexCount() int {
	return len(md.Positions) / 3
}

// VertexBufferLayouts describes the attribute streams, one buffer per
// attribute: position at location 0, normal at 1, UV channel n at 2+n.
func (md *MeshData) VertexBufferLayouts() []gputypes.VertexBufferLayout {
	layouts := []gputypes.VertexBufferLayout{
		streamLayout(gputypes.VertexFormatFloat32x3, vec3Stride, PositionLocation),
		streamLayout(gputypes.VertexFormatFloat32x3, vec3Stride, NormalLocation),
	}
	for c := range md.TexCoords {
		layouts = append(layouts, streamLayout(gputypes.VertexFormatFloat32x2, vec2Stride, uint32(TexCoordLocation+c))) //nolint:gosec // channel count is small
	}
	return layouts
}

func streamLayout(format gputypes.VertexFormat, stride uint64, location uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: stride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: format, Offset: 0, ShaderLocation: location},
		},
	}
}

// IndexFormat returns the format of Indices.
func (md *MeshData) IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// Topology returns the primitive topology of the index list.
func (md *MeshData) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}

// Indices16 narrows the index list to 16 bits. ok is false when the mesh
// has more vertices than a 16-bit index can address.
func (md *MeshData) Indices16() (indices []uint16, ok bool) {
	if md.VertexCount() > math.MaxUint16+1 {
		return nil, false
	}
	indices = make([]uint16, len(md.Indices))
	for i, idx := range md.Indices {
		indices[i] = uint16(idx) //nolint:gosec // bounded by vertex count check
	}
	return indices, true
}
