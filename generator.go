package procedural

// Generator is implemented by every solid generator. AddToTriangleBuffer
// appends the generator's own topology to buf, calling RebaseOffset before
// each independent sub-mesh. It panics with an error wrapping
// ErrInvalidParameter when the parameters fail Validate.
type Generator interface {
	AddToTriangleBuffer(buf *TriangleBuffer)
	Validate() error
}

// BuildTriangleBuffer runs g into a fresh buffer.
func BuildTriangleBuffer(g Generator) *TriangleBuffer {
	buf := NewTriangleBuffer()
	g.AddToTriangleBuffer(buf)
	return buf
}

// MeshParams holds the parameters shared by every generator.
type MeshParams struct {
	// UTile and VTile scale the generated texture coordinates.
	UTile, VTile float32
	// NumTexCoordSet is the number of UV channels emitted per vertex.
	NumTexCoordSet int
	// EnableNormals controls whether normals are emitted.
	EnableNormals bool
	// Position offsets every generated vertex.
	Position Vec3
}

// DefaultMeshParams returns unit tiling, one UV channel and normals enabled.
func DefaultMeshParams() MeshParams {
	return MeshParams{
		UTile:          1,
		VTile:          1,
		NumTexCoordSet: 1,
		EnableNormals:  true,
	}
}

// addPoint emits one vertex following the buffer calling convention.
func (mp *MeshParams) addPoint(buf *TriangleBuffer, p, n Vec3, u, v float32) {
	buf.Position(p.Add(mp.Position))
	if mp.EnableNormals {
		buf.Normal(n)
	}
	for range mp.NumTexCoordSet {
		buf.TextureCoord(u*mp.UTile, v*mp.VTile)
	}
}
