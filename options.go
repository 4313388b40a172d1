package procedural

// MeshOption configures the MeshParams shared by all generators.
// Use functional options to customize generator output.
//
// Example:
//
//	// Default: unit UV tiling, one UV channel, normals on
//	rb := procedural.NewRoundedBoxGenerator()
//
//	// Two UV channels tiled 4x along U, no normals
//	rb := procedural.NewRoundedBoxGenerator(
//		procedural.WithTexCoordSets(2),
//		procedural.WithUVTile(4, 1),
//		procedural.WithNormals(false),
//	)
type MeshOption func(*MeshParams)

// applyOptions builds MeshParams from the defaults and opts.
func applyOptions(opts []MeshOption) MeshParams {
	mp := DefaultMeshParams()
	for _, opt := range opts {
		opt(&mp)
	}
	return mp
}

// WithUVTile sets the texture coordinate tiling factors.
func WithUVTile(u, v float32) MeshOption {
	return func(mp *MeshParams) {
		mp.UTile = u
		mp.VTile = v
	}
}

// WithTexCoordSets sets the number of UV channels emitted per vertex.
// Zero disables texture coordinates.
func WithTexCoordSets(n int) MeshOption {
	return func(mp *MeshParams) {
		mp.NumTexCoordSet = n
	}
}

// WithNormals enables or disables normal emission.
func WithNormals(enabled bool) MeshOption {
	return func(mp *MeshParams) {
		mp.EnableNormals = enabled
	}
}

// WithPosition offsets the generated mesh.
func WithPosition(p Vec3) MeshOption {
	return func(mp *MeshParams) {
		mp.Position = p
	}
}
