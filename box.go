package procedural

// BoxGenerator builds an axis-aligned box from six subdivided planes.
type BoxGenerator struct {
	MeshParams

	SizeX, SizeY, SizeZ       float32
	NumSegX, NumSegY, NumSegZ int
}

// NewBoxGenerator returns a unit box with one segment per face.
func NewBoxGenerator(opts ...MeshOption) *BoxGenerator {
	return &BoxGenerator{
		MeshParams: applyOptions(opts),
		SizeX:      1,
		SizeY:      1,
		SizeZ:      1,
		NumSegX:    1,
		NumSegY:    1,
		NumSegZ:    1,
	}
}

// Validate checks that sizes and segment counts are positive.
func (bg *BoxGenerator) Validate() error {
	switch {
	case bg.NumSegX <= 0:
		return invalidParam("BoxGenerator", "NumSegX", bg.NumSegX)
	case bg.NumSegY <= 0:
		return invalidParam("BoxGenerator", "NumSegY", bg.NumSegY)
	case bg.NumSegZ <= 0:
		return invalidParam("BoxGenerator", "NumSegZ", bg.NumSegZ)
	case bg.SizeX <= 0:
		return invalidParam("BoxGenerator", "SizeX", bg.SizeX)
	case bg.SizeY <= 0:
		return invalidParam("BoxGenerator", "SizeY", bg.SizeY)
	case bg.SizeZ <= 0:
		return invalidParam("BoxGenerator", "SizeZ", bg.SizeZ)
	}
	return nil
}

// AddToTriangleBuffer implements Generator. Faces do not share vertices,
// so every face keeps its own flat normal.
func (bg *BoxGenerator) AddToTriangleBuffer(buf *TriangleBuffer) {
	mustValid(bg.Validate())

	addBoxFaces(buf, bg.MeshParams, Vec3{X: bg.SizeX, Y: bg.SizeY, Z: bg.SizeZ},
		bg.NumSegX, bg.NumSegY, bg.NumSegZ, 0)

	Logger().Debug("procedural: box generated", "buffer", buf)
}

// addBoxFaces emits the six faces of a box of the given size through a
// PlaneGenerator, each pushed out by inset along its normal. Every face
// uses the two sizes and segment counts of the axes it spans.
func addBoxFaces(buf *TriangleBuffer, mp MeshParams, size Vec3, segX, segY, segZ int, inset float32) {
	pg := &PlaneGenerator{MeshParams: mp}
	// start with neg z as typically back
	for _, f := range []struct {
		normal       Vec3
		sizeX, sizeY float32
		segX, segY   int
		half         float32
	}{
		{UnitZ.Neg(), size.Y, size.X, segY, segX, size.Z / 2},
		{UnitZ, size.Y, size.X, segY, segX, size.Z / 2},
		{UnitY.Neg(), size.Z, size.X, segZ, segX, size.Y / 2},
		{UnitY, size.Z, size.X, segZ, segX, size.Y / 2},
		{UnitX.Neg(), size.Z, size.Y, segZ, segY, size.X / 2},
		{UnitX, size.Z, size.Y, segZ, segY, size.X / 2},
	} {
		pg.Normal = f.normal
		pg.SizeX, pg.SizeY = f.sizeX, f.sizeY
		pg.NumSegX, pg.NumSegY = f.segX, f.segY
		pg.Position = mp.Position.Add(f.normal.Mul(f.half + inset))
		pg.AddToTriangleBuffer(buf)
	}
}
